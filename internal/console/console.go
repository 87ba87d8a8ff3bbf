package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Console is a line-oriented terminal over arbitrary reader/writer pairs.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	title lipgloss.Style
	fail  lipgloss.Style
}

// New returns a Console reading from in and writing to out. Styling is
// resolved against out, so pipes and buffers receive plain text.
func New(in io.Reader, out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		title: r.NewStyle().Bold(true),
		fail:  r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Out exposes the underlying writer for components that render directly.
func (c *Console) Out() io.Writer { return c.out }

func (c *Console) Print(a ...any) { fmt.Fprint(c.out, a...) }

func (c *Console) Println(a ...any) { fmt.Fprintln(c.out, a...) }

func (c *Console) Printf(format string, a ...any) { fmt.Fprintf(c.out, format, a...) }

// Title prints s as a highlighted heading line.
func (c *Console) Title(s string) { fmt.Fprintln(c.out, c.title.Render(s)) }

// Error prints the user-facing description of err.
func (c *Console) Error(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(c.out, c.fail.Render(Describe(err)))
}

// ReadLine returns the next input line without its line terminator. A final
// line with no newline is still returned; io.EOF is reported on the call after.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask prints prompt on its own line and reads the answer.
func (c *Console) Ask(prompt string) (string, error) {
	c.Println(prompt)
	return c.ReadLine()
}

// AskInline prints prompt without a newline and reads the answer.
func (c *Console) AskInline(prompt string) (string, error) {
	c.Print(prompt)
	return c.ReadLine()
}
