package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patterns/internal/console"
	"patterns/internal/domain"
)

func newMenu(calls *[]string) *console.Menu {
	return &console.Menu{
		Name:   "test",
		Render: func(c *console.Console) { c.Println("menu") },
		Actions: map[string]console.Action{
			"x": func() error { *calls = append(*calls, "x"); return nil },
			"f": func() error {
				*calls = append(*calls, "f")
				return &domain.InputError{Field: "n", Value: "?"}
			},
		},
		Quit:      "q",
		Farewell:  "bye",
		Invalid:   "Invalid command",
		Normalize: func(s string) string { return strings.ToLower(strings.TrimSpace(s)) },
	}
}

func TestMenu_DispatchAndQuit(t *testing.T) {
	var calls []string
	var out bytes.Buffer
	c := console.New(strings.NewReader("X\nzz\nf\nq\nx\n"), &out)

	require.NoError(t, newMenu(&calls).Run(c))

	assert.Equal(t, []string{"x", "f"}, calls, "input after quit must not be read")
	assert.Equal(t,
		"menu\nmenu\nInvalid command\nmenu\nInvalid input: n \"?\"\nmenu\nbye\n",
		out.String())
}

func TestMenu_EndOfInputExitsCleanly(t *testing.T) {
	var calls []string
	var out bytes.Buffer
	c := console.New(strings.NewReader("x\n"), &out)

	require.NoError(t, newMenu(&calls).Run(c))
	assert.Equal(t, []string{"x"}, calls)
	assert.Equal(t, "menu\nmenu\n", out.String())
}
