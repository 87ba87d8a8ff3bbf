package command_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patterns/internal/command"
	"patterns/internal/console"
	"patterns/internal/domain"
	"patterns/internal/ticker"
)

const prompt = "Enter command: (a)dd stock, (r)emove stock, (s)et price, (p)rint prices, (q)uit"

func lines(ls ...string) string { return strings.Join(ls, "\n") + "\n" }

func TestStockMenu_EndToEnd(t *testing.T) {
	input := lines(
		"a", "AAPL",
		"a", "MSFT",
		"s", "AAPL", "150",
		"s", "MSFT", "300",
		"p",
		"s", "AAPL", "150",
		"r", "MSFT",
		"r", "MSFT",
		"x",
		"S", "AAPL", "abc",
		"p",
		"q",
	)
	var out bytes.Buffer
	con := console.New(strings.NewReader(input), &out)
	st := ticker.New(nil)

	require.NoError(t, command.NewStockMenu(st, con, nil).Run(con))

	want := lines(
		prompt, "Enter stock name:", "Stock AAPL added",
		prompt, "Enter stock name:", "Stock MSFT added",
		prompt, "Enter stock name:", "Enter stock price:", "AAPL price update: 150", "MSFT price update: 150",
		prompt, "Enter stock name:", "Enter stock price:", "AAPL price update: 300", "MSFT price update: 300",
		prompt, "Current stock prices:", "AAPL: 150", "MSFT: 300",
		prompt, "Enter stock name:", "Enter stock price:",
		prompt, "Enter stock name to remove:", "Stock MSFT removed",
		prompt, "Enter stock name to remove:", "Stock MSFT not found",
		prompt, "Invalid command",
		prompt, "Enter stock name:", "Enter stock price:", `Invalid input: price "abc": not a valid number`,
		prompt, "Current stock prices:", "AAPL: 150",
		prompt,
	)
	assert.Equal(t, want, out.String())
	assert.Len(t, st.Listeners(), 1, "listener registered for MSFT goes with the stock")
}

func TestSetPrice_InvalidPriceKeepsState(t *testing.T) {
	st := ticker.New(nil)
	st.SetPrice("AAPL", decimal.NewFromInt(150))

	con := console.New(strings.NewReader(lines("AAPL", "twelve")), &bytes.Buffer{})
	err := command.NewSetPrice(st, con).Execute()

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, []domain.Stock{{Name: "AAPL", Price: decimal.NewFromInt(150)}}, st.Prices())
}

func TestRemoveStock_UnknownIsNotAnError(t *testing.T) {
	var out bytes.Buffer
	con := console.New(strings.NewReader(lines("GOOG")), &out)

	require.NoError(t, command.NewRemoveStock(ticker.New(nil), con).Execute())
	assert.Equal(t, lines("Enter stock name to remove:", "Stock GOOG not found"), out.String())
}

type recordingCommand struct{ runs int }

func (c *recordingCommand) Execute() error { c.runs++; return nil }

func TestCommander_DelegatesToCommands(t *testing.T) {
	add, remove, set := &recordingCommand{}, &recordingCommand{}, &recordingCommand{}
	cmdr := command.NewCommander(add, remove, set)

	require.NoError(t, cmdr.AddStock())
	require.NoError(t, cmdr.SetPrice())
	require.NoError(t, cmdr.SetPrice())

	assert.Equal(t, 1, add.runs)
	assert.Equal(t, 0, remove.runs)
	assert.Equal(t, 2, set.runs)
}
