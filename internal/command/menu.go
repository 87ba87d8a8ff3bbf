package command

import (
	"strings"

	"go.uber.org/zap"

	"patterns/internal/console"
	"patterns/internal/domain"
)

const stockPrompt = "Enter command: (a)dd stock, (r)emove stock, (s)et price, (p)rint prices, (q)uit"

// NewStockMenu wires the stock commands to their tokens.
func NewStockMenu(store domain.StockStore, con *console.Console, log *zap.Logger) *console.Menu {
	cmdr := NewCommander(
		NewAddStock(store, con),
		NewRemoveStock(store, con),
		NewSetPrice(store, con),
	)
	return &console.Menu{
		Name:   "stockticker",
		Render: func(c *console.Console) { c.Println(stockPrompt) },
		Actions: map[string]console.Action{
			"a": cmdr.AddStock,
			"r": cmdr.RemoveStock,
			"s": cmdr.SetPrice,
			"p": func() error { return store.Print(con.Out()) },
		},
		Quit:      "q",
		Invalid:   "Invalid command",
		Normalize: func(s string) string { return strings.ToLower(strings.TrimSpace(s)) },
		Logger:    log,
	}
}
