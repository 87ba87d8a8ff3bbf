package command

import (
	"errors"
	"strings"

	"patterns/internal/console"
	"patterns/internal/domain"
	"patterns/internal/ticker"
)

// Command performs one console-interactive action.
type Command interface {
	Execute() error
}

// AddStock registers a display listener for a stock name.
type AddStock struct {
	store domain.StockStore
	con   *console.Console
}

func NewAddStock(store domain.StockStore, con *console.Console) *AddStock {
	return &AddStock{store: store, con: con}
}

func (c *AddStock) Execute() error {
	name, err := c.con.Ask("Enter stock name:")
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	c.store.AddListener(name, ticker.NewStockDisplay(name, c.con.Out()))
	c.con.Printf("Stock %s added\n", name)
	return nil
}

// RemoveStock removes a stock and its listeners.
type RemoveStock struct {
	store domain.StockStore
	con   *console.Console
}

func NewRemoveStock(store domain.StockStore, con *console.Console) *RemoveStock {
	return &RemoveStock{store: store, con: con}
}

func (c *RemoveStock) Execute() error {
	name, err := c.con.Ask("Enter stock name to remove:")
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if err := c.store.RemoveStock(name); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.con.Printf("Stock %s not found\n", name)
			return nil
		}
		return err
	}
	c.con.Printf("Stock %s removed\n", name)
	return nil
}

// SetPrice reads a name and a price and stores them. A price that does not
// parse leaves the store untouched.
type SetPrice struct {
	store domain.StockStore
	con   *console.Console
}

func NewSetPrice(store domain.StockStore, con *console.Console) *SetPrice {
	return &SetPrice{store: store, con: con}
}

func (c *SetPrice) Execute() error {
	name, err := c.con.Ask("Enter stock name:")
	if err != nil {
		return err
	}
	raw, err := c.con.Ask("Enter stock price:")
	if err != nil {
		return err
	}
	price, err := console.ParseDecimal("price", raw)
	if err != nil {
		return err
	}
	c.store.SetPrice(strings.TrimSpace(name), price)
	return nil
}

// Commander is the invoker holding the three stock commands.
type Commander struct {
	add      Command
	remove   Command
	setPrice Command
}

func NewCommander(add, remove, setPrice Command) *Commander {
	return &Commander{add: add, remove: remove, setPrice: setPrice}
}

func (c *Commander) AddStock() error    { return c.add.Execute() }
func (c *Commander) RemoveStock() error { return c.remove.Execute() }
func (c *Commander) SetPrice() error    { return c.setPrice.Execute() }
