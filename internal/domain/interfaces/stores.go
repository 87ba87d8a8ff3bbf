package interfaces

import (
	"io"

	"github.com/shopspring/decimal"
)

// StockStore is the ticker surface the stock commands drive.
type StockStore interface {
	AddListener(name string, l Listener)
	SetPrice(name string, price decimal.Decimal) bool
	RemoveStock(name string) error
	Print(w io.Writer) error
}
