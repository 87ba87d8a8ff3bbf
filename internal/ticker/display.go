package ticker

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// StockDisplay prints every price it receives, labelled with the stock name it
// was created for.
type StockDisplay struct {
	Name string
	out  io.Writer
}

func NewStockDisplay(name string, out io.Writer) *StockDisplay {
	return &StockDisplay{Name: name, out: out}
}

func (d *StockDisplay) Update(price decimal.Decimal) {
	fmt.Fprintf(d.out, "%s price update: %s\n", d.Name, price.String())
}
