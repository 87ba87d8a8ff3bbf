package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency formats amounts as money: symbol, thousands separators and two
// decimals, with a leading minus for negatives ("-$1,234.50").
type Currency struct {
	Symbol string
}

// DefaultCurrency is US dollars.
var DefaultCurrency = Currency{Symbol: "$"}

func (c Currency) Format(d decimal.Decimal) string {
	rounded := d.Round(2)
	digits := rounded.Abs().StringFixed(2)

	whole, frac, _ := strings.Cut(digits, ".")

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(c.Symbol)
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
