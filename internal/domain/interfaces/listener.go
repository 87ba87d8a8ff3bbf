package interfaces

import "github.com/shopspring/decimal"

// Listener is notified with the new price whenever the ticker accepts a change.
// It is not told which stock changed.
type Listener interface {
	Update(price decimal.Decimal)
}
