package types

import "github.com/shopspring/decimal"

// Stock is one row of the ticker. Name is the unique key.
type Stock struct {
	Name  string
	Price decimal.Decimal
}
