package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Transaction is a single expense or income entry. It is a value type and is
// never modified after construction.
type Transaction struct {
	Amount   decimal.Decimal
	Category string
	Kind     Kind
}

// NewTransaction builds a transaction.
func NewTransaction(amount decimal.Decimal, category string, kind Kind) Transaction {
	return Transaction{Amount: amount, Category: category, Kind: kind}
}

// String renders the transaction the way the list view shows it. The amount
// keeps the scale it was entered with, so 12.50 stays 12.50.
func (t Transaction) String() string {
	amount := t.Amount.String()
	if exp := t.Amount.Exponent(); exp < 0 {
		amount = t.Amount.StringFixed(-exp)
	}
	return fmt.Sprintf("%s: %s$ (%s)", t.Category, amount, t.Kind)
}
