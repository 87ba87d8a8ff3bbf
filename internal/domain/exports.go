package domain

import (
	interfaces "patterns/internal/domain/interfaces"
	types "patterns/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Kind        = types.Kind
	Stock       = types.Stock
	Transaction = types.Transaction
	Patient     = types.Patient
	Medic       = types.Medic
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Listener   = interfaces.Listener
	StockStore = interfaces.StockStore
)

const (
	Expense = types.Expense
	Income  = types.Income
)

// NewTransaction re-exports types.NewTransaction.
var NewTransaction = types.NewTransaction
