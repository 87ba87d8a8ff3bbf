package types

// Kind tells an expense apart from an income.
type Kind int

const (
	Expense Kind = iota
	Income
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case Expense:
		return "Expense"
	case Income:
		return "Income"
	default:
		return "Unknown"
	}
}
