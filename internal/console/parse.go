package console

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"patterns/internal/domain"
)

var errNotNumber = errors.New("not a valid number")

// ParseDecimal parses s as a plain decimal number such as "-12.50".
// Exponent notation is rejected. A failure is reported as a
// *domain.InputError naming field, so callers can return to the menu.
func ParseDecimal(field, s string) (decimal.Decimal, error) {
	v := strings.TrimSpace(s)
	if v == "" || strings.ContainsAny(v, "eE") {
		return decimal.Zero, &domain.InputError{Field: field, Value: s, Err: errNotNumber}
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, &domain.InputError{Field: field, Value: s, Err: errNotNumber}
	}
	return d, nil
}
