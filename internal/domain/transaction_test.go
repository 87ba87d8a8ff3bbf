package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"patterns/internal/domain"
)

func TestTransaction_StringKeepsEnteredScale(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"12.50", "Food: 12.50$ (Expense)"},
		{"12.5", "Food: 12.5$ (Expense)"},
		{"1000", "Food: 1000$ (Expense)"},
		{"0.10", "Food: 0.10$ (Expense)"},
		{"-3.00", "Food: -3.00$ (Expense)"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			tx := domain.NewTransaction(decimal.RequireFromString(tt.amount), "Food", domain.Expense)
			assert.Equal(t, tt.want, tx.String())
		})
	}
}
