package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"patterns/internal/ledger"
)

func TestCurrency_Format(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"5", "$5.00"},
		{"12.5", "$12.50"},
		{"100", "$100.00"},
		{"1234.5", "$1,234.50"},
		{"1234567.891", "$1,234,567.89"},
		{"999.995", "$1,000.00"},
		{"-5", "-$5.00"},
		{"-1234.5", "-$1,234.50"},
		{"-0.001", "$0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ledger.DefaultCurrency.Format(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestCurrency_CustomSymbol(t *testing.T) {
	assert.Equal(t, "€1,000.00", ledger.Currency{Symbol: "€"}.Format(decimal.NewFromInt(1000)))
}
