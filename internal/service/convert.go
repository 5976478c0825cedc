package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a positive amount. It returns ok=false for empty,
// non-numeric, zero or negative input.
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(s)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, false
	}
	return amount, true
}

// Convert returns amount expressed in the target currency at rate.
func Convert(amount decimal.Decimal, rate float64) decimal.Decimal {
	return amount.Mul(decimal.NewFromFloat(rate))
}
