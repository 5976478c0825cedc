package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testCurrencies = map[string]string{
	"EUR": "Euro",
	"GBP": "British Pound",
	"JPY": "Japanese Yen",
	"USD": "United States Dollar",
}

func TestIsValidCurrencyCode(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"USD", true},
		{"EUR", true},
		{"usd", true},   // should accept lowercase and convert
		{"US", false},   // too short
		{"USDA", false}, // too long
		{"US1", false},  // contains number
		{"US$", false},  // contains special char
		{"", false},     // empty
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValidCurrencyCode(tc.code))
		})
	}
}

func TestValidator_Validate(t *testing.T) {
	v := NewValidator(testCurrencies)

	tests := []struct {
		input   string
		want    string
		wantErr error
	}{
		{"USD", "USD", nil},
		{"gbp", "GBP", nil},
		{" jpy ", "JPY", nil},
		{"CHF", "", ErrUnsupportedCurrency},
		{"EURO", "", ErrInvalidCurrencyFormat},
		{"", "", ErrInvalidCurrencyFormat},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := v.Validate(tc.input)
			assert.Equal(t, tc.want, got)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidator_EveryListedCodeRoundTrips(t *testing.T) {
	v := NewValidator(testCurrencies)
	for code := range testCurrencies {
		got, err := v.Validate(code)
		assert.NoError(t, err)
		assert.Equal(t, code, got)
		assert.True(t, v.IsSupported(code))
	}
}

func TestValidator_CodesSortedAndDetached(t *testing.T) {
	src := map[string]string{"USD": "Dollar", "EUR": "Euro"}
	v := NewValidator(src)
	src["CHF"] = "Franc"

	assert.Equal(t, []string{"EUR", "USD"}, v.Codes())
	assert.False(t, v.IsSupported("CHF"))
}
