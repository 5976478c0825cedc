package service

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidCurrencyFormat indicates the input is not a 3-letter currency code.
var ErrInvalidCurrencyFormat = errors.New("invalid currency code format")

// ErrUnsupportedCurrency is returned when a currency is not in the supported list.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ErrNoRates indicates that no sample of the annual series could be fetched.
var ErrNoRates = errors.New("no rates found for the given years")

// ErrSeriesUnavailable indicates the annual series build was aborted by a transport fault.
var ErrSeriesUnavailable = errors.New("annual series unavailable")

var codeValidator = validator.New()

// IsValidCurrencyCode checks whether a string is a valid 3-letter currency code.
func IsValidCurrencyCode(code string) bool {
	return codeValidator.Var(strings.ToUpper(code), "len=3,alpha,uppercase") == nil
}

// NormalizeCode trims and upper-cases a currency code, rejecting malformed input.
func NormalizeCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !IsValidCurrencyCode(code) {
		return "", ErrInvalidCurrencyFormat
	}
	return code, nil
}
