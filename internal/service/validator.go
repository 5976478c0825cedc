package service

import (
	"sort"
)

// Validator defines the interface for currency validation.
type Validator interface {
	Validate(code string) (string, error)
	IsSupported(code string) bool
	Codes() []string
}

type currencyValidator struct {
	supported map[string]string
}

// NewValidator creates a currency validator backed by the supported currency mapping.
// The mapping is copied and never modified afterwards.
func NewValidator(supported map[string]string) Validator {
	m := make(map[string]string, len(supported))
	for code, name := range supported {
		m[code] = name
	}
	return &currencyValidator{supported: m}
}

// Validate normalizes the code and checks that it is supported (case-insensitive).
func (v *currencyValidator) Validate(code string) (string, error) {
	norm, err := NormalizeCode(code)
	if err != nil {
		return "", err
	}
	if _, ok := v.supported[norm]; !ok {
		return "", ErrUnsupportedCurrency
	}
	return norm, nil
}

// IsSupported returns true if the currency code is supported (case-insensitive).
func (v *currencyValidator) IsSupported(code string) bool {
	_, err := v.Validate(code)
	return err == nil
}

// Codes returns the supported codes in alphabetical order.
func (v *currencyValidator) Codes() []string {
	codes := make([]string, 0, len(v.supported))
	for code := range v.supported {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
