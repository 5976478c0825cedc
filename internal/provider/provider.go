// Package provider implements external rate providers for fetching currency exchange rates.
package provider

import (
	"context"
	"errors"
	"time"
)

// DateLayout is the calendar date format used by the rate services.
const DateLayout = "2006-01-02"

// ErrUnexpectedStatus is returned when the rate service answers with a non-OK status.
var ErrUnexpectedStatus = errors.New("unexpected status from rate service")

// ErrRateNotFound is returned when the response carries no usable rate for the target currency.
var ErrRateNotFound = errors.New("rate not found in response")

// RatesProvider defines an interface for fetching exchange rates from external sources.
type RatesProvider interface {
	// Currencies returns the supported currency codes mapped to their names.
	Currencies(ctx context.Context) (map[string]string, error)
	// RateOn returns units of target per one unit of base on the given calendar date.
	RateOn(ctx context.Context, base, target string, date time.Time) (float64, error)
}
