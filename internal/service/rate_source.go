// Package service implements currency lookup, historical series assembly and conversion.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"fxtrend/internal/provider"
)

// RateSource turns provider failures into absent results. Every failure is
// logged and reported as ok=false; nothing is propagated to the caller.
type RateSource struct {
	provider provider.RatesProvider
	log      *zap.SugaredLogger
}

// NewRateSource creates a RateSource over the given provider.
func NewRateSource(prov provider.RatesProvider, logger *zap.SugaredLogger) *RateSource {
	return &RateSource{provider: prov, log: logger}
}

// FetchSupportedCurrencies performs one lookup of the supported currency mapping.
func (s *RateSource) FetchSupportedCurrencies(ctx context.Context) (map[string]string, bool) {
	currencies, err := s.provider.Currencies(ctx)
	if err != nil {
		s.log.Warnw("Error fetching supported currencies", "error", err)
		return nil, false
	}
	if len(currencies) == 0 {
		s.log.Warnw("Rate service returned an empty currency list")
		return nil, false
	}
	return currencies, true
}

// FetchRateOnDate performs one lookup of the base/target rate on date.
func (s *RateSource) FetchRateOnDate(ctx context.Context, base, target string, date time.Time) (float64, bool) {
	rate, err := s.provider.RateOn(ctx, base, target, date)
	if err != nil {
		s.log.Warnw("Error fetching rate",
			"base", base,
			"target", target,
			"date", date.Format(provider.DateLayout),
			"error", err)
		return 0, false
	}
	return rate, true
}
