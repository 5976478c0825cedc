package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"fxtrend/internal/provider"
)

// RateSeries holds half-yearly samples in chronological order.
type RateSeries []float64

// YearSpan is an inclusive range of calendar years.
type YearSpan struct {
	Start int
	End   int
}

// DefaultYearSpan covers 2000 through 2024.
var DefaultYearSpan = YearSpan{Start: 2000, End: 2024}

// Len returns the number of years in the span.
func (y YearSpan) Len() int {
	if y.End < y.Start {
		return 0
	}
	return y.End - y.Start + 1
}

// Index returns the position of year within the span.
func (y YearSpan) Index(year int) (int, bool) {
	if year < y.Start || year > y.End {
		return 0, false
	}
	return year - y.Start, true
}

// SampleDates returns Jan 1 and Jul 1 of every year, in order.
func (y YearSpan) SampleDates() []time.Time {
	dates := make([]time.Time, 0, 2*y.Len())
	for year := y.Start; year <= y.End; year++ {
		dates = append(dates,
			time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC),
		)
	}
	return dates
}

func (y YearSpan) String() string {
	return fmt.Sprintf("%d to %d", y.Start, y.End)
}

// SeriesBuilder assembles the half-yearly rate history for a currency pair.
type SeriesBuilder struct {
	provider provider.RatesProvider
	span     YearSpan
	log      *zap.SugaredLogger
}

// NewSeriesBuilder creates a SeriesBuilder sampling the given span.
func NewSeriesBuilder(prov provider.RatesProvider, span YearSpan, logger *zap.SugaredLogger) *SeriesBuilder {
	return &SeriesBuilder{provider: prov, span: span, log: logger}
}

// Span returns the years sampled by the builder.
func (b *SeriesBuilder) Span() YearSpan {
	return b.span
}

// BuildAnnualSeries fetches the Jan 1 and Jul 1 rate of every year in the span.
// Samples the service answers without a rate are skipped, not padded.
// A transport or decode fault aborts the build and discards partial results.
func (b *SeriesBuilder) BuildAnnualSeries(ctx context.Context, base, target string) (RateSeries, error) {
	series := make(RateSeries, 0, 2*b.span.Len())

	for _, date := range b.span.SampleDates() {
		rate, err := b.provider.RateOn(ctx, base, target, date)
		switch {
		case err == nil:
			series = append(series, rate)
		case errors.Is(err, provider.ErrUnexpectedStatus), errors.Is(err, provider.ErrRateNotFound):
			b.log.Debugw("Skipping sample", "date", date.Format(provider.DateLayout), "error", err)
		default:
			b.log.Errorw("Error retrieving data", "base", base, "target", target, "error", err)
			return nil, fmt.Errorf("%w: %w", ErrSeriesUnavailable, err)
		}
	}

	if len(series) == 0 {
		return nil, ErrNoRates
	}

	b.log.Debugw("Annual series built", "base", base, "target", target, "samples", len(series))
	return series, nil
}
