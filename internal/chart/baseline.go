// Package chart derives the step baseline for a half-yearly rate series and
// renders both as an ASCII line chart.
package chart

import (
	"errors"
	"fmt"
	"time"

	"fxtrend/internal/service"
)

// ErrYearOutOfRange is returned when the query year lies outside the sampled span.
var ErrYearOutOfRange = errors.New("query year outside the charted span")

// ErrSplitOutOfRange is returned when the split index does not address a sample.
var ErrSplitOutOfRange = errors.New("split index beyond the end of the series")

// SplitIndex locates the sample that starts the second baseline step:
// two samples per year, plus one when the date falls in July or later.
func SplitIndex(span service.YearSpan, queryDate time.Time) (int, error) {
	yearIndex, ok := span.Index(queryDate.Year())
	if !ok {
		return 0, fmt.Errorf("%w: %d not in %s", ErrYearOutOfRange, queryDate.Year(), span)
	}
	split := yearIndex * 2
	if queryDate.Month() >= time.July {
		split++
	}
	return split, nil
}

// Baseline repeats series[0] split times, then series[split] up to the series length.
func Baseline(series []float64, split int) ([]float64, error) {
	if split < 0 || split >= len(series) {
		return nil, fmt.Errorf("%w: index %d, %d samples", ErrSplitOutOfRange, split, len(series))
	}
	baseline := make([]float64, len(series))
	for i := range baseline {
		if i < split {
			baseline[i] = series[0]
		} else {
			baseline[i] = series[split]
		}
	}
	return baseline, nil
}
