package chart

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"

	"fxtrend/internal/service"
)

// DefaultHeight is the number of chart rows.
const DefaultHeight = 12

// Renderer writes trend charts to an output stream.
type Renderer struct {
	out    io.Writer
	span   service.YearSpan
	height int
	colors bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithHeight sets the chart height in rows.
func WithHeight(h int) Option {
	return func(r *Renderer) {
		if h > 0 {
			r.height = h
		}
	}
}

// WithColors toggles ANSI colouring of the two series.
func WithColors(enabled bool) Option {
	return func(r *Renderer) { r.colors = enabled }
}

// NewRenderer creates a Renderer for series sampled over span.
func NewRenderer(out io.Writer, span service.YearSpan, opts ...Option) *Renderer {
	r := &Renderer{out: out, span: span, height: DefaultHeight}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderTrend plots the series against its step baseline for queryDate.
// An empty or odd-length series is reported and skipped without error.
func (r *Renderer) RenderTrend(series []float64, base, target string, queryDate time.Time) error {
	if len(series) == 0 || len(series)%2 != 0 {
		fmt.Fprintln(r.out, "No valid rates to plot or inconsistent number of data points.")
		return nil
	}

	split, err := SplitIndex(r.span, queryDate)
	if err != nil {
		return err
	}
	baseline, err := Baseline(series, split)
	if err != nil {
		return err
	}

	title := color.New(color.Bold)
	if r.colors {
		title.EnableColor()
	} else {
		title.DisableColor()
	}
	fmt.Fprintln(r.out)
	title.Fprintf(r.out, "Exchange Rate Trend: %s to %s from %s\n", base, target, r.span) //nolint:errcheck // console output

	opts := []asciigraph.Option{asciigraph.Height(r.height)}
	if r.colors {
		opts = append(opts, asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green))
	}
	fmt.Fprintf(r.out, "\n%s\n\n", asciigraph.PlotMany([][]float64{baseline, series}, opts...))
	return nil
}
