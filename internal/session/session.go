// Package session runs the interactive conversion dialogue: it collects the
// currency pair, date and amount, prints the converted amount and plots the
// half-yearly trend.
package session

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"fxtrend/internal/chart"
	"fxtrend/internal/provider"
	"fxtrend/internal/service"
)

// TrendRenderer draws the trend chart for a series.
type TrendRenderer interface {
	RenderTrend(series []float64, base, target string, queryDate time.Time) error
}

// Config holds session behaviour settings.
type Config struct {
	DefaultAmount decimal.Decimal
	MinDate       time.Time
	Colors        bool
	// Now defaults to time.Now.
	Now func() time.Time
}

// Session wires the rate source, series builder and renderer to a console.
type Session struct {
	source   *service.RateSource
	builder  *service.SeriesBuilder
	renderer TrendRenderer
	out      io.Writer
	prompter *Prompter
	cfg      Config
	log      *zap.SugaredLogger
}

// New creates a Session reading answers from in and writing to out.
func New(
	source *service.RateSource,
	builder *service.SeriesBuilder,
	renderer TrendRenderer,
	in io.Reader,
	out io.Writer,
	cfg Config,
	logger *zap.SugaredLogger,
) *Session {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if !cfg.DefaultAmount.IsPositive() {
		cfg.DefaultAmount = decimal.NewFromInt(1)
	}
	return &Session{
		source:   source,
		builder:  builder,
		renderer: renderer,
		out:      out,
		prompter: newPrompter(in, out, cfg.Colors, cfg.Now, cfg.MinDate),
		cfg:      cfg,
		log:      logger,
	}
}

// Query is one set of validated answers.
type Query struct {
	Base   string
	Target string
	Date   time.Time
	Amount decimal.Decimal
}

// Run prints the banner, fetches the supported currencies once and runs one
// conversion. Service failures end the session with a message and a nil error;
// only closed input or a canceled context are returned.
func (s *Session) Run(ctx context.Context) error {
	printBanner(s.out, s.cfg.Now())

	currencies, ok := s.source.FetchSupportedCurrencies(ctx)
	if !ok {
		fmt.Fprintln(s.out, "Unable to fetch the list of supported currencies.")
		return ctx.Err()
	}
	validator := service.NewValidator(currencies)
	s.log.Debugw("Supported currencies loaded", "count", len(currencies))

	q, err := s.ask(validator)
	if err != nil {
		return err
	}
	s.log.Infow("Query accepted",
		"base", q.Base,
		"target", q.Target,
		"date", q.Date.Format(provider.DateLayout),
		"amount", q.Amount.String())

	return s.convert(ctx, q)
}

func (s *Session) ask(v service.Validator) (Query, error) {
	var (
		q   Query
		err error
	)
	if q.Base, err = s.prompter.Currency("\nEnter the base currency (e.g., USD): ", v); err != nil {
		return Query{}, err
	}
	if q.Target, err = s.prompter.Currency("Enter the target currency (e.g., EUR): ", v); err != nil {
		return Query{}, err
	}
	if q.Date, err = s.prompter.Date("Enter a specific date (YYYY-MM-DD): "); err != nil {
		return Query{}, err
	}
	if q.Amount, err = s.prompter.Amount("Enter the amount to convert (e.g., 100000): ", s.cfg.DefaultAmount); err != nil {
		return Query{}, err
	}
	return q, nil
}

func (s *Session) convert(ctx context.Context, q Query) error {
	series, err := s.builder.BuildAnnualSeries(ctx, q.Base, q.Target)
	if err != nil {
		s.log.Warnw("Annual series unavailable", "base", q.Base, "target", q.Target, "error", err)
		fmt.Fprintln(s.out, "No data found for the given years.")
		return ctx.Err()
	}

	day := q.Date.Format(provider.DateLayout)
	rate, ok := s.source.FetchRateOnDate(ctx, q.Base, q.Target, q.Date)
	if !ok {
		fmt.Fprintf(s.out, "No data found for %s.\n", day)
	} else {
		converted := service.Convert(q.Amount, rate)
		fmt.Fprintf(s.out, "\nExchange rate on %s (%s to %s): %v\n", day, q.Base, q.Target, rate)
		fmt.Fprintf(s.out, "Amount %s %s is equivalent to %s %s.\n",
			q.Amount.StringFixed(2), q.Base, converted.StringFixed(2), q.Target)
	}

	if err := s.renderer.RenderTrend(series, q.Base, q.Target, q.Date); err != nil {
		s.log.Warnw("Trend not rendered", "error", err)
		fmt.Fprintf(s.out, "\nUnable to plot the trend: %v\n", err)
	}
	return nil
}

var _ TrendRenderer = (*chart.Renderer)(nil)
