package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/term"

	"fxtrend/internal/chart"
	"fxtrend/internal/config"
	"fxtrend/internal/provider"
	"fxtrend/internal/service"
	"fxtrend/internal/session"
)

// App holds all application dependencies.
type App struct {
	cfg     *config.Config
	logger  *zap.SugaredLogger
	session *session.Session
}

// NewApp wires the rate provider, series builder, renderer and session.
func NewApp(cfg *config.Config, logger *zap.SugaredLogger, in io.Reader, out io.Writer) (*App, error) {
	app := &App{
		cfg:    cfg,
		logger: logger.With("session_id", uuid.New().String()),
	}

	rateProvider, err := newRateProvider(cfg)
	if err != nil {
		return nil, err
	}

	colors := colorsEnabled(cfg.Chart.Color, out)
	color.NoColor = !colors

	span := service.YearSpan{Start: cfg.History.StartYear, End: cfg.History.EndYear}
	app.session = session.New(
		service.NewRateSource(rateProvider, app.logger),
		service.NewSeriesBuilder(rateProvider, span, app.logger),
		chart.NewRenderer(out, span, chart.WithHeight(cfg.Chart.Height), chart.WithColors(colors)),
		in,
		out,
		session.Config{
			DefaultAmount: decimal.NewFromFloat(cfg.Session.DefaultAmount),
			MinDate:       cfg.History.MinDateTime(),
			Colors:        colors,
		},
		app.logger,
	)
	return app, nil
}

func newRateProvider(cfg *config.Config) (provider.RatesProvider, error) {
	switch cfg.Provider.Name {
	case config.ProviderFrankfurter:
		return provider.NewFrankfurterProvider(cfg.Frankfurter.BaseURL, cfg.Frankfurter.Timeout), nil
	case config.ProviderExchangeRateHost:
		if cfg.ExchangeRateHost.APIKey == "" {
			return nil, fmt.Errorf("exchangerate_host requires api_key")
		}
		return provider.NewExchangeRateHostProvider(cfg.ExchangeRateHost.BaseURL, cfg.ExchangeRateHost.APIKey, cfg.ExchangeRateHost.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown rate provider %q", cfg.Provider.Name)
	}
}

// colorsEnabled resolves chart.color; auto colours only a terminal.
func colorsEnabled(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run executes one interactive session.
func (app *App) Run(ctx context.Context) error {
	app.logger.Debugw("Session started", "provider", app.cfg.Provider.Name)
	if err := app.session.Run(ctx); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}
