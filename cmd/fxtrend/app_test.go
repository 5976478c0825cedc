package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fxtrend/internal/config"
	"fxtrend/internal/provider"
)

func testConfig() *config.Config {
	return &config.Config{
		Provider:         config.ProviderConfig{Name: config.ProviderFrankfurter},
		Frankfurter:      config.FrankfurterConfig{BaseURL: "http://127.0.0.1:1", Timeout: 1},
		ExchangeRateHost: config.ExchangeRateHostConfig{BaseURL: "http://127.0.0.1:1", Timeout: 1},
		History:          config.HistoryConfig{StartYear: 2000, EndYear: 2024, MinDate: "2000-01-01"},
		Chart:            config.ChartConfig{Height: 12, Color: config.ColorNever},
		Session:          config.SessionConfig{DefaultAmount: 1},
		Log:              config.LogConfig{Level: "warn", Encoding: "console"},
	}
}

func TestNewRateProvider(t *testing.T) {
	cfg := testConfig()

	p, err := newRateProvider(cfg)
	require.NoError(t, err)
	assert.IsType(t, &provider.FrankfurterProvider{}, p)

	cfg.Provider.Name = config.ProviderExchangeRateHost
	_, err = newRateProvider(cfg)
	assert.Error(t, err, "exchangerate_host without a key is rejected")

	cfg.ExchangeRateHost.APIKey = "secret"
	p, err = newRateProvider(cfg)
	require.NoError(t, err)
	assert.IsType(t, &provider.ExchangeRateHostProvider{}, p)

	cfg.Provider.Name = "ecb"
	_, err = newRateProvider(cfg)
	assert.Error(t, err)
}

func TestColorsEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, colorsEnabled(config.ColorAlways, &buf))
	assert.False(t, colorsEnabled(config.ColorNever, &buf))
	assert.False(t, colorsEnabled(config.ColorAuto, &buf), "a buffer is not a terminal")
}

func TestApp_RunWithUnreachableService(t *testing.T) {
	var out bytes.Buffer
	app, err := NewApp(testConfig(), zap.NewNop().Sugar(), strings.NewReader(""), &out)
	require.NoError(t, err)

	require.NoError(t, app.Run(t.Context()))
	assert.Contains(t, out.String(), "Unable to fetch the list of supported currencies.")
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger(config.LogConfig{Level: "debug", Encoding: "json"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))

	_, err = newLogger(config.LogConfig{Level: "loud", Encoding: "console"})
	assert.Error(t, err)
}
