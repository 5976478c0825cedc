//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fxtrend/internal/provider"
	"fxtrend/internal/service"
	"fxtrend/internal/testkit"
)

func liveSource(t *testing.T) (*provider.FrankfurterProvider, *service.RateSource) {
	t.Helper()
	cfg := testkit.LoadConfig()
	cfg.RequireLive(t)

	prov := provider.NewFrankfurterProvider(cfg.FrankfurterURL, cfg.TimeoutSec())
	return prov, service.NewRateSource(prov, zap.NewNop().Sugar())
}

// testContext returns a context with a 60-second deadline tied to the test's cleanup.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestLive_SupportedCurrencies(t *testing.T) {
	_, src := liveSource(t)

	currencies, ok := src.FetchSupportedCurrencies(testContext(t))
	require.True(t, ok, "supported currencies should be available")
	assert.Contains(t, currencies, "USD")
	assert.Contains(t, currencies, "GBP")
}

func TestLive_RateOnDate(t *testing.T) {
	_, src := liveSource(t)
	ctx := testContext(t)

	rate, ok := src.FetchRateOnDate(ctx, "USD", "EUR", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Greater(t, rate, 0.0)

	// Before the service's history the answer is absent, or the service's nearest
	// earlier publication; both are acceptable.
	early, ok := src.FetchRateOnDate(ctx, "USD", "EUR", time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC))
	if ok {
		assert.Greater(t, early, 0.0)
	}
}

func TestLive_AnnualSeries(t *testing.T) {
	prov, _ := liveSource(t)

	series, err := service.NewSeriesBuilder(prov, service.YearSpan{Start: 2019, End: 2020}, zap.NewNop().Sugar()).
		BuildAnnualSeries(testContext(t), "USD", "EUR")
	require.NoError(t, err)
	assert.Len(t, series, 4)
}
