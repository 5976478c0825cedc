package testkit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("TEST_FRANKFURTER_URL", "")
	t.Setenv("TEST_HTTP_TIMEOUT", "")
	t.Setenv("TEST_SKIP_LIVE", "")

	cfg := LoadConfig()
	assert.Equal(t, "https://api.frankfurter.app", cfg.FrankfurterURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.False(t, cfg.SkipLive)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("TEST_FRANKFURTER_URL", "http://localhost:8080")
	t.Setenv("TEST_HTTP_TIMEOUT", "7")
	t.Setenv("TEST_SKIP_LIVE", "true")

	cfg := LoadConfig()
	assert.Equal(t, "http://localhost:8080", cfg.FrankfurterURL)
	assert.Equal(t, 7*time.Second, cfg.Timeout)
	assert.True(t, cfg.SkipLive)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TEST_HTTP_TIMEOUT", "soon")
	t.Setenv("TEST_SKIP_LIVE", "maybe")

	cfg := LoadConfig()
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.False(t, cfg.SkipLive)
}

func TestTimeoutSec(t *testing.T) {
	assert.Equal(t, 2, Config{Timeout: 1500 * time.Millisecond}.TimeoutSec())
	assert.Equal(t, 1, Config{Timeout: 0}.TimeoutSec())
	assert.Equal(t, 15, Config{Timeout: 15 * time.Second}.TimeoutSec())
}
