// Package testkit provides environment-driven settings for the live integration tests.
package testkit

import (
	"fmt"
	"os"
	"strconv"
	"testing"
	"time"
)

// Config holds environment-driven settings for tests that reach the real rate service.
type Config struct {
	FrankfurterURL string        // Base URL of the Frankfurter deployment under test.
	Timeout        time.Duration // Per-request HTTP timeout.
	SkipLive       bool          // If true, live tests are skipped (offline CI).
}

// LoadConfig reads test settings from environment variables.
func LoadConfig() Config {
	return Config{
		FrankfurterURL: envOrDefault("TEST_FRANKFURTER_URL", "https://api.frankfurter.app"),
		Timeout:        envDurationOrDefault("TEST_HTTP_TIMEOUT", 15*time.Second),
		SkipLive:       envBoolOrDefault("TEST_SKIP_LIVE", false),
	}
}

// TimeoutSec returns the timeout rounded up to whole seconds, as the providers expect.
func (c Config) TimeoutSec() int {
	secs := int((c.Timeout + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}

// RequireLive skips t when live tests are disabled.
func (c Config) RequireLive(t testing.TB) {
	t.Helper()
	if c.SkipLive {
		t.Skip("TEST_SKIP_LIVE is set; skipping live rate service test")
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDurationOrDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		// Try parsing as plain seconds.
		secs, err2 := strconv.Atoi(v)
		if err2 != nil {
			fmt.Fprintf(os.Stderr, "testkit: invalid value %q for %s (expected duration or seconds), using default %v\n", v, key, def)
			return def
		}
		return time.Duration(secs) * time.Second
	}
	return d
}

func envBoolOrDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "testkit: invalid value %q for %s (expected bool), using default %v\n", v, key, def)
		return def
	}
	return b
}
