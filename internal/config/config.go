// Package config provides application configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Provider names accepted by provider.name.
const (
	ProviderFrankfurter      = "frankfurter"
	ProviderExchangeRateHost = "exchangerate_host"
)

// Color modes accepted by chart.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const dateLayout = "2006-01-02"

// Config holds the complete application configuration.
type Config struct {
	Provider         ProviderConfig         `mapstructure:"provider"`
	Frankfurter      FrankfurterConfig      `mapstructure:"frankfurter"`
	ExchangeRateHost ExchangeRateHostConfig `mapstructure:"exchangerate_host"`
	History          HistoryConfig          `mapstructure:"history"`
	Chart            ChartConfig            `mapstructure:"chart"`
	Session          SessionConfig          `mapstructure:"session"`
	Log              LogConfig              `mapstructure:"log"`
}

// ProviderConfig selects the rate backend.
type ProviderConfig struct {
	Name string `mapstructure:"name" validate:"oneof=frankfurter exchangerate_host"`
}

// FrankfurterConfig holds settings for the frankfurter provider.
type FrankfurterConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	Timeout int    `mapstructure:"timeout_sec" validate:"gt=0"`
}

// ExchangeRateHostConfig holds settings for the exchangerate.host provider.
type ExchangeRateHostConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey  string `mapstructure:"api_key"`
	Timeout int    `mapstructure:"timeout_sec" validate:"gt=0"`
}

// HistoryConfig bounds the sampled years and the earliest accepted query date.
type HistoryConfig struct {
	StartYear int    `mapstructure:"start_year" validate:"gte=1999"`
	EndYear   int    `mapstructure:"end_year" validate:"gtefield=StartYear"`
	MinDate   string `mapstructure:"min_date" validate:"required,datetime=2006-01-02"`
}

// ChartConfig holds trend chart settings.
type ChartConfig struct {
	Height int    `mapstructure:"height" validate:"gt=0"`
	Color  string `mapstructure:"color" validate:"oneof=auto always never"`
}

// SessionConfig holds interactive session settings.
type SessionConfig struct {
	DefaultAmount float64 `mapstructure:"default_amount" validate:"gt=0"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level    string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Encoding string `mapstructure:"encoding" validate:"oneof=console json"`
}

// MinDateTime returns history.min_date as a UTC time.
func (h HistoryConfig) MinDateTime() time.Time {
	t, err := time.Parse(dateLayout, h.MinDate)
	if err != nil {
		return time.Date(h.StartYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return t
}

// LoadConfig reads configuration from config files, environment variables, and defaults.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := newViper()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config search paths
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("FXTREND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	return v
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("provider.name", ProviderFrankfurter)
	v.SetDefault("frankfurter.base_url", "https://api.frankfurter.app")
	v.SetDefault("frankfurter.timeout_sec", 10)
	v.SetDefault("exchangerate_host.base_url", "https://api.exchangerate.host")
	v.SetDefault("exchangerate_host.api_key", "")
	v.SetDefault("exchangerate_host.timeout_sec", 10)
	v.SetDefault("history.start_year", 2000)
	v.SetDefault("history.end_year", 2024)
	v.SetDefault("history.min_date", "2000-01-01")
	v.SetDefault("chart.height", 12)
	v.SetDefault("chart.color", ColorAuto)
	v.SetDefault("session.default_amount", 1)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.encoding", "console")
}

func fromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Provider.Name = strings.ToLower(strings.TrimSpace(cfg.Provider.Name))
	cfg.Chart.Color = strings.ToLower(strings.TrimSpace(cfg.Chart.Color))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that all required configuration fields are set and valid.
func (c *Config) Validate() error {
	var errs []error

	if err := structValidator.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				errs = append(errs, fmt.Errorf("%s failed %q check (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
		} else {
			errs = append(errs, err)
		}
	}

	if c.Provider.Name == ProviderExchangeRateHost {
		if c.ExchangeRateHost.BaseURL == "" {
			errs = append(errs, fmt.Errorf("exchangerate_host.base_url is required when provider.name is %s", ProviderExchangeRateHost))
		}
		if c.ExchangeRateHost.APIKey == "" {
			errs = append(errs, fmt.Errorf("exchangerate_host.api_key is required (set FXTREND_EXCHANGERATE_HOST_API_KEY)"))
		}
	}

	if minDate, err := time.Parse(dateLayout, c.History.MinDate); err == nil && minDate.Year() > c.History.EndYear {
		errs = append(errs, fmt.Errorf("history.min_date %s is after history.end_year %d", c.History.MinDate, c.History.EndYear))
	}

	return errors.Join(errs...)
}
