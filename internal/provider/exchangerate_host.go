package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var _ RatesProvider = (*ExchangeRateHostProvider)(nil)

// ExchangeRateHostProvider fetches rates from the exchangerate.host API.
type ExchangeRateHostProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewExchangeRateHostProvider creates a new ExchangeRateHostProvider with the given configuration.
func NewExchangeRateHostProvider(baseURL, apiKey string, timeoutSec int) *ExchangeRateHostProvider {
	if baseURL == "" {
		baseURL = "https://api.exchangerate.host"
	}
	return &ExchangeRateHostProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

// exchangerate.host error envelope, shared by every endpoint
type erHostEnvelope struct {
	Success bool `json:"success"`
	Error   *struct {
		Code int    `json:"code"`
		Info string `json:"info"`
	} `json:"error,omitempty"`
}

type erHostListResponse struct {
	erHostEnvelope
	Currencies map[string]string `json:"currencies"`
}

type erHostHistoricalResponse struct {
	erHostEnvelope
	Date   string             `json:"date"`
	Source string             `json:"source"`
	Quotes map[string]float64 `json:"quotes"`
}

// Currencies fetches the supported currency list.
func (p *ExchangeRateHostProvider) Currencies(ctx context.Context) (map[string]string, error) {
	q := url.Values{}
	q.Set("access_key", p.apiKey)

	var result erHostListResponse
	if err := p.get(ctx, p.baseURL+"/list?"+q.Encode(), &result); err != nil {
		return nil, err
	}
	if err := result.check("list"); err != nil {
		return nil, err
	}
	return result.Currencies, nil
}

// RateOn fetches the historical base/target rate for the given date.
func (p *ExchangeRateHostProvider) RateOn(ctx context.Context, base, target string, date time.Time) (float64, error) {
	q := url.Values{}
	q.Set("access_key", p.apiKey)
	q.Set("date", date.Format(DateLayout))
	q.Set("source", base)
	q.Set("currencies", target)

	var result erHostHistoricalResponse
	if err := p.get(ctx, p.baseURL+"/historical?"+q.Encode(), &result); err != nil {
		return 0, err
	}
	if err := result.check("historical"); err != nil {
		return 0, err
	}

	// The API returns quotes keyed as "BASEQUOTE", e.g. "EURMXN"
	key := base + target
	rateVal, ok := result.Quotes[key]
	if !ok || rateVal <= 0 {
		return 0, fmt.Errorf("%w: no %s quote in exchangerate.host response for %s", ErrRateNotFound, key, date.Format(DateLayout))
	}
	return rateVal, nil
}

func (e erHostEnvelope) check(endpoint string) error {
	if e.Success {
		return nil
	}
	if e.Error != nil {
		return fmt.Errorf("%w: exchangerate.host %s returned error %d: %s", ErrUnexpectedStatus, endpoint, e.Error.Code, e.Error.Info)
	}
	return fmt.Errorf("%w: exchangerate.host %s returned success=false", ErrUnexpectedStatus, endpoint)
}

func (p *ExchangeRateHostProvider) get(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("external API request creation failed: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("external API request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: external API returned status %d: %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode external API response: %w", err)
	}
	return nil
}
