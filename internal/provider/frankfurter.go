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

var _ RatesProvider = (*FrankfurterProvider)(nil)

// FrankfurterProvider fetches rates from the Frankfurter API.
type FrankfurterProvider struct {
	baseURL string
	client  *http.Client
}

// NewFrankfurterProvider creates a new FrankfurterProvider.
func NewFrankfurterProvider(baseURL string, timeoutSec int) *FrankfurterProvider {
	if baseURL == "" {
		baseURL = "https://api.frankfurter.app"
	}
	return &FrankfurterProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

type frankfurterResponse struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}

// Currencies retrieves the code to name mapping of every currency Frankfurter publishes.
func (p *FrankfurterProvider) Currencies(ctx context.Context) (map[string]string, error) {
	var result map[string]string
	if err := p.get(ctx, p.baseURL+"/currencies", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// RateOn retrieves the base/target rate published for the given date.
func (p *FrankfurterProvider) RateOn(ctx context.Context, base, target string, date time.Time) (float64, error) {
	q := url.Values{}
	q.Set("from", base)
	q.Set("to", target)
	reqURL := fmt.Sprintf("%s/%s?%s", p.baseURL, date.Format(DateLayout), q.Encode())

	var result frankfurterResponse
	if err := p.get(ctx, reqURL, &result); err != nil {
		return 0, err
	}

	rateVal, ok := result.Rates[target]
	if !ok || rateVal <= 0 {
		return 0, fmt.Errorf("%w: no %s rate in frankfurter response for %s", ErrRateNotFound, target, date.Format(DateLayout))
	}
	return rateVal, nil
}

func (p *FrankfurterProvider) get(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("frankfurter API request creation failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("frankfurter API request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: frankfurter API returned status %d: %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode frankfurter API response: %w", err)
	}
	return nil
}
