package fyers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"quotehub/internal/httpx"
	"quotehub/internal/provider"
)

const defaultBaseURL = "https://api.fyers.in/data-rest/v2"

// Config holds the session credentials for the Fyers data API. Token refresh
// and rotation are the caller's concern; the client only reads them.
type Config struct {
	BaseURL     string
	AppID       string
	AccessToken string
}

// Client fetches live quotes from the Fyers quote endpoint. One outbound call
// per invocation, no internal retries; the retry/fallback policy belongs to
// the orchestrator.
type Client struct {
	cfg    Config
	client *httpx.Client
}

func New(cfg Config, hc *httpx.Client) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{cfg: cfg, client: hc}
}

func (c *Client) Name() string { return "fyers" }

// Configured reports whether credentials are present at all. Without them the
// orchestrator skips the primary provider entirely.
func (c *Client) Configured() bool { return c.cfg.AccessToken != "" }

// QuotePayload is the raw per-symbol value block from the quotes API,
// untouched: native currency and precision, no rounding.
type QuotePayload struct {
	Symbol        string  `json:"symbol"`
	LastPrice     float64 `json:"lp"`
	Change        float64 `json:"ch"`
	ChangePercent float64 `json:"chp"`
	PrevClose     float64 `json:"prev_close_price"`
	Volume        float64 `json:"volume"`
	LastTradeTime int64   `json:"tt"` // unix seconds, provider-reported
}

type quotesResponse struct {
	Status  string `json:"s"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    []struct {
		Name   string       `json:"n"`
		Status string       `json:"s"`
		Value  QuotePayload `json:"v"`
	} `json:"d"`
}

// Quote fetches the live quote for one provider symbol (e.g. NSE:RELIANCE-EQ).
// Failures are classified so the caller can tell auth expiry, rate limiting,
// unavailability, and unknown symbols apart.
func (c *Client) Quote(ctx context.Context, symbol string) (*QuotePayload, error) {
	endpoint := fmt.Sprintf("%s/quotes/?symbols=%s", c.cfg.BaseURL, url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, provider.Wrap(provider.KindUnavailable, c.Name(), err)
	}
	req.Header.Set("Authorization", c.cfg.AppID+":"+c.cfg.AccessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		// network error or timeout; treated identically to a 5xx
		return nil, provider.Errorf(provider.KindUnavailable, c.Name(), "quote request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, provider.Errorf(provider.KindAuthExpired, c.Name(), "status %d", resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, provider.Errorf(provider.KindRateLimited, c.Name(), "status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, provider.Errorf(provider.KindUnavailable, c.Name(), "status %d: %s", resp.StatusCode, string(body))
	}

	var qr quotesResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return nil, provider.Errorf(provider.KindMalformedPayload, c.Name(), "decode quote: %w", err)
	}
	if qr.Status != "ok" {
		return nil, provider.Errorf(provider.KindUnavailable, c.Name(), "api error: code=%d msg=%q", qr.Code, qr.Message)
	}
	if len(qr.Data) == 0 {
		return nil, provider.Errorf(provider.KindSymbolNotFound, c.Name(), "no data for %s", symbol)
	}
	entry := qr.Data[0]
	if entry.Status != "ok" {
		return nil, provider.Errorf(provider.KindSymbolNotFound, c.Name(), "symbol %s: %s", symbol, entry.Status)
	}
	payload := entry.Value
	payload.Symbol = entry.Name
	return &payload, nil
}
