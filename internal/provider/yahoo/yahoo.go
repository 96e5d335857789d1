package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"quotehub/internal/httpx"
	"quotehub/internal/model"
	"quotehub/internal/provider"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Client fetches quotes and historical bars from the Yahoo Finance chart API.
// The endpoint needs no authentication for basic use.
type Client struct {
	BaseURL string
	client  *httpx.Client
}

func New(hc *httpx.Client) *Client {
	return &Client{BaseURL: defaultBaseURL, client: hc}
}

func (c *Client) Name() string { return "yahoo" }

// QuotePayload is the raw latest-quote data from the chart meta block.
type QuotePayload struct {
	Symbol    string
	Price     float64
	PrevClose float64
	Volume    float64
	Timestamp int64 // unix seconds, provider-reported
}

// chartResponse is the response structure of the Yahoo chart API.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol              string  `json:"symbol"`
				RegularMarketPrice  float64 `json:"regularMarketPrice"`
				ChartPreviousClose  float64 `json:"chartPreviousClose"`
				PreviousClose       float64 `json:"previousClose"`
				RegularMarketTime   int64   `json:"regularMarketTime"`
				RegularMarketVolume float64 `json:"regularMarketVolume"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (c *Client) fetchChart(ctx context.Context, symbol, interval, rng string) (*chartResponse, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		c.BaseURL, url.PathEscape(symbol), interval, rng)

	resp, err := c.client.Get(ctx, u)
	if err != nil {
		return nil, provider.Errorf(provider.KindUnavailable, c.Name(), "chart fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, provider.Errorf(provider.KindUnavailable, c.Name(), "read body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, provider.Errorf(provider.KindSymbolNotFound, c.Name(), "symbol %s not found", symbol)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, provider.Errorf(provider.KindUnavailable, c.Name(), "status %d: %s", resp.StatusCode, string(body))
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, provider.Errorf(provider.KindMalformedPayload, c.Name(), "decode chart: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, provider.Errorf(provider.KindSymbolNotFound, c.Name(), "api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, provider.Errorf(provider.KindMalformedPayload, c.Name(), "no result for %s", symbol)
	}
	return &chart, nil
}

// Quote returns the latest available quote for the provider symbol
// (e.g. RELIANCE.NS) from the one-day chart's meta block.
func (c *Client) Quote(ctx context.Context, symbol string) (*QuotePayload, error) {
	chart, err := c.fetchChart(ctx, symbol, "1d", "1d")
	if err != nil {
		return nil, err
	}
	meta := chart.Chart.Result[0].Meta
	prevClose := meta.ChartPreviousClose
	if meta.PreviousClose != 0 {
		prevClose = meta.PreviousClose
	}
	return &QuotePayload{
		Symbol:    meta.Symbol,
		Price:     meta.RegularMarketPrice,
		PrevClose: prevClose,
		Volume:    meta.RegularMarketVolume,
		Timestamp: meta.RegularMarketTime,
	}, nil
}

// History returns daily bars for the requested range (e.g. "1y"). Null bars
// (holidays) are dropped and duplicates collapse so dates strictly increase.
func (c *Client) History(ctx context.Context, symbol, rng string) ([]model.OHLCV, error) {
	chart, err := c.fetchChart(ctx, symbol, "1d", rng)
	if err != nil {
		return nil, err
	}
	result := chart.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return nil, provider.Errorf(provider.KindMalformedPayload, c.Name(), "no bars for %s", symbol)
	}
	quote := result.Indicators.Quote[0]
	for name, arr := range map[string][]interface{}{
		"open": quote.Open, "high": quote.High, "low": quote.Low,
		"close": quote.Close, "volume": quote.Volume,
	} {
		if len(arr) < len(result.Timestamp) {
			return nil, provider.Errorf(provider.KindMalformedPayload, c.Name(),
				"%s array shorter than timestamps for %s", name, symbol)
		}
	}

	bars := make([]model.OHLCV, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		cl := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && cl == 0 {
			continue // null bar
		}
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(ts, 0).UTC(),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  cl,
			Volume: toFloat(quote.Volume[i]),
		})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })

	// collapse same-day duplicates, keeping the later entry
	deduped := bars[:0]
	for _, b := range bars {
		if n := len(deduped); n > 0 && sameDay(deduped[n-1].Time, b.Time) {
			deduped[n-1] = b
			continue
		}
		deduped = append(deduped, b)
	}
	return deduped, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
