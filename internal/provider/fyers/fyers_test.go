package fyers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotehub/internal/httpx"
	"quotehub/internal/provider"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{
		BaseURL:     srv.URL,
		AppID:       "TEST-APP",
		AccessToken: "token",
	}, httpx.New(2*time.Second, ""))
}

func TestQuote_Success(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "NSE:RELIANCE-EQ", r.URL.Query().Get("symbols"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"s": "ok", "code": 200, "message": "",
			"d": [{"n": "NSE:RELIANCE-EQ", "s": "ok", "v": {
				"lp": 2485.50, "ch": -15.75, "chp": -0.63,
				"prev_close_price": 2501.25, "volume": 1200000, "tt": 1767000000
			}}]
		}`))
	})

	p, err := c.Quote(context.Background(), "NSE:RELIANCE-EQ")
	require.NoError(t, err)
	assert.Equal(t, "TEST-APP:token", gotAuth)
	assert.Equal(t, "NSE:RELIANCE-EQ", p.Symbol)
	assert.InDelta(t, 2485.50, p.LastPrice, 1e-9)
	assert.InDelta(t, 2501.25, p.PrevClose, 1e-9)
	assert.EqualValues(t, 1767000000, p.LastTradeTime)
}

func TestQuote_AuthExpired(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})
		_, err := c.Quote(context.Background(), "NSE:RELIANCE-EQ")
		require.Error(t, err)
		assert.Equal(t, provider.KindAuthExpired, provider.KindOf(err), "status %d", status)
	}
}

func TestQuote_RateLimited(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	_, err := c.Quote(context.Background(), "NSE:RELIANCE-EQ")
	require.Error(t, err)
	assert.Equal(t, provider.KindRateLimited, provider.KindOf(err))
}

func TestQuote_ServerErrorIsUnavailable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	})
	_, err := c.Quote(context.Background(), "NSE:RELIANCE-EQ")
	require.Error(t, err)
	assert.Equal(t, provider.KindUnavailable, provider.KindOf(err))
}

func TestQuote_TimeoutIsUnavailable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.Quote(ctx, "NSE:RELIANCE-EQ")
	require.Error(t, err)
	assert.Equal(t, provider.KindUnavailable, provider.KindOf(err))
}

func TestQuote_SymbolError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"s": "ok", "d": [{"n": "NSE:BOGUS-EQ", "s": "error"}]}`))
	})
	_, err := c.Quote(context.Background(), "NSE:BOGUS-EQ")
	require.Error(t, err)
	assert.Equal(t, provider.KindSymbolNotFound, provider.KindOf(err))
}

func TestQuote_EmptyData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"s": "ok", "d": []}`))
	})
	_, err := c.Quote(context.Background(), "NSE:RELIANCE-EQ")
	require.Error(t, err)
	assert.Equal(t, provider.KindSymbolNotFound, provider.KindOf(err))
}

func TestQuote_MalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})
	_, err := c.Quote(context.Background(), "NSE:RELIANCE-EQ")
	require.Error(t, err)
	assert.Equal(t, provider.KindMalformedPayload, provider.KindOf(err))
}

func TestConfigured(t *testing.T) {
	hc := httpx.New(time.Second, "")
	assert.False(t, New(Config{}, hc).Configured())
	assert.True(t, New(Config{AccessToken: "x"}, hc).Configured())
}
