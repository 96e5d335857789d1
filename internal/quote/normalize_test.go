package quote

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotehub/internal/model"
	"quotehub/internal/provider"
	"quotehub/internal/provider/fyers"
	"quotehub/internal/provider/yahoo"
)

func TestNormalize_FyersPayload(t *testing.T) {
	p := &fyers.QuotePayload{
		Symbol:        "NSE:RELIANCE-EQ",
		LastPrice:     2485.50,
		PrevClose:     2501.25,
		Volume:        1200000,
		LastTradeTime: 1767000000,
	}
	q, err := Normalize("RELIANCE", FromFyers(p))
	require.NoError(t, err)

	assert.Equal(t, "RELIANCE", q.Ticker)
	assert.Equal(t, model.SourceFyers, q.Source)
	assert.InDelta(t, 2485.50, q.Price, 1e-9)
	require.NotNil(t, q.Change)
	assert.InDelta(t, -15.75, *q.Change, 1e-9)
	require.NotNil(t, q.PercentChange)
	assert.InDelta(t, -0.6297, *q.PercentChange, 1e-3)
	assert.Equal(t, time.Unix(1767000000, 0).UTC(), q.Timestamp)
}

func TestNormalize_YahooPayload(t *testing.T) {
	p := &yahoo.QuotePayload{
		Symbol:    "RELIANCE.NS",
		Price:     2486.00,
		PrevClose: 2501.25,
		Volume:    900000,
		Timestamp: 1767000300,
	}
	q, err := Normalize("RELIANCE", FromYahoo(p))
	require.NoError(t, err)

	assert.Equal(t, model.SourceYahoo, q.Source)
	assert.InDelta(t, 2486.00, q.Price, 1e-9)
	require.NotNil(t, q.PercentChange)
}

func TestNormalize_ZeroPrevCloseGivesNilChangeFields(t *testing.T) {
	p := &yahoo.QuotePayload{Price: 10, PrevClose: 0, Timestamp: 1767000000}
	q, err := Normalize("NIFTY50", FromYahoo(p))
	require.NoError(t, err)

	assert.Nil(t, q.PercentChange, "division by zero must yield nil, not Inf")
	assert.Nil(t, q.Change, "unknown change is nil, distinct from a flat day's 0")
}

func TestNormalize_FlatDayCarriesZeroNotNil(t *testing.T) {
	p := &yahoo.QuotePayload{Price: 100, PrevClose: 100, Timestamp: 1767000000}
	q, err := Normalize("RELIANCE", FromYahoo(p))
	require.NoError(t, err)

	require.NotNil(t, q.Change)
	assert.Zero(t, *q.Change)
	require.NotNil(t, q.PercentChange)
	assert.Zero(t, *q.PercentChange)
}

func TestNormalize_MissingPriceIsMalformed(t *testing.T) {
	p := &fyers.QuotePayload{PrevClose: 2501.25, LastTradeTime: 1767000000}
	_, err := Normalize("RELIANCE", FromFyers(p))
	require.Error(t, err)
	assert.Equal(t, provider.KindMalformedPayload, provider.KindOf(err))
}

func TestNormalize_MissingTimestampIsMalformed(t *testing.T) {
	p := &yahoo.QuotePayload{Price: 2486.00, PrevClose: 2501.25}
	_, err := Normalize("RELIANCE", FromYahoo(p))
	require.Error(t, err)
	assert.Equal(t, provider.KindMalformedPayload, provider.KindOf(err))
}

func TestNormalize_TagValueMismatch(t *testing.T) {
	_, err := Normalize("RELIANCE", Payload{Source: model.SourceFyers})
	require.Error(t, err)
	assert.Equal(t, provider.KindMalformedPayload, provider.KindOf(err))

	_, err = Normalize("RELIANCE", Payload{Source: "unknown"})
	require.Error(t, err)
	assert.Equal(t, provider.KindMalformedPayload, provider.KindOf(err))
}
