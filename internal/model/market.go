package model

import "time"

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Series is an ordered run of daily bars for one instrument, oldest first,
// with strictly increasing dates. It is held in memory only for the duration
// of indicator calculation.
type Series struct {
	Ticker    string
	Bars      []OHLCV
	Source    Source
	FetchedAt time.Time
}
