package model

import "time"

// Source identifies which provider produced a piece of market data.
type Source string

const (
	SourceFyers Source = "fyers"
	SourceYahoo Source = "yahoo"
)

// Quote is a point-in-time snapshot for one instrument. Exactly one provider
// answers per fetch; a Quote is built once by the normalizer and never mutated.
type Quote struct {
	Ticker        string    `json:"ticker"`
	Price         float64   `json:"price"`
	Change        *float64  `json:"change"`         // nil when previous close is zero or unknown
	PercentChange *float64  `json:"percent_change"` // nil when previous close is zero or unknown
	Volume        float64   `json:"volume"`
	Timestamp     time.Time `json:"timestamp"`
	Source        Source    `json:"source"`
}
