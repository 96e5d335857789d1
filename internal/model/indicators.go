package model

// IndicatorSet holds technical indicators derived from a historical series.
// Pointer fields are nil when the series was too short for that indicator;
// a short series never yields a value computed on a truncated window.
type IndicatorSet struct {
	SMA20      *float64 `json:"sma20"`
	RSI14      *float64 `json:"rsi14"`
	Momentum   *float64 `json:"momentum"`   // percent change over the momentum window
	Volatility *float64 `json:"volatility"` // annualized stddev of daily returns
	Bars       int      `json:"bars"`       // number of bars the set was computed from
}
