package indicator

import (
	"math"

	"quotehub/internal/model"
)

const (
	// SMAWindow is the simple moving average lookback in trading days.
	SMAWindow = 20
	// RSIPeriod is the Wilder RSI lookback.
	RSIPeriod = 14
	// MomentumWindow is the lookback for the momentum oscillator.
	MomentumWindow = 20
	// TradingDaysPerYear annualizes daily-return volatility.
	TradingDaysPerYear = 252
)

// Compute derives an IndicatorSet from a historical series. Indicators whose
// window exceeds the series length stay nil; Compute never fails, it only
// omits. A value is never computed on a truncated window.
func Compute(series model.Series) model.IndicatorSet {
	closes := extractCloses(series.Bars)
	out := model.IndicatorSet{Bars: len(closes)}

	if v, ok := sma(closes, SMAWindow); ok {
		out.SMA20 = &v
	}
	if v, ok := rsi(closes, RSIPeriod); ok {
		out.RSI14 = &v
	}
	if v, ok := momentum(closes, MomentumWindow); ok {
		out.Momentum = &v
	}
	if v, ok := volatility(closes); ok {
		out.Volatility = &v
	}
	return out
}

func extractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

// sma computes the simple moving average over the trailing period.
func sma(closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period {
		return 0, false
	}
	sum := 0.0
	for i := len(closes) - period; i < len(closes); i++ {
		sum += closes[i]
	}
	return sum / float64(period), true
}

// rsi computes the Wilder-smoothed RSI. Requires at least period+1 closes.
func rsi(closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period+1 {
		return 0, false
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	if avgLoss == 0 {
		return 100.0, true
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs), true
}

// momentum is the percent change of the close over the trailing window.
// Requires window+1 closes and a non-zero starting close.
func momentum(closes []float64, window int) (float64, bool) {
	if window <= 0 || len(closes) < window+1 {
		return 0, false
	}
	base := closes[len(closes)-1-window]
	if base == 0 {
		return 0, false
	}
	return (closes[len(closes)-1] - base) / base * 100, true
}

// volatility is the standard deviation of daily returns annualized by √252.
// Needs at least two closes (one return).
func volatility(closes []float64) (float64, bool) {
	if len(closes) < 2 {
		return 0, false
	}
	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		returns = append(returns, closes[i]/closes[i-1]-1)
	}
	if len(returns) == 0 {
		return 0, false
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(returns))

	return math.Sqrt(variance) * math.Sqrt(TradingDaysPerYear), true
}
