package quote

import (
	"context"
	"log"
	"time"

	"quotehub/internal/indicator"
	"quotehub/internal/model"
	"quotehub/internal/provider"
	"quotehub/internal/provider/fyers"
	"quotehub/internal/provider/yahoo"
	"quotehub/internal/symbols"
)

// PrimaryClient is the authenticated, rate-limited quote source.
type PrimaryClient interface {
	Name() string
	Configured() bool
	Quote(ctx context.Context, symbol string) (*fyers.QuotePayload, error)
}

// FallbackClient is the free quote and historical-data source.
type FallbackClient interface {
	Name() string
	Quote(ctx context.Context, symbol string) (*yahoo.QuotePayload, error)
	History(ctx context.Context, symbol, period string) ([]model.OHLCV, error)
}

const (
	// DefaultTimeout bounds each provider call. Applied uniformly; a timeout
	// is treated like any other unavailability.
	DefaultTimeout = 5 * time.Second
	// DefaultPeriod is the history lookback when indicators are requested.
	DefaultPeriod = "1y"
)

// Options selects what a fetch should return beyond the live quote.
type Options struct {
	Indicators bool
	Period     string // history lookback, e.g. "1y"; DefaultPeriod when empty
}

// Result is what the consumer gets back: the normalized quote and, when
// requested and computable, the derived indicators.
type Result struct {
	Quote      *model.Quote        `json:"quote"`
	Indicators *model.IndicatorSet `json:"indicators,omitempty"`
}

// Service resolves tickers and orchestrates the primary/fallback fetch.
// All state is injected at construction; the only shared data is the
// read-only symbol table, so concurrent fetches need no synchronization.
type Service struct {
	table    *symbols.Table
	primary  PrimaryClient
	fallback FallbackClient
	timeout  time.Duration
}

// NewService wires the orchestrator. primary may be nil (fallback only);
// timeout <= 0 selects DefaultTimeout.
func NewService(table *symbols.Table, primary PrimaryClient, fallback FallbackClient, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{table: table, primary: primary, fallback: fallback, timeout: timeout}
}

// Table exposes the read-only symbol universe.
func (s *Service) Table() *symbols.Table { return s.table }

// Fetch resolves the canonical ticker, tries the primary provider, falls back
// exactly once on any primary failure, normalizes whichever answered, and
// optionally computes indicators. The primary is skipped entirely when the
// instrument has no primary mapping or no credentials are configured.
func (s *Service) Fetch(ctx context.Context, ticker string, opts Options) (*Result, error) {
	inst, err := s.table.Resolve(ticker)
	if err != nil {
		return nil, err
	}

	var (
		q          *model.Quote
		primaryErr error
	)
	if inst.HasPrimary() && s.primary != nil && s.primary.Configured() {
		q, primaryErr = s.tryPrimary(ctx, inst)
		if primaryErr != nil {
			log.Printf("[WARN] %s: primary %s failed (%s), falling back: %v",
				inst.Ticker, s.primary.Name(), provider.KindOf(primaryErr), primaryErr)
		}
	}

	if q == nil {
		q, err = s.tryFallback(ctx, inst)
		if err != nil {
			return nil, &provider.BothFailedError{Ticker: inst.Ticker, Primary: primaryErr, Fallback: err}
		}
	}

	res := &Result{Quote: q}
	if opts.Indicators {
		series, err := s.History(ctx, inst.Ticker, opts.Period)
		if err != nil {
			// the quote itself is good; indicators degrade to absent
			log.Printf("[WARN] %s: history for indicators failed: %v", inst.Ticker, err)
		} else {
			set := indicator.Compute(series)
			res.Indicators = &set
		}
	}
	return res, nil
}

// History fetches the daily series for a ticker from the fallback provider,
// which is the only one serving historical bars.
func (s *Service) History(ctx context.Context, ticker, period string) (model.Series, error) {
	inst, err := s.table.Resolve(ticker)
	if err != nil {
		return model.Series{}, err
	}
	if period == "" {
		period = DefaultPeriod
	}
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	bars, err := s.fallback.History(cctx, inst.FallbackSymbol, period)
	if err != nil {
		return model.Series{}, err
	}
	return model.Series{
		Ticker:    inst.Ticker,
		Bars:      bars,
		Source:    model.SourceYahoo,
		FetchedAt: time.Now().UTC(),
	}, nil
}

func (s *Service) tryPrimary(ctx context.Context, inst model.Instrument) (*model.Quote, error) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	payload, err := s.primary.Quote(cctx, inst.PrimarySymbol)
	if err != nil {
		return nil, err
	}
	return Normalize(inst.Ticker, FromFyers(payload))
}

func (s *Service) tryFallback(ctx context.Context, inst model.Instrument) (*model.Quote, error) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	payload, err := s.fallback.Quote(cctx, inst.FallbackSymbol)
	if err != nil {
		return nil, err
	}
	return Normalize(inst.Ticker, FromYahoo(payload))
}
