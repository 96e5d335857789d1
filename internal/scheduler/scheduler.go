package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"quotehub/internal/provider"
	"quotehub/internal/quote"
	"quotehub/internal/recorder"
)

// Refresher periodically fetches every ticker on the watchlist and records
// the snapshots, so the database carries a history even when no consumer is
// asking. Each tick fetches tickers sequentially; a failure for one ticker
// never stops the rest.
type Refresher struct {
	Cron     *cron.Cron
	Service  *quote.Service
	Recorder recorder.Recorder
	Watch    []string
	Ctx      context.Context
}

// NewRefresher creates a Refresher over the given watchlist.
func NewRefresher(ctx context.Context, svc *quote.Service, rec recorder.Recorder, watch []string) *Refresher {
	return &Refresher{
		Cron:     cron.New(cron.WithSeconds()),
		Service:  svc,
		Recorder: rec,
		Watch:    watch,
		Ctx:      ctx,
	}
}

// Register schedules the refresh task with the given cron expression.
func (r *Refresher) Register(cronSpec string) error {
	if _, err := r.Cron.AddFunc(cronSpec, r.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (r *Refresher) Start() {
	r.Cron.Start()
	log.Println("[INFO] watchlist refresher started")
}

// Stop stops the cron scheduler gracefully.
func (r *Refresher) Stop() {
	r.Cron.Stop()
	log.Println("[INFO] watchlist refresher stopped")
}

// RunNow executes the refresh task immediately (manual trigger / RUN_ON_START).
func (r *Refresher) RunNow() {
	r.refreshTask()
}

func (r *Refresher) refreshTask() {
	if len(r.Watch) == 0 {
		return
	}
	log.Printf("[INFO] refreshing %d watched tickers", len(r.Watch))
	for _, ticker := range r.Watch {
		if r.Ctx.Err() != nil {
			return
		}
		res, err := r.Service.Fetch(r.Ctx, ticker, quote.Options{})
		if err != nil {
			log.Printf("[WARN] refresh %s: %v", ticker, err)
			if rerr := r.Recorder.RecordFailure(&recorder.FetchFailure{
				Ticker: ticker,
				Kind:   provider.KindOf(err).String(),
				Detail: err.Error(),
			}); rerr != nil {
				log.Printf("[ERROR] record failure for %s: %v", ticker, rerr)
			}
			continue
		}
		if err := r.Recorder.RecordQuote(res.Quote); err != nil {
			log.Printf("[ERROR] record quote for %s: %v", ticker, err)
		}
	}
}
