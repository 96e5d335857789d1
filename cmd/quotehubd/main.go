package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quotehub/internal/config"
	"quotehub/internal/httpx"
	"quotehub/internal/provider/fyers"
	"quotehub/internal/provider/yahoo"
	"quotehub/internal/quote"
	"quotehub/internal/recorder"
	"quotehub/internal/scheduler"
	"quotehub/internal/symbols"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] quotehubd starting...")

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	table, err := symbols.Load(cfg.SymbolsFile)
	if err != nil {
		log.Fatalf("[FATAL] load symbol table: %v", err)
	}
	log.Printf("[INFO] symbol universe loaded: %d instruments", table.Len())

	timeout := time.Duration(cfg.Fetch.TimeoutSec) * time.Second
	hc := httpx.New(timeout, cfg.Proxy)

	primary := fyers.New(fyers.Config{
		BaseURL:     cfg.Primary.BaseURL,
		AppID:       cfg.Primary.AppID,
		AccessToken: cfg.Primary.AccessToken,
	}, hc)
	if primary.Configured() {
		log.Println("[INFO] primary provider: fyers")
	} else {
		log.Println("[INFO] primary credentials absent, fallback-only mode")
	}
	fallback := yahoo.New(hc)

	svc := quote.NewService(table, primary, fallback, timeout)

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if len(cfg.Watchlist.Tickers) > 0 {
		ref := scheduler.NewRefresher(ctx, svc, rec, cfg.Watchlist.Tickers)
		if err := ref.Register(cfg.Watchlist.Cron); err != nil {
			log.Fatalf("[FATAL] register refresher: %v", err)
		}
		ref.Start()
		defer ref.Stop()
		if os.Getenv("RUN_ON_START") == "true" {
			log.Println("[INFO] RUN_ON_START enabled, refreshing watchlist now")
			go ref.RunNow()
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           newMux(svc),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		log.Printf("[INFO] listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[FATAL] server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARN] server shutdown: %v", err)
	}
	log.Println("[INFO] quotehubd stopped")
}
