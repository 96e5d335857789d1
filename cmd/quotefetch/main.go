// quotefetch fetches one quote (and optionally indicators) and prints JSON.
//
//	quotefetch -ticker RELIANCE -indicators -period 1y
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"quotehub/internal/config"
	"quotehub/internal/httpx"
	"quotehub/internal/provider/fyers"
	"quotehub/internal/provider/yahoo"
	"quotehub/internal/quote"
	"quotehub/internal/symbols"
)

func main() {
	var (
		ticker     = flag.String("ticker", "", "canonical ticker, e.g. RELIANCE")
		indicators = flag.Bool("indicators", false, "compute technical indicators")
		period     = flag.String("period", "", "history lookback for indicators, e.g. 1y")
		cfgPath    = flag.String("config", "", "config file path")
	)
	flag.Parse()
	if *ticker == "" {
		fmt.Fprintln(os.Stderr, "usage: quotefetch -ticker TICKER [-indicators] [-period 1y]")
		os.Exit(2)
	}

	path := *cfgPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}

	table, err := symbols.Load(cfg.SymbolsFile)
	if err != nil {
		log.Fatalf("[FATAL] load symbol table: %v", err)
	}

	timeout := time.Duration(cfg.Fetch.TimeoutSec) * time.Second
	hc := httpx.New(timeout, cfg.Proxy)
	primary := fyers.New(fyers.Config{
		BaseURL:     cfg.Primary.BaseURL,
		AppID:       cfg.Primary.AppID,
		AccessToken: cfg.Primary.AccessToken,
	}, hc)
	svc := quote.NewService(table, primary, yahoo.New(hc), timeout)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := svc.Fetch(ctx, *ticker, quote.Options{Indicators: *indicators, Period: *period})
	if err != nil {
		log.Fatalf("[FATAL] fetch %s: %v", *ticker, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		log.Fatalf("[FATAL] encode: %v", err)
	}
}
