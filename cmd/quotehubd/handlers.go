package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"quotehub/internal/provider"
	"quotehub/internal/quote"
	"quotehub/internal/symbols"
)

// fetcher is the slice of quote.Service the handlers need.
type fetcher interface {
	Fetch(ctx context.Context, ticker string, opts quote.Options) (*quote.Result, error)
	Table() *symbols.Table
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func newMux(svc fetcher) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/api/v1/quote", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		handleQuote(w, r, svc)
	})
	mux.HandleFunc("/api/v1/symbols", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"tickers": svc.Table().Tickers()})
	})
	return mux
}

func handleQuote(w http.ResponseWriter, r *http.Request, svc fetcher) {
	ticker := strings.TrimSpace(r.URL.Query().Get("ticker"))
	if ticker == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing ticker query param"})
		return
	}

	opts := quote.Options{
		Period: r.URL.Query().Get("period"),
	}
	switch r.URL.Query().Get("indicators") {
	case "1", "true", "yes":
		opts.Indicators = true
	}

	res, err := svc.Fetch(r.Context(), ticker, opts)
	if err != nil {
		writeFetchError(w, ticker, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// writeFetchError maps the subsystem's error taxonomy to HTTP statuses. The
// consumer gets a clear "data unavailable" message, never a stack trace or a
// zeroed quote dressed up as real data.
func writeFetchError(w http.ResponseWriter, ticker string, err error) {
	var both *provider.BothFailedError
	switch {
	case provider.KindOf(err) == provider.KindUnmappedSymbol:
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error: "unsupported instrument: " + strings.ToUpper(ticker),
			Kind:  provider.KindUnmappedSymbol.String(),
		})
	case errors.As(err, &both):
		log.Printf("[ERROR] fetch %s: %v", ticker, err)
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error: "data unavailable for " + strings.ToUpper(ticker),
			Kind:  provider.KindOf(both.Fallback).String(),
		})
	default:
		log.Printf("[ERROR] fetch %s: %v", ticker, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}
