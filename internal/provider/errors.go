package provider

import (
	"errors"
	"fmt"
)

// Kind classifies a fetch failure so the orchestrator can decide whether to
// fall back or surface the error.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnmappedSymbol
	KindAuthExpired
	KindRateLimited
	KindUnavailable
	KindSymbolNotFound
	KindMalformedPayload
)

func (k Kind) String() string {
	switch k {
	case KindUnmappedSymbol:
		return "unmapped_symbol"
	case KindAuthExpired:
		return "auth_expired"
	case KindRateLimited:
		return "rate_limited"
	case KindUnavailable:
		return "provider_unavailable"
	case KindSymbolNotFound:
		return "symbol_not_found"
	case KindMalformedPayload:
		return "malformed_payload"
	default:
		return "unknown"
	}
}

// Error is a classified failure from the mapping or provider layer.
type Error struct {
	Kind     Kind
	Provider string // "fyers", "yahoo"; empty for failures before any network call
	Err      error
}

func (e *Error) Error() string {
	if e.Provider == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds a classified Error wrapping a formatted cause.
func Errorf(kind Kind, providerName, format string, args ...any) *Error {
	return &Error{Kind: kind, Provider: providerName, Err: fmt.Errorf(format, args...)}
}

// Wrap classifies an existing error without reformatting it.
func Wrap(kind Kind, providerName string, err error) *Error {
	return &Error{Kind: kind, Provider: providerName, Err: err}
}

// KindOf extracts the classification from err, or KindUnknown if err carries
// no *Error anywhere in its chain.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnknown
}

// BothFailedError is the terminal failure after the primary and the fallback
// provider were both attempted (or the primary was skipped) without success.
// It keeps both causes for diagnostics.
type BothFailedError struct {
	Ticker   string
	Primary  error // nil when the primary was skipped entirely
	Fallback error
}

func (e *BothFailedError) Error() string {
	if e.Primary == nil {
		return fmt.Sprintf("%s: primary skipped; fallback failed: %v", e.Ticker, e.Fallback)
	}
	return fmt.Sprintf("%s: primary failed: %v; fallback failed: %v", e.Ticker, e.Primary, e.Fallback)
}

func (e *BothFailedError) Unwrap() error { return e.Fallback }
