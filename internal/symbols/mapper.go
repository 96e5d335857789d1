package symbols

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"quotehub/internal/model"
	"quotehub/internal/provider"
)

// Table is the read-only mapping from canonical tickers to provider symbols.
// It is built once at startup and safe for concurrent reads.
type Table struct {
	byTicker map[string]model.Instrument
}

type mappingFile struct {
	Instruments []model.Instrument `yaml:"instruments"`
}

// Load reads a YAML mapping file. An empty path yields the built-in universe.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read symbol table: %w", err)
	}
	var f mappingFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse symbol table: %w", err)
	}
	return New(f.Instruments)
}

// New validates the instrument list and builds a Table.
func New(instruments []model.Instrument) (*Table, error) {
	if len(instruments) == 0 {
		return nil, fmt.Errorf("symbol table is empty")
	}
	byTicker := make(map[string]model.Instrument, len(instruments))
	for _, in := range instruments {
		ticker := strings.ToUpper(strings.TrimSpace(in.Ticker))
		if ticker == "" {
			return nil, fmt.Errorf("instrument with empty ticker")
		}
		if in.FallbackSymbol == "" {
			return nil, fmt.Errorf("instrument %s: fallback symbol is required", ticker)
		}
		if _, dup := byTicker[ticker]; dup {
			return nil, fmt.Errorf("duplicate ticker %s", ticker)
		}
		in.Ticker = ticker
		byTicker[ticker] = in
	}
	return &Table{byTicker: byTicker}, nil
}

// Default returns the built-in instrument universe.
func Default() *Table {
	t, err := New(defaultInstruments())
	if err != nil {
		// the built-in table is validated by tests; this is unreachable
		panic(err)
	}
	return t
}

// Resolve looks up the canonical ticker, case-insensitively but exactly.
// Unknown or empty tickers fail before any network call.
func (t *Table) Resolve(ticker string) (model.Instrument, error) {
	key := strings.ToUpper(strings.TrimSpace(ticker))
	if key == "" {
		return model.Instrument{}, provider.Errorf(provider.KindUnmappedSymbol, "", "empty ticker")
	}
	in, ok := t.byTicker[key]
	if !ok {
		return model.Instrument{}, provider.Errorf(provider.KindUnmappedSymbol, "", "ticker %s is not in the supported universe", key)
	}
	return in, nil
}

// Tickers returns the supported universe in sorted order.
func (t *Table) Tickers() []string {
	out := make([]string, 0, len(t.byTicker))
	for k := range t.byTicker {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Len reports the universe size.
func (t *Table) Len() int { return len(t.byTicker) }
