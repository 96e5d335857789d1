package model

// Instrument is a logical tradable entity from the fixed mapping universe.
// The mapping table is loaded once at startup and never changes at runtime.
type Instrument struct {
	Ticker         string `yaml:"ticker" json:"ticker"`                     // canonical, stored upper-case
	PrimarySymbol  string `yaml:"primary" json:"primary_symbol,omitempty"`  // e.g. NSE:RELIANCE-EQ; empty when the primary provider has no mapping
	FallbackSymbol string `yaml:"fallback" json:"fallback_symbol"`          // e.g. RELIANCE.NS
	Sector         string `yaml:"sector,omitempty" json:"sector,omitempty"`
}

// HasPrimary reports whether the instrument can be fetched from the primary
// provider at all.
func (in Instrument) HasPrimary() bool { return in.PrimarySymbol != "" }
