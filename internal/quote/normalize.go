package quote

import (
	"time"

	"quotehub/internal/model"
	"quotehub/internal/provider"
	"quotehub/internal/provider/fyers"
	"quotehub/internal/provider/yahoo"
)

// Payload is a tagged provider response. Exactly one payload pointer is set,
// matching Source; the normalizer dispatches on the tag, never on shape.
type Payload struct {
	Source model.Source
	Fyers  *fyers.QuotePayload
	Yahoo  *yahoo.QuotePayload
}

func FromFyers(p *fyers.QuotePayload) Payload {
	return Payload{Source: model.SourceFyers, Fyers: p}
}

func FromYahoo(p *yahoo.QuotePayload) Payload {
	return Payload{Source: model.SourceYahoo, Yahoo: p}
}

// Normalize converts a tagged provider payload into the shared Quote shape.
// Price and timestamp are required; a payload missing either is classified
// malformed, which the orchestrator treats like any other provider failure.
func Normalize(ticker string, p Payload) (*model.Quote, error) {
	var (
		price, prevClose, volume float64
		ts                       int64
	)
	switch p.Source {
	case model.SourceFyers:
		if p.Fyers == nil {
			return nil, provider.Errorf(provider.KindMalformedPayload, string(p.Source), "payload tag/value mismatch")
		}
		price = p.Fyers.LastPrice
		prevClose = p.Fyers.PrevClose
		volume = p.Fyers.Volume
		ts = p.Fyers.LastTradeTime
	case model.SourceYahoo:
		if p.Yahoo == nil {
			return nil, provider.Errorf(provider.KindMalformedPayload, string(p.Source), "payload tag/value mismatch")
		}
		price = p.Yahoo.Price
		prevClose = p.Yahoo.PrevClose
		volume = p.Yahoo.Volume
		ts = p.Yahoo.Timestamp
	default:
		return nil, provider.Errorf(provider.KindMalformedPayload, "", "unknown source %q", p.Source)
	}

	if price == 0 {
		return nil, provider.Errorf(provider.KindMalformedPayload, string(p.Source), "missing price for %s", ticker)
	}
	if ts == 0 {
		return nil, provider.Errorf(provider.KindMalformedPayload, string(p.Source), "missing timestamp for %s", ticker)
	}

	q := &model.Quote{
		Ticker:    ticker,
		Price:     price,
		Volume:    volume,
		Timestamp: time.Unix(ts, 0).UTC(),
		Source:    p.Source,
	}
	// change and percent change stay nil on a zero previous close; a real
	// flat day still carries pointers to 0, never a division by zero
	if prevClose != 0 {
		chg := price - prevClose
		pct := chg / prevClose * 100
		q.Change = &chg
		q.PercentChange = &pct
	}
	return q, nil
}
