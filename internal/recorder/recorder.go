package recorder

import (
	"time"

	"quotehub/internal/model"
)

// FetchFailure records a fetch that ended in a terminal error.
type FetchFailure struct {
	Ticker string
	Kind   string // classified failure kind
	Detail string
	At     time.Time
}

// Recorder persists fetched quotes and terminal failures for audit and
// history. It sits outside the request path's success criteria: recording
// errors are logged by callers, never surfaced to the consumer.
type Recorder interface {
	RecordQuote(q *model.Quote) error
	RecordFailure(f *FetchFailure) error
	Close() error
}
