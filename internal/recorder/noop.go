package recorder

import "quotehub/internal/model"

// NoopRecorder is used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordQuote(_ *model.Quote) error    { return nil }
func (n *NoopRecorder) RecordFailure(_ *FetchFailure) error { return nil }
func (n *NoopRecorder) Close() error                        { return nil }
