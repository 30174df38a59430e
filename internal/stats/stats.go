// internal/stats/stats.go
//
// Statistics sink interfaces and the aggregate report shape.
// Implementations may be backed by SQLite (this package) or discarded
// entirely (Nop) for quiet runs and tests.

package stats

import (
	"context"

	"github.com/arunkv/wordle-solver/internal/play"
)

// Summary aggregates recorded game outcomes.
type Summary struct {
	Played       int            `json:"played"`
	Solved       int            `json:"solved"`
	AverageTries float64        `json:"averageTries"`
	Tries        map[string]int `json:"tries"`  // solved word → tries
	Failed       []string       `json:"failed"` // deduplicated failed targets
}

// Recorder persists game outcomes and reports aggregates.
type Recorder interface {
	play.StatsSink
	Summary(ctx context.Context) (Summary, error)
	Close() error
}

// Nop discards outcomes. Useful when persistence is switched off.
type Nop struct{}

// Record discards the outcome.
func (Nop) Record(context.Context, play.Outcome) error { return nil }

// Summary returns an empty report.
func (Nop) Summary(context.Context) (Summary, error) { return Summary{}, nil }

// Close is a no-op.
func (Nop) Close() error { return nil }
