// internal/solver/entropy.go
//
// Response-entropy strategy: for each candidate, simulate the feedback it
// would produce against every other candidate, tally the distinct feedback
// patterns, and score the candidate by the Shannon entropy of that
// distribution. Words whose feedback splits the remaining candidates most
// evenly rank highest.
//
// The computation is O(n²) in candidate-set size. Per-word entropies are
// independent over read-only input, so they are fanned out across an
// errgroup worker pool and joined before ranking. Full-list scores are
// computed once at construction and never mutated, so the strategy can be
// reused across games; a candidate set that has shrunk enough that the
// quadratic pass is cheap gets fresh scores computed against itself.

package solver

import (
	"math"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/arunkv/wordle-solver/internal/game"
)

// recomputeThreshold is the candidate-set size at or below which entropies
// are recomputed against the shrunk set instead of reusing full-list scores.
const recomputeThreshold = 256

// EntropyOptions tune the entropy strategy.
type EntropyOptions struct {
	// Workers bounds the worker pool; 0 means GOMAXPROCS.
	Workers int
	// Quiet suppresses the precomputation progress bar.
	Quiet bool
}

// Entropy ranks candidates by the entropy of their feedback distribution.
// The full-list scores are immutable after construction; the strategy is
// safe to reuse across games and goroutines.
type Entropy struct {
	full    map[string]float64
	fullLen int
	memo    *game.Memo
	workers int
	quiet   bool
}

// NewEntropy precomputes entropies over the full word list.
func NewEntropy(words []string, opts EntropyOptions) (*Entropy, error) {
	if _, err := validateWords(words); err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	e := &Entropy{
		memo:    game.NewMemo(),
		workers: workers,
		quiet:   opts.Quiet,
	}
	e.full = e.compute(words)
	e.fullLen = len(words)
	return e, nil
}

// Rank returns the candidates ordered by descending entropy. A candidate set
// that has shrunk below the recompute threshold is scored against itself;
// the precomputed full-list scores are left untouched, so ranking the full
// list again after a game yields the same order as before it.
func (e *Entropy) Rank(words []string) []Score {
	scores := e.full
	if len(words) < e.fullLen && len(words) <= recomputeThreshold {
		scores = e.compute(words)
	}
	out := make([]Score, 0, len(words))
	for _, w := range words {
		out = append(out, Score{Word: w, Value: scores[w]})
	}
	sortScores(out)
	return out
}

// Guess returns the top-ranked candidate.
func (e *Entropy) Guess(words []string) string {
	return e.Rank(words)[0].Word
}

// compute fans the per-word entropy computation out across the worker pool.
// Workers share only the read-only word list; each writes a distinct slot.
func (e *Entropy) compute(words []string) map[string]float64 {
	start := time.Now()
	values := make([]float64, len(words))

	var bar *progressbar.ProgressBar
	if !e.quiet && len(words) > recomputeThreshold {
		bar = progressbar.Default(int64(len(words)))
	}

	var g errgroup.Group
	g.SetLimit(e.workers)
	for i := range words {
		i := i
		g.Go(func() error {
			values[i] = e.entropyOf(words[i], words)
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; the join is the barrier

	scores := make(map[string]float64, len(words))
	for i, w := range words {
		scores[w] = values[i]
	}
	log.Debug().
		Int("words", len(words)).
		Int("workers", e.workers).
		Dur("elapsed", time.Since(start)).
		Msg("entropy precomputation done")
	return scores
}

// entropyOf computes the Shannon entropy −Σ p·log2(p) of the feedback
// pattern distribution produced by guessing w against every other candidate.
func (e *Entropy) entropyOf(w string, words []string) float64 {
	patterns := make(map[string]int, len(words))
	total := 0
	for _, other := range words {
		if other == w {
			continue
		}
		patterns[e.memo.Evaluate(other, w).String()]++
		total++
	}
	if total == 0 {
		return 0
	}
	var h float64
	n := float64(total)
	for _, count := range patterns {
		p := float64(count) / n
		h -= p * math.Log2(p)
	}
	return h
}
