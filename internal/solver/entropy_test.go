package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntropy(t *testing.T, words []string) *Entropy {
	t.Helper()
	e, err := NewEntropy(words, EntropyOptions{Quiet: true})
	require.NoError(t, err)
	return e
}

func TestEntropyPrefersDiscriminatingWords(t *testing.T) {
	// "zzzzz" produces the same feedback against every other word, carrying
	// no information. The others split the set into distinct patterns.
	words := []string{"abcde", "abcdf", "abcdg", "zzzzz"}
	e := newEntropy(t, words)

	ranked := e.Rank(words)
	assert.Equal(t, "zzzzz", ranked[len(ranked)-1].Word,
		"word with uniform feedback distribution ranks last")
	assert.Greater(t, ranked[0].Value, ranked[len(ranked)-1].Value)
}

func TestEntropyDeterministic(t *testing.T) {
	words := []string{"slate", "crony", "pious", "dully", "arrow", "stale"}
	e := newEntropy(t, words)
	first := e.Guess(words)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Guess(words))
	}
}

func TestEntropySerialMatchesParallel(t *testing.T) {
	words := []string{"slate", "crony", "pious", "dully", "arrow", "stale", "least", "tales"}
	serial, err := NewEntropy(words, EntropyOptions{Quiet: true, Workers: 1})
	require.NoError(t, err)
	parallel, err := NewEntropy(words, EntropyOptions{Quiet: true, Workers: 4})
	require.NoError(t, err)

	sr := serial.Rank(words)
	pr := parallel.Rank(words)
	assert.Equal(t, sr, pr)
}

func TestEntropyRecomputesOnShrunkSet(t *testing.T) {
	words := []string{"slate", "crony", "pious", "dully", "arrow", "stale"}
	e := newEntropy(t, words)

	shrunk := []string{"slate", "stale", "least"}
	ranked := e.Rank(shrunk)
	require.Len(t, ranked, 3)
	// Scores reflect the shrunk set: "least" was never in the initial list
	// and can only have a non-zero score after recomputation.
	for _, s := range ranked {
		assert.NotZero(t, s.Value, "score for %q", s.Word)
	}
}

func TestEntropyFullListRankingSurvivesShrunkRank(t *testing.T) {
	// The strategy is constructed once and reused across games; a shrunk-set
	// ranking mid-game must not clobber the full-list scores the next game
	// starts from.
	words := []string{"slate", "crony", "pious", "dully", "arrow", "stale", "least", "tales"}
	e := newEntropy(t, words)

	before := e.Rank(words)
	_ = e.Rank([]string{"slate", "stale", "least"})
	after := e.Rank(words)

	assert.Equal(t, before, after, "full-list ranking unchanged after a shrunk-set rank")
	for _, s := range after {
		assert.NotZero(t, s.Value, "score for %q", s.Word)
	}
}

func TestEntropySingleCandidate(t *testing.T) {
	words := []string{"slate", "crony"}
	e := newEntropy(t, words)
	ranked := e.Rank([]string{"slate"})
	require.Len(t, ranked, 1)
	assert.Equal(t, "slate", ranked[0].Word)
}

func TestEntropyEmptyList(t *testing.T) {
	_, err := NewEntropy(nil, EntropyOptions{Quiet: true})
	assert.ErrorIs(t, err, ErrNoWords)
}
