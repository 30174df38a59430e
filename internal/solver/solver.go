// internal/solver/solver.go
//
// Strategy selection for the solver.
// Defines:
//   - Score: a ranked (word, score) pair.
//   - Strategy: the single capability all solvers implement.
//   - Kind: the closed set of strategy variants, selected once at setup.
//
// Strategies are constructed from the full initial word list and are
// read-only afterwards (the entropy strategy may recompute on a shrunk set).

package solver

import (
	"errors"
	"fmt"
	"sort"
)

// Score pairs a candidate word with its strategy-assigned score.
type Score struct {
	Word  string  `json:"word"`
	Value float64 `json:"score"`
}

// Strategy ranks a candidate set and selects the next guess.
type Strategy interface {
	// Rank returns the candidates ordered by descending score.
	Rank(words []string) []Score
	// Guess returns the top-ranked candidate.
	Guess(words []string) string
}

// Kind enumerates the available strategy variants.
type Kind int

const (
	// KindPosition scores words by per-position letter frequency within the
	// candidate set.
	KindPosition Kind = iota
	// KindCorpus scores words by their frequency in a natural-language corpus.
	KindCorpus
	// KindEntropy scores words by the Shannon entropy of their feedback
	// distribution against the candidate set.
	KindEntropy
)

// String returns the flag-facing name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPosition:
		return "position"
	case KindCorpus:
		return "word"
	case KindEntropy:
		return "entropy"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a configuration value to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "position":
		return KindPosition, nil
	case "word":
		return KindCorpus, nil
	case "entropy":
		return KindEntropy, nil
	}
	return 0, fmt.Errorf("unknown solver %q (want position, word, or entropy)", s)
}

// ErrNoWords is returned when a strategy is constructed on an empty word list.
var ErrNoWords = errors.New("solver: word list is empty")

// validateWords rejects empty or length-inconsistent word lists up front;
// strategies index by position and need one uniform length to establish it.
func validateWords(words []string) (int, error) {
	if len(words) == 0 {
		return 0, ErrNoWords
	}
	length := len(words[0])
	for _, w := range words {
		if len(w) != length {
			return 0, fmt.Errorf("solver: word %q has length %d, want %d", w, len(w), length)
		}
	}
	return length, nil
}

// sortScores orders scores by descending value, breaking ties by word so
// repeated rankings of an unchanged candidate set are deterministic.
func sortScores(scores []Score) {
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Value == scores[j].Value {
			return scores[i].Word < scores[j].Word
		}
		return scores[i].Value > scores[j].Value
	})
}
