// internal/solver/position.go
//
// Position-probability strategy: scores a word by the sum of its letters'
// empirical frequencies at their respective positions in the initial
// candidate set. Favors words made of statistically common letters in
// common positions.

package solver

import (
	"github.com/arunkv/wordle-solver/internal/game"
)

// PositionProbability ranks candidates by per-position letter probability.
type PositionProbability struct {
	// probs[i][c] is the probability of letter c at position i across the
	// word list the strategy was built from.
	probs [][game.AlphabetSize]float64
}

// NewPositionProbability builds the per-position letter probabilities from
// the full word list.
func NewPositionProbability(words []string) (*PositionProbability, error) {
	length, err := validateWords(words)
	if err != nil {
		return nil, err
	}
	probs := make([][game.AlphabetSize]float64, length)
	for _, w := range words {
		for i := 0; i < length; i++ {
			probs[i][w[i]-'a']++
		}
	}
	n := float64(len(words))
	for i := range probs {
		for c := range probs[i] {
			probs[i][c] /= n
		}
	}
	return &PositionProbability{probs: probs}, nil
}

// Rank returns the candidates ordered by descending positional score.
func (p *PositionProbability) Rank(words []string) []Score {
	scores := make([]Score, 0, len(words))
	for _, w := range words {
		scores = append(scores, Score{Word: w, Value: p.score(w)})
	}
	sortScores(scores)
	return scores
}

// Guess returns the top-ranked candidate.
func (p *PositionProbability) Guess(words []string) string {
	return p.Rank(words)[0].Word
}

func (p *PositionProbability) score(w string) float64 {
	var sum float64
	for i := 0; i < len(w) && i < len(p.probs); i++ {
		sum += p.probs[i][w[i]-'a']
	}
	return sum
}
