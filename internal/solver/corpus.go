// internal/solver/corpus.go
//
// Corpus-frequency strategy: scores a word by its normalized frequency of
// occurrence among same-length words in a natural-language corpus,
// independent of the current candidate set's letter statistics. Candidates
// absent from the corpus score zero.

package solver

// CorpusFrequency ranks candidates by external corpus word frequency.
type CorpusFrequency struct {
	freq map[string]float64
}

// NewCorpusFrequency builds normalized frequencies from raw occurrence
// counts. Only corpus entries matching the word list's length contribute to
// the normalization mass.
func NewCorpusFrequency(words []string, counts map[string]int) (*CorpusFrequency, error) {
	length, err := validateWords(words)
	if err != nil {
		return nil, err
	}
	var total int
	for w, n := range counts {
		if len(w) == length {
			total += n
		}
	}
	freq := make(map[string]float64, len(counts))
	if total > 0 {
		for w, n := range counts {
			if len(w) == length {
				freq[w] = float64(n) / float64(total)
			}
		}
	}
	return &CorpusFrequency{freq: freq}, nil
}

// Rank returns the candidates ordered by descending corpus frequency.
// Words missing from the corpus fall back to zero and sort last.
func (c *CorpusFrequency) Rank(words []string) []Score {
	scores := make([]Score, 0, len(words))
	for _, w := range words {
		scores = append(scores, Score{Word: w, Value: c.freq[w]})
	}
	sortScores(scores)
	return scores
}

// Guess returns the top-ranked candidate.
func (c *CorpusFrequency) Guess(words []string) string {
	return c.Rank(words)[0].Word
}
