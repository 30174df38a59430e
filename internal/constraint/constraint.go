// internal/constraint/constraint.go
//
// Constraint store for the solver.
// Responsibilities:
//   - Track the per-position feasible-letter sets (the search space).
//   - Track required letters with minimum occurrence counts.
//   - Apply a round of feedback (exact, then partial, then absent).
//   - Filter a candidate list down to words consistent with the store.
//
// Notes:
//   - Required letters are rebuilt from scratch each round. A running union
//     across rounds would overstate a repeated letter's minimum count once
//     its true multiplicity is revealed.
//   - Absent processing must run last: its wider removal depends on whether
//     the same letter received exact/partial marks elsewhere in the round.

package constraint

import (
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/arunkv/wordle-solver/internal/game"
)

// State is the accumulated knowledge after zero or more feedback rounds.
type State struct {
	// space[i] holds the letters (bits 0..25) still feasible at position i.
	space []*bitset.BitSet
	// required maps letter index to the minimum occurrence count confirmed
	// by the most recent round's feedback.
	required [game.AlphabetSize]int
	length   int
}

// NewState returns a virgin state: every letter feasible at every position,
// no required letters.
func NewState(length int) *State {
	s := &State{
		space:  make([]*bitset.BitSet, length),
		length: length,
	}
	for i := range s.space {
		b := bitset.New(game.AlphabetSize)
		for j := uint(0); j < game.AlphabetSize; j++ {
			b.Set(j)
		}
		s.space[i] = b
	}
	return s
}

// Length returns the word length the state was built for.
func (s *State) Length() int { return s.length }

// Apply updates the state from one round of feedback for guess.
// Marks are processed exact first, then partial, then absent.
func (s *State) Apply(guess string, fb game.Feedback) {
	for i := range s.required {
		s.required[i] = 0
	}

	for i, m := range fb {
		if m != game.MarkExact {
			continue
		}
		c := letter(guess[i])
		s.space[i].ClearAll()
		s.space[i].Set(c)
		s.required[c]++
	}

	for i, m := range fb {
		if m != game.MarkPartial {
			continue
		}
		c := letter(guess[i])
		s.space[i].Clear(c)
		s.required[c]++
	}

	for i, m := range fb {
		if m != game.MarkAbsent {
			continue
		}
		c := letter(guess[i])
		s.space[i].Clear(c)

		// If another position of the same guessed letter took a partial,
		// the letter's remaining count elsewhere is still uncertain and no
		// wider removal is sound.
		partialElsewhere := false
		exactPositions := make(map[int]bool)
		for j := range fb {
			if j == i || guess[j] != guess[i] {
				continue
			}
			switch fb[j] {
			case game.MarkPartial:
				partialElsewhere = true
			case game.MarkExact:
				exactPositions[j] = true
			}
		}
		if partialElsewhere {
			continue
		}
		// The letter is exhausted beyond its pinned exact positions.
		for j := 0; j < s.length; j++ {
			if j == i || exactPositions[j] {
				continue
			}
			s.space[j].Clear(c)
		}
	}
}

// Allows reports whether word is consistent with the state: every letter must
// be feasible at its position and every required letter must occur at least
// its recorded minimum count.
func (s *State) Allows(word string) bool {
	for i := 0; i < s.length; i++ {
		if !s.space[i].Test(letter(word[i])) {
			return false
		}
	}
	for c, min := range s.required {
		if min > 0 && strings.Count(word, string(rune('a'+c))) < min {
			return false
		}
	}
	return true
}

// Feasible reports whether letter c is still feasible at position i.
func (s *State) Feasible(i int, c byte) bool {
	return s.space[i].Test(letter(c))
}

// RequiredCount returns the minimum confirmed occurrence count for letter c.
func (s *State) RequiredCount(c byte) int {
	return s.required[letter(c)]
}

// Filter returns the subset of words consistent with the state, preserving
// order. The result is never larger than the input.
func Filter(words []string, s *State) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if s.Allows(w) {
			out = append(out, w)
		}
	}
	return out
}

func letter(c byte) uint { return uint(c - 'a') }
