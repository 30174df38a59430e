// internal/game/types.go
//
// Core type definitions for the solver engine.
// Defines:
//   - Mark: per-letter verdict for a guess (exact/partial/absent).
//   - Feedback: one Mark per word position.
//   - Response: a round's input: feedback, abort, or invalid-guess.

package game

import (
	"errors"
	"fmt"
)

// AlphabetSize is the number of symbols in the lowercase ASCII alphabet.
const AlphabetSize = 26

// Mark represents the evaluation result for a single letter in a guess.
// The values double as the wire/terminal encoding:
//   - '=': letter is correct and in the correct position.
//   - 'o': letter exists in the target but in a different position.
//   - 'x': letter does not exist in the target beyond accounted occurrences.
type Mark byte

const (
	MarkExact   Mark = '='
	MarkPartial Mark = 'o'
	MarkAbsent  Mark = 'x'
)

// Feedback is the per-position verdict comparing a guess to the target.
type Feedback []Mark

// String renders the feedback in its symbol encoding, e.g. "xxoox".
func (f Feedback) String() string {
	b := make([]byte, len(f))
	for i, m := range f {
		b[i] = byte(m)
	}
	return string(b)
}

// AllExact reports whether every position is an exact match.
func (f Feedback) AllExact() bool {
	for _, m := range f {
		if m != MarkExact {
			return false
		}
	}
	return true
}

// ParseFeedback validates and decodes a symbol-encoded feedback line.
// The line must be exactly length symbols from {x, o, =}.
func ParseFeedback(s string, length int) (Feedback, error) {
	if len(s) != length {
		return nil, fmt.Errorf("feedback %q: want %d symbols, got %d", s, length, len(s))
	}
	f := make(Feedback, length)
	for i := 0; i < length; i++ {
		switch Mark(s[i]) {
		case MarkExact, MarkPartial, MarkAbsent:
			f[i] = Mark(s[i])
		default:
			return nil, fmt.Errorf("feedback %q: invalid symbol %q at position %d", s, s[i], i)
		}
	}
	return f, nil
}

// ResponseKind classifies a round's input beyond plain feedback.
type ResponseKind int

const (
	// ResponseFeedback carries a well-formed Feedback value.
	ResponseFeedback ResponseKind = iota
	// ResponseAbort ends the game with no solution.
	ResponseAbort
	// ResponseInvalid means the external game rejected the guessed word;
	// the try is refunded and another guess is requested.
	ResponseInvalid
)

// Response is one round's input from a feedback source.
type Response struct {
	Kind     ResponseKind
	Feedback Feedback
}

// ErrBadWord is returned for words that are not lowercase a-z of the
// configured length.
var ErrBadWord = errors.New("word must be lowercase a-z of the configured length")

// ValidWord reports whether w is exactly length lowercase ASCII letters.
func ValidWord(w string, length int) bool {
	if len(w) != length {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// idx maps a lowercase ASCII letter to 0..25.
// Assumes inputs are validated to a-z elsewhere.
func idx(c byte) int { return int(c - 'a') }
