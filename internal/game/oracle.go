// internal/game/oracle.go
//
// Feedback oracle: computes the canonical feedback for a guess against a
// known target using the standard two-pass Wordle scoring algorithm.
// A small bounded cache memoizes (target, guess) pairs; the entropy strategy
// evaluates the same pairs repeatedly.

package game

import "sync"

// Evaluate scores guess against target and returns one Mark per position.
//
// Pass 1:
//   - Mark exact matches, and count the remaining (non-exact) target letters.
//
// Pass 2:
//   - For each non-exact guess letter, left to right: if there is remaining
//     count for that letter, mark partial and decrement the count; otherwise
//     mark absent.
//
// The left-to-right consumption guarantees that the number of exact+partial
// marks for any letter never exceeds its occurrence count in the target, and
// that exact positions are preferred over partial for the same letter.
// Panics if the words differ in length; callers validate lengths up front.
func Evaluate(target, guess string) Feedback {
	if len(target) != len(guess) {
		panic("game: target and guess length mismatch")
	}
	n := len(guess)
	fb := make(Feedback, n)

	// Letter frequency for the non-exact target positions (a-z).
	var counts [AlphabetSize]int

	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			fb[i] = MarkExact
		} else {
			counts[idx(target[i])]++
		}
	}

	for i := 0; i < n; i++ {
		if fb[i] == MarkExact {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < AlphabetSize && counts[j] > 0 {
			fb[i] = MarkPartial
			counts[j]--
		} else {
			fb[i] = MarkAbsent
		}
	}
	return fb
}

// maxCachedPairs bounds the memo below ~100MB even for large word lists.
const maxCachedPairs = 1 << 22

// Memo is a bounded cache over Evaluate keyed by (target, guess). Safe for
// concurrent use; Evaluate is referentially transparent so a stale or evicted
// entry only costs a recomputation.
type Memo struct {
	mu    sync.RWMutex
	cache map[[2]string]string
}

// NewMemo returns an empty evaluation cache.
func NewMemo() *Memo {
	return &Memo{cache: make(map[[2]string]string)}
}

// Evaluate returns the cached feedback for (target, guess), computing and
// storing it on a miss. When the cache is full the whole map is dropped
// rather than tracking per-entry recency.
func (m *Memo) Evaluate(target, guess string) Feedback {
	key := [2]string{target, guess}
	m.mu.RLock()
	enc, ok := m.cache[key]
	m.mu.RUnlock()
	if ok {
		fb, _ := ParseFeedback(enc, len(guess))
		return fb
	}
	fb := Evaluate(target, guess)
	m.mu.Lock()
	if len(m.cache) >= maxCachedPairs {
		m.cache = make(map[[2]string]string)
	}
	m.cache[key] = fb.String()
	m.mu.Unlock()
	return fb
}
