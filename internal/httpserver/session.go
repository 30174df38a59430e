// internal/httpserver/session.go
//
// Solver sessions for the HTTP API. A session is one in-progress game: the
// remote client owns the real Wordle board and relays its feedback; the
// server owns the constraint state, candidate pool, and strategy.
//
// The in-memory store mirrors the persistence interface style used for the
// stats recorder: concurrency-safe via RWMutex, state lost on restart.

package httpserver

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"

	"github.com/arunkv/wordle-solver/internal/constraint"
	"github.com/arunkv/wordle-solver/internal/game"
	"github.com/arunkv/wordle-solver/internal/solver"
)

// Session holds the state of a single solver game driven over HTTP.
type Session struct {
	ID        string
	Length    int
	MaxTries  int
	Tries     int
	LastGuess string
	Pool      []string
	State     *constraint.State
	Strategy  solver.Strategy
	Finished  bool
	Solved    bool
	Aborted   bool
}

// ErrSessionNotFound is returned for unknown session IDs.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore defines the persistence interface for solver sessions.
type SessionStore interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore constructs an in-memory SessionStore.
func NewMemoryStore() SessionStore {
	return &memoryStore{sessions: make(map[string]*Session)}
}

func (m *memoryStore) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrSessionNotFound
}

// nextGuess asks the strategy for the top candidate and removes it from the
// guess pool so it is never re-offered.
func (s *Session) nextGuess() (string, bool) {
	if len(s.Pool) == 0 {
		return "", false
	}
	guess := s.Strategy.Guess(s.Pool)
	out := s.Pool[:0]
	for _, w := range s.Pool {
		if w != guess {
			out = append(out, w)
		}
	}
	s.Pool = out
	s.LastGuess = guess
	return guess, true
}

// applyFeedback advances the session by one round of feedback.
func (s *Session) applyFeedback(fb game.Feedback) {
	if fb.AllExact() {
		s.Finished, s.Solved = true, true
		return
	}
	s.State.Apply(s.LastGuess, fb)
	s.Pool = constraint.Filter(s.Pool, s.State)
	if s.Tries >= s.MaxTries || len(s.Pool) == 0 {
		s.Finished = true
	}
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
