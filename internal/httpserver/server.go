// internal/httpserver/server.go
//
// HTTP wiring for the solver API.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Solver endpoints: POST /solve/new, GET /solve/{id},
//     POST /solve/{id}/feedback.
//
// Notes:
//   - The client owns the real game board; it relays per-letter feedback in
//     the same x/o/= encoding the interactive CLI uses, or the controls
//     "invalid" (guess rejected, try refunded) and "abort".
//   - Sessions are in-memory; restarting the process forfeits them.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/arunkv/wordle-solver/internal/constraint"
	"github.com/arunkv/wordle-solver/internal/game"
	"github.com/arunkv/wordle-solver/internal/solver"
)

// Config carries the server's solver setup.
type Config struct {
	Words    []string       // candidate list, uniform length
	Freqs    map[string]int // corpus counts for the "word" strategy; may be nil
	Length   int
	MaxTries int
}

// Server bundles router, session store, and solver configuration.
type Server struct {
	r     *chi.Mux
	store SessionStore
	cfg   Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(store SessionStore, cfg Config) *Server {
	s := &Server{r: chi.NewRouter(), store: store, cfg: cfg}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(30 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /solve/new","GET /solve/{id}","POST /solve/{id}/feedback"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Post("/solve/new", s.handleNewSession)
	s.r.Get("/solve/{id}", s.handleGetSession)
	s.r.Post("/solve/{id}/feedback", s.handleFeedback)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ----------------------------- handlers ------------------------------------

type newSessionReq struct {
	Strategy string `json:"strategy"` // "position" (default) | "word" | "entropy"
}

type sessionRes struct {
	SessionID  string `json:"sessionId"`
	Guess      string `json:"guess,omitempty"`
	Tries      int    `json:"tries"`
	Candidates int    `json:"candidates"`
	Status     string `json:"status"` // "playing" | "solved" | "exhausted" | "aborted"
}

type feedbackReq struct {
	Feedback string `json:"feedback,omitempty"` // x/o/= encoded, one symbol per letter
	Control  string `json:"control,omitempty"`  // "invalid" | "abort"
}

// handleNewSession creates a session, computes the opening guess, and
// returns both.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Strategy == "" {
		req.Strategy = solver.KindPosition.String()
	}

	strat, err := s.newStrategy(req.Strategy)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess := &Session{
		ID:       randomID(),
		Length:   s.cfg.Length,
		MaxTries: s.cfg.MaxTries,
		Pool:     append([]string(nil), s.cfg.Words...),
		State:    constraint.NewState(s.cfg.Length),
		Strategy: strat,
	}
	guess, ok := sess.nextGuess()
	if !ok {
		httpError(w, http.StatusInternalServerError, "no candidate words configured")
		return
	}
	sess.Tries = 1

	if err := s.store.Save(r.Context(), sess); err != nil {
		httpError(w, http.StatusInternalServerError, "failed to save session")
		return
	}
	log.Info().Str("session", sess.ID).Str("strategy", req.Strategy).Str("guess", guess).Msg("session created")
	writeJSON(w, http.StatusCreated, s.sessionRes(sess))
}

// handleGetSession reports current session status without advancing it.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, http.StatusNotFound, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, s.sessionRes(sess))
}

// handleFeedback advances a session by one round.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, http.StatusNotFound, "session not found")
		return
	}
	if sess.Finished {
		httpError(w, http.StatusConflict, "session finished")
		return
	}

	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	switch req.Control {
	case "abort":
		sess.Finished, sess.Aborted = true, true
	case "invalid":
		// Rejected guess: try is not consumed, the word stays out of the
		// pool, and a replacement guess is issued.
		if _, ok := sess.nextGuess(); !ok {
			sess.Finished = true
		}
	case "":
		fb, perr := game.ParseFeedback(req.Feedback, sess.Length)
		if perr != nil {
			httpError(w, http.StatusBadRequest, perr.Error())
			return
		}
		sess.applyFeedback(fb)
		if !sess.Finished {
			if _, ok := sess.nextGuess(); ok {
				sess.Tries++
			} else {
				sess.Finished = true
			}
		}
	default:
		httpError(w, http.StatusBadRequest, "unknown control value")
		return
	}

	if err := s.store.Save(r.Context(), sess); err != nil {
		httpError(w, http.StatusInternalServerError, "failed to save session")
		return
	}
	writeJSON(w, http.StatusOK, s.sessionRes(sess))
}

// newStrategy builds a per-session strategy so one session's recomputation
// never skews another's ranking.
func (s *Server) newStrategy(name string) (solver.Strategy, error) {
	kind, err := solver.ParseKind(name)
	if err != nil {
		return nil, err
	}
	var strat solver.Strategy
	switch kind {
	case solver.KindPosition:
		strat, err = solver.NewPositionProbability(s.cfg.Words)
	case solver.KindCorpus:
		if len(s.cfg.Freqs) == 0 {
			return nil, errors.New("word strategy unavailable: no frequency corpus configured")
		}
		strat, err = solver.NewCorpusFrequency(s.cfg.Words, s.cfg.Freqs)
	default:
		strat, err = solver.NewEntropy(s.cfg.Words, solver.EntropyOptions{Quiet: true})
	}
	return strat, err
}

func (s *Server) sessionRes(sess *Session) sessionRes {
	status := "playing"
	switch {
	case sess.Solved:
		status = "solved"
	case sess.Aborted:
		status = "aborted"
	case sess.Finished:
		status = "exhausted"
	}
	return sessionRes{
		SessionID:  sess.ID,
		Guess:      sess.LastGuess,
		Tries:      sess.Tries,
		Candidates: len(sess.Pool),
		Status:     status,
	}
}

func httpError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
