package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arunkv/wordle-solver/internal/game"
)

func newTestServer(t *testing.T, words []string) *Server {
	t.Helper()
	return New(NewMemoryStore(), Config{
		Words:    words,
		Length:   5,
		MaxTries: 6,
	})
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) (*httptest.ResponseRecorder, sessionRes) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	var res sessionRes
	_ = json.Unmarshal(rec.Body.Bytes(), &res)
	return rec, res
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, []string{"slate", "crony"})
	rec, _ := doJSON(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestNewSessionReturnsOpeningGuess(t *testing.T) {
	srv := newTestServer(t, []string{"slate", "crony", "arrow"})
	rec, res := doJSON(t, srv, http.MethodPost, "/solve/new", newSessionReq{})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, res.SessionID)
	assert.NotEmpty(t, res.Guess)
	assert.Equal(t, 1, res.Tries)
	assert.Equal(t, "playing", res.Status)
	assert.Equal(t, 2, res.Candidates, "opening guess removed from pool")
}

func TestNewSessionUnknownStrategy(t *testing.T) {
	srv := newTestServer(t, []string{"slate", "crony"})
	rec, _ := doJSON(t, srv, http.MethodPost, "/solve/new", newSessionReq{Strategy: "minimax"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSolveSessionEndToEnd(t *testing.T) {
	words := []string{"arrow", "ardor", "armor", "slate", "crony", "mount"}
	target := "arrow"
	srv := newTestServer(t, words)

	rec, res := doJSON(t, srv, http.MethodPost, "/solve/new", newSessionReq{})
	require.Equal(t, http.StatusCreated, rec.Code)

	for i := 0; i < 6 && res.Status == "playing"; i++ {
		fb := game.Evaluate(target, res.Guess)
		rec, res = doJSON(t, srv, http.MethodPost,
			fmt.Sprintf("/solve/%s/feedback", res.SessionID),
			feedbackReq{Feedback: fb.String()})
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, "solved", res.Status)
	assert.Equal(t, target, res.Guess)
	assert.LessOrEqual(t, res.Tries, 6)
}

func TestFeedbackMalformedRejected(t *testing.T) {
	srv := newTestServer(t, []string{"slate", "crony"})
	_, res := doJSON(t, srv, http.MethodPost, "/solve/new", newSessionReq{})

	rec, _ := doJSON(t, srv, http.MethodPost,
		fmt.Sprintf("/solve/%s/feedback", res.SessionID),
		feedbackReq{Feedback: "zzz"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeedbackUnknownSession(t *testing.T) {
	srv := newTestServer(t, []string{"slate", "crony"})
	rec, _ := doJSON(t, srv, http.MethodPost, "/solve/deadbeef/feedback",
		feedbackReq{Feedback: "xxxxx"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvalidControlRefundsTry(t *testing.T) {
	srv := newTestServer(t, []string{"slate", "crony", "arrow"})
	_, res := doJSON(t, srv, http.MethodPost, "/solve/new", newSessionReq{})
	firstGuess := res.Guess

	rec, res := doJSON(t, srv, http.MethodPost,
		fmt.Sprintf("/solve/%s/feedback", res.SessionID),
		feedbackReq{Control: "invalid"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, res.Tries, "rejected guess does not consume a try")
	assert.NotEqual(t, firstGuess, res.Guess, "replacement guess issued")
	assert.Equal(t, "playing", res.Status)
}

func TestAbortControl(t *testing.T) {
	srv := newTestServer(t, []string{"slate", "crony"})
	_, res := doJSON(t, srv, http.MethodPost, "/solve/new", newSessionReq{})

	rec, res := doJSON(t, srv, http.MethodPost,
		fmt.Sprintf("/solve/%s/feedback", res.SessionID),
		feedbackReq{Control: "abort"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "aborted", res.Status)

	// Finished sessions reject further feedback.
	rec, _ = doJSON(t, srv, http.MethodPost,
		fmt.Sprintf("/solve/%s/feedback", res.SessionID),
		feedbackReq{Feedback: "xxxxx"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestWordStrategyUnavailableWithoutCorpus(t *testing.T) {
	srv := newTestServer(t, []string{"slate", "crony"})
	rec, _ := doJSON(t, srv, http.MethodPost, "/solve/new", newSessionReq{Strategy: "word"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
