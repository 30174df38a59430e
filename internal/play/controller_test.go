package play

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arunkv/wordle-solver/internal/game"
	"github.com/arunkv/wordle-solver/internal/solver"
)

// nopDisplay satisfies Display without output.
type nopDisplay struct{}

func (nopDisplay) Round(int, int)                  {}
func (nopDisplay) Guess(string)                    {}
func (nopDisplay) Feedback(game.Feedback)          {}
func (nopDisplay) BestGuesses([]solver.Score)      {}
func (nopDisplay) Solved(string, int)              {}
func (nopDisplay) Failed()                         {}
func (nopDisplay) NoWordsLeft()                    {}
func (nopDisplay) Aborted()                        {}
func (nopDisplay) Blank()                          {}

// recordingSink captures the recorded outcome.
type recordingSink struct {
	outcomes []Outcome
}

func (r *recordingSink) Record(_ context.Context, o Outcome) error {
	r.outcomes = append(r.outcomes, o)
	return nil
}

// scriptedSource replays a fixed sequence of responses.
type scriptedSource struct {
	responses []game.Response
}

func (s *scriptedSource) Respond(string) (game.Response, error) {
	r := s.responses[0]
	s.responses = s.responses[1:]
	return r, nil
}

// failingSource simulates a broken feedback channel.
type failingSource struct{}

func (failingSource) Respond(string) (game.Response, error) {
	return game.Response{}, errors.New("feedback source closed")
}

func newController(t *testing.T, words []string, src FeedbackSource, target string) (*Controller, *recordingSink) {
	t.Helper()
	strat, err := solver.NewPositionProbability(words)
	require.NoError(t, err)
	sink := &recordingSink{}
	return &Controller{
		Strategy: strat,
		Source:   src,
		Display:  nopDisplay{},
		Stats:    sink,
		Length:   5,
		MaxTries: 6,
		Target:   target,
	}, sink
}

func TestPlaySolvesAgainstOracle(t *testing.T) {
	words := []string{"arrow", "ardor", "armor", "slate", "crony", "mount"}
	c, sink := newController(t, words, &OracleSource{Target: "arrow"}, "arrow")

	out, err := c.Play(context.Background(), words)
	require.NoError(t, err)
	assert.True(t, out.Solved)
	assert.Equal(t, "arrow", out.Word)
	assert.LessOrEqual(t, out.Tries, 6)
	require.Len(t, sink.outcomes, 1)
	assert.Equal(t, out, sink.outcomes[0])
}

func TestPlayEveryWordSolvable(t *testing.T) {
	words := []string{"arrow", "ardor", "armor", "slate", "crony", "mount"}
	for _, target := range words {
		c, _ := newController(t, words, &OracleSource{Target: target}, target)
		out, err := c.Play(context.Background(), words)
		require.NoError(t, err)
		assert.True(t, out.Solved, "target %q", target)
		assert.Equal(t, target, out.Word)
	}
}

func TestPlayTargetSurvivesFiltering(t *testing.T) {
	// After a non-exact first round the target must still be in the pool;
	// solving proves it was never falsely eliminated.
	words := []string{"slate", "stale", "least", "tales", "steal", "arrow"}
	c, _ := newController(t, words, &OracleSource{Target: "arrow"}, "arrow")
	out, err := c.Play(context.Background(), words)
	require.NoError(t, err)
	assert.True(t, out.Solved)
}

func TestPlayExhaustsOnMissingTarget(t *testing.T) {
	// Target is not in the candidate list: the pool must drain to empty and
	// the game end unsolved without a crash.
	words := []string{"slate", "crony", "mount"}
	c, sink := newController(t, words, &OracleSource{Target: "fuzzy"}, "fuzzy")

	out, err := c.Play(context.Background(), words)
	require.NoError(t, err)
	assert.False(t, out.Solved)
	assert.Equal(t, "fuzzy", out.Word, "failed target recorded for the stats sink")
	require.Len(t, sink.outcomes, 1)
	assert.False(t, sink.outcomes[0].Solved)
}

func TestPlayAbort(t *testing.T) {
	words := []string{"slate", "crony"}
	src := &scriptedSource{responses: []game.Response{{Kind: game.ResponseAbort}}}
	c, _ := newController(t, words, src, "")

	out, err := c.Play(context.Background(), words)
	require.NoError(t, err)
	assert.True(t, out.Aborted)
	assert.False(t, out.Solved)
}

func TestPlayInvalidGuessRefundsTry(t *testing.T) {
	words := []string{"slate", "crony"}
	// First word rejected as invalid, second solves.
	exact, err := game.ParseFeedback("=====", 5)
	require.NoError(t, err)
	src := &scriptedSource{responses: []game.Response{
		{Kind: game.ResponseInvalid},
		{Kind: game.ResponseFeedback, Feedback: exact},
	}}
	c, _ := newController(t, words, src, "")

	out, perr := c.Play(context.Background(), words)
	require.NoError(t, perr)
	assert.True(t, out.Solved)
	assert.Equal(t, 1, out.Tries, "rejected guess does not consume a try")
}

func TestPlaySourceErrorRecordsNothing(t *testing.T) {
	words := []string{"slate", "crony"}
	c, sink := newController(t, words, failingSource{}, "")

	out, err := c.Play(context.Background(), words)
	assert.Error(t, err)
	assert.True(t, out.Aborted)
	assert.Empty(t, sink.outcomes, "a feedback source failure is not a played game")
}

func TestPlayMaxTriesExhausted(t *testing.T) {
	words := []string{"aaaaa", "aaaab", "aaaac", "aaaad", "aaaae", "aaaaf", "aaaag"}
	c, _ := newController(t, words, &OracleSource{Target: "aaaag"}, "aaaag")
	c.MaxTries = 2

	out, err := c.Play(context.Background(), words)
	require.NoError(t, err)
	if !out.Solved {
		assert.Equal(t, 2, out.Tries)
	}
}

func TestInteractiveSourceParsesAndReprompts(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("bogus\nxo=ox\n"))
	var outBuf strings.Builder
	src := &InteractiveSource{In: in, Out: &outBuf, Length: 5}

	resp, err := src.Respond("slate")
	require.NoError(t, err)
	assert.Equal(t, game.ResponseFeedback, resp.Kind)
	assert.Equal(t, "xo=ox", resp.Feedback.String())
	assert.Contains(t, outBuf.String(), "Invalid response")
}

func TestInteractiveSourceControls(t *testing.T) {
	for line, kind := range map[string]game.ResponseKind{
		"q\n": game.ResponseAbort,
		"i\n": game.ResponseInvalid,
	} {
		src := &InteractiveSource{
			In:     bufio.NewReader(strings.NewReader(line)),
			Out:    &strings.Builder{},
			Length: 5,
		}
		resp, err := src.Respond("slate")
		require.NoError(t, err)
		assert.Equal(t, kind, resp.Kind)
	}
}

func TestInteractiveSourceEOFAborts(t *testing.T) {
	src := &InteractiveSource{
		In:     bufio.NewReader(strings.NewReader("")),
		Out:    &strings.Builder{},
		Length: 5,
	}
	resp, err := src.Respond("slate")
	require.NoError(t, err)
	assert.Equal(t, game.ResponseAbort, resp.Kind)
}
