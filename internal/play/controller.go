// internal/play/controller.go
//
// Round controller: orchestrates one game: ask the strategy for a guess,
// obtain feedback (simulated or human), update the constraint store, filter
// candidates, and detect termination.
//
// Collaborators (feedback source, display, stats sink) are injected
// interfaces so the controller is testable in isolation with fakes.

package play

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/arunkv/wordle-solver/internal/constraint"
	"github.com/arunkv/wordle-solver/internal/game"
	"github.com/arunkv/wordle-solver/internal/solver"
)

// FeedbackSource supplies one response per round for a submitted guess.
type FeedbackSource interface {
	Respond(guess string) (game.Response, error)
}

// Display receives guesses and feedback for human-readable rendering.
// Purely observational; no controller state depends on it.
type Display interface {
	Round(round, candidates int)
	Guess(word string)
	Feedback(fb game.Feedback)
	BestGuesses(scores []solver.Score)
	Solved(word string, tries int)
	Failed()
	NoWordsLeft()
	Aborted()
	Blank()
}

// StatsSink receives the outcome of a finished game.
type StatsSink interface {
	Record(ctx context.Context, o Outcome) error
}

// Outcome is the terminal result of one game.
type Outcome struct {
	// Solved is true when feedback came back all-exact.
	Solved bool
	// Aborted is true when the feedback source signalled an abort.
	Aborted bool
	// Word is the solution when solved, or the known target word (if any)
	// when the game was lost.
	Word string
	// Tries is the number of consumed guesses. Guesses rejected as invalid
	// by the external game are refunded and not counted.
	Tries int
}

// Controller runs games for one configuration.
type Controller struct {
	Strategy solver.Strategy
	Source   FeedbackSource
	Display  Display
	Stats    StatsSink
	Length   int
	MaxTries int
	// Target is the known secret in non-interactive play; recorded on
	// failure so the stats sink can track missed words. Empty when unknown.
	Target string
}

// Play runs one game to a terminal outcome. The candidate set and constraint
// state are created fresh here and discarded at game end; the strategy is
// reused across games.
func (c *Controller) Play(ctx context.Context, words []string) (Outcome, error) {
	state := constraint.NewState(c.Length)
	pool := make([]string, len(words))
	copy(pool, words)

	tries := 0
	for tries < c.MaxTries {
		if len(pool) == 0 {
			c.Display.NoWordsLeft()
			break
		}
		c.Display.Round(tries+1, len(pool))

		ranked := c.Strategy.Rank(pool)
		c.Display.BestGuesses(ranked)
		guess := ranked[0].Word
		pool = remove(pool, guess)
		c.Display.Guess(guess)
		tries++

		resp, err := c.Source.Respond(guess)
		if err != nil {
			// A feedback source failure is not a played game; nothing is
			// recorded in the stats sink.
			return Outcome{Aborted: true, Tries: tries}, err
		}
		switch resp.Kind {
		case game.ResponseAbort:
			c.Display.Aborted()
			return c.finish(ctx, Outcome{Aborted: true, Tries: tries}), nil
		case game.ResponseInvalid:
			// The external game rejected the word; the try is refunded and
			// the word stays out of the pool.
			tries--
			continue
		}

		c.Display.Feedback(resp.Feedback)
		if resp.Feedback.AllExact() {
			c.Display.Solved(guess, tries)
			return c.finish(ctx, Outcome{Solved: true, Word: guess, Tries: tries}), nil
		}

		state.Apply(guess, resp.Feedback)
		pool = constraint.Filter(pool, state)
		log.Debug().Int("round", tries).Int("left", len(pool)).Str("guess", guess).Msg("candidates filtered")
		c.Display.Blank()
	}

	c.Display.Failed()
	return c.finish(ctx, Outcome{Word: c.Target, Tries: tries}), nil
}

func (c *Controller) finish(ctx context.Context, o Outcome) Outcome {
	if c.Stats != nil {
		if err := c.Stats.Record(ctx, o); err != nil {
			log.Warn().Err(err).Msg("failed to record game outcome")
		}
	}
	return o
}

func remove(words []string, w string) []string {
	out := words[:0]
	for _, x := range words {
		if x != w {
			out = append(out, x)
		}
	}
	return out
}
