// internal/display/display.go
//
// Terminal rendering of guesses, feedback, and round progress.
// Feedback is shown as colored blocks in the standard Wordle palette:
// green for exact, yellow for partial, red for absent. Purely
// observational; no solver state depends on it.

package display

import (
	"fmt"
	"io"

	"github.com/TwiN/go-color"

	"github.com/arunkv/wordle-solver/internal/game"
	"github.com/arunkv/wordle-solver/internal/solver"
)

const block = "▉"

// Console renders solver progress to a writer. The zero Quiet value prints
// everything; Quiet suppresses all output.
type Console struct {
	Out   io.Writer
	Quiet bool
}

// Round announces a round and the size of the remaining candidate set.
func (c *Console) Round(round, candidates int) {
	c.printf("Round: %d\n", round)
	c.printf("Current possible answers: %d\n", candidates)
}

// Guess shows the word the solver chose this round.
func (c *Console) Guess(word string) {
	c.printf("Guess: %s\n", word)
}

// Feedback renders the per-letter verdicts as colored blocks.
func (c *Console) Feedback(fb game.Feedback) {
	if c.Quiet {
		return
	}
	c.printf("Response: ")
	for _, m := range fb {
		switch m {
		case game.MarkExact:
			c.printf("%s", color.Ize(color.Green, block))
		case game.MarkPartial:
			c.printf("%s", color.Ize(color.Yellow, block))
		default:
			c.printf("%s", color.Ize(color.Red, block))
		}
	}
	c.printf("\n")
}

// BestGuesses surfaces the top-ranked candidates with their scores.
func (c *Console) BestGuesses(scores []solver.Score) {
	if c.Quiet || len(scores) == 0 {
		return
	}
	c.printf("Best guesses:\n")
	n := 5
	if len(scores) < n {
		n = len(scores)
	}
	for _, s := range scores[:n] {
		c.printf("\t- %s: (%.3f)\n", s.Word, s.Value)
	}
}

// Solved reports a win and the number of tries it took.
func (c *Console) Solved(word string, tries int) {
	c.printf("Wordle solved in %d tries\n", tries)
}

// Failed reports an unsolved game.
func (c *Console) Failed() {
	c.printf("Failed to solve the Wordle!\n")
}

// NoWordsLeft reports candidate-set exhaustion.
func (c *Console) NoWordsLeft() {
	c.printf("No words left in the dictionary!\n")
}

// Aborted reports a user abort.
func (c *Console) Aborted() {
	c.printf("Aborting!\n")
}

// Blank emits a separator line between rounds.
func (c *Console) Blank() {
	c.printf("\n")
}

func (c *Console) printf(format string, args ...any) {
	if c.Quiet || c.Out == nil {
		return
	}
	fmt.Fprintf(c.Out, format, args...)
}
