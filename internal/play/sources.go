// internal/play/sources.go
//
// Feedback sources for the round controller:
//   - OracleSource simulates feedback against a known secret word.
//   - InteractiveSource solicits feedback from a human observing a real
//     game, re-prompting until the line is well formed.

package play

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arunkv/wordle-solver/internal/game"
)

// OracleSource computes feedback for a known target. Deterministic and pure.
type OracleSource struct {
	Target string
}

// Respond evaluates the guess against the target.
func (s *OracleSource) Respond(guess string) (game.Response, error) {
	return game.Response{
		Kind:     game.ResponseFeedback,
		Feedback: game.Evaluate(s.Target, guess),
	}, nil
}

// InteractiveSource reads symbol-encoded feedback lines from a human.
// Accepted inputs: a line of exactly Length symbols from {x, o, =}, or the
// control lines "q" (abort) and "i" (guess rejected as invalid).
type InteractiveSource struct {
	In     *bufio.Reader
	Out    io.Writer
	Length int
}

// Respond prompts until a well-formed response is supplied. Malformed lines
// are the human's to fix; they never reach the controller.
func (s *InteractiveSource) Respond(guess string) (game.Response, error) {
	for {
		fmt.Fprintf(s.Out, "Response (q quit, i invalid, x no match, o partial match, = exact match)? ")
		line, err := s.In.ReadString('\n')
		if err != nil && line == "" {
			if err == io.EOF {
				return game.Response{Kind: game.ResponseAbort}, nil
			}
			return game.Response{}, fmt.Errorf("read response: %w", err)
		}
		line = strings.ToLower(strings.TrimSpace(line))
		switch line {
		case "q":
			return game.Response{Kind: game.ResponseAbort}, nil
		case "i":
			return game.Response{Kind: game.ResponseInvalid}, nil
		}
		fb, perr := game.ParseFeedback(line, s.Length)
		if perr != nil {
			fmt.Fprintln(s.Out, "Invalid response. Please try again.")
			continue
		}
		return game.Response{Kind: game.ResponseFeedback, Feedback: fb}, nil
	}
}
