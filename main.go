// main.go
//
// Entry point for the Wordle solver.
// Responsibilities:
//   - Load .env and configure zerolog from LOG_LEVEL.
//   - Parse flags: dictionaries, word length, tries, strategy, run mode.
//   - Wire word list, strategy, display, stats recorder, and controller.
//
// Run modes:
//   (default)      interactive: a human relays feedback from a real game
//   -n -w WORD     non-interactive: solve WORD against the built-in oracle
//   -n -c          continuous: solve every word in the dictionary
//   -n -daily      solve the deterministic date-keyed daily word
//   -serve         run the HTTP solver API instead of the CLI loop

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arunkv/wordle-solver/internal/daily"
	"github.com/arunkv/wordle-solver/internal/display"
	"github.com/arunkv/wordle-solver/internal/httpserver"
	"github.com/arunkv/wordle-solver/internal/play"
	"github.com/arunkv/wordle-solver/internal/solver"
	"github.com/arunkv/wordle-solver/internal/stats"
	"github.com/arunkv/wordle-solver/internal/words"
)

const defaultWordLength = 5

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var (
		dicts          = flag.String("d", "", "comma-separated dictionary files (default: embedded list)")
		length         = flag.Int("l", defaultWordLength, "word length")
		tries          = flag.Int("t", 0, "maximum tries (default: word length + 1)")
		strategyName   = flag.String("s", "position", "solver to use: position, word, entropy")
		nonInteractive = flag.Bool("n", false, "non-interactive mode; requires -w, -c, or -daily")
		target         = flag.String("w", "", "the word to solve in non-interactive mode")
		continuous     = flag.Bool("c", false, "continuous mode; uses all words in the dictionary")
		dailyMode      = flag.Bool("daily", false, "solve the date-keyed daily word")
		quiet          = flag.Bool("q", false, "quiet mode")
		freqFile       = flag.String("freq", "", "word-frequency file for the word solver")
		serve          = flag.Bool("serve", false, "run the HTTP solver API")
	)
	flag.Parse()

	if *length < 2 {
		log.Fatal().Int("length", *length).Msg("word length must be at least 2")
	}
	if *tries <= 0 {
		*tries = *length + 1
	}
	if err := validateModes(*nonInteractive, *continuous, *dailyMode, *target); err != nil {
		log.Fatal().Err(err).Msg("invalid flag combination")
	}

	wordList, err := words.Load(splitPaths(*dicts), *length)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	var freqs map[string]int
	if *freqFile != "" {
		freqs, err = words.LoadFrequencies(*freqFile, *length)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load frequency file")
		}
	}

	if *serve {
		srv := httpserver.New(httpserver.NewMemoryStore(), httpserver.Config{
			Words:    wordList,
			Freqs:    freqs,
			Length:   *length,
			MaxTries: *tries,
		})
		port := getEnv("PORT", "5175")
		log.Info().Str("port", port).Int("words", len(wordList)).Msg("starting solver API")
		if err := srv.Start(":" + port); err != nil {
			log.Fatal().Err(err).Msg("server exited")
		}
		return
	}

	strat, err := newStrategy(*strategyName, wordList, freqs, *quiet)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to construct solver")
	}

	recorder := openRecorder()
	defer recorder.Close()

	console := &display.Console{Out: os.Stdout, Quiet: *quiet}
	ctx := context.Background()

	switch {
	case *nonInteractive && *continuous:
		for _, w := range wordList {
			runGame(ctx, strat, console, recorder, wordList, w, *length, *tries)
			console.Blank()
		}
	case *nonInteractive && *dailyMode:
		picker := daily.Picker{Salt: getEnv("DAILY_SALT", "wordle")}
		idx := picker.Index(time.Now(), len(wordList))
		runGame(ctx, strat, console, recorder, wordList, wordList[idx], *length, *tries)
	case *nonInteractive:
		runGame(ctx, strat, console, recorder, wordList, *target, *length, *tries)
	default:
		runInteractive(ctx, strat, console, recorder, wordList, *length, *tries, *continuous)
	}

	if sum, err := recorder.Summary(ctx); err == nil {
		log.Info().
			Int("played", sum.Played).
			Int("solved", sum.Solved).
			Float64("averageTries", sum.AverageTries).
			Msg("statistics")
	}
}

// runGame plays one non-interactive game against the built-in oracle.
func runGame(ctx context.Context, strat solver.Strategy, console *display.Console,
	recorder stats.Recorder, wordList []string, target string, length, tries int) {
	c := &play.Controller{
		Strategy: strat,
		Source:   &play.OracleSource{Target: target},
		Display:  console,
		Stats:    recorder,
		Length:   length,
		MaxTries: tries,
		Target:   target,
	}
	if _, err := c.Play(ctx, wordList); err != nil {
		log.Error().Err(err).Str("target", target).Msg("game failed")
	}
}

// runInteractive plays games with a human relaying feedback. On a lost game
// the human may supply the true word so it lands in the failed-word stats.
func runInteractive(ctx context.Context, strat solver.Strategy, console *display.Console,
	recorder stats.Recorder, wordList []string, length, tries int, continuous bool) {
	in := bufio.NewReader(os.Stdin)
	source := &play.InteractiveSource{In: in, Out: os.Stdout, Length: length}
	for {
		c := &play.Controller{
			Strategy: strat,
			Source:   source,
			Display:  console,
			Length:   length,
			MaxTries: tries,
		}
		out, err := c.Play(ctx, wordList)
		if err != nil {
			log.Error().Err(err).Msg("game failed")
			return
		}
		if !out.Solved && !out.Aborted {
			fmt.Print("Please provide the correct word: ")
			if line, rerr := in.ReadString('\n'); rerr == nil {
				out.Word = strings.TrimSpace(strings.ToLower(line))
			}
		}
		if err := recorder.Record(ctx, out); err != nil {
			log.Warn().Err(err).Msg("failed to record game outcome")
		}
		if out.Aborted || !continuous {
			return
		}
		console.Blank()
	}
}

// validateModes rejects flag combinations with no defined run mode.
func validateModes(nonInteractive, continuous, dailyMode bool, target string) error {
	if nonInteractive {
		if target == "" && !continuous && !dailyMode {
			return fmt.Errorf("-n requires -w, -c, or -daily")
		}
		if target != "" && continuous {
			return fmt.Errorf("-w and -c are mutually exclusive")
		}
		return nil
	}
	if target != "" {
		return fmt.Errorf("-w requires -n")
	}
	if dailyMode {
		return fmt.Errorf("-daily requires -n")
	}
	return nil
}

// newStrategy maps the -s flag to a constructed strategy.
func newStrategy(name string, wordList []string, freqs map[string]int, quiet bool) (solver.Strategy, error) {
	kind, err := solver.ParseKind(name)
	if err != nil {
		return nil, err
	}
	var s solver.Strategy
	switch kind {
	case solver.KindCorpus:
		if len(freqs) == 0 {
			return nil, fmt.Errorf("the word solver needs a frequency file (-freq)")
		}
		s, err = solver.NewCorpusFrequency(wordList, freqs)
	case solver.KindEntropy:
		s, err = solver.NewEntropy(wordList, solver.EntropyOptions{Quiet: quiet})
	default:
		s, err = solver.NewPositionProbability(wordList)
	}
	return s, err
}

// openRecorder opens the SQLite stats recorder, falling back to a no-op
// recorder when the database cannot be opened.
func openRecorder() stats.Recorder {
	dsn := getEnv("STATS_DB", "./data/wordle_stats.db")
	rec, err := stats.OpenSQLite(dsn)
	if err != nil {
		log.Warn().Err(err).Str("dsn", dsn).Msg("stats disabled")
		return stats.Nop{}
	}
	return rec
}

func splitPaths(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
