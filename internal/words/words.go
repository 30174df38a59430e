// internal/words/words.go
//
// Word list management for the solver.
//
// Responsibilities:
//   - Load candidate words from one or more files, or fall back to an
//     embedded default list when no files are given.
//   - Normalize to lowercase, keep only alphabetic words of the requested
//     length, and deduplicate.
//   - Load word-frequency lists ("word count" per line) for the
//     corpus-frequency strategy.
//
// Constraints:
//   - Words are exactly `length` letters a-z after normalization.
//   - The returned list is sorted for deterministic strategy construction.

package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/arunkv/wordle-solver/internal/game"
)

//go:embed default_answers.txt
var embeddedAnswers string

// Load reads candidate words of the given length from paths. With no paths it
// falls back to the embedded default list. Returns an error if no usable
// words remain after filtering.
func Load(paths []string, length int) ([]string, error) {
	set := make(map[string]struct{})
	if len(paths) == 0 {
		addLines(set, strings.Split(embeddedAnswers, "\n"), length)
	}
	for _, path := range paths {
		lines, err := readLines(path)
		if err != nil {
			return nil, fmt.Errorf("words: read %s: %w", path, err)
		}
		addLines(set, lines, length)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("words: no %d-letter words found", length)
	}
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Strings(out)
	log.Info().Int("words", len(out)).Int("length", length).Msg("word list loaded")
	return out, nil
}

// LoadFrequencies reads a word-frequency file with one "word count" pair per
// line, keeping entries of the given length. Malformed lines are skipped.
func LoadFrequencies(path string, length int) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open frequency file: %w", err)
	}
	defer f.Close()

	counts := make(map[string]int)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			continue
		}
		w := strings.ToLower(fields[0])
		if !game.ValidWord(w, length) {
			continue
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			continue
		}
		counts[w] += n
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: scan frequency file: %w", err)
	}
	return counts, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

func addLines(set map[string]struct{}, lines []string, length int) {
	for _, line := range lines {
		w := strings.TrimSpace(strings.ToLower(line))
		if game.ValidWord(w, length) {
			set[w] = struct{}{}
		}
	}
}
