// internal/stats/sqlite.go
//
// SQLite-backed statistics recorder.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Applying the results schema idempotently on open.
//   - Appending one row per finished game; aggregating on demand.

package stats

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/arunkv/wordle-solver/internal/play"
)

const schema = `
CREATE TABLE IF NOT EXISTS results (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	word       TEXT NOT NULL DEFAULT '',
	solved     INTEGER NOT NULL,
	aborted    INTEGER NOT NULL,
	tries      INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_results_word ON results(word);
`

// SQLite records outcomes in a local SQLite database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the stats database at dsn and
// applies the schema.
func OpenSQLite(dsn string) (*SQLite, error) {
	// Ensure directory exists for ./data/stats.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	log.Debug().Str("dsn", dsn).Msg("stats database opened")
	return &SQLite{db: db}, nil
}

// Record appends one row for a finished game.
func (s *SQLite) Record(ctx context.Context, o play.Outcome) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO results (word, solved, aborted, tries) VALUES (?, ?, ?, ?)`,
		o.Word, boolInt(o.Solved), boolInt(o.Aborted), o.Tries,
	)
	return err
}

// Summary aggregates all recorded games: counts, running average tries over
// solved games, the solved word → tries map (latest result wins), and the
// deduplicated failed-word set.
func (s *SQLite) Summary(ctx context.Context) (Summary, error) {
	sum := Summary{Tries: make(map[string]int)}

	row := s.db.QueryRowContext(ctx, `
		SELECT COUNT(1),
		       COALESCE(SUM(solved), 0),
		       COALESCE(AVG(CASE WHEN solved = 1 THEN tries END), 0)
		FROM results`)
	if err := row.Scan(&sum.Played, &sum.Solved, &sum.AverageTries); err != nil {
		return Summary{}, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT word, tries FROM results
		WHERE solved = 1 AND word != ''
		ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return Summary{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var word string
		var tries int
		if err := rows.Scan(&word, &tries); err != nil {
			return Summary{}, err
		}
		sum.Tries[word] = tries
	}
	if err := rows.Err(); err != nil {
		return Summary{}, err
	}

	frows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT word FROM results
		WHERE solved = 0 AND aborted = 0 AND word != ''
		ORDER BY word ASC`)
	if err != nil {
		return Summary{}, err
	}
	defer frows.Close()
	for frows.Next() {
		var word string
		if err := frows.Scan(&word); err != nil {
			return Summary{}, err
		}
		sum.Failed = append(sum.Failed, word)
	}
	return sum, frows.Err()
}

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
