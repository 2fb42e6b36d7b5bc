// Package storage provides the SQLite run journal: one row per finished
// autoplay run recorded by the bench command.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Run is one journal entry.
type Run struct {
	ID        string // Random UUID assigned by SaveRun when empty
	Seed      int64
	Map       string // Map the run started on
	Speed     int
	Cleared   int // Maps left through a hole
	Score     int
	Length    int
	Ticks     int64
	Outcome   string // collision, stuck or limit
	CreatedAt time.Time
}

// Stats aggregates the journal, overall or per map.
type Stats struct {
	Map        string
	Runs       int
	BestScore  int
	AvgScore   float64
	AvgTicks   float64
	Collisions int
	Stuck      int
	LastRun    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			seed INTEGER NOT NULL,
			map TEXT NOT NULL,
			speed INTEGER NOT NULL,
			cleared INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_map ON runs(map);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, seed, map, speed, cleared, score, length, ticks, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Seed, r.Map, r.Speed, r.Cleared, r.Score, r.Length, r.Ticks, r.Outcome,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

const runColumns = `id, seed, map, speed, cleared, score, length, ticks, outcome, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var r Run
	var createdAt any
	err := row.Scan(&r.ID, &r.Seed, &r.Map, &r.Speed, &r.Cleared,
		&r.Score, &r.Length, &r.Ticks, &r.Outcome, &createdAt)
	if err != nil {
		return r, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and the SQLite text form.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// RunByID retrieves a run by its ID. A missing run is (nil, nil).
func (s *Store) RunByID(id string) (*Run, error) {
	r, err := scanRun(s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// RecentRuns retrieves the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY seq DESC LIMIT ?`, limit,
	)
}

// TopRuns retrieves the best scoring runs on a map, or on any map when
// name is empty.
func (s *Store) TopRuns(name string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	if name == "" {
		return s.queryRuns(
			`SELECT `+runColumns+` FROM runs ORDER BY score DESC, seq ASC LIMIT ?`, limit,
		)
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE map = ? ORDER BY score DESC, seq ASC LIMIT ?`,
		name, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// ClearRuns deletes every journal entry.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

const statsColumns = `COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
	COALESCE(AVG(ticks), 0),
	COALESCE(SUM(outcome = 'collision'), 0), COALESCE(SUM(outcome = 'stuck'), 0),
	MAX(created_at)`

// Stats aggregates the whole journal.
func (s *Store) Stats() (*Stats, error) {
	st := &Stats{}
	var last any
	err := s.db.QueryRow(`SELECT `+statsColumns+` FROM runs`).Scan(
		&st.Runs, &st.BestScore, &st.AvgScore, &st.AvgTicks, &st.Collisions, &st.Stuck, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.LastRun = parseTime(last)
	return st, nil
}

// MapStats aggregates the journal per starting map.
func (s *Store) MapStats() (map[string]*Stats, error) {
	rows, err := s.db.Query(`SELECT map, ` + statsColumns + ` FROM runs GROUP BY map`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get map stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var last any
		if err := rows.Scan(&st.Map, &st.Runs, &st.BestScore, &st.AvgScore, &st.AvgTicks,
			&st.Collisions, &st.Stuck, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastRun = parseTime(last)
		stats[st.Map] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
