// Package storage provides persistence backends for the high-score board.
// The default backend is SQLite via the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies; a JSON file backend reads and writes the classic
// high_scores.json layout.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/snakebreak/internal/scores"
)

// SQLiteStore manages the SQLite database connection for score persistence.
type SQLiteStore struct {
	db *sql.DB
}

// GameRecord is one finished game from the history table.
type GameRecord struct {
	ID        int64
	Name      string
	Score     int
	Level     int
	Cause     string
	CreatedAt time.Time
}

// Stats contains aggregated statistics over every recorded game.
type Stats struct {
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

var (
	_ scores.Store    = (*SQLiteStore)(nil)
	_ scores.Recorder = (*SQLiteStore)(nil)
)

// ExpandPath expands a leading ~ to the home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], string(filepath.Separator))), nil
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*SQLiteStore, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &SQLiteStore{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			rank INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			score INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 0,
			cause TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_score ON games(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns the stored board in rank order.
func (s *SQLiteStore) Load() ([]scores.Entry, error) {
	rows, err := s.db.Query(`SELECT name, score FROM high_scores ORDER BY rank`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []scores.Entry
	for rows.Next() {
		var e scores.Entry
		if err := rows.Scan(&e.Name, &e.Score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Save replaces the stored board with entries in a single transaction.
func (s *SQLiteStore) Save(entries []scores.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(`DELETE FROM high_scores`); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}

	for i, e := range entries {
		if _, err := tx.Exec(
			"INSERT INTO high_scores (rank, name, score) VALUES (?, ?, ?)",
			i, e.Name, e.Score,
		); err != nil {
			return fmt.Errorf("storage: cannot save score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit scores: %w", err)
	}
	return nil
}

// Record appends a finished game to the history table.
func (s *SQLiteStore) Record(r scores.Result) error {
	_, err := s.db.Exec(
		"INSERT INTO games (name, score, level, cause) VALUES (?, ?, ?, ?)",
		r.Name, r.Score, r.Level, r.Cause,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record game: %w", err)
	}
	return nil
}

// RecentGames returns the most recent games, newest first.
func (s *SQLiteStore) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, name, score, level, cause, created_at
		 FROM games
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var r GameRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Name, &r.Score, &r.Level, &r.Cause, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats returns aggregated statistics over the game history.
func (s *SQLiteStore) Stats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM games`,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM games ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
