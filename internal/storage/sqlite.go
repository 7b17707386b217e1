// Package storage provides SQLite-based persistence for round results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/termpong/internal/game"
)

// Store manages the SQLite database connection for round persistence.
type Store struct {
	db *sql.DB
}

// RoundResult represents one finished round.
type RoundResult struct {
	ID           string // UUID, generated on save when empty
	Winner       game.Winner
	LevelReached int
	HitsTotal    int
	DurationSecs int
	CreatedAt    time.Time
}

// Stats contains aggregated results across all recorded rounds.
type Stats struct {
	RoundsCount int
	PlayerWins  int
	BestLevel   int
	AvgDuration float64
	LastPlayed  time.Time
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
		CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			winner TEXT NOT NULL,
			level_reached INTEGER NOT NULL DEFAULT 0,
			hits_total INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_created ON rounds(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_level ON rounds(level_reached DESC);
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

// SaveRound records a finished round. A missing ID is filled with a new
// UUID; the stored ID is returned.
func (s *Store) SaveRound(r RoundResult) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO rounds (id, winner, level_reached, hits_total, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.Winner.String(), r.LevelReached, r.HitsTotal, r.DurationSecs,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}

	return r.ID, nil
}

// RecentRounds retrieves the most recently played rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, winner, level_reached, hits_total, duration_secs, created_at
		 FROM rounds
		 ORDER BY created_at DESC, id
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	return scanRounds(rows)
}

// BestRounds retrieves the rounds that reached the highest levels.
func (s *Store) BestRounds(limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, winner, level_reached, hits_total, duration_secs, created_at
		 FROM rounds
		 ORDER BY level_reached DESC, hits_total DESC, created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	return scanRounds(rows)
}

func scanRounds(rows *sql.Rows) ([]RoundResult, error) {
	var results []RoundResult
	for rows.Next() {
		var r RoundResult
		var winner string
		var createdAt any
		if err := rows.Scan(&r.ID, &winner, &r.LevelReached, &r.HitsTotal, &r.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Winner = parseWinner(winner)
		r.CreatedAt = parseCreatedAt(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// GetStats retrieves aggregated statistics across all recorded rounds.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'player' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(level_reached), 0),
		        COALESCE(AVG(duration_secs), 0)
		 FROM rounds`,
	).Scan(&stats.RoundsCount, &stats.PlayerWins, &stats.BestLevel, &stats.AvgDuration)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseCreatedAt(lastPlayed)
	}

	return stats, nil
}

// ClearRounds deletes all recorded rounds.
func (s *Store) ClearRounds() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

func parseWinner(s string) game.Winner {
	switch s {
	case "player":
		return game.WinnerPlayer
	case "ai":
		return game.WinnerAI
	default:
		return game.WinnerNone
	}
}

// parseCreatedAt handles both time.Time and the driver's string datetimes.
func parseCreatedAt(v any) time.Time {
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
