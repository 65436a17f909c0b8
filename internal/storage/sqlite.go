// Package storage persists saved boards, high scores and finished games.
// It uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrNotFound is returned by key-value lookups for keys that were never written.
var ErrNotFound = errors.New("storage: not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished game.
type GameRecord struct {
	ID        int64
	GameID    string
	Profile   string
	Score     int
	MaxTile   int
	Moves     int
	CreatedAt time.Time
}

// Stats aggregates the finished games of a profile.
type Stats struct {
	Profile    string
	GamesCount int
	BestScore  int
	BestTile   int
	AvgScore   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and applies migrations.
func Open(dbPath string) (*Store, error) {
	path, err := ExpandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions share one store; a single connection serializes writers.
	db.SetMaxOpenConns(1)

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

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate brings the schema up to date from the embedded migrations.
func (s *Store) migrate() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	defer src.Close()

	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	// m.Close is not called: it would close s.db through the driver.
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Profile returns a key-value view scoped to one player profile.
func (s *Store) Profile(name string) *ProfileKV {
	return &ProfileKV{db: s.db, profile: name}
}

// RecordGame stores a finished game. Recording the same game ID twice is a no-op.
func (s *Store) RecordGame(rec GameRecord) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO games (game_id, profile, score, max_tile, moves)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.GameID, rec.Profile, rec.Score, rec.MaxTile, rec.Moves,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record game: %w", err)
	}
	return nil
}

// TopGames retrieves the best N finished games of a profile, highest score first.
func (s *Store) TopGames(profile string, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, profile, score, max_tile, moves, created_at
		 FROM games
		 WHERE profile = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		profile, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var rec GameRecord
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.GameID, &rec.Profile, &rec.Score, &rec.MaxTile, &rec.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.CreatedAt = parseTimestamp(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// BestScore returns the highest finished-game score of a profile, or 0.
func (s *Store) BestScore(profile string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM games WHERE profile = ?",
		profile,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics for a profile.
func (s *Store) Stats(profile string) (*Stats, error) {
	stats := &Stats{Profile: profile}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(max_tile), 0),
		        COALESCE(AVG(score), 0), MAX(created_at)
		 FROM games WHERE profile = ?`,
		profile,
	).Scan(&stats.GamesCount, &stats.BestScore, &stats.BestTile, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTimestamp(lastPlayed)

	return stats, nil
}

// ClearProfile deletes every saved value and finished game of a profile.
func (s *Store) ClearProfile(profile string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM kv WHERE profile = ?", profile); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("storage: cannot clear values: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM games WHERE profile = ?", profile); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// parseTimestamp handles both driver-parsed times and raw SQLite text.
func parseTimestamp(v any) time.Time {
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
