// Package records keeps finished games in a local SQLite database
package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrClosed is returned by every call after Close
var ErrClosed = errors.New("records: store closed")

// Record is one finished game
type Record struct {
	ID           int64
	Started      time.Time
	Duration     time.Duration
	Width        int
	Language     string
	Profile      string
	Players      int
	BestScore    int
	Misses       int
	TargetsEaten int
}

// Store wraps a single-connection database handle
type Store struct {
	db *sql.DB
}

// Open creates path's directory and the schema when missing
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("records: empty db path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("records: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("records: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func initPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("records: %s: %w", p, err)
		}
	}
	return nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_ms INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			width INTEGER NOT NULL,
			language TEXT NOT NULL,
			profile TEXT NOT NULL,
			players INTEGER NOT NULL,
			best_score INTEGER NOT NULL,
			misses INTEGER NOT NULL,
			targets_eaten INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS games_profile_width ON games(profile, width, best_score);`,
		`CREATE INDEX IF NOT EXISTS games_started ON games(started_ms);`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("records: schema: %w", err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Save inserts r and returns its row id
func (s *Store) Save(ctx context.Context, r Record) (int64, error) {
	if s.db == nil {
		return 0, ErrClosed
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO games(started_ms,duration_ms,width,language,profile,players,best_score,misses,targets_eaten)
		 VALUES(?,?,?,?,?,?,?,?,?)`,
		r.Started.UnixMilli(), r.Duration.Milliseconds(), r.Width, r.Language, r.Profile,
		r.Players, r.BestScore, r.Misses, r.TargetsEaten,
	)
	if err != nil {
		return 0, fmt.Errorf("records: save: %w", err)
	}
	return res.LastInsertId()
}

// Best is the highest score recorded for a profile and width, 0 when none
func (s *Store) Best(ctx context.Context, profile string, width int) (int, error) {
	if s.db == nil {
		return 0, ErrClosed
	}
	var best sql.NullInt64
	row := s.db.QueryRowContext(ctx,
		`SELECT MAX(best_score) FROM games WHERE profile=? AND width=?`, profile, width)
	if err := row.Scan(&best); err != nil {
		return 0, fmt.Errorf("records: best: %w", err)
	}
	return int(best.Int64), nil
}

// Recent returns up to n games, newest first
func (s *Store) Recent(ctx context.Context, n int) ([]Record, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	if n <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,started_ms,duration_ms,width,language,profile,players,best_score,misses,targets_eaten
		 FROM games ORDER BY started_ms DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("records: recent: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r                 Record
			started, duration int64
		)
		if err := rows.Scan(&r.ID, &started, &duration, &r.Width, &r.Language, &r.Profile,
			&r.Players, &r.BestScore, &r.Misses, &r.TargetsEaten); err != nil {
			return nil, fmt.Errorf("records: recent: %w", err)
		}
		r.Started = time.UnixMilli(started)
		r.Duration = time.Duration(duration) * time.Millisecond
		out = append(out, r)
	}
	return out, rows.Err()
}
