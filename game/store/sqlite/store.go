// Package sqlite provides a SQLite-backed score store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"snake-game/game/store/sqlite/migrations"
	"snake-game/game/types"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists the leaderboard and the run log in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// LoadScores returns the leaderboard in stored order.
func (s *Store) LoadScores(ctx context.Context) ([]int, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT score FROM high_scores ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query high scores: %w", err)
	}
	defer rows.Close()

	scores := []int{}
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			return nil, fmt.Errorf("scan high score: %w", err)
		}
		scores = append(scores, score)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate high scores: %w", err)
	}
	return scores, nil
}

// SaveScores replaces the leaderboard in one transaction.
func (s *Store) SaveScores(ctx context.Context, scores []int) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save scores: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM high_scores`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear high scores: %w", err)
	}
	for i, score := range scores {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO high_scores (position, score) VALUES (?, ?)`, i, score,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert high score %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save scores: %w", err)
	}
	return nil
}

// AppendRun inserts one finished run.
func (s *Store) AppendRun(ctx context.Context, run types.RunRecord) error {
	if strings.TrimSpace(run.ID) == "" {
		return fmt.Errorf("run id is required")
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, ended_at, score, ticks, cause) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID,
		toMillis(run.StartTime),
		toMillis(run.EndTime),
		run.Score,
		run.Ticks,
		run.Cause.String(),
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}
	return nil
}

// Runs returns up to limit most recent runs, newest first. A limit <= 0 returns all.
func (s *Store) Runs(ctx context.Context, limit int) ([]types.RunRecord, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, started_at, ended_at, score, ticks, cause FROM runs ORDER BY ended_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []types.RunRecord
	for rows.Next() {
		var (
			run            types.RunRecord
			started, ended int64
			cause          string
		)
		if err := rows.Scan(&run.ID, &started, &ended, &run.Score, &run.Ticks, &cause); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.StartTime = fromMillis(started)
		run.EndTime = fromMillis(ended)
		run.Cause = types.ParseCollisionType(cause)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}
