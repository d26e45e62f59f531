// Package store persists the leaderboard and the finished-run log between
// process restarts.
package store

import (
	"context"
	"errors"
	"fmt"
	"snake-game/game/store/sqlite"
	"snake-game/game/types"
	"strings"
)

var ErrUnknownBackend = errors.New("unknown store backend")

// Store is implemented by every persistence backend.
type Store interface {
	LoadScores(ctx context.Context) ([]int, error)
	SaveScores(ctx context.Context, scores []int) error
	AppendRun(ctx context.Context, run types.RunRecord) error
	Runs(ctx context.Context, limit int) ([]types.RunRecord, error)
	Close() error
}

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Open returns the backend named by kind, rooted at path.
func Open(kind, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case BackendJSON, "":
		return NewFileStore(path)
	case BackendSQLite:
		s, err := sqlite.Open(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, kind)
	}
}
