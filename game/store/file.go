package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"snake-game/game/types"
	"strings"
	"sync"
)

// MaxStoredRuns bounds the run log kept in the JSON file.
const MaxStoredRuns = 100

type fileData struct {
	HighScores []int             `json:"highScores"`
	Runs       []types.RunRecord `json:"runs"`
}

// FileStore keeps everything in one JSON document.
type FileStore struct {
	path  string
	mutex sync.Mutex
}

func NewFileStore(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("store path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) load() (fileData, error) {
	var data fileData
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil // first run, nothing saved yet
		}
		return data, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return data, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return data, nil
}

// save writes through a temp file so a crash never leaves half a document.
func (s *FileStore) save(data fileData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store data: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) LoadScores(ctx context.Context) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	if data.HighScores == nil {
		return []int{}, nil
	}
	return data.HighScores, nil
}

func (s *FileStore) SaveScores(ctx context.Context, scores []int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	data.HighScores = append([]int{}, scores...)
	return s.save(data)
}

func (s *FileStore) AppendRun(ctx context.Context, run types.RunRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	data.Runs = append(data.Runs, run)
	if len(data.Runs) > MaxStoredRuns {
		data.Runs = data.Runs[len(data.Runs)-MaxStoredRuns:]
	}
	return s.save(data)
}

// Runs returns up to limit most recent runs, newest first.
func (s *FileStore) Runs(ctx context.Context, limit int) ([]types.RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > len(data.Runs) {
		limit = len(data.Runs)
	}
	out := make([]types.RunRecord, 0, limit)
	for i := len(data.Runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, data.Runs[i])
	}
	return out, nil
}

func (s *FileStore) Close() error {
	return nil
}
