package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"snake-game/game/types"
	"testing"
	"time"
)

func openBackends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()
	backends := map[string]Store{}
	for kind, name := range map[string]string{BackendJSON: "scores.json", BackendSQLite: "scores.db"} {
		s, err := Open(kind, filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("Open(%s): %v", kind, err)
		}
		t.Cleanup(func() { s.Close() })
		backends[kind] = s
	}
	return backends
}

func TestScoresRoundTrip(t *testing.T) {
	ctx := context.Background()
	for kind, s := range openBackends(t) {
		t.Run(kind, func(t *testing.T) {
			scores, err := s.LoadScores(ctx)
			if err != nil {
				t.Fatalf("LoadScores on empty store: %v", err)
			}
			if len(scores) != 0 {
				t.Fatalf("empty store returned %v", scores)
			}

			want := []int{31, 12, 12, 7, 1}
			if err := s.SaveScores(ctx, want); err != nil {
				t.Fatalf("SaveScores: %v", err)
			}
			got, err := s.LoadScores(ctx)
			if err != nil {
				t.Fatalf("LoadScores: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("LoadScores() = %v, want %v", got, want)
			}

			if err := s.SaveScores(ctx, []int{40}); err != nil {
				t.Fatalf("SaveScores: %v", err)
			}
			if got, _ := s.LoadScores(ctx); !reflect.DeepEqual(got, []int{40}) {
				t.Errorf("after overwrite LoadScores() = %v", got)
			}
		})
	}
}

func TestRunsNewestFirst(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for kind, s := range openBackends(t) {
		t.Run(kind, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				run := types.RunRecord{
					ID:        string(rune('a' + i)),
					StartTime: base.Add(time.Duration(i) * time.Minute),
					EndTime:   base.Add(time.Duration(i)*time.Minute + 30*time.Second),
					Score:     i * 2,
					Ticks:     100 + i,
					Cause:     types.SelfCollision,
				}
				if err := s.AppendRun(ctx, run); err != nil {
					t.Fatalf("AppendRun: %v", err)
				}
			}

			runs, err := s.Runs(ctx, 2)
			if err != nil {
				t.Fatalf("Runs: %v", err)
			}
			if len(runs) != 2 || runs[0].ID != "c" || runs[1].ID != "b" {
				t.Fatalf("Runs(2) = %+v", runs)
			}
			if !runs[0].EndTime.Equal(base.Add(2*time.Minute + 30*time.Second)) {
				t.Errorf("EndTime = %v", runs[0].EndTime)
			}
			if runs[0].Score != 4 || runs[0].Ticks != 102 || runs[0].Cause != types.SelfCollision {
				t.Errorf("run = %+v", runs[0])
			}

			all, err := s.Runs(ctx, 0)
			if err != nil {
				t.Fatalf("Runs(0): %v", err)
			}
			if len(all) != 3 {
				t.Errorf("Runs(0) returned %d runs", len(all))
			}
		})
	}
}

func TestFileStoreCapsRunLog(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "scores.json"))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < MaxStoredRuns+5; i++ {
		if err := s.AppendRun(ctx, types.RunRecord{ID: time.Duration(i).String(), Score: i}); err != nil {
			t.Fatal(err)
		}
	}
	runs, err := s.Runs(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != MaxStoredRuns {
		t.Fatalf("kept %d runs, want %d", len(runs), MaxStoredRuns)
	}
	if runs[0].Score != MaxStoredRuns+4 {
		t.Errorf("newest run score = %d", runs[0].Score)
	}
}

func TestFileStoreCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.LoadScores(context.Background()); err == nil {
		t.Error("expected a parse error")
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open("redis", filepath.Join(t.TempDir(), "x")); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("err = %v, want ErrUnknownBackend", err)
	}
}

func TestCanceledContext(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "scores.json"))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.SaveScores(ctx, []int{1}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
