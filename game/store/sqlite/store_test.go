package sqlite

import (
	"context"
	"path/filepath"
	"reflect"
	"snake-game/game/types"
	"testing"
	"time"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "scores.db")

	s := openTestStore(t, path)
	if err := s.SaveScores(ctx, []int{9, 3}); err != nil {
		t.Fatal(err)
	}
	run := types.RunRecord{
		ID:        "run-1",
		StartTime: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 5, 1, 8, 1, 0, 0, time.UTC),
		Score:     9,
		Ticks:     240,
		Cause:     types.WallCollision,
	}
	if err := s.AppendRun(ctx, run); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	// Migrations must not run twice on reopen.
	s = openTestStore(t, path)
	scores, err := s.LoadScores(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(scores, []int{9, 3}) {
		t.Errorf("LoadScores() = %v", scores)
	}
	runs, err := s.Runs(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || !reflect.DeepEqual(runs[0], run) {
		t.Errorf("Runs() = %+v, want %+v", runs, run)
	}
}

func TestHighScoresRejectZero(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "scores.db"))
	if err := s.SaveScores(context.Background(), []int{5, 0}); err == nil {
		t.Fatal("stored a zero score")
	}
	scores, err := s.LoadScores(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 0 {
		t.Errorf("failed save left %v behind", scores)
	}
}

func TestAppendRunRequiresID(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "scores.db"))
	if err := s.AppendRun(context.Background(), types.RunRecord{}); err == nil {
		t.Error("accepted a run without id")
	}
}

func TestExtractUpMigration(t *testing.T) {
	got := extractUpMigration("-- +migrate Up\nCREATE TABLE a(x);\n-- +migrate Down\nDROP TABLE a;")
	if got != "\nCREATE TABLE a(x);\n" {
		t.Errorf("extractUpMigration() = %q", got)
	}
	if got := extractUpMigration("SELECT 1;"); got != "SELECT 1;" {
		t.Errorf("no markers: %q", got)
	}
}
