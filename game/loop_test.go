package game

import (
	"math"
	"snake-game/game/types"
	"testing"
	"time"
)

func TestLoopTicksOncePerInterval(t *testing.T) {
	g := newTestGame(t)
	loop := NewLoop(g)

	if _, ticked := loop.Update(epoch); ticked {
		t.Fatal("ticked while paused")
	}

	g.TogglePause()
	if _, ticked := loop.Update(epoch); !ticked {
		t.Fatal("first update after resume should tick")
	}
	// The interval is now 200ms.
	if _, ticked := loop.Update(epoch.Add(150 * time.Millisecond)); ticked {
		t.Error("ticked before the interval elapsed")
	}
	if _, ticked := loop.Update(epoch.Add(200 * time.Millisecond)); !ticked {
		t.Error("did not tick once the interval elapsed")
	}
	if g.Tick() != 2 {
		t.Errorf("Tick() = %d, want 2", g.Tick())
	}
}

func TestLoopProgress(t *testing.T) {
	g := newTestGame(t)
	g.TogglePause()
	loop := NewLoop(g)
	loop.Update(epoch)

	cases := []struct {
		after time.Duration
		want  float64
	}{
		{0, 0},
		{50 * time.Millisecond, 0.25},
		{100 * time.Millisecond, 0.5},
		{time.Second, 1},
		{-time.Second, 0},
	}
	for _, c := range cases {
		if got := loop.Progress(epoch.Add(c.after)); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Progress(+%v) = %v, want %v", c.after, got, c.want)
		}
	}
}

func TestRunStats(t *testing.T) {
	stats := NewRunStats(2)
	for i, score := range []int{4, 10, 1} {
		start := epoch.Add(time.Duration(i) * time.Minute)
		stats.Add(types.RunRecord{
			ID:        string(rune('a' + i)),
			StartTime: start,
			EndTime:   start.Add(time.Duration(score) * time.Second),
			Score:     score,
		})
	}

	if stats.GamesPlayed() != 3 {
		t.Errorf("GamesPlayed() = %d", stats.GamesPlayed())
	}
	if stats.MaxScore() != 10 {
		t.Errorf("MaxScore() = %d", stats.MaxScore())
	}
	if stats.AverageScore() != 5 {
		t.Errorf("AverageScore() = %v", stats.AverageScore())
	}
	if stats.AverageDuration() != 5*time.Second {
		t.Errorf("AverageDuration() = %v", stats.AverageDuration())
	}
	records := stats.Records()
	if len(records) != 2 || records[0].ID != "b" || records[1].ID != "c" {
		t.Errorf("Records() = %+v", records)
	}
}
