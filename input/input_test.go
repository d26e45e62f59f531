package input

import (
	"snake-game/game"
	"snake-game/game/types"
	"testing"
)

type recorder struct {
	toggles int
	dirs    []types.Direction
	current types.Direction
}

func (r *recorder) Direction() types.Direction { return r.current }

func (r *recorder) TogglePause() { r.toggles++ }

func (r *recorder) SubmitDirection(d types.Direction) { r.dirs = append(r.dirs, d) }

func frameOf(keys ...Key) *Frame {
	f := NewFrame(DefaultKeymap())
	for _, k := range keys {
		f.Press(k)
	}
	return f
}

func TestDirectionPriority(t *testing.T) {
	tests := []struct {
		name string
		keys []Key
		want types.Direction
	}{
		{"nothing", nil, types.NONE},
		{"arrow", []Key{KeyLeft}, types.LEFT},
		{"wasd", []Key{"s"}, types.DOWN},
		{"vim", []Key{"k"}, types.UP},
		{"arrows beat wasd", []Key{"w", KeyDown}, types.DOWN},
		{"wasd beats vim", []Key{"h", "d"}, types.RIGHT},
		{"up before left in a group", []Key{KeyLeft, KeyUp}, types.UP},
		{"right before down in a group", []Key{"j", "l"}, types.RIGHT},
		{"unbound key", []Key{"x"}, types.NONE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameOf(tt.keys...).Direction(types.NONE); got != tt.want {
				t.Errorf("Direction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirectionSkipsReversal(t *testing.T) {
	tests := []struct {
		name    string
		current types.Direction
		keys    []Key
		want    types.Direction
	}{
		{"reversal then wasd turn", types.RIGHT, []Key{KeyLeft, "w"}, types.UP},
		{"reversal then later arrow", types.UP, []Key{KeyDown, KeyLeft}, types.LEFT},
		{"only a reversal", types.RIGHT, []Key{KeyLeft, "a"}, types.NONE},
		{"same direction is kept", types.RIGHT, []Key{KeyRight, "w"}, types.RIGHT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameOf(tt.keys...).Direction(tt.current); got != tt.want {
				t.Errorf("Direction(%v) = %v, want %v", tt.current, got, tt.want)
			}
		})
	}
}

func TestRuneFoldsCase(t *testing.T) {
	if Rune('W') != "w" || Rune('j') != "j" {
		t.Errorf("Rune folding: %q %q", Rune('W'), Rune('j'))
	}
}

func TestApplyOrder(t *testing.T) {
	r := &recorder{}
	quit := frameOf(KeySpace, KeyUp).Apply(r)
	if quit {
		t.Error("unexpected quit")
	}
	if r.toggles != 1 || len(r.dirs) != 1 || r.dirs[0] != types.UP {
		t.Errorf("recorder = %+v", r)
	}

	r = &recorder{}
	if !frameOf("q").Apply(r) {
		t.Error("q should quit")
	}
	if r.toggles != 0 || len(r.dirs) != 0 {
		t.Errorf("quit frame drove the game: %+v", r)
	}
}

func TestFrameClear(t *testing.T) {
	f := frameOf(KeyEsc, KeyRight)
	f.Clear()
	if f.Quit() || f.Direction(types.NONE) != types.NONE {
		t.Error("Clear kept keys")
	}
}

func TestApplyUnpausesAndTurns(t *testing.T) {
	g, err := game.NewGame(game.DefaultConfig(), fixed{})
	if err != nil {
		t.Fatal(err)
	}
	frameOf(KeySpace, "s").Apply(g)
	if g.Paused() {
		t.Fatal("space should start the game")
	}
	if g.Pending() != types.DOWN {
		t.Errorf("pending = %v, want DOWN", g.Pending())
	}

	// A reversal is dropped even when it is the only key.
	frameOf(KeyLeft).Apply(g)
	if g.Pending() != types.DOWN {
		t.Errorf("pending = %v after reversal", g.Pending())
	}
}

func TestApplyTurnsPastReversal(t *testing.T) {
	g, err := game.NewGame(game.DefaultConfig(), fixed{})
	if err != nil {
		t.Fatal(err)
	}
	frameOf(KeySpace).Apply(g)
	// The snake heads right: the left arrow is a reversal, w is a turn.
	frameOf(KeyLeft, "w").Apply(g)
	if g.Pending() != types.UP {
		t.Errorf("pending = %v, want UP", g.Pending())
	}
}

type fixed struct{}

func (fixed) Intn(int) int { return 0 }

func (fixed) Float64() float64 { return 0.99 }
