package game

import "time"

// Loop decides when the game is due for its next tick. Hosts call Update
// once per frame with the current wall-clock time.
type Loop struct {
	game     *Game
	lastTick time.Time
}

func NewLoop(g *Game) *Loop {
	return &Loop{game: g}
}

// Update advances the game at most once, and only if a full tick interval
// has passed since the previous tick. The bool reports whether it ticked.
func (l *Loop) Update(now time.Time) (Outcome, bool) {
	if l.game.Paused() {
		return Outcome{}, false
	}
	if now.Sub(l.lastTick) < l.game.Interval() {
		return Outcome{}, false
	}
	l.lastTick = now
	return l.game.AdvanceTick(), true
}

// Progress is the fraction of the current interval elapsed since the last
// tick, clamped to [0, 1]. Renderers use it to interpolate movement.
func (l *Loop) Progress(now time.Time) float64 {
	interval := l.game.Interval()
	if interval <= 0 {
		return 1
	}
	p := float64(now.Sub(l.lastTick)) / float64(interval)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// LastTick returns when the game last advanced.
func (l *Loop) LastTick() time.Time {
	return l.lastTick
}
