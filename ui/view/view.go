// Package view holds the drawing math shared by the window and terminal
// renderers. It has no graphics dependencies.
package view

import (
	"math"
	"snake-game/game/types"
	"strconv"
	"time"
)

// Color is an 8-bit RGBA colour.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

var (
	Background = RGB(20, 20, 20)
	Board      = RGB(35, 30, 40)
	Food       = RGB(255, 0, 0)
	Text       = RGB(160, 160, 160)
	PauseBar   = Color{R: 200, G: 200, B: 200, A: 40}
)

// scoreTiers colours the snake by score: the first tier whose limit is
// above the score wins.
var scoreTiers = []struct {
	limit int
	color Color
}{
	{5, RGB(90, 80, 200)},
	{10, RGB(90, 200, 120)},
	{20, RGB(250, 180, 80)},
	{30, RGB(220, 40, 40)},
	{50, RGB(240, 90, 200)},
}

const HighScoresTitle = "High scores"

// Vec is a position in board cells. Fractions appear mid-animation.
type Vec struct {
	X, Y float64
}

// Lerp moves from a towards b by t, clamped to [0, 1].
func Lerp(a, b types.Point, t float64) Vec {
	t = math.Max(0, math.Min(1, t))
	return Vec{
		X: float64(a.X) + (float64(b.X)-float64(a.X))*t,
		Y: float64(a.Y) + (float64(b.Y)-float64(a.Y))*t,
	}
}

// Body returns where to draw each snake cell, head first. The head slides
// in from the second cell and the tail from prevTail; everything else sits
// on its cell. t is the fraction of the tick interval elapsed.
func Body(snake []types.Point, prevTail types.Point, t float64) []Vec {
	out := make([]Vec, len(snake))
	for i, p := range snake {
		out[i] = Lerp(p, p, 0)
	}
	if len(snake) < 2 {
		return out
	}
	out[0] = Lerp(snake[1], snake[0], t)
	last := len(snake) - 1
	out[last] = Lerp(prevTail, snake[last], t)
	return out
}

// Phase is the fraction of the current second, which drives the rainbow.
func Phase(now time.Time) float64 {
	return float64(now.Nanosecond()/int(time.Millisecond)) / 1000
}

// ScoreColor returns the colour of the segment at index for a score.
// Past the last tier every segment gets its own hue, cycling with phase.
func ScoreColor(score, index int, phase float64) Color {
	for _, tier := range scoreTiers {
		if score < tier.limit {
			return tier.color
		}
	}
	hue := math.Mod(phase+0.01*float64(index), 1)
	return HSV(hue, 0.9, 0.8)
}

// HSV converts hue, saturation and value, all in [0, 1], to an opaque colour.
func HSV(h, s, v float64) Color {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	h *= 6
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	u := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, u, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, u
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = u, p, v
	default:
		r, g, b = v, p, q
	}
	return RGB(channel(r), channel(g), channel(b))
}

func channel(x float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, x)) * 255))
}

// Scoreboard is the text a renderer shows around the board.
type Scoreboard struct {
	Score      int
	Paused     bool
	LastScore  int
	HasLast    bool
	HighScores []int
}

// Source is the read-only game surface a renderer needs.
type Source interface {
	Score() int
	Paused() bool
	LastScore() (int, bool)
	HighScores() []int
}

func NewScoreboard(src Source) Scoreboard {
	last, ok := src.LastScore()
	return Scoreboard{
		Score:      src.Score(),
		Paused:     src.Paused(),
		LastScore:  last,
		HasLast:    ok,
		HighScores: src.HighScores(),
	}
}

// LastScoreText is empty until a run has ended.
func (s Scoreboard) LastScoreText() string {
	if !s.HasLast {
		return ""
	}
	return "You scored " + strconv.Itoa(s.LastScore)
}

// HighScoreLines returns one line per leaderboard entry.
func (s Scoreboard) HighScoreLines() []string {
	lines := make([]string, len(s.HighScores))
	for i, score := range s.HighScores {
		lines[i] = strconv.Itoa(score)
	}
	return lines
}

// Layout is the placement of the board inside a screen.
type Layout struct {
	Cell             float64 // edge of one board cell in screen units
	OffsetX, OffsetY float64
}

// Fit sizes the board to fill the screen while keeping cells square, and
// centres it.
func Fit(screenW, screenH int, grid types.Grid) Layout {
	if grid.Width <= 0 || grid.Height <= 0 {
		return Layout{}
	}
	cell := math.Min(float64(screenW)/float64(grid.Width), float64(screenH)/float64(grid.Height))
	cell = math.Max(cell, 0)
	return Layout{
		Cell:    cell,
		OffsetX: (float64(screenW) - cell*float64(grid.Width)) / 2,
		OffsetY: (float64(screenH) - cell*float64(grid.Height)) / 2,
	}
}

// Screen converts a board position into screen coordinates.
func (l Layout) Screen(v Vec) (x, y float64) {
	return l.OffsetX + v.X*l.Cell, l.OffsetY + v.Y*l.Cell
}
