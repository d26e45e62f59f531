// Package term draws the game in a terminal with tcell.
package term

import (
	"snake-game/game"
	"snake-game/game/types"
	"snake-game/input"
	"snake-game/ui/view"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
)

const (
	cellWidth = 2 // terminal cells are about half as wide as tall
	boardTop  = 1 // row 0 is the status line
	sideGap   = 2
)

const (
	snakeRune = '█'
	foodRune  = '●'
)

type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func toColor(c view.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Origin is the terminal position of board cell p.
func Origin(p types.Point) (x, y int) {
	return p.X * cellWidth, p.Y + boardTop
}

// Draw renders one frame and shows it.
func (r *Renderer) Draw(g *game.Game, now time.Time) {
	r.screen.Clear()

	boardStyle := tcell.StyleDefault.Background(toColor(view.Board))
	textStyle := tcell.StyleDefault.Foreground(toColor(view.Text))

	// Board
	grid := g.Grid()
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			r.fill(types.Point{X: x, Y: y}, ' ', boardStyle)
		}
	}

	// Food
	foodStyle := boardStyle.Foreground(toColor(view.Food))
	for _, p := range g.Food() {
		r.fill(p, foodRune, foodStyle)
	}

	// Snake, head last so it is never hidden
	snake := g.Snake()
	phase := view.Phase(now)
	for i := len(snake) - 1; i >= 0; i-- {
		style := boardStyle.Foreground(toColor(view.ScoreColor(g.Score(), i, phase)))
		r.fill(snake[i], snakeRune, style)
	}

	sb := view.NewScoreboard(g)
	status := "Score " + strconv.Itoa(sb.Score)
	if sb.Paused {
		status += "  [paused: space to play, q to quit]"
	}
	r.text(0, 0, status, textStyle)

	if sb.Paused {
		x := grid.Width*cellWidth + sideGap
		y := boardTop
		if last := sb.LastScoreText(); last != "" {
			r.text(x, y, last, textStyle)
			y += 2
		}
		r.text(x, y, view.HighScoresTitle, textStyle)
		for i, line := range sb.HighScoreLines() {
			r.text(x, y+1+i, strconv.Itoa(i+1)+". "+line, textStyle)
		}
	}

	r.screen.Show()
}

func (r *Renderer) fill(p types.Point, ch rune, style tcell.Style) {
	x, y := Origin(p)
	for dx := 0; dx < cellWidth; dx++ {
		r.screen.SetContent(x+dx, y, ch, nil, style)
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// Translate maps a tcell key to an input key name.
func Translate(key tcell.Key, ch rune) (input.Key, bool) {
	switch key {
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.KeyEsc, true
	case tcell.KeyRune:
		if ch == ' ' {
			return input.KeySpace, true
		}
		return input.Rune(ch), true
	}
	return "", false
}
