package ui

import (
	"snake-game/game"
	"snake-game/ui/view"
	"strconv"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const borderPadding = 10 // padding around the board

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	layout       view.Layout
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func toColor(c view.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// Draw renders one frame. progress is the fraction of the tick interval
// elapsed since the last tick.
func (r *Renderer) Draw(g *game.Game, progress float64, now time.Time) {
	r.UpdateDimensions()
	r.layout = view.Fit(
		int(r.screenWidth)-borderPadding*2,
		int(r.screenHeight)-borderPadding*2,
		g.Grid(),
	)
	r.layout.OffsetX += borderPadding
	r.layout.OffsetY += borderPadding

	rl.BeginDrawing()
	rl.ClearBackground(toColor(view.Background))

	cell := float32(r.layout.Cell)
	fontSize := int32(1.4 * r.layout.Cell)

	// Board
	grid := g.Grid()
	rl.DrawRectangleV(
		rl.NewVector2(float32(r.layout.OffsetX), float32(r.layout.OffsetY)),
		rl.NewVector2(cell*float32(grid.Width), cell*float32(grid.Height)),
		toColor(view.Board))

	// Food
	for _, p := range g.Food() {
		x, y := r.layout.Screen(view.Vec{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5})
		rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), 0.4*cell, toColor(view.Food))
	}

	r.drawSnake(g, progress, now)

	sb := view.NewScoreboard(g)
	if sb.Paused {
		r.drawPauseOverlay(g, sb, fontSize)
	}

	// Current score
	x, y := r.layout.Screen(view.Vec{X: 0.5, Y: 0.5})
	rl.DrawText(strconv.Itoa(sb.Score), int32(x), int32(y), fontSize, toColor(view.Text))

	rl.EndDrawing()
}

func (r *Renderer) drawSnake(g *game.Game, progress float64, now time.Time) {
	cell := float32(r.layout.Cell)
	size := rl.NewVector2(cell, cell)
	snake := g.Snake()
	score := g.Score()
	phase := view.Phase(now)

	for i, pos := range view.Body(snake, g.PreviousTail(), progress) {
		color := toColor(view.ScoreColor(score, i, phase))
		x, y := r.layout.Screen(pos)
		rl.DrawRectangleV(rl.NewVector2(float32(x), float32(y)), size, color)

		// The sliding tail also covers its new cell so no gap opens up.
		if i == len(snake)-1 && i > 0 {
			p := snake[i]
			x, y := r.layout.Screen(view.Vec{X: float64(p.X), Y: float64(p.Y)})
			rl.DrawRectangleV(rl.NewVector2(float32(x), float32(y)), size, color)
		}
	}
}

func (r *Renderer) drawPauseOverlay(g *game.Game, sb view.Scoreboard, fontSize int32) {
	cell := r.layout.Cell
	grid := g.Grid()

	// Two translucent bars in the middle of the board
	centerX, centerY := r.layout.Screen(view.Vec{X: float64(grid.Width) / 2, Y: float64(grid.Height) / 2})
	barW, barH := 0.8*cell, 3*cell
	bar := toColor(view.PauseBar)
	rl.DrawRectangleV(
		rl.NewVector2(float32(centerX-1.2*cell), float32(centerY-barH/2)),
		rl.NewVector2(float32(barW), float32(barH)), bar)
	rl.DrawRectangleV(
		rl.NewVector2(float32(centerX+1.2*cell-barW), float32(centerY-barH/2)),
		rl.NewVector2(float32(barW), float32(barH)), bar)

	text := toColor(view.Text)
	right := float64(grid.Width)
	if last := sb.LastScoreText(); last != "" {
		x, y := r.layout.Screen(view.Vec{X: right - 25, Y: 1})
		rl.DrawText(last, int32(x), int32(y), fontSize, text)
	}

	x, y := r.layout.Screen(view.Vec{X: right - 10, Y: 1})
	rl.DrawText(view.HighScoresTitle, int32(x), int32(y), fontSize, text)
	for i, line := range sb.HighScoreLines() {
		x, y := r.layout.Screen(view.Vec{X: right - 10, Y: float64(i+3) * 1.5})
		rl.DrawText(line, int32(x), int32(y), fontSize, text)
	}
}
