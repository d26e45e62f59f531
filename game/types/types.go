package types

import "time"

// Board dimensions and game constants
const (
	Width         = 40
	Height        = 20
	StartLength   = 3
	MaxHighScores = 10 // Size of the leaderboard
	MaxFood       = 10 // Upper bound for random extra food
)

// Point is a cell on the board
type Point struct {
	X, Y int
}

// Add returns p moved by the vector d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// DefaultGrid returns the standard 40x20 board.
func DefaultGrid() Grid {
	return Grid{Width: Width, Height: Height}
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// ParseCollisionType is the inverse of CollisionType.String.
func ParseCollisionType(s string) CollisionType {
	switch s {
	case "wall":
		return WallCollision
	case "self":
		return SelfCollision
	default:
		return NoCollision
	}
}

// RunRecord describes one finished run.
type RunRecord struct {
	ID        string        `json:"id"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Score     int           `json:"score"`
	Ticks     int           `json:"ticks"`
	Cause     CollisionType `json:"cause"`
}

// Duration returns the wall-clock length of the run.
func (r RunRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}
