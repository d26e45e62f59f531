package game

import (
	"errors"
	"fmt"
	"snake-game/game/types"
	"time"
)

var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the board layout and the tuning values of the simulation.
type Config struct {
	Grid        types.Grid
	StartLength int
	StartHead   types.Point // snake is laid out to the left of the head

	InitialInterval    time.Duration // tick interval before the first tick
	BaseInterval       time.Duration // tick interval at score 0
	DifficultyConstant float64       // score at which the interval is halved
	SpawnDivisor       float64       // extra food chance = interval seconds / divisor

	MaxFood       int
	MaxHighScores int
}

// DefaultConfig returns the classic 40x20 setup.
func DefaultConfig() Config {
	return Config{
		Grid:               types.DefaultGrid(),
		StartLength:        types.StartLength,
		StartHead:          types.Point{X: 4, Y: 3},
		InitialInterval:    100 * time.Millisecond,
		BaseInterval:       200 * time.Millisecond,
		DifficultyConstant: 20,
		SpawnDivisor:       3.0,
		MaxFood:            types.MaxFood,
		MaxHighScores:      types.MaxHighScores,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Grid.Width <= 0 || c.Grid.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	case c.StartLength < 1:
		return fmt.Errorf("%w: start length %d", ErrInvalidConfig, c.StartLength)
	case !c.Grid.Contains(c.StartHead) || !c.Grid.Contains(types.Point{X: c.StartHead.X - c.StartLength + 1, Y: c.StartHead.Y}):
		return fmt.Errorf("%w: snake of length %d at %v does not fit the grid", ErrInvalidConfig, c.StartLength, c.StartHead)
	case c.InitialInterval <= 0 || c.BaseInterval <= 0:
		return fmt.Errorf("%w: intervals must be positive", ErrInvalidConfig)
	case c.DifficultyConstant <= 0:
		return fmt.Errorf("%w: difficulty constant %v", ErrInvalidConfig, c.DifficultyConstant)
	case c.SpawnDivisor <= 0:
		return fmt.Errorf("%w: spawn divisor %v", ErrInvalidConfig, c.SpawnDivisor)
	case c.MaxFood < 1:
		return fmt.Errorf("%w: max food %d", ErrInvalidConfig, c.MaxFood)
	case c.MaxHighScores < 1:
		return fmt.Errorf("%w: max high scores %d", ErrInvalidConfig, c.MaxHighScores)
	}
	return nil
}

// TickInterval returns the tick interval for a score. It shrinks towards
// zero as the score grows, halving at score == DifficultyConstant.
func (c Config) TickInterval(score int) time.Duration {
	k := c.DifficultyConstant
	d := time.Duration(float64(c.BaseInterval) * (k / (float64(score) + k)))
	return d.Truncate(time.Millisecond)
}
