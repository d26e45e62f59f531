package game

import (
	"errors"
	"fmt"
	"snake-game/game/entity"
	"snake-game/game/manager"
	"snake-game/game/types"
	"time"

	"github.com/google/uuid"
)

var ErrInvariant = errors.New("game invariant violated")

// Random is the random source used for food placement.
type Random = manager.Random

// State is the per-run mutable part of the game. A loss replaces it.
type State struct {
	snake     *entity.Snake
	food      *manager.FoodManager
	direction types.Direction
	pending   types.Direction // NONE when no input is queued
	lastTail  types.Point
	interval  time.Duration
	tick      int
	paused    bool

	runID   string
	started time.Time
}

// Outcome reports what a call to AdvanceTick did.
type Outcome struct {
	Ticked     bool
	Ate        bool
	Lost       bool
	Collision  types.CollisionType
	FinalScore int
	HighScore  bool // final score entered the leaderboard
	Run        *types.RunRecord
}

// Game is the top-level application object: the current run plus the
// leaderboard that outlives it.
type Game struct {
	cfg        Config
	rng        Random
	now        func() time.Time
	collisions *manager.CollisionManager
	history    *manager.ScoreHistory
	state      *State

	lastScore    int
	hasLastScore bool
}

type Option func(*Game)

// WithClock replaces time.Now for run timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// NewGame creates a paused game. The random source is owned by the caller
// and must not be shared with other goroutines.
func NewGame(cfg Config, rng Random, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: random source is required", ErrInvalidConfig)
	}
	history, err := manager.NewScoreHistory(cfg.MaxHighScores, nil)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		rng:        rng,
		now:        time.Now,
		collisions: manager.NewCollisionManager(cfg.Grid),
		history:    history,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.state = g.newState()
	return g, nil
}

func (g *Game) newState() *State {
	head := g.cfg.StartHead
	return &State{
		snake:     entity.NewHorizontalSnake(head, g.cfg.StartLength),
		food:      manager.NewFoodManager(g.cfg.Grid, g.cfg.MaxFood, g.cfg.SpawnDivisor, g.collisions),
		direction: types.RIGHT,
		pending:   types.NONE,
		lastTail:  types.Point{X: head.X - g.cfg.StartLength, Y: head.Y},
		interval:  g.cfg.InitialInterval,
		paused:    true,
		runID:     uuid.NewString(),
	}
}

// RestoreScores loads a saved leaderboard. A corrupt list is rejected and
// the current leaderboard is kept.
func (g *Game) RestoreScores(scores []int) error {
	return g.history.Restore(scores)
}

// Reset starts a fresh paused run without touching the leaderboard.
func (g *Game) Reset() {
	g.state = g.newState()
}

// TogglePause flips between paused and running.
func (g *Game) TogglePause() {
	g.state.paused = !g.state.paused
}

// SubmitDirection queues d for the next tick. Input while paused and
// reversals of the current direction are dropped. The latest valid input
// before a tick wins.
func (g *Game) SubmitDirection(d types.Direction) {
	s := g.state
	if s.paused || d == types.NONE || d.IsOpposite(s.direction) {
		return
	}
	s.pending = d
}

// AdvanceTick moves the simulation one step. It does nothing while paused.
func (g *Game) AdvanceTick() Outcome {
	s := g.state
	if s.paused {
		return Outcome{}
	}

	// A run starts with its first move, not when the board was set up.
	if s.started.IsZero() {
		s.started = g.now()
	}

	if s.pending != types.NONE {
		s.direction = s.pending
		s.pending = types.NONE
	}

	score := g.Score()
	s.interval = g.cfg.TickInterval(score)

	newHead := s.snake.Head().Add(s.direction.ToPoint())
	if g.collisions.IsWallCollision(newHead) {
		return g.lost(types.WallCollision, score)
	}

	s.lastTail = s.snake.Tail()

	ate := s.food.Remove(newHead)
	if !ate {
		s.snake.PopBack()
	}

	// The tail cell released above is free again, so following the tail is legal.
	if g.collisions.IsSelfCollision(newHead, s.snake) {
		return g.lost(types.SelfCollision, score)
	}

	s.snake.PushFront(newHead)
	s.food.Update(g.rng, s.interval, s.snake)
	s.tick++

	return Outcome{Ticked: true, Ate: ate}
}

// lost ends the run with the score held before the fatal tick; the tail
// may already have been popped when a self collision is found.
func (g *Game) lost(cause types.CollisionType, score int) Outcome {
	s := g.state
	run := types.RunRecord{
		ID:        s.runID,
		StartTime: s.started,
		EndTime:   g.now(),
		Score:     score,
		Ticks:     s.tick,
		Cause:     cause,
	}
	recorded := g.history.Record(score)

	g.state = g.newState()
	g.lastScore = score
	g.hasLastScore = true

	return Outcome{
		Ticked:     true,
		Lost:       true,
		Collision:  cause,
		FinalScore: score,
		HighScore:  recorded,
		Run:        &run,
	}
}

// Score is derived from the snake length, never stored.
func (g *Game) Score() int {
	return g.state.snake.Len() - g.cfg.StartLength
}

// Snake returns the body cells, head first.
func (g *Game) Snake() []types.Point {
	return g.state.snake.Cells()
}

// Food returns the food cells in row-major order.
func (g *Game) Food() []types.Point {
	return g.state.food.Cells()
}

func (g *Game) Paused() bool {
	return g.state.paused
}

// LastScore returns the final score of the previous run, if any run ended.
func (g *Game) LastScore() (int, bool) {
	return g.lastScore, g.hasLastScore
}

func (g *Game) Interval() time.Duration {
	return g.state.interval
}

// PreviousTail is where the tail was before the last tick.
func (g *Game) PreviousTail() types.Point {
	return g.state.lastTail
}

// PreviousHead is where the head was before the last tick.
func (g *Game) PreviousHead() types.Point {
	return g.state.snake.At(1)
}

func (g *Game) Direction() types.Direction {
	return g.state.direction
}

// Pending returns the queued direction, NONE if there is none.
func (g *Game) Pending() types.Direction {
	return g.state.pending
}

func (g *Game) Tick() int {
	return g.state.tick
}

// HighScores returns the leaderboard, highest first.
func (g *Game) HighScores() []int {
	return g.history.Scores()
}

func (g *Game) Grid() types.Grid {
	return g.cfg.Grid
}

func (g *Game) Config() Config {
	return g.cfg
}

// RunID identifies the current run.
func (g *Game) RunID() string {
	return g.state.runID
}

// CheckInvariants reports state that no sequence of operations should
// produce. Callers treat a non-nil result as a bug: log it and Reset.
func (g *Game) CheckInvariants() error {
	s := g.state
	if err := s.snake.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvariant, err)
	}
	if s.snake.Len() < g.cfg.StartLength {
		return fmt.Errorf("%w: snake length %d below %d", ErrInvariant, s.snake.Len(), g.cfg.StartLength)
	}
	for _, p := range s.snake.Cells() {
		if !g.cfg.Grid.Contains(p) {
			return fmt.Errorf("%w: snake cell %v outside the board", ErrInvariant, p)
		}
		if s.food.Has(p) {
			return fmt.Errorf("%w: food under snake cell %v", ErrInvariant, p)
		}
	}
	if s.food.Count() > g.cfg.MaxFood {
		return fmt.Errorf("%w: %d food cells, limit %d", ErrInvariant, s.food.Count(), g.cfg.MaxFood)
	}
	if s.pending.IsOpposite(s.direction) {
		return fmt.Errorf("%w: pending %v reverses %v", ErrInvariant, s.pending, s.direction)
	}
	if err := g.history.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvariant, err)
	}
	return nil
}
