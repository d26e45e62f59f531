// Package session ties a game to its loop, its store and its sound. Both
// hosts drive a Session once per rendered frame.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"snake-game/game"
	"snake-game/game/manager"
	"snake-game/game/store"
	"snake-game/game/types"
	"snake-game/input"
	"sync"
	"time"
)

const (
	saveAttempts  = 3
	retryDelay    = 100 * time.Millisecond
	saveTimeout   = 5 * time.Second
	historyToLoad = game.DefaultRunLimit
)

// Sound plays the effect for a tick outcome.
type Sound interface {
	Play(out game.Outcome)
}

type noSound struct{}

func (noSound) Play(game.Outcome) {}

// persistJob is what the background writer stores after a loss.
type persistJob struct {
	scores []int
	run    types.RunRecord
}

// Session runs one game for the lifetime of a host. Frame must be called
// from a single goroutine; store writes happen in the background.
type Session struct {
	game  *game.Game
	loop  *game.Loop
	store store.Store
	stats *game.RunStats
	sound Sound

	jobs    chan persistJob
	wg      sync.WaitGroup
	mutex   sync.Mutex
	running bool
	closed  bool
}

type Option func(*Session)

func WithSound(s Sound) Option {
	return func(sess *Session) {
		if s != nil {
			sess.sound = s
		}
	}
}

func New(g *game.Game, st store.Store, opts ...Option) *Session {
	s := &Session{
		game:  g,
		loop:  game.NewLoop(g),
		store: st,
		stats: game.NewRunStats(game.DefaultRunLimit),
		sound: noSound{},
		jobs:  make(chan persistJob, 16),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load restores the leaderboard and recent runs. A corrupt leaderboard is
// logged and replaced by an empty one; only store failures are returned.
func (s *Session) Load(ctx context.Context) error {
	scores, err := s.store.LoadScores(ctx)
	if err != nil {
		return fmt.Errorf("load high scores: %w", err)
	}
	if err := s.game.RestoreScores(scores); err != nil {
		if !errors.Is(err, manager.ErrCorruptHistory) {
			return err
		}
		log.Printf("Ignoring saved high scores: %v", err)
	}

	runs, err := s.store.Runs(ctx, historyToLoad)
	if err != nil {
		return fmt.Errorf("load runs: %w", err)
	}
	for i := len(runs) - 1; i >= 0; i-- {
		s.stats.Add(runs[i])
	}
	log.Printf("Loaded %d high scores and %d runs", len(s.game.HighScores()), len(runs))
	return nil
}

// Start launches the background writer.
func (s *Session) Start() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.running || s.closed {
		return
	}
	s.running = true
	s.wg.Add(1)
	go s.persistLoop()
}

// Frame applies one frame of input, advances the game if a tick is due and
// reports whether the player asked to quit.
func (s *Session) Frame(f *input.Frame, now time.Time) bool {
	quit := f.Apply(s.game)

	out, ticked := s.loop.Update(now)
	if ticked {
		s.sound.Play(out)
		if out.Lost {
			s.finishRun(out)
		}
	}

	if err := s.game.CheckInvariants(); err != nil {
		log.Printf("Resetting run: %v", err)
		s.game.Reset()
	}
	return quit
}

func (s *Session) finishRun(out game.Outcome) {
	if out.Run == nil {
		return
	}
	s.stats.Add(*out.Run)
	log.Printf("Run %s ended by %s collision: score %d after %d ticks",
		out.Run.ID, out.Collision, out.FinalScore, out.Run.Ticks)

	job := persistJob{scores: s.game.HighScores(), run: *out.Run}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if !s.running {
		s.persist(job)
		return
	}
	// Blocks while the writer is behind so saves land in loss order.
	s.jobs <- job
}

func (s *Session) persistLoop() {
	defer s.wg.Done()
	for job := range s.jobs {
		s.persist(job)
	}
}

func (s *Session) persist(job persistJob) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	var err error
	for attempt := 0; attempt < saveAttempts; attempt++ {
		if err = s.store.SaveScores(ctx, job.scores); err == nil {
			break
		}
		time.Sleep(retryDelay)
	}
	if err != nil {
		log.Printf("Failed to save high scores after %d attempts: %v", saveAttempts, err)
	}

	if err := s.store.AppendRun(ctx, job.run); err != nil {
		log.Printf("Failed to store run %s: %v", job.run.ID, err)
	}
}

// Close drains pending writes, saves the leaderboard and closes the store.
func (s *Session) Close() error {
	s.mutex.Lock()
	if s.closed {
		s.mutex.Unlock()
		return nil
	}
	s.closed = true
	wasRunning := s.running
	s.running = false
	s.mutex.Unlock()

	if wasRunning {
		close(s.jobs)
		s.wg.Wait()
	}
	if c, ok := s.sound.(interface{ Cleanup() }); ok {
		c.Cleanup()
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	saveErr := s.store.SaveScores(ctx, s.game.HighScores())
	if saveErr != nil {
		saveErr = fmt.Errorf("save high scores: %w", saveErr)
	}
	return errors.Join(saveErr, s.store.Close())
}

// Progress is the fraction of the current tick interval already elapsed.
func (s *Session) Progress(now time.Time) float64 {
	return s.loop.Progress(now)
}

func (s *Session) Game() *game.Game {
	return s.game
}

func (s *Session) Stats() *game.RunStats {
	return s.stats
}
