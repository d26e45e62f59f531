package session

import (
	"context"
	"fmt"
	"log"
	"snake-game/audio"
	"snake-game/config"
	"snake-game/game"
	"snake-game/random"

	"golang.org/x/exp/rand"
)

// Open builds a running session from host configuration: engine, seeded
// random source, store and, when enabled, sound. Audio failures only log.
func Open(ctx context.Context, cfg config.Config) (*Session, error) {
	engine, err := cfg.Engine()
	if err != nil {
		return nil, err
	}
	seed, err := random.Resolve(cfg.Seed)
	if err != nil {
		return nil, err
	}
	g, err := game.NewGame(engine, rand.New(rand.NewSource(uint64(seed))))
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}

	st, err := cfg.OpenStore()
	if err != nil {
		return nil, err
	}

	var opts []Option
	if cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else {
			opts = append(opts, WithSound(sm))
		}
	}

	s := New(g, st, opts...)
	if err := s.Load(ctx); err != nil {
		s.Close()
		return nil, err
	}
	s.Start()
	log.Printf("Session started: seed %d, %s store at %s", seed, cfg.StoreKind, cfg.StorePath)
	return s, nil
}
