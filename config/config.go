// Package config loads host settings from the environment and the command line.
//
// Environment variables (prefix SNAKE_) set the defaults; flags override them.
package config

import (
	"flag"
	"fmt"
	"path/filepath"
	"snake-game/game"
	"snake-game/game/store"
	"time"

	"github.com/caarlos0/env/v11"
)

const DataDir = "data"

// Config is what a host needs to build the engine, the store and the sound.
type Config struct {
	StoreKind string `env:"SNAKE_STORE"      envDefault:"json"`
	StorePath string `env:"SNAKE_STORE_PATH"`
	Seed      int64  `env:"SNAKE_SEED"` // 0 draws a fresh seed

	InitialInterval time.Duration `env:"SNAKE_INITIAL_INTERVAL" envDefault:"100ms"`
	BaseInterval    time.Duration `env:"SNAKE_BASE_INTERVAL"    envDefault:"200ms"`
	Difficulty      float64       `env:"SNAKE_DIFFICULTY"       envDefault:"20"`
	SpawnDivisor    float64       `env:"SNAKE_SPAWN_DIVISOR"    envDefault:"3"`
	MaxFood         int           `env:"SNAKE_MAX_FOOD"         envDefault:"10"`

	Sound   bool   `env:"SNAKE_SOUND" envDefault:"true"`
	LogFile string `env:"SNAKE_LOG_FILE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment, then applies command-line overrides from args
// (without the program name).
func Load(name string, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.StoreKind, "store", cfg.StoreKind, "Score store backend (json or sqlite)")
	fs.StringVar(&cfg.StorePath, "store-path", cfg.StorePath, "Score store location (default depends on backend)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for a fresh one")
	fs.DurationVar(&cfg.InitialInterval, "initial-interval", cfg.InitialInterval, "Tick interval before the first move")
	fs.DurationVar(&cfg.BaseInterval, "base-interval", cfg.BaseInterval, "Tick interval at score 0")
	fs.Float64Var(&cfg.Difficulty, "difficulty", cfg.Difficulty, "Score at which the tick interval halves")
	fs.Float64Var(&cfg.SpawnDivisor, "spawn-divisor", cfg.SpawnDivisor, "Extra food chance is interval seconds over this")
	fs.IntVar(&cfg.MaxFood, "max-food", cfg.MaxFood, "Most food cells on the board")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Play sound effects")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to this file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.StorePath == "" {
		cfg.StorePath = DefaultStorePath(cfg.StoreKind)
	}
	if _, err := cfg.Engine(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultStorePath picks a file under DataDir matching the backend.
func DefaultStorePath(kind string) string {
	if kind == store.BackendSQLite {
		return filepath.Join(DataDir, "scores.db")
	}
	return filepath.Join(DataDir, "scores.json")
}

// Engine converts the tuning values into a validated game.Config.
func (c Config) Engine() (game.Config, error) {
	gc := game.DefaultConfig()
	gc.InitialInterval = c.InitialInterval
	gc.BaseInterval = c.BaseInterval
	gc.DifficultyConstant = c.Difficulty
	gc.SpawnDivisor = c.SpawnDivisor
	gc.MaxFood = c.MaxFood
	if err := gc.Validate(); err != nil {
		return game.Config{}, err
	}
	return gc, nil
}

// OpenStore opens the configured score store.
func (c Config) OpenStore() (store.Store, error) {
	s, err := store.Open(c.StoreKind, c.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open %s store at %s: %w", c.StoreKind, c.StorePath, err)
	}
	return s, nil
}
