package game

import (
	"snake-game/game/types"
	"sync"
	"time"
)

// DefaultRunLimit is how many recent runs RunStats keeps in detail.
const DefaultRunLimit = 100

// RunStats keeps the most recent finished runs and running totals over all
// runs seen, so averages stay exact after old records are dropped.
type RunStats struct {
	records []types.RunRecord
	limit   int

	games         int
	totalScore    int
	maxScore      int
	totalDuration time.Duration
	mutex         sync.RWMutex
}

// NewRunStats creates an empty RunStats keeping at most limit records.
func NewRunStats(limit int) *RunStats {
	if limit <= 0 {
		limit = DefaultRunLimit
	}
	return &RunStats{
		records: make([]types.RunRecord, 0, limit),
		limit:   limit,
	}
}

// Add records a finished run.
func (s *RunStats) Add(r types.RunRecord) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.records = append(s.records, r)
	if len(s.records) > s.limit {
		s.records = s.records[len(s.records)-s.limit:]
	}

	s.games++
	s.totalScore += r.Score
	if r.Score > s.maxScore {
		s.maxScore = r.Score
	}
	if d := r.Duration(); d > 0 {
		s.totalDuration += d
	}
}

// Records returns the retained runs, oldest first.
func (s *RunStats) Records() []types.RunRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]types.RunRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *RunStats) GamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.games
}

func (s *RunStats) AverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.games == 0 {
		return 0
	}
	return float64(s.totalScore) / float64(s.games)
}

func (s *RunStats) MaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.maxScore
}

// AverageDuration is the mean wall-clock length of a run.
func (s *RunStats) AverageDuration() time.Duration {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.games == 0 {
		return 0
	}
	return s.totalDuration / time.Duration(s.games)
}
