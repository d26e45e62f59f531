package manager

import (
	"errors"
	"fmt"
)

// ErrCorruptHistory marks a persisted score list that breaks the leaderboard rules.
var ErrCorruptHistory = errors.New("corrupt score history")

// ScoreHistory is the leaderboard of the best finished runs, highest first.
type ScoreHistory struct {
	scores   []int
	capacity int
}

// NewScoreHistory creates a leaderboard holding at most capacity scores,
// seeded with previously saved scores.
func NewScoreHistory(capacity int, saved []int) (*ScoreHistory, error) {
	h := &ScoreHistory{
		scores:   make([]int, 0, capacity),
		capacity: capacity,
	}
	if err := h.Restore(saved); err != nil {
		return h, err
	}
	return h, nil
}

// Restore replaces the leaderboard with saved scores after validating them.
// On error the current content is left untouched.
func (h *ScoreHistory) Restore(saved []int) error {
	if err := ValidateScores(saved, h.capacity); err != nil {
		return err
	}
	h.scores = append(h.scores[:0], saved...)
	return nil
}

// ValidateScores checks a score list against the leaderboard rules.
func ValidateScores(scores []int, capacity int) error {
	if len(scores) > capacity {
		return fmt.Errorf("%w: %d entries, limit %d", ErrCorruptHistory, len(scores), capacity)
	}
	for i, s := range scores {
		if s <= 0 {
			return fmt.Errorf("%w: entry %d is %d", ErrCorruptHistory, i, s)
		}
		if i > 0 && s > scores[i-1] {
			return fmt.Errorf("%w: entry %d (%d) above entry %d (%d)", ErrCorruptHistory, i, s, i-1, scores[i-1])
		}
	}
	return nil
}

// Record adds a finished run. Zero scores are not recorded. Equal scores
// keep their insertion order. It reports whether the score made the board.
func (h *ScoreHistory) Record(score int) bool {
	if score <= 0 {
		return false
	}
	pos := len(h.scores)
	for i, s := range h.scores {
		if score > s {
			pos = i
			break
		}
	}
	if pos >= h.capacity {
		return false
	}
	h.scores = append(h.scores, 0)
	copy(h.scores[pos+1:], h.scores[pos:])
	h.scores[pos] = score
	if len(h.scores) > h.capacity {
		h.scores = h.scores[:h.capacity]
	}
	return true
}

// Scores returns a copy of the leaderboard.
func (h *ScoreHistory) Scores() []int {
	out := make([]int, len(h.scores))
	copy(out, h.scores)
	return out
}

// Best returns the highest score, or 0 when empty.
func (h *ScoreHistory) Best() int {
	if len(h.scores) == 0 {
		return 0
	}
	return h.scores[0]
}

func (h *ScoreHistory) Len() int {
	return len(h.scores)
}

// Validate re-checks the in-memory leaderboard.
func (h *ScoreHistory) Validate() error {
	return ValidateScores(h.scores, h.capacity)
}
