package entity

import (
	"fmt"
	"snake-game/game/types"
)

// Snake is the ordered body of the snake, head first.
// Cells live in a ring buffer so both ends move in O(1).
type Snake struct {
	ring     []types.Point
	head     int // ring index of the head
	length   int
	occupied map[types.Point]int // multiplicity, >1 only if the body is corrupt
}

// NewSnake builds a snake from cells ordered head to tail.
func NewSnake(cells ...types.Point) *Snake {
	capacity := 16
	for capacity < len(cells) {
		capacity *= 2
	}
	s := &Snake{
		ring:     make([]types.Point, capacity),
		occupied: make(map[types.Point]int, capacity),
	}
	for i := len(cells) - 1; i >= 0; i-- {
		s.PushFront(cells[i])
	}
	return s
}

// NewHorizontalSnake lays out a snake of the given length with its head at
// head and the body trailing to the left.
func NewHorizontalSnake(head types.Point, length int) *Snake {
	cells := make([]types.Point, length)
	for i := range cells {
		cells[i] = types.Point{X: head.X - i, Y: head.Y}
	}
	return NewSnake(cells...)
}

func (s *Snake) index(i int) int {
	return (s.head + i) % len(s.ring)
}

func (s *Snake) grow() {
	ring := make([]types.Point, len(s.ring)*2)
	for i := 0; i < s.length; i++ {
		ring[i] = s.ring[s.index(i)]
	}
	s.ring = ring
	s.head = 0
}

// PushFront adds a new head.
func (s *Snake) PushFront(p types.Point) {
	if s.length == len(s.ring) {
		s.grow()
	}
	s.head = (s.head - 1 + len(s.ring)) % len(s.ring)
	s.ring[s.head] = p
	s.length++
	s.occupied[p]++
}

// PopBack removes and returns the tail.
func (s *Snake) PopBack() types.Point {
	if s.length == 0 {
		return types.Point{}
	}
	idx := s.index(s.length - 1)
	p := s.ring[idx]
	s.length--
	if s.occupied[p] <= 1 {
		delete(s.occupied, p)
	} else {
		s.occupied[p]--
	}
	return p
}

func (s *Snake) Len() int {
	return s.length
}

func (s *Snake) Head() types.Point {
	return s.At(0)
}

func (s *Snake) Tail() types.Point {
	return s.At(s.length - 1)
}

// At returns the i-th cell counted from the head. Out of range yields the zero Point.
func (s *Snake) At(i int) types.Point {
	if i < 0 || i >= s.length {
		return types.Point{}
	}
	return s.ring[s.index(i)]
}

// Contains reports whether p is part of the body.
func (s *Snake) Contains(p types.Point) bool {
	return s.occupied[p] > 0
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []types.Point {
	cells := make([]types.Point, s.length)
	for i := range cells {
		cells[i] = s.ring[s.index(i)]
	}
	return cells
}

// Validate checks that no two body cells overlap.
func (s *Snake) Validate() error {
	if len(s.occupied) != s.length {
		for p, n := range s.occupied {
			if n > 1 {
				return fmt.Errorf("snake occupies %v %d times", p, n)
			}
		}
		return fmt.Errorf("snake occupancy out of sync: %d cells, %d tracked", s.length, len(s.occupied))
	}
	return nil
}
