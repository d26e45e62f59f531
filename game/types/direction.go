package types

// Direction is a cardinal direction. NONE marks the absence of a direction.
type Direction int

const (
	NONE Direction = iota
	UP
	RIGHT
	DOWN
	LEFT
)

// ToPoint converts a Direction into a unit movement vector
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1} // y grows downwards
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return NONE
	}
}

// IsOpposite reports whether d points the exact other way from other.
func (d Direction) IsOpposite(other Direction) bool {
	return d != NONE && d.Opposite() == other
}

// TurnLeft returns the direction after a 90° counter-clockwise rotation.
func (d Direction) TurnLeft() Direction {
	switch d {
	case UP:
		return LEFT
	case RIGHT:
		return UP
	case DOWN:
		return RIGHT
	case LEFT:
		return DOWN
	default:
		return d
	}
}

// TurnRight returns the direction after a 90° clockwise rotation.
func (d Direction) TurnRight() Direction {
	switch d {
	case UP:
		return RIGHT
	case RIGHT:
		return DOWN
	case DOWN:
		return LEFT
	case LEFT:
		return UP
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}
