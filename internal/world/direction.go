package world

// Direction is one of the four cardinal directions.
// Declaration order is the fixed cycle order used by the controls.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right

	directionCount = 4
)

// Directions returns all directions in cycle order.
func Directions() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Valid returns true for the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Delta returns the unit step for the direction.
// Up and Left decrement, Down and Right increment.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Next returns the following direction in cycle order.
func (d Direction) Next() Direction {
	return Direction((int(d) + 1) % directionCount)
}

// Prev returns the preceding direction in cycle order.
func (d Direction) Prev() Direction {
	return Direction((int(d) + directionCount - 1) % directionCount)
}

// Agrees returns true if the signed offset (dx, dy) points strictly along d.
func (d Direction) Agrees(dx, dy int) bool {
	switch d {
	case Up:
		return dx == 0 && dy < 0
	case Down:
		return dx == 0 && dy > 0
	case Left:
		return dy == 0 && dx < 0
	case Right:
		return dy == 0 && dx > 0
	default:
		return false
	}
}

// Toward returns the direction of the dominant axis of (dx, dy).
// Ties favour the horizontal axis. A zero offset returns false.
func Toward(dx, dy int) (Direction, bool) {
	if dx == 0 && dy == 0 {
		return Up, false
	}
	if abs(dx) >= abs(dy) {
		if dx > 0 {
			return Right, true
		}
		return Left, true
	}
	if dy > 0 {
		return Down, true
	}
	return Up, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
