package game

type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// DirectionFrom maps a key symbol to a direction, false means the symbol should be ignored.
func DirectionFrom(r rune) (Direction, bool) {
	switch r {
	case 'w', 'i':
		return Up, true
	case 'a', 'j':
		return Left, true
	case 's', 'k':
		return Down, true
	case 'd', 'l':
		return Right, true
	}
	return Up, false
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	}
	return Left
}

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
	}
	return "unknown"
}
