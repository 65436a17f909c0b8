package grid

import (
	"fmt"
	"strings"
)

// Direction is the edge tiles slide toward.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every direction in clockwise order.
var Directions = []Direction{Up, Right, Down, Left}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Rotations is the number of clockwise turns that bring d onto the left
// edge: Up 3, Right 2, Down 1, Left 0.
func (d Direction) Rotations() int {
	switch d {
	case Up:
		return 3
	case Right:
		return 2
	case Down:
		return 1
	default:
		return 0
	}
}

// ParseDirection converts a direction token. Both plain names ("up") and
// browser key names ("ArrowUp") are accepted, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(s, "Arrow"), "arrow")) {
	case "up":
		return Up, nil
	case "right":
		return Right, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	}
	return Left, fmt.Errorf("grid: unknown direction %q", s)
}

// Move slides every tile of b toward d and merges equal neighbours.
//
// All four directions share one primitive: the board is rotated so that d
// faces left, every row is combined, and the board is rotated back. Move
// does not report whether anything changed; compare with the input when
// that matters.
func Move(b Board, d Direction) Board {
	turns := d.Rotations()
	for range turns {
		b = Rotate(b)
	}
	for r := range Size {
		b[r] = Combine(b[r])
	}
	for range (Size - turns) % Size {
		b = Rotate(b)
	}
	return b
}

// CanMove reports whether moving toward d would change b.
func CanMove(b Board, d Direction) bool {
	return Move(b, d) != b
}
