// Package grid implements the 2048 grid engine: rotation, row slide and
// combine, directional moves, random tile spawning and terminal-state
// detection. Every function is pure except Spawn, which reads from the
// injected random source.
package grid

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Size is the fixed board dimension.
const Size = 4

// Board is a Size x Size matrix of tile values. A cell is 0 when empty,
// otherwise a power of two >= 2.
//
// Board is a value type: assigning or passing it copies every cell, so
// transforms never alias their input.
type Board [Size][Size]int

// Row is one line of the board, ordered toward the merge edge.
type Row [Size]int

// Cell addresses a single board position.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ErrInvalidBoard is returned when a decoded board breaks the shape or
// value invariants.
var ErrInvalidBoard = errors.New("grid: invalid board")

// Empty returns a board with no tiles.
func Empty() Board {
	return Board{}
}

// Equal reports whether two boards hold the same values.
func Equal(a, b Board) bool {
	return a == b
}

// EmptyCells returns the empty positions in row-major order.
func EmptyCells(b Board) []Cell {
	var cells []Cell
	for r := range Size {
		for c := range Size {
			if b[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Sum returns the total of all tile values, which is the game score.
func Sum(b Board) int {
	total := 0
	for r := range Size {
		for c := range Size {
			total += b[r][c]
		}
	}
	return total
}

// MaxTile returns the largest tile on the board, or 0 for an empty board.
func MaxTile(b Board) int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			if b[r][c] > maxVal {
				maxVal = b[r][c]
			}
		}
	}
	return maxVal
}

// TileCount returns the number of occupied cells.
func TileCount(b Board) int {
	return Size*Size - len(EmptyCells(b))
}

// Validate checks that every cell is 0 or a power of two >= 2.
func Validate(b Board) error {
	for r := range Size {
		for c := range Size {
			if v := b[r][c]; !validTile(v) {
				return fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidBoard, r, c, v)
			}
		}
	}
	return nil
}

func validTile(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// MarshalJSON encodes the board as an array of row arrays.
func (b Board) MarshalJSON() ([]byte, error) {
	rows := make([][]int, Size)
	for r := range Size {
		rows[r] = b[r][:]
	}
	return json.Marshal(rows)
}

// UnmarshalJSON decodes an array of row arrays. Ragged, wrongly sized or
// non power-of-two input is rejected and leaves b untouched.
func (b *Board) UnmarshalJSON(data []byte) error {
	var rows [][]int
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBoard, err)
	}
	if len(rows) != Size {
		return fmt.Errorf("%w: %d rows, want %d", ErrInvalidBoard, len(rows), Size)
	}

	var next Board
	for r, row := range rows {
		if len(row) != Size {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, r, len(row), Size)
		}
		copy(next[r][:], row)
	}
	if err := Validate(next); err != nil {
		return err
	}

	*b = next
	return nil
}

// Decode parses a serialized board.
func Decode(data string) (Board, error) {
	var b Board
	if err := json.Unmarshal([]byte(data), &b); err != nil {
		if errors.Is(err, ErrInvalidBoard) {
			return Board{}, err
		}
		return Board{}, fmt.Errorf("%w: %v", ErrInvalidBoard, err)
	}
	return b, nil
}

// Encode serializes a board as a JSON array of arrays.
func Encode(b Board) string {
	// Marshalling a fixed-size int matrix cannot fail.
	data, _ := json.Marshal(b)
	return string(data)
}
