package grid

// SpawnTwoThreshold is the draw below which a spawned tile is a 2; draws at
// or above it spawn a 4.
const SpawnTwoThreshold = 0.9

// Random is a uniform source of floats in [0, 1). *math/rand.Rand
// satisfies it.
type Random interface {
	Float64() float64
}

// Spawn places one new tile in a uniformly chosen empty cell: 2 with
// probability 0.9, otherwise 4. The first draw picks the cell, the second
// picks the value. On a full board Spawn returns b unchanged and ok is false.
func Spawn(b Board, rng Random) (next Board, at Cell, ok bool) {
	empty := EmptyCells(b)
	if len(empty) == 0 {
		return b, Cell{}, false
	}

	idx := int(rng.Float64() * float64(len(empty)))
	if idx >= len(empty) {
		idx = len(empty) - 1
	}
	at = empty[idx]

	value := 4
	if rng.Float64() < SpawnTwoThreshold {
		value = 2
	}

	b[at.Row][at.Col] = value
	return b, at, true
}

// IsTerminal reports whether no move is possible: every cell is occupied
// and no two horizontally or vertically adjacent cells are equal. Only the
// right and down neighbours are checked since equality is symmetric.
func IsTerminal(b Board) bool {
	for r := range Size {
		for c := range Size {
			v := b[r][c]
			if v == 0 {
				return false
			}
			if c < Size-1 && b[r][c+1] == v {
				return false
			}
			if r < Size-1 && b[r+1][c] == v {
				return false
			}
		}
	}
	return true
}
