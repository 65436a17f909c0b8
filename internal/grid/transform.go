package grid

// Rotate returns b turned 90 degrees clockwise: transpose, then reverse
// each resulting row.
func Rotate(b Board) Board {
	var out Board
	for r := range Size {
		for c := range Size {
			out[r][c] = b[Size-1-c][r]
		}
	}
	return out
}

// Slide moves the non-zero values of row to the front, keeping their
// order, and pads the tail with zeros.
func Slide(row Row) Row {
	var out Row
	n := 0
	for _, v := range row {
		if v != 0 {
			out[n] = v
			n++
		}
	}
	return out
}

// Combine merges equal neighbours toward the front of row. The row is
// compacted first, then scanned once left to right; a merged cell is not
// compared again in the same pass, so [2,2,2,0] becomes [4,2,0,0] and never
// [8,0,0,0]. The result is compacted again to close the gaps merges leave.
func Combine(row Row) Row {
	row = Slide(row)
	for i := 0; i < Size-1; i++ {
		if row[i] != 0 && row[i] == row[i+1] {
			row[i] *= 2
			row[i+1] = 0
		}
	}
	return Slide(row)
}
