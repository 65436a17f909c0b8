package grid

import (
	"math/rand"
	"testing"
)

func randomBoard(rng *rand.Rand) Board {
	var b Board
	for r := range Size {
		for c := range Size {
			if rng.Intn(3) == 0 {
				continue
			}
			b[r][c] = 1 << (1 + rng.Intn(11))
		}
	}
	return b
}

func TestRotateClockwise(t *testing.T) {
	board := Board{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}

	expected := Board{
		{13, 9, 5, 1},
		{14, 10, 6, 2},
		{15, 11, 7, 3},
		{16, 12, 8, 4},
	}

	if got := Rotate(board); got != expected {
		t.Errorf("Rotate: got\n%v\nwant\n%v", got, expected)
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := range 200 {
		b := randomBoard(rng)
		got := Rotate(Rotate(Rotate(Rotate(b))))
		if got != b {
			t.Fatalf("case %d: four rotations changed the board:\n%v\n->\n%v", i, b, got)
		}
	}
}

func TestRotateLeavesInputUntouched(t *testing.T) {
	board := Board{
		{2, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 8, 0},
		{0, 0, 0, 16},
	}
	before := board

	rotated := Rotate(board)
	rotated[0][0] = 1024

	if board != before {
		t.Errorf("Rotate mutated its input: %v", board)
	}
}

func TestSlide(t *testing.T) {
	tests := []struct {
		name     string
		input    Row
		expected Row
	}{
		{"empty row", Row{0, 0, 0, 0}, Row{0, 0, 0, 0}},
		{"already compact", Row{2, 4, 0, 0}, Row{2, 4, 0, 0}},
		{"leading gap", Row{0, 0, 2, 4}, Row{2, 4, 0, 0}},
		{"interleaved gaps", Row{0, 2, 0, 2}, Row{2, 2, 0, 0}},
		{"full row", Row{2, 4, 8, 16}, Row{2, 4, 8, 16}},
		{"single tile at end", Row{0, 0, 0, 8}, Row{8, 0, 0, 0}},
		{"equal values do not merge", Row{2, 0, 2, 0}, Row{2, 2, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slide(tt.input)
			if got != tt.expected {
				t.Errorf("Slide(%v) = %v, want %v", tt.input, got, tt.expected)
			}
			if again := Slide(got); again != got {
				t.Errorf("Slide is not idempotent: Slide(%v) = %v", got, again)
			}
		})
	}
}

func TestSlideIdempotentOnRandomRows(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for range 500 {
		var row Row
		for i := range Size {
			if rng.Intn(2) == 0 {
				row[i] = 1 << (1 + rng.Intn(6))
			}
		}
		once := Slide(row)
		if twice := Slide(once); twice != once {
			t.Fatalf("Slide(Slide(%v)) = %v, want %v", row, twice, once)
		}
	}
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name     string
		input    Row
		expected Row
	}{
		{
			name:     "triple merges only the first pair",
			input:    Row{2, 2, 2, 0},
			expected: Row{4, 2, 0, 0},
		},
		{
			name:     "two pairs",
			input:    Row{2, 2, 2, 2},
			expected: Row{4, 4, 0, 0},
		},
		{
			name:     "pair separated by gaps",
			input:    Row{0, 2, 0, 2},
			expected: Row{4, 0, 0, 0},
		},
		{
			name:     "merged tile is not merged again",
			input:    Row{4, 4, 8, 0},
			expected: Row{8, 8, 0, 0},
		},
		{
			name:     "no merge possible",
			input:    Row{2, 4, 8, 16},
			expected: Row{2, 4, 8, 16},
		},
		{
			name:     "slide with gap",
			input:    Row{0, 0, 2, 2},
			expected: Row{4, 0, 0, 0},
		},
		{
			name:     "outer pair",
			input:    Row{2, 0, 0, 2},
			expected: Row{4, 0, 0, 0},
		},
		{
			name:     "trailing triple",
			input:    Row{0, 4, 4, 4},
			expected: Row{8, 4, 0, 0},
		},
		{
			name:     "empty row",
			input:    Row{0, 0, 0, 0},
			expected: Row{0, 0, 0, 0},
		},
		{
			name:     "single tile",
			input:    Row{0, 4, 0, 0},
			expected: Row{4, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Combine(tt.input); got != tt.expected {
				t.Errorf("Combine(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
