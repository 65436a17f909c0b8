package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character position of the screen.
type Cell struct {
	Rune  rune
	Style Style
}

var blank = Cell{Rune: ' '}

// Screen is a 2D character buffer the game draws into.
// The terminal front end turns it into styled output, so game rendering
// never touches ANSI escape codes.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a blank screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded; callers
// redraw every frame.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with unstyled spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Set places an unstyled rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetStyled(x, y, r, Plain)
}

// SetStyled places a rune with a style at the given position.
func (s *Screen) SetStyled(x, y int, r rune, st Style) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Style: st}
}

// Get returns the rune at the given position, or a space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position, or a blank cell when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y), clipped at the edges.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextStyled(x, y, text, Plain)
}

// DrawTextStyled writes styled text horizontally starting at (x, y).
func (s *Screen) DrawTextStyled(x, y int, text string, st Style) {
	i := 0
	for _, r := range text {
		s.SetStyled(x+i, y, r, st)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at row y.
func (s *Screen) DrawTextCentered(y int, text string, st Style) {
	x := (s.width - utf8.RuneCountInString(text)) / 2
	s.DrawTextStyled(x, y, text, st)
}

// FillRect fills a rectangular area with the given rune and style.
func (s *Screen) FillRect(r Rect, fill rune, st Style) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetStyled(x, y, fill, st)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, st Style) {
	if r.W < 2 || r.H < 2 {
		return
	}

	s.SetStyled(r.X, r.Y, '┌', st)
	s.SetStyled(r.Right()-1, r.Y, '┐', st)
	s.SetStyled(r.X, r.Bottom()-1, '└', st)
	s.SetStyled(r.Right()-1, r.Bottom()-1, '┘', st)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetStyled(x, r.Y, '─', st)
		s.SetStyled(x, r.Bottom()-1, '─', st)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetStyled(r.X, y, '│', st)
		s.SetStyled(r.Right()-1, y, '│', st)
	}
}

// String converts the buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the plain text of row y.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
