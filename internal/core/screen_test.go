package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	st := Style{Fg: ColorWhite, Bg: ColorRed}
	s.SetStyled(1, 1, '#', st)
	if c := s.GetCell(1, 1); c.Rune != '#' || c.Style != st {
		t.Errorf("GetCell(1, 1) = %+v, expected '#' with %+v", c, st)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(0, 0, 10, 10), 'X', Style{Bg: ColorGreen})

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1)[2:7]; got != "Hello" {
		t.Errorf("DrawText: row 1 holds %q, expected Hello", got)
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "█2█")

	if s.Get(0, 0) != '█' || s.Get(1, 0) != '2' || s.Get(2, 0) != '█' {
		t.Errorf("multibyte text misplaced: %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", Plain)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, row is %q", s.Row(2))
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	st := Style{Bg: ColorYellow}
	s.FillRect(NewRect(2, 2, 3, 3), ' ', st)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 2 && y < 5
			got := s.GetCell(x, y).Style == st
			if got != inside {
				t.Errorf("FillRect: cell (%d, %d) styled=%v, expected %v", x, y, got, inside)
			}
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 5, 3), Plain)

	expected := []string{
		"┌───┐",
		"│   │",
		"└───┘",
	}
	for y, want := range expected {
		if got := []rune(s.Row(y))[:5]; string(got) != want {
			t.Errorf("row %d = %q, expected %q", y, string(got), want)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(1, 1, 'X')

	s.Resize(20, 8)
	if s.Width() != 20 || s.Height() != 8 {
		t.Fatalf("Resize: got %dx%d, expected 20x8", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should clear the buffer")
	}

	s.Resize(-3, -3)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative Resize gave %dx%d, expected 0x0", s.Width(), s.Height())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 || lines[0] != "abc" || lines[1] != "de " {
		t.Errorf("String() = %q", s.String())
	}
}
