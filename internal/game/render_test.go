package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

func TestRenderBoard(t *testing.T) {
	b := grid.Board{{2048, 0, 0, 0}, {0, 4, 0, 0}}
	s := Open(Options{Store: seeded(t, b, "99"), Rand: &scripted{}})
	theme := config.DefaultTheme()

	screen := core.NewScreen(80, 24)
	s.Render(screen, theme)
	out := screen.String()

	for _, want := range []string{"2048", "Score: 2052", "Best: 99", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "GAME OVER") {
		t.Error("game over overlay on a live game")
	}

	// the 2048 tile carries its theme color
	found := false
	for y := 0; y < screen.Height() && !found; y++ {
		for x := 0; x < screen.Width(); x++ {
			if c := screen.GetCell(x, y); c.Rune == '4' && c.Style == theme.TileStyle(4) {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("tile 4 not drawn with its theme style")
	}
}

func TestRenderGameOver(t *testing.T) {
	done := grid.Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	s := Open(Options{Store: seeded(t, done, ""), Rand: &scripted{}})

	screen := core.NewScreen(80, 24)
	s.Render(screen, config.DefaultTheme())
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Errorf("missing game over overlay:\n%s", screen.String())
	}
}

func TestRenderTooSmall(t *testing.T) {
	s := Open(Options{Rand: &scripted{}})
	tests := []struct {
		w, h int
	}{
		{MinWidth - 1, 24},
		{80, MinHeight - 1},
		{20, 5},
	}
	for _, tt := range tests {
		screen := core.NewScreen(tt.w, tt.h)
		s.Render(screen, config.DefaultTheme())
		if !strings.Contains(screen.String(), "small") {
			t.Errorf("%dx%d: expected too-small notice:\n%s", tt.w, tt.h, screen.String())
		}
	}

	screen := core.NewScreen(MinWidth, MinHeight)
	s.Render(screen, config.DefaultTheme())
	if strings.Contains(screen.String(), "small") {
		t.Errorf("%dx%d should fit the board", MinWidth, MinHeight)
	}
}
