package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "plain")
	s.DrawTextStyled(6, 0, "red", core.Style{Fg: core.ColorRed})
	s.FillRect(core.NewRect(0, 1, 4, 1), '#', core.Style{Fg: core.ColorWhite, Bg: 141})
	s.DrawTextCentered(2, "mid", core.Style{Bg: 230})

	// io.Discard is not a terminal, so no escape codes are emitted
	r := lipgloss.NewRenderer(io.Discard)
	if got, want := RenderScreen(r, s), s.String(); got != want {
		t.Errorf("RenderScreen() =\n%q\nwant\n%q", got, want)
	}
}

func TestLipglossStyle(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)

	st := lipglossStyle(r, core.Style{Fg: core.ColorRed, Bg: 141})
	if fg, ok := st.GetForeground().(lipgloss.Color); !ok || fg != "1" {
		t.Errorf("foreground = %v, want 1", st.GetForeground())
	}
	if bg, ok := st.GetBackground().(lipgloss.Color); !ok || bg != "141" {
		t.Errorf("background = %v, want 141", st.GetBackground())
	}

	plain := lipglossStyle(r, core.Plain)
	if _, ok := plain.GetForeground().(lipgloss.NoColor); !ok {
		t.Errorf("default foreground = %v, want NoColor", plain.GetForeground())
	}
}
