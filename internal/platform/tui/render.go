package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
// A nil renderer uses the process's default lipgloss renderer; SSH sessions
// pass their own so colors match the remote terminal.
func RenderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[core.Style]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == core.Plain {
				sb.WriteString(run.String())
				continue
			}
			style, ok := styles[start]
			if !ok {
				style = lipglossStyle(r, start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// lipglossStyle maps a cell style to lipgloss. ColorDefault keeps the
// terminal color.
func lipglossStyle(r *lipgloss.Renderer, st core.Style) lipgloss.Style {
	style := r.NewStyle()
	if st.Fg != core.ColorDefault {
		style = style.Foreground(lipgloss.Color(strconv.Itoa(int(st.Fg))))
	}
	if st.Bg != core.ColorDefault {
		style = style.Background(lipgloss.Color(strconv.Itoa(int(st.Bg))))
	}
	return style
}
