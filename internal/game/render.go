package game

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	boardW = grid.Size*cellWidth + 1  // +1 for right border
	boardH = grid.Size*cellHeight + 1 // +1 for bottom border

	// MinWidth and MinHeight are the smallest screen the board fits on.
	MinWidth  = boardW
	MinHeight = hudHeight + 1 + boardH
)

var (
	titleStyle = core.Style{Fg: core.ColorYellow}
	hudStyle   = core.Style{Fg: core.ColorWhite}
	dimStyle   = core.Style{Fg: core.ColorDim}
	alertStyle = core.Style{Fg: core.ColorRed}
)

// Render draws the session onto dst using theme for tile colors.
func (s *Session) Render(dst *core.Screen, theme config.Theme) {
	dst.Clear()

	screen := core.NewRect(0, 0, dst.Width(), dst.Height())
	board := core.NewRect((dst.Width()-boardW)/2, hudHeight+1, boardW, boardH)
	if board.X < 0 || !screen.Contains(board.Right()-1, board.Bottom()-1) {
		renderTooSmall(dst)
		return
	}

	snap := s.Snapshot()
	renderHUD(dst, snap, board)
	renderBoard(dst, snap.Board, board, theme)
	if snap.GameOver {
		renderGameOver(dst, snap, board)
	}
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", alertStyle)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinWidth, MinHeight), dimStyle)
}

// renderHUD draws the title and score line.
func renderHUD(dst *core.Screen, snap Snapshot, board core.Rect) {
	title := "2048"
	cx, _ := board.Center()
	dst.DrawTextStyled(cx-len(title)/2, 0, title, titleStyle)

	dst.DrawTextStyled(board.X, 1, fmt.Sprintf("Score: %d", snap.Score), hudStyle)

	best := fmt.Sprintf("Best: %d", snap.HighScore)
	bestX := core.Clamp(board.Right()-len(best), board.X, dst.Width()-len(best))
	dst.DrawTextStyled(bestX, 1, best, hudStyle)

	info := fmt.Sprintf("Max: %d  Moves: %d", snap.MaxTile, snap.Moves)
	dst.DrawTextStyled(cx-len(info)/2, 2, info, dimStyle)
}

// renderBoard draws the grid lines and colored tiles.
func renderBoard(dst *core.Screen, b grid.Board, area core.Rect, theme config.Theme) {
	lines := theme.Board.Style()

	for y := range grid.Size + 1 {
		for x := range grid.Size + 1 {
			px := area.X + x*cellWidth
			py := area.Y + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == grid.Size:
				corner = '┐'
			case y == grid.Size && x == 0:
				corner = '└'
			case y == grid.Size && x == grid.Size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == grid.Size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == grid.Size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetStyled(px, py, corner, lines)

			if x < grid.Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetStyled(px+i, py, '─', lines)
				}
			}
			if y < grid.Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetStyled(px, py+i, '│', lines)
				}
			}
		}
	}

	for r := range grid.Size {
		for c := range grid.Size {
			val := b[r][c]
			inner := core.NewRect(area.X+c*cellWidth+1, area.Y+r*cellHeight+1, cellWidth-1, cellHeight-1)
			style := theme.TileStyle(val)
			dst.FillRect(inner, ' ', style)
			if val == 0 {
				continue
			}

			label := strconv.Itoa(val)
			pad := (inner.W - len(label)) / 2
			if pad < 0 {
				pad = 0
			}
			dst.DrawTextStyled(inner.X+pad, inner.Y, label, style)
		}
	}
}

// renderGameOver draws the end-of-game box over the board.
func renderGameOver(dst *core.Screen, snap Snapshot, board core.Rect) {
	lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", snap.Score)}
	if snap.Score > 0 && snap.Score == snap.HighScore {
		lines = append(lines, "New best!")
	}
	lines = append(lines, "Press R to restart")

	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	cx, cy := board.Center()
	box := core.NewRect(cx-(maxLen+4)/2, cy-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.Plain)
	dst.DrawBox(box, alertStyle)
	for i, line := range lines {
		st := hudStyle
		if i == 0 {
			st = alertStyle
		}
		dst.DrawTextStyled(cx-utf8.RuneCountInString(line)/2, box.Y+1+i, line, st)
	}
}
