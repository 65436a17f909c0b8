package game

import "github.com/vovakirdan/tui-2048/internal/grid"

// Snapshot is a read-only copy of the session state for renderers.
type Snapshot struct {
	GameID    string
	Board     grid.Board
	Score     int
	HighScore int
	MaxTile   int
	Moves     int
	GameOver  bool
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		GameID:    s.gameID,
		Board:     s.board,
		Score:     s.score,
		HighScore: s.highScore,
		MaxTile:   grid.MaxTile(s.board),
		Moves:     s.moves,
		GameOver:  s.gameOver,
	}
}
