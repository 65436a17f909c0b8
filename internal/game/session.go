// Package game holds one 2048 session: the board, score, high score and
// game-over flag, the move handler that drives the grid engine, and the
// persistence calls that keep a game alive across runs.
package game

import (
	"errors"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/grid"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Persistence keys.
const (
	KeyGrid      = "grid"      // JSON array-of-arrays board
	KeyHighScore = "highscore" // decimal integer
	KeyGameID    = "game_id"
	KeyMoves     = "moves"
)

// KV is the key-value store a session saves into. Get must return an error
// matching storage.ErrNotFound for keys that were never written.
type KV interface {
	Get(key string) (string, error)
	Put(key, value string) error
}

// ScoreRecorder receives finished games.
type ScoreRecorder interface {
	RecordGame(rec storage.GameRecord) error
}

// Options configures a session.
type Options struct {
	Store    KV
	Recorder ScoreRecorder // optional
	Rand     grid.Random   // nil seeds from the clock
	Logger   *log.Logger   // nil discards
	Profile  string

	// SkipNoopMoves suppresses the spawn when a move leaves the board
	// unchanged. Off by default: every accepted key press spawns a tile.
	SkipNoopMoves bool
}

// MoveResult describes the outcome of one move.
type MoveResult struct {
	Changed   bool      // the slide altered the board
	Spawned   bool      // a new tile was placed
	Cell      grid.Cell // where it was placed
	Score     int
	HighScore int
	GameOver  bool
}

// Session is a single game in progress. It is not safe for concurrent use;
// the UI event loop is its only caller.
type Session struct {
	store    KV
	recorder ScoreRecorder
	rng      grid.Random
	logger   *log.Logger
	profile  string
	skipNoop bool

	gameID    string
	board     grid.Board
	score     int
	highScore int
	moves     int
	gameOver  bool
	recorded  bool
}

// Open restores the saved game from opts.Store, or starts a fresh one with
// two tiles when there is no saved board or it cannot be decoded.
func Open(opts Options) *Session {
	s := &Session{
		store:    opts.Store,
		recorder: opts.Recorder,
		rng:      opts.Rand,
		logger:   opts.Logger,
		profile:  opts.Profile,
		skipNoop: opts.SkipNoopMoves,
	}
	if s.store == nil {
		s.store = storage.NewMemory()
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.profile == "" {
		s.profile = "local"
	}

	s.highScore = s.loadInt(KeyHighScore)

	if board, ok := s.loadBoard(); ok {
		s.board = board
		s.score = grid.Sum(board)
		s.gameOver = grid.IsTerminal(board)
		// a finished game was recorded by the run that finished it
		s.recorded = s.gameOver
		s.moves = s.loadInt(KeyMoves)
		s.gameID = s.loadString(KeyGameID)
		if s.gameID == "" {
			s.gameID = uuid.NewString()
		}
		s.logger.Debug("restored game", "game", s.gameID, "score", s.score)
		return s
	}

	s.start(2)
	s.logger.Debug("started game", "game", s.gameID)
	return s
}

// Reset abandons the current game and starts a new one seeded with a
// single tile. The high score is kept.
func (s *Session) Reset() {
	s.start(1)
	s.logger.Info("new game", "game", s.gameID, "profile", s.profile)
}

func (s *Session) start(tiles int) {
	s.gameID = uuid.NewString()
	s.board = grid.Empty()
	s.moves = 0
	s.gameOver = false
	s.recorded = false
	for range tiles {
		s.board, _, _ = grid.Spawn(s.board, s.rng)
	}
	s.score = grid.Sum(s.board)
	s.save()
}

// Move applies one directional move: slide and merge, spawn one tile,
// recompute score and game over, then persist. Moves on a finished game
// are ignored.
func (s *Session) Move(d grid.Direction) MoveResult {
	if s.gameOver {
		return s.result(MoveResult{})
	}

	next := grid.Move(s.board, d)
	res := MoveResult{Changed: next != s.board}
	if !res.Changed && s.skipNoop {
		return s.result(res)
	}

	next, res.Cell, res.Spawned = grid.Spawn(next, s.rng)
	s.board = next
	s.moves++
	s.score = grid.Sum(s.board)
	if s.score >= s.highScore {
		s.highScore = s.score
	}
	s.gameOver = grid.IsTerminal(s.board)

	s.save()
	if s.gameOver {
		s.finish()
	}
	return s.result(res)
}

func (s *Session) result(res MoveResult) MoveResult {
	res.Score = s.score
	res.HighScore = s.highScore
	res.GameOver = s.gameOver
	return res
}

// finish records the game once.
func (s *Session) finish() {
	if s.recorded {
		return
	}
	s.recorded = true
	s.logger.Info("game over", "game", s.gameID, "score", s.score, "max", grid.MaxTile(s.board), "moves", s.moves)

	if s.recorder == nil {
		return
	}
	rec := storage.GameRecord{
		GameID:  s.gameID,
		Profile: s.profile,
		Score:   s.score,
		MaxTile: grid.MaxTile(s.board),
		Moves:   s.moves,
	}
	if err := s.recorder.RecordGame(rec); err != nil {
		s.logger.Error("failed to record game", "game", s.gameID, "error", err)
	}
}

// save writes the board and counters. Failures are logged and the
// in-memory game goes on.
func (s *Session) save() {
	s.put(KeyGrid, grid.Encode(s.board))
	s.put(KeyHighScore, strconv.Itoa(s.highScore))
	s.put(KeyGameID, s.gameID)
	s.put(KeyMoves, strconv.Itoa(s.moves))
}

func (s *Session) put(key, value string) {
	if err := s.store.Put(key, value); err != nil {
		s.logger.Warn("failed to save", "key", key, "error", err)
	}
}

func (s *Session) loadBoard() (grid.Board, bool) {
	raw := s.loadString(KeyGrid)
	if raw == "" {
		return grid.Board{}, false
	}
	board, err := grid.Decode(raw)
	if err != nil {
		s.logger.Warn("discarding saved board", "error", err)
		return grid.Board{}, false
	}
	return board, true
}

func (s *Session) loadString(key string) string {
	raw, err := s.store.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("failed to load", "key", key, "error", err)
		}
		return ""
	}
	return raw
}

// loadInt reads a non-negative counter; missing or malformed values are 0.
func (s *Session) loadInt(key string) int {
	raw := s.loadString(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		s.logger.Warn("ignoring malformed value", "key", key, "value", raw)
		return 0
	}
	return n
}
