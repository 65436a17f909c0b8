package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Resume the saved game of the profile, or start a new one.

Controls:
  Arrows/WASD/hjkl  - Slide
  R/N               - New game
  ?                 - Show all keys
  Ctrl+S            - Save a text screenshot to ~/.t2048/screenshots
  Q/Esc/Ctrl+C      - Quit (the game is saved)

Examples:
  t2048 play
  t2048 play --profile alice
  t2048 play --theme ./mytheme.yaml
  t2048 play --skip-noop`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// stdout belongs to the alt screen
	logger, closeLog, err := newLogger(settings, io.Discard, "t2048")
	if err != nil {
		return err
	}
	defer closeLog()

	theme, err := config.LoadTheme(settings.Theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using default colors\n", err)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = settings.Seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	opts := game.Options{
		Rand:          rand.New(rand.NewSource(cfg.Seed)),
		Logger:        logger,
		Profile:       settings.Profile,
		SkipNoopMoves: settings.Rules.SkipNoopMoves,
	}

	store, err := storage.Open(settings.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("continuing without storage", "error", err)
		// Continue without storage - the game still works, it just won't be saved
		mem := storage.NewMemory()
		opts.Store = mem
		opts.Recorder = mem
	} else {
		defer store.Close()
		opts.Store = store.Profile(settings.Profile)
		opts.Recorder = store
	}

	session := game.Open(opts)
	logger.Info("session opened", "profile", settings.Profile, "seed", cfg.Seed)

	if err := tui.Run(session, theme, cfg, tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	snap := session.Snapshot()
	fmt.Printf("Score: %d  Best: %d\n", snap.Score, snap.HighScore)
	return nil
}
