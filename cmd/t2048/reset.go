package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagResetAll bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the saved game",
	Long: `Discard the saved board of a profile so the next run starts fresh.
The high score and finished games are kept unless --all is given.

Examples:
  t2048 reset
  t2048 reset --profile alice --all`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetAll, "all", false, "Also clear the high score and game history")
}

func runReset(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	store, err := storage.Open(settings.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	if flagResetAll {
		if err := store.ClearProfile(settings.Profile); err != nil {
			return err
		}
		fmt.Printf("Cleared all data of profile %q\n", settings.Profile)
		return nil
	}

	kv := store.Profile(settings.Profile)
	for _, key := range []string{game.KeyGrid, game.KeyGameID, game.KeyMoves} {
		if err := kv.Delete(key); err != nil {
			return err
		}
	}
	fmt.Printf("Discarded saved game of profile %q\n", settings.Profile)
	return nil
}
