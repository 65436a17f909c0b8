package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show finished games",
	Long: `Display the finished games of a profile, best first.

An interactive table is shown when stdout is a terminal; otherwise, or
with --plain, the top 10 are printed as text.

Examples:
  t2048 scores
  t2048 scores --profile alice
  t2048 scores --plain | head -3`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print text instead of the interactive table")
}

func runScores(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	store, err := storage.Open(settings.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		return tui.RunScoreboard(store, settings.Profile, width, height)
	}

	return printScores(store, settings.Profile)
}

// printScores writes the top 10 games as text.
func printScores(store *storage.Store, profile string) error {
	games, err := store.TopGames(profile, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	best, err := store.BestScore(profile)
	if err != nil {
		return fmt.Errorf("retrieving best score: %w", err)
	}

	fmt.Printf("High Scores - %s (best %d)\n", profile, best)
	fmt.Println("========================")

	if len(games) == 0 {
		fmt.Println("No games finished yet.")
		return nil
	}

	for i, g := range games {
		fmt.Printf("%2d. %6d  max %5d  %4d moves  %s\n",
			i+1, g.Score, g.MaxTile, g.Moves, g.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
