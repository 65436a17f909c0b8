// t2048 is the 2048 sliding-tile puzzle in the terminal.
//
// Usage:
//
//	t2048                  - Play (same as t2048 play)
//	t2048 play             - Resume or start a game
//	t2048 serve            - Start SSH server for remote play
//	t2048 scores           - Show finished games of a profile
//	t2048 reset [--all]    - Discard the saved board (and history with --all)
//
// Global flags:
//
//	--config <path>    - Config file (default: ~/.t2048/config.yaml or ./configs/config.yaml)
//	--db <path>        - Database path (default: ~/.t2048/t2048.db)
//	--profile <name>   - Save profile (default: local)
//	--seed <value>     - RNG seed for reproducible tile spawns
//
// Every setting can also come from the environment with a T2048_ prefix,
// e.g. T2048_DB_PATH or T2048_RULES_SKIP_NOOP_MOVES.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagConfig string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board with the arrow keys, WASD or hjkl. Equal tiles merge,
and a new tile appears after every move. The game ends when the board
is full and no neighbours match.

The board and high score are saved after every move, so quitting and
running t2048 again resumes where you left off.

Available commands:
  play     - Play (default)
  serve    - Start SSH server for remote play
  scores   - View finished games
  reset    - Start over

Examples:
  t2048
  t2048 --profile alice
  t2048 serve --ssh :2222
  t2048 scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config file")
	pf.String("db", "", "Path to database (default ~/.t2048/t2048.db)")
	pf.String("profile", "", "Save profile name (default local)")
	pf.Int64("seed", 0, "RNG seed (0 = random based on time)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-file", "", "Write logs to this file")

	addGameFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
}

// addGameFlags registers the flags that shape a game session.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().String("theme", "", "Path to a tile color theme YAML")
	cmd.Flags().Bool("skip-noop", false, "Do not spawn a tile when a move changes nothing")
}
