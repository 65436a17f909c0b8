package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the 2048 SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH user name is its own save profile: boards, high scores and
finished games are kept apart, and a user can run one game at a time.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.t2048/host_key

Examples:
  t2048 serve                           # Listen on :23234 with auto-generated key
  t2048 serve --ssh :2222               # Listen on port 2222
  t2048 serve --host-key ./my_host_key  # Use specific host key
  t2048 serve --db ./t2048.db           # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().String("host-key", "", "Path to host key file (default ~/.t2048/host_key)")
	serveCmd.Flags().Duration("idle-timeout", 30*time.Minute, "Disconnect sessions idle this long")
	addGameFlags(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(settings, os.Stderr, "t2048-ssh")
	if err != nil {
		return err
	}
	defer closeLog()

	theme, err := config.LoadTheme(settings.Theme)
	if err != nil {
		logger.Warn("using default theme", "error", err)
	}

	hostKey, err := storage.ExpandHome(settings.SSH.HostKey)
	if err != nil {
		return err
	}

	store, err := storage.Open(settings.DBPath)
	if err != nil {
		logger.Warn("could not open database, games will not survive a restart", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:       settings.SSH.Address,
		HostKeyPath:   hostKey,
		IdleTimeout:   settings.SSH.IdleTimeout,
		Theme:         theme,
		SkipNoopMoves: settings.Rules.SkipNoopMoves,
	}, store, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting t2048 SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
