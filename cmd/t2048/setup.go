package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// loadSettings merges config file, environment and the flags of cmd.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	return config.Load(flagConfig, cmd.Flags())
}

// newLogger builds the process logger. Logs go to the configured file, or
// to fallback when none is set. The returned closer releases the file.
func newLogger(s config.Settings, fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(s.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q", s.Log.Level)
	}

	out := fallback
	closer := func() {}
	if s.Log.File != "" {
		path, err := storage.ExpandHome(s.Log.File)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
