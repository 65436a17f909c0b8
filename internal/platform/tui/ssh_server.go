// Package tui is the terminal front end: the Bubble Tea game model, key
// bindings, screen rendering, the scoreboard and the Wish SSH server.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

type contextKey string

const sessionIDKey contextKey = "t2048-session"

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file. It is generated on
	// first start if missing.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	Theme         config.Theme
	SkipNoopMoves bool
}

// SSHServer serves one single-player game per SSH session. The SSH user
// name selects the save profile.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store // nil when running without a database
	logger *log.Logger

	mu       sync.Mutex
	active   map[string]string          // profile -> session id
	fallback map[string]*storage.Memory // per-profile saves when store is nil
}

// NewSSHServer creates a new SSH server. store may be nil, in which case
// games are kept in memory for the lifetime of the process.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	srv := &SSHServer{
		config:   cfg,
		store:    store,
		logger:   logger,
		active:   make(map[string]string),
		fallback: make(map[string]*storage.Memory),
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Middlewares run last to first: logging wraps the single-session
	// check, which wraps the game.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.exclusiveMiddleware,
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		wish.Fatalln(sess, "t2048 needs an interactive terminal, try ssh -t")
		return nil, nil
	}

	profile := sess.User()
	cfg := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
	}

	opts := game.Options{
		Profile:       profile,
		Logger:        s.logger.With("user", profile),
		SkipNoopMoves: s.config.SkipNoopMoves,
	}
	if s.store != nil {
		opts.Store = s.store.Profile(profile)
		opts.Recorder = s.store
	} else {
		mem := s.memoryFor(profile)
		opts.Store = mem
		opts.Recorder = mem
	}

	model := NewModel(game.Open(opts), s.config.Theme, cfg,
		WithRenderer(bubbletea.MakeRenderer(sess)),
		WithLogger(opts.Logger),
		WithScreenshotDir(""),
	)
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) memoryFor(profile string) *storage.Memory {
	s.mu.Lock()
	defer s.mu.Unlock()

	mem, ok := s.fallback[profile]
	if !ok {
		mem = storage.NewMemory()
		s.fallback[profile] = mem
	}
	return mem
}

// claim marks profile as playing. It fails if another session holds it.
func (s *SSHServer) claim(profile, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.active[profile]; busy {
		return false
	}
	s.active[profile] = id
	return true
}

func (s *SSHServer) release(profile string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, profile)
}

// exclusiveMiddleware allows one game per profile, since a save slot has a
// single writer.
func (s *SSHServer) exclusiveMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		id, _ := sess.Context().Value(sessionIDKey).(string)
		if !s.claim(sess.User(), id) {
			s.logger.Warn("rejected concurrent session", "session", id, "user", sess.User())
			wish.Fatalln(sess, "a game for this user is already running")
			return
		}
		defer s.release(sess.User())
		next(sess)
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		id := uuid.NewString()
		sess.Context().SetValue(sessionIDKey, id)

		s.logger.Info("session started",
			"session", id,
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"session", id,
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT/SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-done:
	case err := <-errc:
		return fmt.Errorf("ssh server: %w", err)
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
