package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
)

// Rows reserved below the board: one status line plus the help view.
const (
	shortFooter = 2
	fullFooter  = 5
)

// Model is the Bubble Tea model for one game session. It has no tick loop:
// each key press is handled to completion inside Update.
type Model struct {
	session  *game.Session
	theme    config.Theme
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     *KeyMapper
	help     help.Model
	renderer *lipgloss.Renderer
	logger   *log.Logger

	screenshotDir string
	status        string
	quitting      bool
}

// ModelOption customizes a Model.
type ModelOption func(*Model)

// WithRenderer sets the lipgloss renderer used for colors.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(m *Model) { m.renderer = r }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// WithScreenshotDir sets where ctrl+s writes screen dumps. Empty disables
// screenshots.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) { m.screenshotDir = dir }
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *game.Session, theme config.Theme, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	m := Model{
		session: session,
		theme:   theme,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-shortFooter, 0)),
		config:  cfg,
		keys:    NewKeyMapper(),
		help:    help.New(),
		logger:  log.New(io.Discard),
	}
	if home, err := os.UserHomeDir(); err == nil {
		m.screenshotDir = filepath.Join(home, config.AppDir, "screenshots")
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.help.Width = cfg.ScreenW
	return m
}

// Init implements tea.Model. 2048 is event-driven, so there is nothing to
// start.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	m.status = ""

	if action.IsMove() {
		dir, _ := Direction(action)
		res := m.session.Move(dir)
		m.logger.Debug("move", "dir", dir, "changed", res.Changed, "score", res.Score)
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNewGame:
		m.session.Reset()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.status = "screenshot failed"
		} else {
			m.status = "saved " + path
		}
	}
	return m, nil
}

// layout sizes the board area to what the footer leaves free.
func (m *Model) layout() {
	footer := shortFooter
	if m.help.ShowAll {
		footer = fullFooter
	}
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-footer, 0))
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", fmt.Errorf("no screenshot directory")
	}
	m.session.Render(m.screen, m.theme)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("2048_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen, m.theme)

	helpStyle := m.style().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.renderer, m.screen) + "\n" +
		helpStyle.Render(m.status) + "\n" +
		helpStyle.Render(m.help.View(m.keys.Keys()))
}

func (m Model) style() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// Run starts the Bubble Tea program with the given session.
func Run(session *game.Session, theme config.Theme, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(session, theme, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
