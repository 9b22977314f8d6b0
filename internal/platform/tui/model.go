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

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Game is a frame-driven game the model can run.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// EndReason tells a session-end hook why the current game is ending.
type EndReason string

const (
	EndRestart EndReason = "restart"
	EndBack    EndReason = "back"
	EndQuit    EndReason = "quit"
)

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithSessionEnd registers fn to run once per game, just before the game is
// restarted or left.
func WithSessionEnd(fn func(EndReason)) ModelOption {
	return func(m *Model) {
		m.onEnd = fn
	}
}

// WithLogger sets the model's logger.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSeedSource overrides how seeds for restarted games are picked.
func WithSeedSource(fn func() int64) ModelOption {
	return func(m *Model) {
		if fn != nil {
			m.nextSeed = fn
		}
	}
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	onEnd      func(EndReason)
	nextSeed   func() int64
	width      int
	height     int
	quitting   bool
	back       bool
	overLogged bool // game over has been logged for the current game
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	cfg = cfg.WithDefaults()
	m := Model{
		game:       game,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		logger:     log.New(io.Discard),
		nextSeed:   func() int64 { return time.Now().UnixNano() },
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	for _, opt := range opts {
		opt(&m)
	}
	// Use time-based seed if not specified
	if m.config.Seed == 0 {
		m.config.Seed = m.nextSeed()
	}
	m.help.Width = cfg.ScreenW
	m.config.ScreenH = m.gameHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.endSession(EndQuit)
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.endSession(EndBack)
		m.back = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.width, m.height)
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the game running at the new size; the help bar takes
// the bottom rows.
func (m Model) handleResize(w, h int) (tea.Model, tea.Cmd) {
	m.width = w
	m.height = h
	m.help.Width = w
	m.config.ScreenW = w
	m.config.ScreenH = m.gameHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	return m, nil
}

func (m Model) gameHeight() int {
	rows := 1
	if m.help.ShowAll {
		rows = len(m.keys.FullHelp()[0])
	}
	return max(m.height-rows, 0)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.endSession(EndRestart)
		m.config.Seed = m.nextSeed()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.overLogged = false
		m.inputFrame.Clear()
		m.logger.Info("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.overLogged {
		m.logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score)
		m.overLogged = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) endSession(reason EndReason) {
	if m.onEnd != nil {
		m.onEnd(reason)
	}
}

// saveScreenshot writes the current screen as plain text under
// ~/.slide2048/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".slide2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// GameResult tells the caller how the player left the game.
type GameResult struct {
	Back   bool // returned to the menu
	Quit   bool
	Config core.RuntimeConfig
}

// Result returns how the model finished.
func (m Model) Result() GameResult {
	cfg := m.config
	cfg.ScreenH = m.height
	return GameResult{Back: m.back, Quit: m.quitting, Config: cfg}
}

// RunGame runs game until the player quits or goes back to the menu.
func RunGame(game Game, cfg core.RuntimeConfig, opts ...ModelOption) (GameResult, error) {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{Config: cfg}, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return GameResult{Quit: true, Config: cfg}, nil
	}
	return m.Result(), nil
}
