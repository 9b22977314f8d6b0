package t2048

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// ID is the game identifier used by the front end and the journal.
const ID = "2048"

// Minimum terminal size for the board plus HUD.
const (
	minScreenW = boardW + 2
	minScreenH = hudHeight + boardH + 3
)

// Game adapts an engine.Session to the frame-driven front end: it turns
// actions into directions, advances the engine one state per tick, holds
// engine ticks while animations play and keeps the move journal.
type Game struct {
	logger *log.Logger
	policy engine.SpawnPolicy
	rand   func(seed int64) engine.Rand

	session *engine.Session
	seed    int64
	tick    uint64
	journal []engine.Direction
	anim    animator
	lastErr error

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger handed to the engine.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithPolicy sets the spawn rules used on every Reset.
func WithPolicy(p engine.SpawnPolicy) Option {
	return func(g *Game) {
		g.policy = p
	}
}

// WithRandSource replaces the engine's seeded generator.
func WithRandSource(src func(seed int64) engine.Rand) Option {
	return func(g *Game) {
		g.rand = src
	}
}

// New creates a game. Call Reset before the first Step.
func New(opts ...Option) *Game {
	g := &Game{
		logger: log.New(io.Discard),
		policy: engine.DefaultSpawnPolicy(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset starts a new game from cfg.Seed. The best score survives.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.tick = 0
	g.journal = nil
	g.anim = animator{}
	g.lastErr = nil
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	var err error
	if g.session == nil {
		g.session, err = engine.NewSession(cfg.Seed,
			engine.WithLogger(g.logger),
			engine.WithPolicy(g.policy),
			engine.WithRandSource(g.rand))
	} else {
		err = g.session.Reset(cfg.Seed)
	}
	if err != nil {
		// The policy is validated when the rules are loaded, so this only
		// fires on a programming error.
		g.logger.Error("cannot start session", "err", err)
		g.lastErr = err
	}
}

// Resize updates the screen dimensions.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.session == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.session.State() != engine.StateGameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.anim.active() {
		g.anim.advance()
		return core.StepResult{State: g.State()}
	}

	if a, ok := in.First(core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight); ok {
		g.session.Submit(directionFor(a))
	}

	before := g.session.Moves()
	if _, err := g.session.Tick(); err != nil {
		g.lastErr = err
	}

	moved := g.session.Moves() > before
	if moved {
		report := g.session.LastMove()
		g.journal = append(g.journal, report.Direction)
		g.anim.start(report)
	}
	return core.StepResult{State: g.State(), Moved: moved}
}

func directionFor(a core.Action) engine.Direction {
	switch a {
	case core.ActionUp:
		return engine.DirUp
	case core.ActionDown:
		return engine.DirDown
	case core.ActionLeft:
		return engine.DirLeft
	default:
		return engine.DirRight
	}
}

// State returns the platform view of the game.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Best:     g.session.Best(),
		GameOver: g.session.State() == engine.StateGameOver && !g.anim.active(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Moves returns the completed moves of the current game, in order.
func (g *Game) Moves() []engine.Direction {
	return append([]engine.Direction(nil), g.journal...)
}

// Err returns the last consistency fault reported by the engine, if any.
func (g *Game) Err() error {
	return g.lastErr
}
