package tui

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/registry"
	"github.com/vovakirdan/tui-chase/internal/telemetry"
)

// helpHeight is the number of rows reserved below the game for the help line.
const helpHeight = 1

// Options configures a Model. Zero values are replaced with silent defaults.
type Options struct {
	Logger *log.Logger
	Tracer trace.Tracer
}

// Model is the Bubble Tea model that drives a single game: it polls keys,
// steps the game at a fixed tick rate and renders it.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	tracer    trace.Tracer
	input     core.InputFrame
	gameState core.GameState
	ticks     uint64

	awaitingExit bool // Game over shown; the next key quits
	quitting     bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenH is the full terminal height; the help line is taken from it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	cfg = cfg.WithDefaults()
	cfg.ScreenH = gameHeight(cfg.ScreenH)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = telemetry.NoopTracer()
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		tracer: tracer,
		input:  core.NewInputFrame(),
	}
}

func gameHeight(h int) int {
	return max(0, h-helpHeight)
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	_, span := m.tracer.Start(context.Background(), "game.start")
	m.game.Reset(m.config)
	span.SetAttributes(
		attribute.String("game.id", m.game.ID()),
		attribute.Int64("game.seed", m.config.Seed),
		attribute.Int("game.tick_rate", m.config.TickRate),
		attribute.Int("screen.width", m.config.ScreenW),
		attribute.Int("screen.height", m.config.ScreenH),
	)
	span.End()

	m.logger.Info("game started",
		"game", m.game.ID(),
		"seed", m.config.Seed,
		"tick_rate", m.config.TickRate,
	)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.awaitingExit {
		m.quitting = true
		return m, tea.Quit
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.logger.Info("quit", "score", m.gameState.Score, "ticks", m.ticks)
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.input.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = gameHeight(msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs one simulation step with the input gathered since the
// previous tick. Ticking stops once the game is over.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.awaitingExit {
		return m, nil
	}

	result := m.game.Step(m.input)
	m.gameState = result.State
	m.ticks = result.Tick
	m.input.Clear()

	if m.gameState.GameOver {
		m.awaitingExit = true
		m.recordGameOver()
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) recordGameOver() {
	_, span := m.tracer.Start(context.Background(), "game.over")
	span.SetAttributes(
		attribute.String("game.id", m.game.ID()),
		attribute.Int("game.score", m.gameState.Score),
		attribute.Int64("game.ticks", int64(m.ticks)),
	)
	span.End()

	m.logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score, "ticks", m.ticks)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	out := RenderScreen(m.screen)
	if !m.awaitingExit {
		out += "\n" + helpStyle.Render(m.help.View(m.keys))
	}
	return out
}

// GameState returns the state after the most recent tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// AwaitingExit reports whether the game is over and waiting for a key.
func (m Model) AwaitingExit() bool {
	return m.awaitingExit
}

// Run starts the Bubble Tea program with the given model.
func Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
