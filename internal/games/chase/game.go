// Package chase implements the maze chase game: the player eats pellets and
// power-ups while random-walking adversaries try to land on it.
// Simulation rules live in the sim subpackage; this package adapts them to
// the platform's Game interface and draws them into a screen buffer.
package chase

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase/sim"
	"github.com/vovakirdan/tui-chase/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "chase"

// Layout constants
const (
	hudHeight = 2 // Score line plus separator
	cellWidth = 2 // Terminal columns per maze cell, keeps cells roughly square
)

// Visual characters for rendering
const (
	WallChar      = '█'
	PelletChar    = '·'
	PowerUpChar   = '•'
	PlayerChar    = '●'
	AdversaryChar = '●'
)

// Colors for the maze and player; adversaries carry their own.
const (
	WallColor    = core.ColorBlue
	PelletColor  = core.ColorWhite
	PowerUpColor = core.ColorGreen
	PlayerColor  = core.ColorBrightYellow
)

// Game adapts a sim.State to the registry.Game interface.
type Game struct {
	cfg    config.ChaseConfig
	state  *sim.State
	params sim.Params // Params of the current game, after fitting to the screen

	paused   bool
	screenW  int
	screenH  int
	tooSmall bool
}

var (
	activeConfig   = config.DefaultChaseConfig()
	activeConfigMu sync.RWMutex
)

// SetConfig sets the configuration used by games created from the registry.
func SetConfig(cfg config.ChaseConfig) {
	activeConfigMu.Lock()
	defer activeConfigMu.Unlock()
	activeConfig = cfg
}

func currentConfig() config.ChaseConfig {
	activeConfigMu.RLock()
	defer activeConfigMu.RUnlock()
	return activeConfig
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New(currentConfig())
	})
}

// New creates a chase game with the given configuration.
// The game is not playable until Reset is called.
func New(cfg config.ChaseConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze Chase"
}

// Reset generates a new maze from the configured parameters and cfg.Seed.
// When the screen is known and too small for the configured grid, the grid
// is shrunk to fit, keeping at least one interior cell besides the start.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false

	g.params = g.cfg.Params()
	if cfg.ScreenW > 0 && cfg.ScreenH > 0 {
		g.params.Rows = core.Clamp(g.params.Rows, 3, cfg.ScreenH-hudHeight)
		g.params.Cols = core.Clamp(g.params.Cols, 3, cfg.ScreenW/cellWidth)
		// Adversaries need an interior cell besides the player's start.
		if g.params.Rows == 3 && g.params.Cols == 3 {
			g.params.Cols = 4
		}
	}

	g.state = sim.NewGame(g.params, rand.New(rand.NewSource(cfg.Seed)))
	g.updateFit()
}

// Resize records new terminal dimensions. The maze is kept; if it no longer
// fits, the game holds until the window grows again.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.updateFit()
}

func (g *Game) updateFit() {
	if g.state == nil || g.screenW <= 0 || g.screenH <= 0 {
		g.tooSmall = false
		return
	}
	area := core.NewRect(0, 0, g.screenW, g.screenH)
	g.tooSmall = !area.Fits(mazeWidth(g.params.Cols), g.params.Rows+hudHeight)
}

// Step advances the simulation by one tick using the frame's direction.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == nil {
		return core.StepResult{State: g.State()}
	}

	// A pause toggle uses up the tick.
	if in.Has(core.ActionPause) && g.state.Running() {
		g.paused = !g.paused
		return core.StepResult{State: g.State(), Tick: g.state.Tick()}
	}

	if g.paused || g.tooSmall || !g.state.Running() {
		return core.StepResult{State: g.State(), Tick: g.state.Tick()}
	}

	g.state.Advance(IntentFor(in.Direction()))
	return core.StepResult{State: g.State(), Tick: g.state.Tick()}
}

// IntentFor maps a platform action to a simulation intent.
// Non-directional actions map to DirNone.
func IntentFor(a core.Action) sim.Direction {
	switch a {
	case core.ActionUp:
		return sim.DirUp
	case core.ActionDown:
		return sim.DirDown
	case core.ActionLeft:
		return sim.DirLeft
	case core.ActionRight:
		return sim.DirRight
	default:
		return sim.DirNone
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Score(),
		GameOver: !g.state.Running(),
		Paused:   g.paused,
	}
}

// Snapshot returns a copy of the simulation state.
func (g *Game) Snapshot() sim.Snapshot {
	if g.state == nil {
		return sim.Snapshot{}
	}
	return g.state.Snapshot()
}

// GridSize returns the dimensions of the current maze.
func (g *Game) GridSize() (rows, cols int) {
	return g.params.Rows, g.params.Cols
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	if g.state == nil {
		return "not started"
	}
	snap := g.state.Snapshot()
	s := fmt.Sprintf("Tick: %d, Score: %d, Phase: %v\n", snap.Tick, snap.Score(), snap.Phase)
	s += fmt.Sprintf("Player: %v facing %v\n", snap.Player.Pos, snap.Player.Dir)
	for _, a := range snap.Adversaries {
		s += fmt.Sprintf("%s: %v facing %v\n", a.Name, a.Pos, a.Dir)
	}
	return s
}
