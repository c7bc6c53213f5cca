// Package registry maps game ids to factories. Games register themselves
// from init, and drivers create fresh instances by id, one per session.
package registry

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// Game is the contract between a game and the driver. Implementations hold
// pure game logic; input mapping, timing and terminal output belong to the
// driver.
type Game interface {
	// ID returns the registry id, e.g. "chase".
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new game sized for cfg's screen and seeded from cfg.Seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick using the frame's actions.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns score, game over and pause flags.
	State() core.GameState
}

// Resizable is implemented by games that can follow terminal resizes
// without being reset. Games that don't implement it are reset instead.
type Resizable interface {
	Resize(width, height int)
}

// Factory creates a new, not yet Reset, game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register adds a game factory under id.
// It panics if id is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q (registered: %v)", id, IDs())
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// IDs returns the registered ids in sorted order.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()

	return slices.Sorted(maps.Keys(factories))
}
