// Package config provides YAML-based configuration loading for the chase game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase/sim"
)

// ChaseConfig contains all configuration for the chase game.
type ChaseConfig struct {
	Grid        GridConfig        `yaml:"grid"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	TickRate    int               `yaml:"tick_rate"`
	Adversaries []AdversaryConfig `yaml:"adversaries"`
}

// GridConfig defines maze generation parameters.
type GridConfig struct {
	Rows               int     `yaml:"rows"`
	Cols               int     `yaml:"cols"`
	WallProbability    float64 `yaml:"wall_probability"`
	PowerUpProbability float64 `yaml:"power_up_probability"`
}

// ScoringConfig defines points per consumable.
type ScoringConfig struct {
	Pellet  int `yaml:"pellet"`
	PowerUp int `yaml:"power_up"`
}

// AdversaryConfig defines one adversary's display identity.
type AdversaryConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// Validate checks that the config describes a playable game.
// All problems are reported together.
func (c ChaseConfig) Validate() error {
	var errs []error

	if c.Grid.Rows < 3 || c.Grid.Cols < 3 {
		errs = append(errs, fmt.Errorf("grid must be at least 3x3, got %dx%d", c.Grid.Rows, c.Grid.Cols))
	} else if (c.Grid.Rows-2)*(c.Grid.Cols-2) < 2 {
		errs = append(errs, fmt.Errorf("grid %dx%d has no interior cell for adversaries besides the player start",
			c.Grid.Rows, c.Grid.Cols))
	}
	if !inUnit(c.Grid.WallProbability) {
		errs = append(errs, fmt.Errorf("grid.wall_probability %v must be within [0, 1]", c.Grid.WallProbability))
	}
	if !inUnit(c.Grid.PowerUpProbability) {
		errs = append(errs, fmt.Errorf("grid.power_up_probability %v must be within [0, 1]", c.Grid.PowerUpProbability))
	}
	if c.Scoring.Pellet < 0 || c.Scoring.PowerUp < 0 {
		errs = append(errs, fmt.Errorf("scoring values must not be negative (pellet=%d, power_up=%d)",
			c.Scoring.Pellet, c.Scoring.PowerUp))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if len(c.Adversaries) == 0 {
		errs = append(errs, errors.New("at least one adversary is required"))
	}
	for i, a := range c.Adversaries {
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("adversaries[%d]: name is required", i))
		}
		if _, ok := core.ParseColor(a.Color); !ok {
			errs = append(errs, fmt.Errorf("adversaries[%d]: unknown color %q", i, a.Color))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Params converts the config into simulation parameters.
// The config should be validated first; unknown colors map to the default color.
func (c ChaseConfig) Params() sim.Params {
	ids := make([]sim.Identity, 0, len(c.Adversaries))
	for _, a := range c.Adversaries {
		color, _ := core.ParseColor(a.Color)
		ids = append(ids, sim.Identity{Name: a.Name, Color: color})
	}
	return sim.Params{
		Rows:               c.Grid.Rows,
		Cols:               c.Grid.Cols,
		WallProbability:    c.Grid.WallProbability,
		PowerUpProbability: c.Grid.PowerUpProbability,
		Scoring: sim.Scoring{
			Pellet:  c.Scoring.Pellet,
			PowerUp: c.Scoring.PowerUp,
		},
		Adversaries: ids,
	}
}

func inUnit(p float64) bool {
	return p >= 0 && p <= 1
}
