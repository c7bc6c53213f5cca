package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the default chase configuration.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Grid: GridConfig{
			Rows:               30,
			Cols:               30,
			WallProbability:    0.1,
			PowerUpProbability: 0.02,
		},
		Scoring: ScoringConfig{
			Pellet:  10,
			PowerUp: 50,
		},
		TickRate: 10,
		Adversaries: []AdversaryConfig{
			{Name: "Red", Color: "red"},
			{Name: "Blue", Color: "blue"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultChaseYAML
}
