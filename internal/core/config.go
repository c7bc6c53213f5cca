package core

import "time"

// RuntimeConfig is what a driver tells a game at Reset.
type RuntimeConfig struct {
	ScreenW  int   // Drawable width in cells
	ScreenH  int   // Drawable height in cells
	TickRate int   // Ticks per second
	Seed     int64 // 0 means pick one from the clock
}

// DefaultConfig returns an 80x24 screen at 10 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
	}
}

// WithDefaults fills in a zero seed from the clock and a non-positive tick
// rate from DefaultConfig.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultConfig().TickRate
	}
	return c
}

// GameState is the status a game reports to its driver.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
	Tick  uint64 // Simulation ticks advanced so far
}
