package core

// RuntimeConfig is passed to the game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // screen width in characters
	ScreenH  int   // screen height in characters
	TickRate int   // simulation ticks per second
	Seed     int64 // RNG seed; 0 asks the platform to pick one
}

// DefaultConfig returns an 80x24, 60 tick/s configuration.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// WithDefaults fills zero fields from DefaultConfig. Seed is left alone.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	d := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = d.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = d.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	return c
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int
	Best     int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
	// Moved is set on the tick a move finished resolving.
	Moved bool
}
