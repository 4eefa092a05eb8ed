package core

import "time"

// DefaultTickInterval is the fixed simulation step (~60Hz).
const DefaultTickInterval = 16 * time.Millisecond

// RuntimeConfig is what the platform passes to a game on Reset.
type RuntimeConfig struct {
	ScreenW      int           // Terminal width in cells
	ScreenH      int           // Terminal height in cells
	TickInterval time.Duration // Time between simulation ticks
	Seed         int64         // RNG seed; 0 means the platform picks one from the clock
	RepeatDelay  time.Duration // Terminal key auto-repeat delay; 0 uses the platform default
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 16ms ticks.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: DefaultTickInterval,
		Seed:         0,
	}
}

// TickIntervalFromFPS converts a frame rate into a whole-millisecond interval.
// 60 fps gives 16ms, matching the classic timer granularity.
func TickIntervalFromFPS(fps int) time.Duration {
	if fps <= 0 {
		return DefaultTickInterval
	}
	ms := 1000 / fps
	if ms < 1 {
		ms = 1
	}
	return time.Duration(ms) * time.Millisecond
}

// GameState is the summary a game reports to the platform after each tick.
type GameState struct {
	Score    int
	GameOver bool
	Ticks    int // Simulation ticks in the current run
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
