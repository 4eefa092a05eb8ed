package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Autopilot tuning
const (
	autopilotLookahead = 160 // World pixels ahead of the player that count as a threat
	autopilotMinDrift  = 20  // Ticks before changing direction
	autopilotMaxDrift  = 60
	autopilotMinHold   = 4 // Ticks a jump is charged for
	autopilotMaxHold   = 36
)

// Autopilot plays the game from snapshots. It wanders left and right and
// charges a jump when a hazard approaches on the player's level.
type Autopilot struct {
	rng     core.Rand
	dir     int // -1 left, 0 idle, 1 right
	drift   int // Ticks left before picking a new direction
	holding int // Ticks left before releasing the jump
}

// NewAutopilot creates an autopilot drawing decisions from rng.
func NewAutopilot(rng core.Rand) *Autopilot {
	return &Autopilot{rng: rng}
}

// Next returns the input for the tick following snap.
func (a *Autopilot) Next(snap Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	if snap.Phase != PhaseActive {
		a.holding = 0
		return in
	}

	if a.drift <= 0 {
		a.dir = a.rng.Intn(3) - 1
		a.drift = autopilotMinDrift + a.rng.Intn(autopilotMaxDrift-autopilotMinDrift)
	}
	a.drift--
	switch a.dir {
	case -1:
		in.Set(core.ActionLeft)
	case 1:
		in.Set(core.ActionRight)
	}

	p := snap.Player
	switch {
	case a.holding > 0:
		a.holding--
		if !p.Charging {
			// The cap was reached and the jump went off on its own
			a.holding = 0
		} else if a.holding == 0 {
			in.Set(core.ActionJumpRelease)
		}
	case p.Grounded && threatAhead(snap):
		in.Set(core.ActionJump)
		a.holding = autopilotMinHold + a.rng.Intn(autopilotMaxHold-autopilotMinHold)
	}
	return in
}

// threatAhead reports whether an alien or obstacle is within reach in front
// of the player and vertically overlaps it.
func threatAhead(snap Snapshot) bool {
	p := snap.Player
	top := int(p.Y)
	bottom := top + p.Height
	for _, sp := range snap.Sprites {
		if sp.Kind != SpriteAlien && sp.Kind != SpriteObstacle {
			continue
		}
		dx := sp.X - p.X
		if dx < 0 || dx > autopilotLookahead {
			continue
		}
		if sp.Y < bottom && sp.Y+sp.Height > top {
			return true
		}
	}
	return false
}
