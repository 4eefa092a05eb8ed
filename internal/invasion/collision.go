package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// HitKind classifies the first thing the player touched this tick.
type HitKind int

const (
	HitNone HitKind = iota
	HitAlien
	HitObstacle
	HitPowerUp
)

// String returns the name used in logs.
func (h HitKind) String() string {
	switch h {
	case HitAlien:
		return "alien"
	case HitObstacle:
		return "obstacle"
	case HitPowerUp:
		return "power_up"
	default:
		return "none"
	}
}

// Fatal reports whether the hit ends the run.
func (h HitKind) Fatal() bool {
	return h == HitAlien || h == HitObstacle
}

// checkCollision tests aliens, then obstacles, then the power-up.
// The first intersection wins.
func checkCollision(player core.Rect, aliens []Alien, obstacles []Obstacle, slot *PowerUpSlot) HitKind {
	for _, a := range aliens {
		if player.Intersects(a.Bounds()) {
			return HitAlien
		}
	}
	for _, o := range obstacles {
		if player.Intersects(o.Bounds()) {
			return HitObstacle
		}
	}
	if p, ok := slot.Get(); ok && player.Intersects(p.Bounds()) {
		return HitPowerUp
	}
	return HitNone
}
