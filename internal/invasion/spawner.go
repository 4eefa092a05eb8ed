package invasion

import (
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Spawner decides when aliens, obstacles and power-ups appear.
// Aliens come in bursts of at most cfg.Alien.Burst, each burst followed by
// a forced gap of cfg.Alien.GapTicks ticks.
type Spawner struct {
	cfg         config.SpawnConfig
	rng         core.Rand
	worldW      int
	consecutive int // Aliens spawned since the last gap
	gap         int // Ticks left in the current gap
}

// NewSpawner creates a spawner that places entities at the right edge.
func NewSpawner(cfg config.SpawnConfig, rng core.Rand, worldW int) *Spawner {
	return &Spawner{
		cfg:    cfg,
		rng:    rng,
		worldW: worldW,
	}
}

// Reset clears the rate-limiting counters.
func (s *Spawner) Reset() {
	s.consecutive = 0
	s.gap = 0
}

// Gap returns the ticks left before aliens may spawn again.
func (s *Spawner) Gap() int {
	return s.gap
}

// Consecutive returns the aliens spawned since the last gap.
func (s *Spawner) Consecutive() int {
	return s.consecutive
}

// SpawnAlien runs one tick of the alien policy and returns the new alien, if any.
func (s *Spawner) SpawnAlien(platforms []Platform) (Alien, bool) {
	a := s.cfg.Alien
	if s.gap > 0 {
		s.gap--
		return Alien{}, false
	}
	if s.consecutive >= a.Burst {
		s.gap = a.GapTicks
		s.consecutive = 0
		return Alien{}, false
	}
	if !s.roll(a.Chance, a.Roll) {
		return Alien{}, false
	}

	pl := s.pickPlatform(platforms)
	alien := Alien{
		X:      s.worldW,
		Y:      pl.Y - a.Lift,
		Width:  s.sizeIn(a.MinSize, a.MaxSize),
		Height: s.sizeIn(a.MinSize, a.MaxSize),
		Speed:  a.Speed,
	}
	s.consecutive++
	return alien, true
}

// SpawnObstacle rolls for a new obstacle.
func (s *Spawner) SpawnObstacle(platforms []Platform) (Obstacle, bool) {
	o := s.cfg.Obstacle
	if !s.roll(o.Chance, o.Roll) {
		return Obstacle{}, false
	}

	pl := s.pickPlatform(platforms)
	return Obstacle{
		X:      s.worldW,
		Y:      pl.Y - o.Lift,
		Width:  s.sizeIn(o.MinSize, o.MaxSize),
		Height: s.sizeIn(o.MinSize, o.MaxSize),
		Speed:  o.Speed,
	}, true
}

// SpawnPowerUp rolls for a power-up. Nothing is rolled while one is live.
func (s *Spawner) SpawnPowerUp(platforms []Platform, slot *PowerUpSlot) bool {
	u := s.cfg.PowerUp
	if slot.Present() || !s.roll(u.Chance, u.Roll) {
		return false
	}

	pl := s.pickPlatform(platforms)
	slot.Put(PowerUp{
		X:      s.worldW,
		Y:      pl.Y - u.Lift,
		Width:  u.Size,
		Height: u.Size,
		Speed:  u.Speed,
	})
	return true
}

func (s *Spawner) roll(chance, roll int) bool {
	return s.rng.Intn(roll) < chance
}

func (s *Spawner) pickPlatform(platforms []Platform) Platform {
	return platforms[s.rng.Intn(len(platforms))]
}

// sizeIn returns a value in [lo, hi).
func (s *Spawner) sizeIn(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo)
}
