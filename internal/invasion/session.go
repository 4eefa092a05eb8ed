package invasion

import (
	"time"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Phase is the session's position in the countdown/play/game-over cycle.
type Phase string

const (
	PhaseCountdown Phase = "countdown"
	PhaseActive    Phase = "active"
	PhaseGameOver  Phase = "game_over"
)

// String returns the phase name.
func (p Phase) String() string {
	return string(p)
}

// Session owns every entity of one game and advances them tick by tick.
// It is not safe for concurrent use.
type Session struct {
	cfg      config.InvasionConfig
	interval int // Countdown decrement per tick, in ms

	rng     core.Rand // Spawn rolls and entity sizes
	scenery core.Rand // Star field

	width, height int
	platforms     []Platform
	player        *Player
	aliens        []Alien
	obstacles     []Obstacle
	powerUp       PowerUpSlot
	background    *Background
	spawner       *Spawner

	phase     Phase
	countdown int // Remaining countdown in ms
	score     int
	ticks     int
	collected int // Power-ups collected this run

	moveLeft, moveRight bool

	events []Event
}

// NewSession creates a session in the Countdown phase.
// interval is the wall-clock length of one tick; zero means 16ms.
func NewSession(cfg config.InvasionConfig, interval time.Duration, rng, scenery core.Rand) *Session {
	if interval <= 0 {
		interval = core.DefaultTickInterval
	}
	s := &Session{
		cfg:      cfg,
		interval: int(interval / time.Millisecond),
		rng:      rng,
		scenery:  scenery,
		width:    cfg.World.Width,
		height:   cfg.World.Height,
	}
	s.reset()
	return s
}

// reset rebuilds the world for a new run.
func (s *Session) reset() {
	s.platforms = buildPlatforms(s.cfg.World, s.width)
	s.player = NewPlayer(s.cfg.Player, s.worldConfig())
	s.aliens = s.aliens[:0]
	s.obstacles = s.obstacles[:0]
	s.powerUp.Clear()
	s.background = NewBackground(s.width, s.height, s.cfg.Background, s.scenery)
	s.spawner = NewSpawner(s.cfg.Spawn, s.rng, s.width)

	s.phase = PhaseCountdown
	s.countdown = s.cfg.World.CountdownMS
	s.score = 0
	s.ticks = 0
	s.collected = 0
	s.moveLeft = false
	s.moveRight = false
}

func (s *Session) worldConfig() config.WorldConfig {
	w := s.cfg.World
	w.Width = s.width
	w.Height = s.height
	return w
}

func buildPlatforms(world config.WorldConfig, width int) []Platform {
	platforms := make([]Platform, 0, len(world.Platforms))
	for _, pc := range world.Platforms {
		div := pc.WidthDiv
		if div <= 0 {
			div = 1
		}
		platforms = append(platforms, Platform{X: pc.X, Y: pc.Y, Width: width / div})
	}
	return platforms
}

// Restart discards the current run and starts a new countdown.
func (s *Session) Restart() {
	s.reset()
}

// Tick advances the session by one fixed step and returns what happened.
// The returned slice is only valid until the next call.
func (s *Session) Tick(in core.InputFrame) []Event {
	s.events = s.events[:0]

	switch s.phase {
	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			s.restartWithEvent()
		}
		return s.events

	case PhaseCountdown:
		if in.Has(core.ActionRestart) {
			s.restartWithEvent()
			return s.events
		}
		s.ticks++
		s.countdown -= s.interval
		s.background.Update()
		if s.countdown <= 0 {
			s.phase = PhaseActive
			s.emit(Event{Kind: EventCountdownFinished})
		}
		return s.events
	}

	s.ticks++
	s.applyInput(in)

	if s.player.Update(s.platforms, s.moveLeft, s.moveRight) {
		s.emit(Event{Kind: EventJump, Value: s.player.LastImpulse()})
	}

	s.updateAliens()
	s.updateObstacles()
	s.updatePowerUp()

	switch hit := checkCollision(s.player.Bounds(), s.aliens, s.obstacles, &s.powerUp); {
	case hit.Fatal():
		s.phase = PhaseGameOver
		s.emit(Event{Kind: EventGameOver, Cause: hit})
	case hit == HitPowerUp:
		s.powerUp.Clear()
		s.player.ActivatePowerUp()
		s.collected++
		s.emit(Event{Kind: EventPowerUpCollected, Value: s.player.MaxCharge()})
	}

	s.background.Update()
	return s.events
}

func (s *Session) restartWithEvent() {
	prev := s.score
	s.reset()
	s.emit(Event{Kind: EventRestart, Value: float64(prev)})
}

func (s *Session) applyInput(in core.InputFrame) {
	s.moveLeft = in.Has(core.ActionLeft)
	s.moveRight = in.Has(core.ActionRight)

	if in.Has(core.ActionJump) {
		s.player.StartJump()
	}
	if in.Has(core.ActionJumpRelease) && s.player.EndJump() {
		s.emit(Event{Kind: EventJump, Value: s.player.LastImpulse()})
	}
}

func (s *Session) updateAliens() {
	if a, ok := s.spawner.SpawnAlien(s.platforms); ok {
		s.aliens = append(s.aliens, a)
		s.emit(Event{Kind: EventAlienSpawned, Value: float64(a.Y)})
	}

	kept := s.aliens[:0]
	for _, a := range s.aliens {
		a.Update()
		if a.OffScreen() {
			s.score += s.cfg.Spawn.Alien.EscapeScore
			s.emit(Event{Kind: EventAlienEscaped})
			continue
		}
		kept = append(kept, a)
	}
	s.aliens = kept
}

func (s *Session) updateObstacles() {
	if o, ok := s.spawner.SpawnObstacle(s.platforms); ok {
		s.obstacles = append(s.obstacles, o)
		s.emit(Event{Kind: EventObstacleSpawned, Value: float64(o.Y)})
	}

	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.Update()
		if !o.OffScreen() {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept
}

func (s *Session) updatePowerUp() {
	if s.spawner.SpawnPowerUp(s.platforms, &s.powerUp) {
		p, _ := s.powerUp.Get()
		s.emit(Event{Kind: EventPowerUpSpawned, Value: float64(p.Y)})
	}
	if s.powerUp.update() {
		s.emit(Event{Kind: EventPowerUpExpired})
	}
}

func (s *Session) emit(e Event) {
	e.Tick = s.ticks
	e.Score = s.score
	s.events = append(s.events, e)
}

// Resize changes the world bounds. Platforms and scenery are rebuilt for the
// new width and the player is pulled back inside. Live hazards keep their
// positions.
func (s *Session) Resize(width, height int) {
	if width <= 0 || height <= 0 || (width == s.width && height == s.height) {
		return
	}
	s.width = width
	s.height = height
	s.platforms = buildPlatforms(s.cfg.World, width)
	s.background = NewBackground(width, height, s.cfg.Background, s.scenery)
	s.spawner.worldW = width
	s.player.setWorldWidth(width)
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Countdown returns the remaining countdown in ms. It may be negative once
// the countdown has finished.
func (s *Session) Countdown() int {
	return s.countdown
}

// Ticks returns the ticks simulated in this run, countdown included.
func (s *Session) Ticks() int {
	return s.ticks
}

// PowerUpsCollected returns how many power-ups were picked up this run.
func (s *Session) PowerUpsCollected() int {
	return s.collected
}

// Player returns the live player.
func (s *Session) Player() *Player {
	return s.player
}

// Platforms returns the platforms in collision order.
func (s *Session) Platforms() []Platform {
	return s.platforms
}

// Aliens returns the live aliens. Callers must not modify it.
func (s *Session) Aliens() []Alien {
	return s.aliens
}

// Obstacles returns the live obstacles. Callers must not modify it.
func (s *Session) Obstacles() []Obstacle {
	return s.obstacles
}

// PowerUp returns the live power-up, if any.
func (s *Session) PowerUp() (PowerUp, bool) {
	return s.powerUp.Get()
}

// Background returns the scenery.
func (s *Session) Background() *Background {
	return s.background
}

// Spawner returns the spawn policy and its counters.
func (s *Session) Spawner() *Spawner {
	return s.spawner
}

// Size returns the world dimensions.
func (s *Session) Size() (width, height int) {
	return s.width, s.height
}

// GroundY returns the ground line.
func (s *Session) GroundY() int {
	return s.cfg.World.GroundY
}
