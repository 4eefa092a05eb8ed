package invasion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

func TestCountdownFinishesOnTick313(t *testing.T) {
	s := newQuietSession(t)
	require.Equal(t, PhaseCountdown, s.Phase())
	require.Equal(t, 5000, s.Countdown())

	transitions := 0
	for i := 1; i <= 312; i++ {
		events := s.Tick(core.NewInputFrame())
		require.False(t, hasEvent(events, EventCountdownFinished), "tick %d", i)
	}
	assert.Equal(t, PhaseCountdown, s.Phase())
	assert.Equal(t, 8, s.Countdown())

	if hasEvent(s.Tick(core.NewInputFrame()), EventCountdownFinished) {
		transitions++
	}
	assert.Equal(t, PhaseActive, s.Phase())
	assert.LessOrEqual(t, s.Countdown(), 0)
	assert.Equal(t, 313, s.Ticks())

	for i := 0; i < 100; i++ {
		if hasEvent(s.Tick(core.NewInputFrame()), EventCountdownFinished) {
			transitions++
		}
	}
	assert.Equal(t, 1, transitions)
}

func TestPlayerInsideWorldDuringCountdown(t *testing.T) {
	cfg := config.DefaultInvasionConfig()
	cfg.Player.StartX = 5000
	s := NewSession(cfg, 16*time.Millisecond, neverRand{}, core.NewRand(1))

	for s.Phase() == PhaseCountdown {
		p := s.Player()
		require.LessOrEqual(t, p.X+p.Width/2, 800, "tick %d", s.Ticks())
		s.Tick(core.NewInputFrame())
	}
	assert.Equal(t, 790, s.Player().X)
}

func TestCountdownIgnoresGameplayInput(t *testing.T) {
	s := newQuietSession(t)
	s.Tick(core.NewInputFrame(core.ActionLeft, core.ActionJump))

	assert.Equal(t, 100, s.Player().X)
	assert.False(t, s.Player().Charging())
	assert.Empty(t, s.Aliens())
}

func TestCountdownMovesBackground(t *testing.T) {
	s := newQuietSession(t)
	before := s.Background().Mountains()[1].X
	s.Tick(core.NewInputFrame())
	assert.Equal(t, before-2, s.Background().Mountains()[1].X)
}

func TestRestartDuringCountdown(t *testing.T) {
	s := newQuietSession(t)
	for i := 0; i < 100; i++ {
		s.Tick(core.NewInputFrame())
	}

	events := s.Tick(core.NewInputFrame(core.ActionRestart))
	assert.True(t, hasEvent(events, EventRestart))
	assert.Equal(t, 5000, s.Countdown())
	assert.Equal(t, 0, s.Ticks())
}

func TestRestartIgnoredWhileActive(t *testing.T) {
	s := newQuietSession(t)
	runCountdown(t, s)

	s.Tick(core.NewInputFrame(core.ActionRestart))
	assert.Equal(t, PhaseActive, s.Phase())
}

func TestJumpThroughSession(t *testing.T) {
	s := newQuietSession(t)
	runCountdown(t, s)

	s.Tick(core.NewInputFrame(core.ActionJump))
	require.True(t, s.Player().Charging())

	events := s.Tick(core.NewInputFrame(core.ActionJumpRelease))
	require.True(t, hasEvent(events, EventJump))
	for _, e := range events {
		if e.Kind == EventJump {
			assert.Equal(t, -10.0, e.Value)
		}
	}
	assert.False(t, s.Player().Grounded)
	assert.Equal(t, -9.5, s.Player().VY)
}

func TestTapJumpInOneFrame(t *testing.T) {
	s := newQuietSession(t)
	runCountdown(t, s)

	events := s.Tick(core.NewInputFrame(core.ActionJump, core.ActionJumpRelease))
	assert.True(t, hasEvent(events, EventJump))
	assert.Equal(t, -10.0, s.Player().LastImpulse())
}

func TestScoreOnAlienEscape(t *testing.T) {
	s := newQuietSession(t)
	runCountdown(t, s)
	s.aliens = append(s.aliens, Alien{X: 10, Y: 0, Width: 4, Height: 10, Speed: 5})

	s.Tick(core.NewInputFrame())
	s.Tick(core.NewInputFrame())
	assert.Equal(t, 0, s.Score())
	require.Len(t, s.Aliens(), 1)
	assert.Equal(t, 0, s.Aliens()[0].X)

	events := s.Tick(core.NewInputFrame())
	assert.True(t, hasEvent(events, EventAlienEscaped))
	assert.Equal(t, 10, s.Score())
	assert.Empty(t, s.Aliens())
}

func TestScoreCountsEachEscapedAlien(t *testing.T) {
	s := newQuietSession(t)
	runCountdown(t, s)
	s.aliens = append(s.aliens,
		Alien{X: -1, Y: 0, Width: 4, Height: 10, Speed: 5},
		Alien{X: 0, Y: 0, Width: 4, Height: 10, Speed: 5},
		Alien{X: 300, Y: 0, Width: 4, Height: 10, Speed: 5},
	)

	s.Tick(core.NewInputFrame())
	assert.Equal(t, 20, s.Score())
	assert.Len(t, s.Aliens(), 1)
}

func TestObstaclesDoNotScore(t *testing.T) {
	s := newQuietSession(t)
	runCountdown(t, s)
	s.obstacles = append(s.obstacles, Obstacle{X: 0, Y: 0, Width: 4, Height: 10, Speed: 5})

	s.Tick(core.NewInputFrame())
	assert.Empty(t, s.Obstacles())
	assert.Equal(t, 0, s.Score())
}

func TestAlienCollisionFreezesSession(t *testing.T) {
	s := newQuietSession(t)
	runCountdown(t, s)
	s.aliens = append(s.aliens, Alien{X: 95, Y: 460, Width: 40, Height: 40, Speed: 5})

	events := s.Tick(core.NewInputFrame())
	require.Equal(t, PhaseGameOver, s.Phase())
	require.True(t, hasEvent(events, EventGameOver))
	for _, e := range events {
		if e.Kind == EventGameOver {
			assert.Equal(t, HitAlien, e.Cause)
		}
	}

	frozen := s.Snapshot()
	for i := 0; i < 50; i++ {
		events = s.Tick(core.NewInputFrame(core.ActionLeft, core.ActionJump, core.ActionJumpRelease))
		require.Empty(t, events)
	}
	assert.Equal(t, frozen, s.Snapshot())
}

func TestObstacleCollisionEndsRun(t *testing.T) {
	s := newQuietSession(t)
	runCountdown(t, s)
	s.obstacles = append(s.obstacles, Obstacle{X: 100, Y: 480, Width: 20, Height: 20, Speed: 5})

	events := s.Tick(core.NewInputFrame())
	assert.Equal(t, PhaseGameOver, s.Phase())
	for _, e := range events {
		if e.Kind == EventGameOver {
			assert.Equal(t, HitObstacle, e.Cause)
		}
	}
}

func TestTouchingEdgesDoNotCollide(t *testing.T) {
	s := newQuietSession(t)
	runCountdown(t, s)
	// After moving, the alien's left edge sits exactly on the player's right edge
	s.aliens = append(s.aliens, Alien{X: 115, Y: 450, Width: 40, Height: 40, Speed: 5})

	s.Tick(core.NewInputFrame())
	assert.Equal(t, PhaseActive, s.Phase())
}

func TestPowerUpCollection(t *testing.T) {
	s := newQuietSession(t)
	runCountdown(t, s)
	s.powerUp.Put(PowerUp{X: 95, Y: 460, Width: 20, Height: 20, Speed: 5})

	events := s.Tick(core.NewInputFrame())
	assert.True(t, hasEvent(events, EventPowerUpCollected))
	assert.Equal(t, PhaseActive, s.Phase())
	assert.Equal(t, 50.0, s.Player().MaxCharge())
	assert.Equal(t, 1, s.PowerUpsCollected())
	_, present := s.PowerUp()
	assert.False(t, present)
}

func TestAlienHitBeatsPowerUp(t *testing.T) {
	s := newQuietSession(t)
	runCountdown(t, s)
	s.aliens = append(s.aliens, Alien{X: 95, Y: 460, Width: 40, Height: 40, Speed: 5})
	s.powerUp.Put(PowerUp{X: 95, Y: 460, Width: 20, Height: 20, Speed: 5})

	s.Tick(core.NewInputFrame())
	assert.Equal(t, PhaseGameOver, s.Phase())
	_, present := s.PowerUp()
	assert.True(t, present)
	assert.Equal(t, 25.0, s.Player().MaxCharge())
}

func TestPowerUpExpires(t *testing.T) {
	s := newQuietSession(t)
	runCountdown(t, s)
	s.powerUp.Put(PowerUp{X: -16, Y: 0, Width: 20, Height: 20, Speed: 5})

	events := s.Tick(core.NewInputFrame())
	assert.True(t, hasEvent(events, EventPowerUpExpired))
	_, present := s.PowerUp()
	assert.False(t, present)
}

func TestRestartAfterGameOver(t *testing.T) {
	s := newQuietSession(t)
	runCountdown(t, s)
	s.aliens = append(s.aliens, Alien{X: -1, Y: 0, Width: 4, Height: 10, Speed: 5})
	s.Tick(core.NewInputFrame())
	s.Player().ActivatePowerUp()
	s.aliens = append(s.aliens, Alien{X: 95, Y: 460, Width: 40, Height: 40, Speed: 5})
	s.Tick(core.NewInputFrame())
	require.Equal(t, PhaseGameOver, s.Phase())
	require.Equal(t, 10, s.Score())

	events := s.Tick(core.NewInputFrame(core.ActionRestart))
	require.True(t, hasEvent(events, EventRestart))
	assert.Equal(t, PhaseCountdown, s.Phase())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 5000, s.Countdown())
	assert.Empty(t, s.Aliens())
	assert.Empty(t, s.Obstacles())
	assert.Equal(t, 100, s.Player().X)
	assert.Equal(t, 25.0, s.Player().MaxCharge())
	assert.Equal(t, 0, s.Spawner().Consecutive())
}

func TestSessionInvariantsUnderAutopilot(t *testing.T) {
	cfg := config.DefaultInvasionConfig()
	s := NewSession(cfg, 16*time.Millisecond, core.NewRand(99), core.NewRand(100))
	pilot := NewAutopilot(core.NewRand(101))

	prevScore := 0
	for i := 0; i < 20000; i++ {
		in := pilot.Next(s.Snapshot())
		if s.Phase() == PhaseGameOver {
			in = core.NewInputFrame(core.ActionRestart)
			prevScore = 0
		}
		s.Tick(in)

		p := s.Player()
		require.GreaterOrEqual(t, p.X-p.Width/2, 0, "tick %d", i)
		require.LessOrEqual(t, p.X+p.Width/2, cfg.World.Width, "tick %d", i)
		require.LessOrEqual(t, p.Y+float64(p.Height), float64(cfg.World.GroundY), "tick %d", i)
		if p.Grounded {
			require.Equal(t, 0.0, p.VY, "tick %d", i)
		}
		require.GreaterOrEqual(t, s.Score(), prevScore, "tick %d", i)
		require.Zero(t, s.Score()%10, "tick %d", i)
		prevScore = s.Score()
	}
}

func TestResize(t *testing.T) {
	s := newQuietSession(t)
	s.Player().X = 790

	s.Resize(400, 300)

	w, h := s.Size()
	assert.Equal(t, 400, w)
	assert.Equal(t, 300, h)
	assert.Equal(t, 390, s.Player().X)

	widths := make([]int, 0, 4)
	for _, p := range s.Platforms() {
		widths = append(widths, p.Width)
	}
	assert.Equal(t, []int{400, 200, 133, 100}, widths)

	m := s.Background().Mountains()
	require.Len(t, m, 2)
	assert.Equal(t, Mountain{X: 200, Y: 150}, m[1])
	assert.Equal(t, 400, s.Spawner().worldW)
}

func TestResizeIgnoresInvalidSize(t *testing.T) {
	s := newQuietSession(t)
	s.Resize(0, 300)
	w, h := s.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestSnapshotContents(t *testing.T) {
	s := newQuietSession(t)
	snap := s.Snapshot()

	assert.Equal(t, PhaseCountdown, snap.Phase)
	assert.Equal(t, 5, snap.CountdownSeconds)
	assert.False(t, snap.GameOver)
	assert.Equal(t, 50, snap.Count(SpriteStar))
	assert.Equal(t, 2, snap.Count(SpriteMountain))
	assert.Equal(t, 4, snap.Count(SpritePlatform))
	assert.Zero(t, snap.Count(SpriteAlien))
	assert.Equal(t, 25.0, snap.Player.MaxCharge)

	// Snapshots are copies
	snap.Sprites[0].X = -500
	assert.NotEqual(t, -500, s.Background().Stars()[0].X)
}
