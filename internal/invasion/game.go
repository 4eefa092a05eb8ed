// Package invasion implements Alien Invasion, a side-scroller where the
// player charges jumps across platforms to dodge drifting aliens and
// obstacles. Every escaped alien scores; any touch ends the run.
//
// The simulation works in world pixels on a fixed playfield and knows
// nothing about terminals. Draw scales a Snapshot onto a core.Screen.
package invasion

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/registry"
)

// ID is the registry key of the game.
const ID = "invasion"

// configPath stores the custom config path set via CLI
var configPath string

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger routes session events to l. A nil logger silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game adapts a Session to the registry.Game interface.
type Game struct {
	session *Session
	runtime core.RuntimeConfig
	cfg     config.InvasionConfig
	events  []Event // Events of the most recent Step
	cause   HitKind // What ended the current run, if it ended
}

// New creates an Alien Invasion game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Alien Invasion"
}

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadInvasion(configPath)
	if err != nil {
		logger.Warn("using built-in configuration", "err", err)
		cfg = config.DefaultInvasionConfig()
	}
	g.ResetWith(runtime, cfg)
}

// ResetWith starts a fresh session from an explicit configuration.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.InvasionConfig) {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	g.runtime = runtime
	g.cfg = cfg
	g.session = NewSession(cfg, runtime.TickInterval, core.NewRand(runtime.Seed), core.NewRand(runtime.Seed^0x5eed))
	g.events = nil
	g.cause = HitNone

	logger.Debug("session reset",
		"seed", runtime.Seed,
		"world", [2]int{cfg.World.Width, cfg.World.Height},
		"tick", runtime.TickInterval)
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.session.Tick(in)
	for _, e := range g.events {
		switch e.Kind {
		case EventGameOver:
			g.cause = e.Cause
		case EventRestart:
			g.cause = HitNone
		}
		logEvent(e)
	}
	return core.StepResult{State: g.State()}
}

// Render draws the current snapshot into dst.
func (g *Game) Render(dst *core.Screen) {
	Draw(dst, g.session.Snapshot())
}

// State returns the registry-level summary of the run.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Phase() == PhaseGameOver,
		Ticks:    g.session.Ticks(),
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Outcome reports what ended the current run ("" while it is still going)
// and how many power-ups it collected.
func (g *Game) Outcome() (cause string, powerUps int) {
	if g.session == nil {
		return "", 0
	}
	if g.cause != HitNone {
		cause = g.cause.String()
	}
	return cause, g.session.PowerUpsCollected()
}

// Seed returns the seed of the current session.
func (g *Game) Seed() int64 {
	return g.runtime.Seed
}

// Events returns the events produced by the last Step.
func (g *Game) Events() []Event {
	return g.events
}

func logEvent(e Event) {
	switch e.Kind {
	case EventCountdownFinished:
		logger.Info("countdown finished", "tick", e.Tick)
	case EventGameOver:
		logger.Info("game over", "tick", e.Tick, "score", e.Score, "cause", e.Cause)
	case EventRestart:
		logger.Info("restart", "previous_score", int(e.Value))
	case EventPowerUpCollected:
		logger.Info("power-up collected", "tick", e.Tick, "jump_cap", e.Value)
	case EventAlienEscaped:
		logger.Debug("alien escaped", "tick", e.Tick, "score", e.Score)
	case EventJump:
		logger.Debug("jump", "tick", e.Tick, "impulse", e.Value)
	default:
		logger.Debug(e.Kind.String(), "tick", e.Tick, "y", int(e.Value))
	}
}
