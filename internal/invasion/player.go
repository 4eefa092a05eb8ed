package invasion

import (
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Player is the jumping body. X is the horizontal centre, Y the top edge.
type Player struct {
	X  int
	Y  float64
	VX float64
	VY float64

	Width, Height int
	Grounded      bool

	charging    bool
	charge      float64
	maxCharge   float64
	lastImpulse float64

	cfg     config.PlayerConfig
	worldW  int
	groundY int
	band    int
}

// NewPlayer creates a player standing on the ground line at the spawn point.
func NewPlayer(cfg config.PlayerConfig, world config.WorldConfig) *Player {
	p := &Player{
		X:         cfg.StartX,
		Y:         float64(world.GroundY - cfg.Height),
		Width:     cfg.Width,
		Height:    cfg.Height,
		Grounded:  true,
		maxCharge: cfg.MaxCharge,
		cfg:       cfg,
		worldW:    world.Width,
		groundY:   world.GroundY,
		band:      world.PlatformBand,
	}
	p.clampX()
	return p
}

// StartJump begins charging a jump. Ignored while airborne.
func (p *Player) StartJump() {
	if p.Grounded {
		p.charging = true
		p.charge = 0
	}
}

// EndJump launches a jump being charged. Short taps still get the minimum
// charge. It reports whether a launch happened.
func (p *Player) EndJump() bool {
	if !p.charging {
		return false
	}
	if p.charge < p.cfg.MinCharge {
		p.charge = p.cfg.MinCharge
	}
	p.launch()
	return true
}

// Update advances the player by one tick. It reports whether the jump charge
// hit the cap and released on its own.
func (p *Player) Update(platforms []Platform, moveLeft, moveRight bool) (autoReleased bool) {
	switch {
	case moveLeft:
		p.VX = -p.cfg.Speed
	case moveRight:
		p.VX = p.cfg.Speed
	default:
		p.VX = 0
	}

	p.X += int(p.VX)
	p.clampX()

	if p.charging {
		p.charge = core.ClampF(p.charge+p.cfg.ChargeRate, 0, p.maxCharge)
		if p.charge >= p.maxCharge {
			p.launch()
			autoReleased = true
		}
	}

	p.VY += p.cfg.Gravity
	p.Y += p.VY

	p.Grounded = false
	bottom := p.Y + float64(p.Height)
	half := p.Width / 2
	for _, pl := range platforms {
		r := pl.Bounds(p.band)
		if p.VY >= 0 &&
			bottom >= float64(r.Y) && bottom <= float64(r.Bottom()) &&
			p.X+half >= r.X && p.X-half <= r.Right() {
			p.land(pl.Y)
			break
		}
	}

	if p.Y+float64(p.Height) >= float64(p.groundY) {
		p.land(p.groundY)
	}
	return autoReleased
}

// ActivatePowerUp doubles the jump cap, up to the configured ceiling.
func (p *Player) ActivatePowerUp() {
	p.maxCharge *= 2
	if c := p.cfg.ChargeCeiling; c > 0 && p.maxCharge > c {
		p.maxCharge = c
	}
}

// Bounds returns the collision rectangle.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(p.X-p.Width/2, int(p.Y), p.Width, p.Height)
}

// Charging reports whether a jump is being charged.
func (p *Player) Charging() bool {
	return p.charging
}

// Charge returns the accumulated jump charge.
func (p *Player) Charge() float64 {
	return p.charge
}

// MaxCharge returns the current jump cap.
func (p *Player) MaxCharge() float64 {
	return p.maxCharge
}

// LastImpulse returns the vertical velocity of the most recent launch.
func (p *Player) LastImpulse() float64 {
	return p.lastImpulse
}

// setWorldWidth updates the horizontal bound and re-clamps.
func (p *Player) setWorldWidth(w int) {
	p.worldW = w
	p.clampX()
}

func (p *Player) launch() {
	p.VY = -p.charge
	p.lastImpulse = p.VY
	p.charging = false
	p.Grounded = false
}

func (p *Player) land(surface int) {
	p.Y = float64(surface - p.Height)
	p.VY = 0
	p.Grounded = true
}

func (p *Player) clampX() {
	half := p.Width / 2
	if p.X-half < 0 {
		p.X = half
	}
	if p.X+half > p.worldW {
		p.X = p.worldW - half
	}
}
