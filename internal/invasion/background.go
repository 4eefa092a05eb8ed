package invasion

import (
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Background scrolls a star field and a strip of mountains at two speeds.
// Mountains are W/2 wide and appended at the right edge as the strip moves,
// so the viewport is always covered.
type Background struct {
	width, height int
	stars         []Star
	mountains     []Mountain
	cfg           config.BackgroundConfig
	rng           core.Rand
}

// NewBackground seeds the star field and places the first two mountains.
func NewBackground(width, height int, cfg config.BackgroundConfig, rng core.Rand) *Background {
	b := &Background{
		width:     width,
		height:    height,
		stars:     make([]Star, 0, cfg.Stars),
		mountains: make([]Mountain, 0, 4),
		cfg:       cfg,
		rng:       rng,
	}

	for i := 0; i < cfg.Stars; i++ {
		b.stars = append(b.stars, Star{
			X:    rng.Intn(width),
			Y:    b.starY(),
			Size: cfg.StarMinSize + rng.Intn(cfg.StarMaxSize-cfg.StarMinSize),
		})
	}

	b.mountains = append(b.mountains,
		Mountain{X: 0, Y: b.mountainY()},
		Mountain{X: width / 2, Y: b.mountainY()},
	)
	return b
}

// Update advances the parallax by one tick.
func (b *Background) Update() {
	for i := range b.stars {
		s := &b.stars[i]
		s.X -= b.cfg.StarSpeed
		if s.X < 0 {
			s.X = b.width
			s.Y = b.starY()
		}
	}

	for i := range b.mountains {
		b.mountains[i].X -= b.cfg.MountainSpeed
	}

	// Extend the strip once the last mountain's right foot reaches the edge
	if last := b.mountains[len(b.mountains)-1]; last.X+b.tileWidth() <= b.width {
		b.mountains = append(b.mountains, Mountain{X: b.width, Y: b.mountainY()})
	}

	// Drop the oldest once it is fully off-screen
	if first := b.mountains[0]; first.X+b.tileWidth() < 0 {
		b.mountains = b.mountains[1:]
	}
}

// Stars returns the star field. Callers must not modify it.
func (b *Background) Stars() []Star {
	return b.stars
}

// Mountains returns the mountain strip, oldest first. Callers must not modify it.
func (b *Background) Mountains() []Mountain {
	return b.mountains
}

// MountainPolygon returns the triangle for m: left foot, peak, right foot.
func (b *Background) MountainPolygon(m Mountain) [3]Point {
	base := m.Y + b.cfg.MountainHeight
	return [3]Point{
		{X: m.X, Y: base},
		{X: m.X + b.width/4, Y: m.Y},
		{X: m.X + b.tileWidth(), Y: base},
	}
}

func (b *Background) tileWidth() int {
	return b.width / 2
}

func (b *Background) starY() int {
	return b.rng.Intn(max(b.height/2, 1))
}

func (b *Background) mountainY() int {
	return b.height - b.cfg.MountainHeight
}
