package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Platform is a fixed ledge the player can land on.
type Platform struct {
	X, Y  int // Y is the walking surface
	Width int
}

// Bounds returns the platform's collision band.
func (p Platform) Bounds(band int) core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, band)
}

// Alien drifts leftward; touching it ends the run. Escaping scores.
type Alien struct {
	X, Y          int
	Width, Height int
	Speed         int
}

// Update moves the alien one tick to the left.
func (a *Alien) Update() {
	a.X -= a.Speed
}

// Bounds returns the alien's collision rectangle.
func (a Alien) Bounds() core.Rect {
	return core.NewRect(a.X, a.Y, a.Width, a.Height)
}

// OffScreen reports whether the alien's right edge has passed X=0.
func (a Alien) OffScreen() bool {
	return a.X+a.Width < 0
}

// Obstacle is a block that drifts leftward; touching it ends the run.
type Obstacle struct {
	X, Y          int
	Width, Height int
	Speed         int
}

// Update moves the obstacle one tick to the left.
func (o *Obstacle) Update() {
	o.X -= o.Speed
}

// Bounds returns the obstacle's collision rectangle.
func (o Obstacle) Bounds() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// OffScreen reports whether the obstacle's right edge has passed X=0.
func (o Obstacle) OffScreen() bool {
	return o.X+o.Width < 0
}

// PowerUp doubles the player's jump cap when collected.
type PowerUp struct {
	X, Y          int
	Width, Height int
	Speed         int
}

// Update moves the power-up one tick to the left.
func (p *PowerUp) Update() {
	p.X -= p.Speed
}

// Bounds returns the power-up's collision rectangle.
func (p PowerUp) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// OffScreen reports whether the power-up's right edge has passed X=0.
func (p PowerUp) OffScreen() bool {
	return p.X+p.Width < 0
}

// PowerUpSlot holds at most one live power-up.
type PowerUpSlot struct {
	value   PowerUp
	present bool
}

// Get returns the power-up and whether one is present.
func (s *PowerUpSlot) Get() (PowerUp, bool) {
	return s.value, s.present
}

// Present reports whether a power-up is live.
func (s *PowerUpSlot) Present() bool {
	return s.present
}

// Put stores p, replacing any previous value.
func (s *PowerUpSlot) Put(p PowerUp) {
	s.value = p
	s.present = true
}

// Clear empties the slot.
func (s *PowerUpSlot) Clear() {
	s.value = PowerUp{}
	s.present = false
}

// update advances a present power-up and empties the slot once it leaves
// the screen. It reports whether the power-up expired this tick.
func (s *PowerUpSlot) update() bool {
	if !s.present {
		return false
	}
	s.value.Update()
	if s.value.OffScreen() {
		s.Clear()
		return true
	}
	return false
}

// Star is one background dot.
type Star struct {
	X, Y int
	Size int
}

// Mountain is a triangle in the scrolling backdrop.
// X is its left foot; Y is the top of its bounding band.
type Mountain struct {
	X, Y int
}

// Point is a polygon vertex in world coordinates.
type Point struct {
	X, Y int
}
