package invasion

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Visual characters for rendering
const (
	StarSmallChar   = '·'
	StarLargeChar   = '*'
	MountainFill    = '░'
	MountainLeft    = '/'
	MountainRight   = '\\'
	MountainPeak    = '^'
	PlatformChar    = '═'
	GroundChar      = '▒'
	AlienChar       = '▓'
	AlienEyeChar    = 'o'
	ObstacleChar    = '█'
	PowerUpChar     = '◆'
	PlayerBodyChar  = '█'
	PlayerAirChar   = '▒'
	PlayerHeadChar  = '☻'
	ChargeFullChar  = '■'
	ChargeEmptyChar = '·'
)

// viewport maps world coordinates onto screen cells.
type viewport struct {
	cols, rows     int
	worldW, worldH int
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	v := viewport{cols: dst.Width(), rows: dst.Height(), worldW: snap.WorldW, worldH: snap.WorldH}
	if v.worldW <= 0 {
		v.worldW = v.cols
	}
	if v.worldH <= 0 {
		v.worldH = v.rows
	}
	return v
}

func (v viewport) col(x int) int {
	return int(math.Floor(float64(x*v.cols) / float64(v.worldW)))
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y * float64(v.rows) / float64(v.worldH)))
}

// rect converts a world rectangle to cells. Anything on screen covers at
// least one cell.
func (v viewport) rect(x int, y float64, w, h int) core.Rect {
	x0, y0 := v.col(x), v.row(y)
	x1, y1 := v.col(x+w), v.row(y+float64(h))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Draw renders snap onto dst, scaled to fit.
func Draw(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	v := newViewport(dst, snap)

	for _, sp := range snap.Sprites {
		switch sp.Kind {
		case SpriteStar:
			ch := StarSmallChar
			if sp.Width > 1 {
				ch = StarLargeChar
			}
			dst.SetColor(v.col(sp.X), v.row(float64(sp.Y)), ch, core.ColorWhite)
		case SpriteMountain:
			drawMountain(dst, v, sp.Points)
		case SpritePlatform:
			r := v.rect(sp.X, float64(sp.Y), sp.Width, sp.Height)
			dst.DrawHLine(r.X, r.Y, r.W, PlatformChar, core.ColorBrown)
		case SpriteAlien:
			r := v.rect(sp.X, float64(sp.Y), sp.Width, sp.Height)
			dst.FillRect(r, AlienChar, core.ColorBrightGreen)
			if r.W >= 3 {
				dst.SetColor(r.X+1, r.Y, AlienEyeChar, core.ColorBrightWhite)
				dst.SetColor(r.Right()-2, r.Y, AlienEyeChar, core.ColorBrightWhite)
			}
		case SpriteObstacle:
			dst.FillRect(v.rect(sp.X, float64(sp.Y), sp.Width, sp.Height), ObstacleChar, core.ColorRed)
		case SpritePowerUp:
			dst.FillRect(v.rect(sp.X, float64(sp.Y), sp.Width, sp.Height), PowerUpChar, core.ColorBrightYellow)
		}
	}

	drawGround(dst, v, snap.GroundY)
	drawPlayer(dst, v, snap.Player)
	drawHUD(dst, snap)
}

// drawGround fills everything under the ground line. The line itself is the
// bottom platform.
func drawGround(dst *core.Screen, v viewport, groundY int) {
	if groundY <= 0 {
		return
	}
	top := v.row(float64(groundY)) + 1
	dst.FillRect(core.NewRect(0, top, v.cols, v.rows-top), GroundChar, core.ColorBrown)
}

// drawMountain rasterises the triangle row by row between the peak and the base.
func drawMountain(dst *core.Screen, v viewport, pts [3]Point) {
	left, peak, right := pts[0], pts[1], pts[2]
	top, base := v.row(float64(peak.Y)), v.row(float64(left.Y))
	if base <= top {
		return
	}

	for y := top; y < base; y++ {
		f := float64(y-top+1) / float64(base-top)
		x0 := v.col(peak.X - int(f*float64(peak.X-left.X)))
		x1 := v.col(peak.X + int(f*float64(right.X-peak.X)))
		if y == top {
			dst.SetColor(v.col(peak.X), y, MountainPeak, core.ColorGray)
			continue
		}
		for x := x0 + 1; x < x1; x++ {
			dst.SetColor(x, y, MountainFill, core.ColorGray)
		}
		dst.SetColor(x0, y, MountainLeft, core.ColorGray)
		dst.SetColor(x1, y, MountainRight, core.ColorGray)
	}
}

// drawPlayer renders the body with a head on the top row. Airborne bodies use
// a lighter fill.
func drawPlayer(dst *core.Screen, v viewport, p PlayerPose) {
	r := v.rect(p.X-p.Width/2, p.Y, p.Width, p.Height)
	body, color := PlayerBodyChar, core.ColorCyan
	if !p.Grounded {
		body, color = PlayerAirChar, core.ColorBrightBlue
	}
	dst.FillRect(r, body, color)
	dst.SetColor(r.X+r.W/2, r.Y, PlayerHeadChar, core.ColorBrightWhite)
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)

	if snap.Player.Charging {
		meter := chargeMeter(snap.Player.Charge, snap.Player.MaxCharge, 10)
		text := fmt.Sprintf(" Jump %s ", meter)
		dst.DrawText(dst.Width()-len([]rune(text))-1, 0, text, core.ColorYellow)
	}

	switch snap.Phase {
	case PhaseCountdown:
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf(" %d ", snap.CountdownSeconds), core.ColorBrightYellow)
	case PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d", snap.Score), "Press Enter to restart")
	}
}

// chargeMeter renders charge/cap as a fixed-width bar.
func chargeMeter(charge, limit float64, width int) string {
	filled := 0
	if limit > 0 {
		filled = int(charge / limit * float64(width))
	}
	filled = core.Clamp(filled, 0, width)
	return "[" + strings.Repeat(string(ChargeFullChar), filled) +
		strings.Repeat(string(ChargeEmptyChar), width-filled) + "]"
}

// drawCenteredMessage draws a boxed message in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightRed)
	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightRed
		}
		dst.DrawTextCentered(box.Y+1+i, l, color)
	}
}
