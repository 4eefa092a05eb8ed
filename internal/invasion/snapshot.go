package invasion

// SpriteKind tags what a Sprite depicts.
type SpriteKind int

const (
	SpriteStar SpriteKind = iota
	SpriteMountain
	SpritePlatform
	SpriteAlien
	SpriteObstacle
	SpritePowerUp
)

// String returns the sprite kind name.
func (k SpriteKind) String() string {
	switch k {
	case SpriteStar:
		return "star"
	case SpriteMountain:
		return "mountain"
	case SpritePlatform:
		return "platform"
	case SpriteAlien:
		return "alien"
	case SpriteObstacle:
		return "obstacle"
	case SpritePowerUp:
		return "power_up"
	default:
		return "unknown"
	}
}

// Sprite is one drawable item in world coordinates.
// Points is only set for mountains.
type Sprite struct {
	Kind          SpriteKind
	X, Y          int
	Width, Height int
	Points        [3]Point
}

// PlayerPose is the player's drawable state.
type PlayerPose struct {
	X             int // Horizontal centre
	Y             float64
	Width, Height int
	Grounded      bool
	Charging      bool
	Charge        float64
	MaxCharge     float64
}

// Snapshot is a read-only copy of everything a renderer needs.
// Sprites are ordered back to front.
type Snapshot struct {
	Tick             int
	Phase            Phase
	Score            int
	CountdownMS      int
	CountdownSeconds int
	GameOver         bool
	WorldW, WorldH   int
	GroundY          int
	Player           PlayerPose
	Sprites          []Sprite
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	bg := s.background
	sprites := make([]Sprite, 0,
		len(bg.Stars())+len(bg.Mountains())+len(s.platforms)+len(s.aliens)+len(s.obstacles)+1)

	for _, st := range bg.Stars() {
		sprites = append(sprites, Sprite{Kind: SpriteStar, X: st.X, Y: st.Y, Width: st.Size, Height: st.Size})
	}
	for _, m := range bg.Mountains() {
		sprites = append(sprites, Sprite{
			Kind:   SpriteMountain,
			X:      m.X,
			Y:      m.Y,
			Width:  bg.tileWidth(),
			Height: s.cfg.Background.MountainHeight,
			Points: bg.MountainPolygon(m),
		})
	}
	for _, p := range s.platforms {
		sprites = append(sprites, Sprite{Kind: SpritePlatform, X: p.X, Y: p.Y, Width: p.Width, Height: s.cfg.World.PlatformBand})
	}
	for _, a := range s.aliens {
		sprites = append(sprites, Sprite{Kind: SpriteAlien, X: a.X, Y: a.Y, Width: a.Width, Height: a.Height})
	}
	for _, o := range s.obstacles {
		sprites = append(sprites, Sprite{Kind: SpriteObstacle, X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
	}
	if p, ok := s.powerUp.Get(); ok {
		sprites = append(sprites, Sprite{Kind: SpritePowerUp, X: p.X, Y: p.Y, Width: p.Width, Height: p.Height})
	}

	pl := s.player
	return Snapshot{
		Tick:             s.ticks,
		Phase:            s.phase,
		Score:            s.score,
		CountdownMS:      s.countdown,
		CountdownSeconds: max(0, s.countdown/1000),
		GameOver:         s.phase == PhaseGameOver,
		WorldW:           s.width,
		WorldH:           s.height,
		GroundY:          s.GroundY(),
		Player: PlayerPose{
			X:         pl.X,
			Y:         pl.Y,
			Width:     pl.Width,
			Height:    pl.Height,
			Grounded:  pl.Grounded,
			Charging:  pl.Charging(),
			Charge:    pl.Charge(),
			MaxCharge: pl.MaxCharge(),
		},
		Sprites: sprites,
	}
}

// Count returns how many sprites of kind k the snapshot holds.
func (s Snapshot) Count(k SpriteKind) int {
	n := 0
	for _, sp := range s.Sprites {
		if sp.Kind == k {
			n++
		}
	}
	return n
}
