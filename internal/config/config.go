// Package config provides YAML/TOML game configuration loading and
// validation for Alien Invasion.
package config

// InvasionConfig contains every tunable of the simulation.
type InvasionConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Spawn      SpawnConfig      `yaml:"spawn" toml:"spawn"`
	Background BackgroundConfig `yaml:"background" toml:"background"`
}

// WorldConfig defines the logical playfield and session timing.
type WorldConfig struct {
	Width        int              `yaml:"width" toml:"width"`
	Height       int              `yaml:"height" toml:"height"`
	GroundY      int              `yaml:"ground_y" toml:"ground_y"`           // Fixed ground line
	PlatformBand int              `yaml:"platform_band" toml:"platform_band"` // Landing band below a platform surface
	CountdownMS  int              `yaml:"countdown_ms" toml:"countdown_ms"`
	Platforms    []PlatformConfig `yaml:"platforms" toml:"platforms"`
}

// PlatformConfig places one platform. Its width is World.Width / WidthDiv.
type PlatformConfig struct {
	X        int `yaml:"x" toml:"x"`
	Y        int `yaml:"y" toml:"y"`
	WidthDiv int `yaml:"width_div" toml:"width_div"`
}

// PlayerConfig defines the player body and jump physics.
type PlayerConfig struct {
	StartX        int     `yaml:"start_x" toml:"start_x"`
	Width         int     `yaml:"width" toml:"width"`
	Height        int     `yaml:"height" toml:"height"`
	Speed         float64 `yaml:"speed" toml:"speed"`
	Gravity       float64 `yaml:"gravity" toml:"gravity"`
	ChargeRate    float64 `yaml:"charge_rate" toml:"charge_rate"`
	MinCharge     float64 `yaml:"min_charge" toml:"min_charge"`
	MaxCharge     float64 `yaml:"max_charge" toml:"max_charge"`
	ChargeCeiling float64 `yaml:"charge_ceiling" toml:"charge_ceiling"` // 0 = power-ups compound without limit
}

// SpawnConfig groups the three spawn policies.
type SpawnConfig struct {
	Alien    AlienSpawn    `yaml:"alien" toml:"alien"`
	Obstacle ObstacleSpawn `yaml:"obstacle" toml:"obstacle"`
	PowerUp  PowerUpSpawn  `yaml:"power_up" toml:"power_up"`
}

// AlienSpawn defines alien creation and rate limiting.
// Chance/Roll is the per-tick probability: spawn when rng.Intn(Roll) < Chance.
type AlienSpawn struct {
	Chance      int `yaml:"chance" toml:"chance"`
	Roll        int `yaml:"roll" toml:"roll"`
	MinSize     int `yaml:"min_size" toml:"min_size"` // Inclusive
	MaxSize     int `yaml:"max_size" toml:"max_size"` // Exclusive
	Lift        int `yaml:"lift" toml:"lift"`         // Spawn height above the platform surface
	Speed       int `yaml:"speed" toml:"speed"`
	Burst       int `yaml:"burst" toml:"burst"`               // Consecutive spawns before a forced gap
	GapTicks    int `yaml:"gap_ticks" toml:"gap_ticks"`       // Length of the forced gap
	EscapeScore int `yaml:"escape_score" toml:"escape_score"` // Awarded when an alien leaves the screen
}

// ObstacleSpawn defines obstacle creation.
type ObstacleSpawn struct {
	Chance  int `yaml:"chance" toml:"chance"`
	Roll    int `yaml:"roll" toml:"roll"`
	MinSize int `yaml:"min_size" toml:"min_size"`
	MaxSize int `yaml:"max_size" toml:"max_size"`
	Lift    int `yaml:"lift" toml:"lift"`
	Speed   int `yaml:"speed" toml:"speed"`
}

// PowerUpSpawn defines power-up creation.
type PowerUpSpawn struct {
	Chance int `yaml:"chance" toml:"chance"`
	Roll   int `yaml:"roll" toml:"roll"`
	Size   int `yaml:"size" toml:"size"`
	Lift   int `yaml:"lift" toml:"lift"`
	Speed  int `yaml:"speed" toml:"speed"`
}

// BackgroundConfig defines the parallax scenery.
type BackgroundConfig struct {
	Stars          int `yaml:"stars" toml:"stars"`
	StarSpeed      int `yaml:"star_speed" toml:"star_speed"`
	StarMinSize    int `yaml:"star_min_size" toml:"star_min_size"` // Inclusive
	StarMaxSize    int `yaml:"star_max_size" toml:"star_max_size"` // Exclusive
	MountainSpeed  int `yaml:"mountain_speed" toml:"mountain_speed"`
	MountainHeight int `yaml:"mountain_height" toml:"mountain_height"`
}
