package config

import (
	_ "embed"
)

//go:embed defaults/invasion.yaml
var defaultInvasionYAML []byte

// DefaultInvasionConfig returns the built-in configuration.
// It mirrors defaults/invasion.yaml and is the fallback when that fails to parse.
func DefaultInvasionConfig() InvasionConfig {
	return InvasionConfig{
		World: WorldConfig{
			Width:        800,
			Height:       600,
			GroundY:      500,
			PlatformBand: 20,
			CountdownMS:  5000,
			Platforms: []PlatformConfig{
				{X: 0, Y: 500, WidthDiv: 1},
				{X: 150, Y: 400, WidthDiv: 2},
				{X: 300, Y: 300, WidthDiv: 3},
				{X: 100, Y: 200, WidthDiv: 4},
			},
		},
		Player: PlayerConfig{
			StartX:        100,
			Width:         20,
			Height:        50,
			Speed:         5,
			Gravity:       0.5,
			ChargeRate:    0.5,
			MinCharge:     10,
			MaxCharge:     25,
			ChargeCeiling: 0,
		},
		Spawn: SpawnConfig{
			Alien: AlienSpawn{
				Chance:      2,
				Roll:        100,
				MinSize:     40,
				MaxSize:     80,
				Lift:        40,
				Speed:       5,
				Burst:       2,
				GapTicks:    50,
				EscapeScore: 10,
			},
			Obstacle: ObstacleSpawn{
				Chance:  2,
				Roll:    100,
				MinSize: 20,
				MaxSize: 40,
				Lift:    20,
				Speed:   5,
			},
			PowerUp: PowerUpSpawn{
				Chance: 2,
				Roll:   1000,
				Size:   20,
				Lift:   30,
				Speed:  5,
			},
		},
		Background: BackgroundConfig{
			Stars:          50,
			StarSpeed:      1,
			StarMinSize:    1,
			StarMaxSize:    3,
			MountainSpeed:  2,
			MountainHeight: 150,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultInvasionYAML
}
