package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names accepted by Decode and Encode.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// configNames are tried in order inside each search directory.
var configNames = []string{"invasion.yaml", "invasion.yml", "invasion.toml"}

// LoadInvasion loads and validates the game configuration.
// Search order: customPath -> ~/.invasion/configs/invasion.{yaml,yml,toml}
// -> ./configs/invasion.{yaml,yml,toml} -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
// The first file found wins; if it cannot be loaded the error is returned
// rather than falling through to the next candidate.
func LoadInvasion(customPath string) (InvasionConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	for _, dir := range searchDirs() {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			return LoadFile(path)
		}
	}

	cfg, err := Decode(DefaultYAML(), FormatYAML)
	if err != nil {
		return DefaultInvasionConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads one configuration file, picking the decoder by extension.
func LoadFile(path string) (InvasionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return InvasionConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Decode(data, formatFromPath(path))
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data in the given format over the default configuration.
func Decode(data []byte, format string) (InvasionConfig, error) {
	cfg := DefaultInvasionConfig()
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, err
		}
	case FormatYAML, "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unknown format %q", format)
	}
	return cfg, nil
}

// Encode serialises cfg as YAML or TOML.
func Encode(cfg InvasionConfig, format string) ([]byte, error) {
	switch format {
	case FormatYAML, "":
		return yaml.Marshal(cfg)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: cannot encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("config: unknown format %q", format)
	}
}

// Validate reports every value the simulation cannot run with.
func (c InvasionConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	w := c.World
	check(w.Width > 0 && w.Height > 0, "world size must be positive, got %dx%d", w.Width, w.Height)
	check(w.GroundY > 0 && w.GroundY <= w.Height, "ground_y %d must be inside the world height %d", w.GroundY, w.Height)
	check(w.PlatformBand > 0, "platform_band must be positive")
	check(w.CountdownMS >= 0, "countdown_ms must not be negative")
	check(len(w.Platforms) > 0, "at least one platform is required")
	for i, p := range w.Platforms {
		check(p.WidthDiv > 0, "platform %d: width_div must be positive", i)
	}

	p := c.Player
	check(p.Width > 0 && p.Height > 0, "player size must be positive")
	check(p.Width <= w.Width, "player wider than the world")
	check(p.StartX-p.Width/2 >= 0 && p.StartX+p.Width/2 <= w.Width,
		"start_x %d puts the player outside the world [0,%d]", p.StartX, w.Width)
	check(p.Speed >= 0, "player speed must not be negative")
	check(p.Gravity > 0, "gravity must be positive")
	check(p.ChargeRate > 0, "charge_rate must be positive")
	check(p.MinCharge > 0 && p.MinCharge <= p.MaxCharge, "min_charge must be in (0, max_charge]")
	check(p.ChargeCeiling == 0 || p.ChargeCeiling >= p.MaxCharge, "charge_ceiling must be 0 or at least max_charge")

	a := c.Spawn.Alien
	checkChance(check, "alien", a.Chance, a.Roll)
	check(a.MinSize > 0 && a.MinSize < a.MaxSize, "alien size range [%d,%d) is empty", a.MinSize, a.MaxSize)
	check(a.Speed > 0, "alien speed must be positive")
	check(a.Burst > 0, "alien burst must be positive")
	check(a.GapTicks >= 0, "alien gap_ticks must not be negative")

	o := c.Spawn.Obstacle
	checkChance(check, "obstacle", o.Chance, o.Roll)
	check(o.MinSize > 0 && o.MinSize < o.MaxSize, "obstacle size range [%d,%d) is empty", o.MinSize, o.MaxSize)
	check(o.Speed > 0, "obstacle speed must be positive")

	u := c.Spawn.PowerUp
	checkChance(check, "power_up", u.Chance, u.Roll)
	check(u.Size > 0, "power_up size must be positive")
	check(u.Speed > 0, "power_up speed must be positive")

	b := c.Background
	check(b.Stars >= 0, "stars must not be negative")
	check(b.StarMinSize > 0 && b.StarMinSize < b.StarMaxSize, "star size range [%d,%d) is empty", b.StarMinSize, b.StarMaxSize)
	check(b.StarSpeed >= 0, "star_speed must not be negative")
	check(b.MountainSpeed > 0, "mountain_speed must be positive")
	check(w.Width >= 2, "world too narrow for mountains")

	return errors.Join(errs...)
}

func checkChance(check func(bool, string, ...any), name string, chance, roll int) {
	check(roll > 0, "%s roll must be positive", name)
	check(chance >= 0 && chance <= roll, "%s chance %d must be in [0, roll %d]", name, chance, roll)
}

// formatFromPath maps a file extension to a decoder.
func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// searchDirs lists the directories checked when no explicit path is given.
func searchDirs() []string {
	dirs := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".invasion", "configs"))
	}
	return append(dirs, "configs")
}
