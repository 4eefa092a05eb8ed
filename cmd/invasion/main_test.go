package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		flagConfig = ""
		flagFormat = config.FormatYAML
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigCommandTOML(t *testing.T) {
	out, err := execute(t, "config", "--format", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "[world]")
	assert.Contains(t, out, "countdown_ms = 5000")
}

func TestConfigCommandUnknownFormat(t *testing.T) {
	_, err := execute(t, "config", "--format", "ini")
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(good, []byte("player:\n  max_charge: 30\n"), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte("player:\n  min_charge: 50\n"), 0o600))

	out, err := execute(t, "config", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok")

	_, err = execute(t, "config", "validate", bad)
	assert.Error(t, err)
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "invasion")
	assert.Contains(t, out, "Alien Invasion")
}

func TestSimulateIdleStopsAtLimit(t *testing.T) {
	flagIdle = true
	flagMaxTicks = 400
	t.Cleanup(func() {
		flagIdle = false
		flagMaxTicks = 20000
	})

	rc := core.DefaultConfig()
	rc.Seed = 3
	run := simulate(rc, config.DefaultInvasionConfig())

	assert.LessOrEqual(t, run.Ticks, 400)
	assert.Zero(t, run.Score%10)
	assert.Equal(t, int64(3), run.Seed)
	assert.Contains(t, []string{"limit", "alien", "obstacle"}, run.Cause)
}

func TestSimulateAutopilotIsDeterministic(t *testing.T) {
	flagMaxTicks = 3000
	t.Cleanup(func() { flagMaxTicks = 20000 })

	rc := core.DefaultConfig()
	rc.Seed = 11
	a := simulate(rc, config.DefaultInvasionConfig())
	b := simulate(rc, config.DefaultInvasionConfig())
	assert.Equal(t, a, b)
}
