package tui

import (
	"maps"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	frames []core.InputFrame
	state  core.GameState
	resets int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Outcome() (string, int) { return "alien", 2 }
func (g *fakeGame) Seed() int64 { return 99 }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake", core.ColorDefault) }
func (g *fakeGame) last() core.InputFrame { return g.frames[len(g.frames)-1] }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	// The model clears its frame after each step
	g.frames = append(g.frames, core.InputFrame{Actions: maps.Clone(in.Actions)})
	g.state.Ticks++
	return core.StepResult{State: g.state}
}

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }
func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestModel(t *testing.T, game *fakeGame, store *storage.Store) (Model, *testClock) {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewModel(game, store, nil, cfg)
	clock := &testClock{t: time.Unix(1000, 0)}
	m.now = clock.now
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(t *testing.T, m Model, clock *testClock) Model {
	t.Helper()
	clock.advance(16 * time.Millisecond)
	return update(t, m, TickMsg(clock.t))
}

func TestInitResetsGame(t *testing.T) {
	game := &fakeGame{}
	m, _ := newTestModel(t, game, nil)
	assert.NotNil(t, m.Init())
	assert.Equal(t, 1, game.resets)
}

func TestSingleJumpTapReleasesAfterRepeatDelay(t *testing.T) {
	game := &fakeGame{}
	m, clock := newTestModel(t, game, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m, clock)
	assert.True(t, game.last().Has(core.ActionJump))
	assert.False(t, game.last().Has(core.ActionJumpRelease))

	released := false
	for i := 0; i < 40 && !released; i++ {
		m = tick(t, m, clock)
		require.False(t, game.last().Has(core.ActionJump))
		released = game.last().Has(core.ActionJumpRelease)
	}
	assert.True(t, released)
}

func TestShortRepeatDelayShortensTap(t *testing.T) {
	game := &fakeGame{}
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	cfg.RepeatDelay = 200 * time.Millisecond
	m := NewModel(game, nil, nil, cfg)
	clock := &testClock{t: time.Unix(1000, 0)}
	m.now = clock.now

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	ticks, released := 0, false
	for !released {
		require.Less(t, ticks, 40, "jump never released")
		m = tick(t, m, clock)
		ticks++
		released = game.last().Has(core.ActionJumpRelease)
	}
	// First tick past 200ms
	assert.Equal(t, 13, ticks)
	assert.Less(t, ticks*16, 320)
}

func TestHeldJumpKeepsCharging(t *testing.T) {
	game := &fakeGame{}
	m, clock := newTestModel(t, game, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	for i := 0; i < 60; i++ {
		// Key repeat every 32ms
		if i%2 == 0 {
			m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
		}
		m = tick(t, m, clock)
		require.False(t, game.last().Has(core.ActionJumpRelease), "tick %d", i)
	}

	jumps := 0
	for _, f := range game.frames {
		if f.Has(core.ActionJump) {
			jumps++
		}
	}
	assert.Equal(t, 1, jumps)
}

func TestMovementHeldEveryTick(t *testing.T) {
	game := &fakeGame{}
	m, clock := newTestModel(t, game, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < 5; i++ {
		m = tick(t, m, clock)
		require.True(t, game.last().Has(core.ActionLeft), "tick %d", i)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, m, clock)
	assert.True(t, game.last().Has(core.ActionRight))
	assert.False(t, game.last().Has(core.ActionLeft))
}

func TestRestartIsAnEdge(t *testing.T) {
	game := &fakeGame{}
	m, clock := newTestModel(t, game, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, clock)
	assert.True(t, game.last().Has(core.ActionRestart))

	tick(t, m, clock)
	assert.False(t, game.last().Has(core.ActionRestart))
}

func TestRunRecordedOncePerGameOver(t *testing.T) {
	store, err := storage.Open()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	game := &fakeGame{}
	m, clock := newTestModel(t, game, store)
	m = tick(t, m, clock)

	game.state.Score = 30
	game.state.GameOver = true
	for i := 0; i < 3; i++ {
		m = tick(t, m, clock)
	}

	runs, err := store.Runs("fake")
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 30, runs[0].Score)
	assert.Equal(t, "alien", runs[0].Cause)
	assert.Equal(t, 2, runs[0].PowerUps)
	assert.Equal(t, int64(99), runs[0].Seed)

	game.state = core.GameState{}
	m = tick(t, m, clock)
	game.state.GameOver = true
	tick(t, m, clock)

	runs, err = store.Runs("fake")
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestQuitRecordsAbandonedRun(t *testing.T) {
	store, err := storage.Open()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	game := &fakeGame{}
	m, clock := newTestModel(t, game, store)
	m = tick(t, m, clock)

	next, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.Empty(t, next.(Model).View())

	runs, err := store.Runs("fake")
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "quit", runs[0].Cause)
}

func TestResizeKeepsFooterRow(t *testing.T) {
	game := &fakeGame{}
	m, _ := newTestModel(t, game, nil)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 29, m.screen.Height())
	assert.Equal(t, 0, game.resets)
}

func TestViewShowsGameAndHelp(t *testing.T) {
	game := &fakeGame{}
	m, _ := newTestModel(t, game, nil)

	view := m.View()
	assert.Contains(t, view, "fake")
	assert.Contains(t, view, "restart")
}
