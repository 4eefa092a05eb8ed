package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/registry"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// footerHeight is the number of rows reserved below the playfield.
const footerHeight = 1

// outcomeReporter is implemented by games that can say how a run ended.
type outcomeReporter interface {
	Outcome() (cause string, powerUps int)
	Seed() int64
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that runs a game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig

	keys  KeyMap
	help  help.Model
	holds *holdTracker
	frame core.InputFrame // Edge actions collected since the last tick

	state       core.GameState
	runRecorded bool
	quitting    bool

	now func() time.Time
}

// NewModel creates a model for game. store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultTickInterval
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 1)),
		store:  store,
		logger: logger,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		holds:  newHoldTracker(cfg.RepeatDelay),
		frame:  core.NewInputFrame(),
		now:    time.Now,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps a key press to actions. Movement and jump keys start or
// extend a hold; the matching release is synthesised on a later tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.now()

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.recordRun("quit")
		m.quitting = true
		return m, tea.Quit

	case core.ActionLeft, core.ActionRight:
		// Auto-repeat stops for the old key once another one is pressed
		opposite := core.ActionRight
		if action == core.ActionRight {
			opposite = core.ActionLeft
		}
		m.holds.Release(opposite)
		m.holds.Press(action, now)

	case core.ActionJump:
		if m.holds.Press(core.ActionJump, now) {
			m.frame.Set(core.ActionJump)
		}

	case core.ActionRestart:
		m.frame.Set(core.ActionRestart)
	}

	return m, nil
}

// handleResize fits the cell buffer to the terminal. The game keeps its
// world size; rendering scales to whatever the buffer is.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, a := range m.holds.Expire(m.now()) {
		if a == core.ActionJump {
			m.frame.Set(core.ActionJumpRelease)
		}
	}
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if m.holds.Held(a) {
			m.frame.Set(a)
		}
	}

	wasOver := m.state.GameOver
	m.state = m.game.Step(m.frame).State
	m.frame.Clear()

	switch {
	case m.state.GameOver && !wasOver:
		m.recordRun("")
		m.holds.Reset()
	case !m.state.GameOver && wasOver:
		m.runRecorded = false
	}

	return m, tickCmd(m.config.TickInterval)
}

// recordRun adds the current run to the run log once. cause overrides what
// the game reports, which is how abandoned runs are marked.
func (m *Model) recordRun(cause string) {
	if m.runRecorded || m.state.Ticks == 0 {
		return
	}
	m.runRecorded = true

	run := storage.Run{
		GameID: m.game.ID(),
		Score:  m.state.Score,
		Ticks:  m.state.Ticks,
		Seed:   m.config.Seed,
	}
	if r, ok := m.game.(outcomeReporter); ok {
		run.Cause, run.PowerUps = r.Outcome()
		run.Seed = r.Seed()
	}
	if cause != "" {
		run.Cause = cause
	}

	m.logger.Info("run finished", "score", run.Score, "ticks", run.Ticks, "cause", run.Cause, "power_ups", run.PowerUps)
	if m.store == nil {
		return
	}
	if _, err := m.store.RecordRun(run); err != nil {
		m.logger.Error("cannot record run", "err", err)
	}
}

// View renders the playfield and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
