package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/invasion"
	"github.com/vovakirdan/alien-invasion/internal/platform/tui"
	"github.com/vovakirdan/alien-invasion/internal/registry"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game sized to the terminal.

Controls:
  ←/→ or A/D     - Move
  Space/Up/W     - Hold to charge a jump, let go to launch
  Enter          - Restart (during the countdown or after game over)
  Q/Esc/Ctrl+C   - Quit

Terminals report no key releases. A jump launches once the key's repeats stop,
so a single tap charges for the whole --repeat-delay (550ms by default, about
34 ticks). Set it a little above your keyboard's repeat delay for shorter
hops; the minimum charge needs 320ms or less.

Logs are discarded unless --log-file is set, since the game owns the screen.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	invasion.SetConfigPath(flagConfig)
	invasion.SetLogger(logger)

	game, err := registry.Create(invasion.ID)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: core.TickIntervalFromFPS(flagFPS),
		Seed:         flagSeed,
		RepeatDelay:  flagRepeatDelay,
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("run log unavailable", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	if err := tui.Run(game, store, logger, cfg); err != nil {
		return fmt.Errorf("play: %w", err)
	}

	if store == nil {
		return nil
	}
	runs, err := store.TopRuns(invasion.ID, 10)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderRunTable("Alien Invasion - this session", runs))
	return nil
}
