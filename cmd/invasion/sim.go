package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/invasion"
	"github.com/vovakirdan/alien-invasion/internal/platform/tui"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

var (
	flagRuns     int
	flagMaxTicks int
	flagIdle     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless sessions with the autopilot",
	Long: `Play sessions without a terminal UI. The autopilot wanders and jumps at
approaching hazards; with --idle the player never moves. Each run ends at
game over or after --max-ticks. Events are logged to stderr.

Examples:
  invasion sim
  invasion sim --runs 20 --seed 7
  invasion sim --idle --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of runs")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 20000, "Tick limit per run (countdown included)")
	simCmd.Flags().BoolVar(&flagIdle, "idle", false, "Send no input")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagRuns <= 0 {
		return errors.New("--runs must be positive")
	}

	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()
	invasion.SetLogger(logger)

	cfg, err := config.LoadInvasion(flagConfig)
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	for i := 0; i < flagRuns; i++ {
		rc := core.DefaultConfig()
		rc.TickInterval = core.TickIntervalFromFPS(flagFPS)
		rc.Seed = seed + int64(i)

		run := simulate(rc, cfg)
		if _, err := store.RecordRun(run); err != nil {
			return err
		}
		logger.Info("run complete", "run", i+1, "seed", run.Seed, "score", run.Score, "ticks", run.Ticks, "cause", run.Cause)
	}

	runs, err := store.TopRuns(invasion.ID, flagRuns)
	if err != nil {
		return err
	}
	stats, err := store.Stats(invasion.ID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, tui.RenderRunTable("Alien Invasion - simulated runs", runs))
	fmt.Fprintf(out, "runs: %d  best: %d  average: %.1f  ticks: %d\n", stats.Runs, stats.Best, stats.AvgScore, stats.Ticks)
	return nil
}

// simulate plays one session to game over or the tick limit.
func simulate(rc core.RuntimeConfig, cfg config.InvasionConfig) storage.Run {
	game := invasion.New()
	game.ResetWith(rc, cfg)
	pilot := invasion.NewAutopilot(core.NewRand(rc.Seed ^ 0x7a11))

	state := game.State()
	for !state.GameOver && state.Ticks < flagMaxTicks {
		in := core.NewInputFrame()
		if !flagIdle {
			in = pilot.Next(game.Session().Snapshot())
		}
		state = game.Step(in).State
	}

	cause, powerUps := game.Outcome()
	if cause == "" {
		cause = "limit"
	}
	return storage.Run{
		GameID:   invasion.ID,
		Score:    state.Score,
		Ticks:    state.Ticks,
		PowerUps: powerUps,
		Cause:    cause,
		Seed:     rc.Seed,
	}
}
