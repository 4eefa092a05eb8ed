// invasion is Alien Invasion, a side-scroller for the terminal: charge jumps
// across platforms and let the aliens drift past.
//
// Usage:
//
//	invasion [play]               - Play in the terminal
//	invasion sim                  - Run headless autopilot sessions
//	invasion config               - Print the effective configuration
//	invasion config validate <f>  - Check a configuration file
//	invasion list                 - List the registered games
//
// Global flags:
//
//	--fps <rate>         - Tick rate, rounded to whole milliseconds (default: 60)
//	--seed <value>       - RNG seed for reproducible runs
//	--config <path>      - YAML or TOML configuration file
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file
//	--repeat-delay <d>   - Terminal key auto-repeat delay (default: 550ms)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	flagRepeatDelay time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invasion",
	Short: "Alien Invasion - a charged-jump side-scroller for your terminal",
	Long: `Alien Invasion: jump across platforms while aliens and obstacles drift in
from the right. Every alien that leaves the screen scores 10 points.
Touching anything ends the run.

Examples:
  invasion
  invasion play --seed 42
  invasion sim --runs 10 --log-level debug
  invasion config --format toml > invasion.toml
  invasion config validate ./invasion.toml`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML game config")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().DurationVar(&flagRepeatDelay, "repeat-delay", 550*time.Millisecond, "Your terminal's key auto-repeat delay (play only)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}
