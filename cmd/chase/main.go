// chase is a terminal maze chase game: eat pellets, grab power-ups and keep
// away from the wandering adversaries.
//
// Usage:
//
//	chase                    - Play in the local terminal
//	chase play               - Same as above
//	chase serve              - Start SSH server for remote play
//	chase config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>       - Override the configured tick rate
//	--seed <value>     - Set RNG seed for reproducible games
//	--config <path>    - Use a specific config file
//	--log-file <path>  - Write logs to a file while playing
//	--log-level <lvl>  - Minimum log level (default: info)
//
// Each global flag can also be set through its CHASE_* environment
// variable. A .env file in the working directory is loaded first.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string

	// envFileErr is why .env could not be loaded, reported once a logger exists.
	envFileErr error
)

func main() {
	// A missing .env is normal; variables may be set directly.
	envFileErr = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chase",
	Short: "Maze Chase - eat pellets, dodge adversaries",
	Long: `Maze Chase is a grid chase game for the terminal. Steer through a
random maze, eat pellets (10 points) and power-ups (50 points), and stay
away from the adversaries. The game ends when one of them catches you.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  chase
  chase play --seed 42
  chase serve --ssh :2222
  chase config --config ./my-chase.yaml`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := applyEnv(cmd.Flags()); err != nil {
			return err
		}
		return setLogLevel(flagLogLevel)
	},
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config tick_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
