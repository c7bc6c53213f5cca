package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase"
	"github.com/vovakirdan/tui-chase/internal/platform/tui"
	"github.com/vovakirdan/tui-chase/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD - Move
  P           - Pause
  Q/Ctrl+C    - Quit

After the game ends, any key exits.

Examples:
  chase play
  chase play --seed 42
  chase play --config ./my-chase.yaml --log-file chase.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	if err := play(cmd.Context()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs one game in the local terminal. Errors are logged before they
// are returned, and the log file is closed on every path.
func play(ctx context.Context) error {
	logger, closeLog, err := fileLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	noteEnvFile(logger, envFileErr)

	cfg, err := loadConfig(logger)
	if err != nil {
		logger.Error("cannot load config", "error", err)
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(cfg),
		Seed:     flagSeed,
	}

	game, err := registry.Create(chase.ID)
	if err != nil {
		logger.Error("cannot create game", "error", err)
		return fmt.Errorf("creating game: %w", err)
	}

	tracer, stopTelemetry := startTelemetry(ctx, logger)
	defer stopTelemetry()

	if err := tui.Run(ctx, game, rc, tui.Options{Logger: logger, Tracer: tracer}); err != nil {
		logger.Error("game failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
