package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dash/internal/platform/tui"
	"github.com/vovakirdan/flappy-dash/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space/Up/Click - Flap (also starts and restarts)
  P              - Pause
  B/Esc          - Back to menu (when paused or after game over)
  Ctrl+S         - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Pipes start slow and speed up as you score
  normal - Pipes start at 30% of the speed range
  hard   - Pipes start at 70% of the speed range
  fixed  - Pipes keep the configured speed

Examples:
  arcade play flappy
  arcade play flappy --difficulty hard
  arcade play flappy --render primitive
  arcade play flappy --seed 42
  arcade play flappy --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	launch := applyGameFlags()
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	s := openSession(launch)
	defer s.Close()

	if _, err := tui.Run(game, s.deps, runtimeConfig()); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
