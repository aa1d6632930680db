package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dash/internal/platform/tui"
	"github.com/vovakirdan/flappy-dash/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Leave a game with B or Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	s := openSession(applyGameFlags())
	defer s.Close()

	cfg := runtimeConfig()
	fixedSeed := cfg.Seed != 0

	for {
		result, err := tui.RunMenu(s.deps.Scores, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(s.scoreSource(), cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}

		if !fixedSeed {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, s.deps, cfg)
		if err != nil {
			// A game that cannot start, e.g. in a too small terminal, returns to the menu.
			fmt.Fprintf(os.Stderr, "Error running %s: %v\n", result.GameID, err)
			s.deps.Logger.Error("game failed", "game", result.GameID, "error", err)
			time.Sleep(2 * time.Second)
			continue
		}
		if !backToMenu {
			return nil
		}
	}
}
