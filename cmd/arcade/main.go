// arcade is a terminal arcade built around Flappy Dash.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show best and top scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible obstacle courses
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--config <path> - Use a custom game config YAML
//	--difficulty    - Difficulty preset: easy, normal, hard, fixed
//	--render        - Render mode: sprite or primitive
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/flappy-dash/internal/games/flappy"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	// Game flags
	flagConfig     string
	flagDifficulty string
	flagRender     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Flappy Dash - a terminal arcade",
	Long: `Flappy Dash is a terminal arcade: keep the bird in the air and thread
it through the gaps between the pipes.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View best and top scores

Examples:
  arcade list
  arcade play flappy
  arcade menu
  arcade serve --ssh :2222
  arcade scores flappy`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagRender, "render", "", "Render mode: sprite or primitive (default from config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
