package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dash/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	idW, nameW := len("ID"), len("Name")
	for _, g := range games {
		idW = max(idW, len(g.ID))
		nameW = max(nameW, len(g.Name))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", idW, "ID", nameW, "Name", "Category")
	fmt.Printf("  %-*s  %-*s  %s\n", idW, "--", nameW, "----", "--------")
	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %s\n", idW, g.ID, nameW, g.Name, g.Category)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
