package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-poles/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List all available frontends",
	Long:  `Shows a list of all terminal frontends that can run the game.`,
	Run:   runFrontends,
}

func runFrontends(_ *cobra.Command, _ []string) {
	frontends := registry.List()

	if len(frontends) == 0 {
		fmt.Println("No frontends available.")
		return
	}

	fmt.Println("Available frontends:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, f := range frontends {
		if len(f.ID) > maxIDLen {
			maxIDLen = len(f.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, f := range frontends {
		marker := ""
		if f.ID == appConfig.Frontend {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxIDLen, f.ID, f.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 'poles play --frontend <id>' to use one.")
}
