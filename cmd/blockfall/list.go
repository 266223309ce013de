package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the display backends",
	Long:  `Shows every display backend that can run the game.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	displays := registry.List()

	if len(displays) == 0 {
		fmt.Println("No displays available.")
		return
	}

	fmt.Println("Available displays:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, d := range displays {
		maxNameLen = max(maxNameLen, len(d.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	def := config.DefaultTetrisConfig().Display.Backend
	for _, d := range displays {
		desc := d.Description
		if d.Name == def {
			desc += " (default)"
		}
		fmt.Printf("  %-*s  %s\n", maxNameLen, d.Name, desc)
	}

	fmt.Println()
	fmt.Println("Run 'blockfall play --display <name>' to use one.")
}
