package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacefight/internal/registry"
)

var arenasCmd = &cobra.Command{
	Use:   "arenas",
	Short: "List all available arenas",
	Long:  `Shows every arena layout that can be passed to --arena.`,
	Args:  cobra.NoArgs,
	Run:   runArenas,
}

func runArenas(_ *cobra.Command, _ []string) {
	arenas := registry.List()

	if len(arenas) == 0 {
		fmt.Println("No arenas available.")
		return
	}

	fmt.Println("Available arenas:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, a := range arenas {
		if len(a.Name) > maxNameLen {
			maxNameLen = len(a.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Title")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----")

	for _, a := range arenas {
		fmt.Printf("  %-*s  %s\n", maxNameLen, a.Name, a.Title)
	}

	fmt.Println()
	fmt.Println("Run 'spacefight play --arena <name>' to fight there.")
}
