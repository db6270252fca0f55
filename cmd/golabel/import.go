package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [collection] [file...]",
	Short: "Copy images into a collection",
	Args:  cobra.MinimumNArgs(2),
	Run:   runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) {
	_, ws, err := openWorkspace()
	if err != nil {
		fail("Error: %v", err)
	}

	failed := 0
	for _, src := range args[1:] {
		name, err := ws.Import(args[0], src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing %s: %v\n", src, err)
			failed++
			continue
		}
		fmt.Printf("Imported: %s\n", name)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
