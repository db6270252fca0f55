package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename [collection] [image] [old-name] [new-name]",
	Short: "Rename a label of an image",
	Args:  cobra.ExactArgs(4),
	Run:   runRename,
}

var removeCmd = &cobra.Command{
	Use:   "remove [collection] [image] [name...]",
	Short: "Remove labels from an image",
	Args:  cobra.MinimumNArgs(3),
	Run:   runRemove,
}

func init() {
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(removeCmd)
}

func runRename(cmd *cobra.Command, args []string) {
	_, s, err := openImage(args[0], args[1])
	if err != nil {
		fail("Error: %v", err)
	}

	name, err := s.Rename(args[2], args[3])
	if err != nil {
		fail("Error renaming label: %v", err)
	}
	if err := s.Save(); err != nil {
		fail("Error saving labels: %v", err)
	}

	fmt.Printf("Renamed %q to %q\n", args[2], name)
	fmt.Printf("Saved labels to: %s\n", s.LabelPath())
}

func runRemove(cmd *cobra.Command, args []string) {
	_, s, err := openImage(args[0], args[1])
	if err != nil {
		fail("Error: %v", err)
	}

	for _, name := range args[2:] {
		if err := s.Remove(name); err != nil {
			fail("Error removing label: %v", err)
		}
		fmt.Printf("Removed %q\n", name)
	}
	if err := s.Save(); err != nil {
		fail("Error saving labels: %v", err)
	}

	fmt.Printf("Saved labels to: %s\n", s.LabelPath())
}
