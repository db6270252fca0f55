package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var collectionsCmd = &cobra.Command{
	Use:     "collections",
	Aliases: []string{"ls"},
	Short:   "List the collections of the workspace",
	Args:    cobra.NoArgs,
	Run:     runCollections,
}

var newCollectionCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a collection",
	Long:  "Create a collection folder. Names may only contain ASCII letters and digits.",
	Args:  cobra.ExactArgs(1),
	Run:   runNewCollection,
}

func init() {
	collectionsCmd.AddCommand(newCollectionCmd)
	rootCmd.AddCommand(collectionsCmd)
}

func runCollections(cmd *cobra.Command, args []string) {
	_, ws, err := openWorkspace()
	if err != nil {
		fail("Error: %v", err)
	}

	names, err := ws.Collections()
	if err != nil {
		fail("Error: %v", err)
	}

	fmt.Printf("Workspace: %s\n", ws.Root())
	if len(names) == 0 {
		fmt.Println("No collections")
		return
	}

	for _, name := range names {
		images, err := ws.Images(name)
		if err != nil {
			fail("Error: %v", err)
		}
		fmt.Printf("  %-24s %d images\n", name, len(images))
	}
}

func runNewCollection(cmd *cobra.Command, args []string) {
	_, ws, err := openWorkspace()
	if err != nil {
		fail("Error: %v", err)
	}

	name, err := ws.Create(args[0])
	if err != nil {
		fail("Error creating collection: %v", err)
	}
	fmt.Printf("Created collection: %s\n", name)
}
