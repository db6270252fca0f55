package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/golabel/pkg/labels"
	"github.com/philipparndt/golabel/pkg/polygon"
)

var infoCmd = &cobra.Command{
	Use:   "info [label-file]",
	Short: "Display the labels stored in a label file",
	Long:  "Show every label with its vertex count, bounding box, area and vertices.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

var infoVerbose bool

func init() {
	infoCmd.Flags().BoolVarP(&infoVerbose, "verbose", "v", false, "Also list the vertices of every label")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	polys, err := labels.LoadFileOrdered(filename)
	if err != nil {
		fail("Error reading label file: %v", err)
	}

	fmt.Println("Label File Information")
	fmt.Println("======================")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Labels: %d\n\n", len(polys))

	for _, p := range polys {
		printLabel(p)
	}
}

func printLabel(p *polygon.Polygon) {
	bounds := p.Bounds()

	fmt.Printf("%s:\n", p.Name())
	fmt.Printf("  Vertices: %d\n", p.Len())
	fmt.Printf("  Bounds: %s - %s (%dx%d)\n", bounds.Min, bounds.Max, bounds.Width(), bounds.Height())
	fmt.Printf("  Area: %.1f square pixels\n", p.Area())
	if tags := p.Tags(); len(tags) > 0 {
		fmt.Printf("  Tags: %s\n", strings.Join(tags, ", "))
	}

	if infoVerbose {
		for i, v := range p.Vertices() {
			fmt.Printf("  %3d: %s\n", i+1, v)
		}
	}
	fmt.Println()
}
