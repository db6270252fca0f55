package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/golabel/pkg/imageio"
	"github.com/philipparndt/golabel/pkg/render"
)

var renderCmd = &cobra.Command{
	Use:   "render [collection] [image]",
	Short: "Draw the labels of an image into a new image file",
	Long: `Render the labels of an image on top of it and write the result.
The output format follows the file extension (png, jpg, gif, bmp, tiff or webp).`,
	Args: cobra.ExactArgs(2),
	Run:  runRender,
}

var (
	renderOutput   string
	renderNoNames  bool
	renderMaxWidth int
)

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file (default: <image>-labels.png)")
	renderCmd.Flags().BoolVar(&renderNoNames, "no-names", false, "Do not draw label names")
	renderCmd.Flags().IntVar(&renderMaxWidth, "max-width", 0, "Scale the output down to this width")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) {
	collectionName, image := args[0], args[1]

	cfg, err := loadConfig()
	if err != nil {
		fail("Error: %v", err)
	}
	_, s, err := openImage(collectionName, image)
	if err != nil {
		fail("Error: %v", err)
	}

	base, err := imageio.Open(s.ImagePath())
	if err != nil {
		fail("Error: %v", err)
	}

	style := cfg.RenderStyle()
	if renderNoNames {
		style.ShowNames = false
	}
	result := render.Overlay(base, s.Labels(), style)

	output := renderOutput
	if output == "" {
		output = strings.TrimSuffix(image, filepath.Ext(image)) + "-labels.png"
	}

	if renderMaxWidth > 0 {
		scaled, _ := imageio.Fit(result, renderMaxWidth, result.Bounds().Dy())
		if err := imageio.Save(scaled, output); err != nil {
			fail("Error: %v", err)
		}
	} else if err := imageio.Save(result, output); err != nil {
		fail("Error: %v", err)
	}

	fmt.Printf("Rendered %d labels to: %s\n", len(s.Labels()), output)
}
