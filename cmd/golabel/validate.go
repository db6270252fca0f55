package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/golabel/internal/collection"
	"github.com/philipparndt/golabel/pkg/labels"
)

var validateCmd = &cobra.Command{
	Use:   "validate [collection...]",
	Short: "Check the label files of one or more collections",
	Long: `Parse every label file of the given collections (all collections if none are
given) and report files that cannot be read, labels with fewer than three vertices
and names that the current name policy would reject.`,
	Run: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	cfg, ws, err := openWorkspace()
	if err != nil {
		fail("Error: %v", err)
	}

	names := args
	if len(names) == 0 {
		names, err = ws.Collections()
		if err != nil {
			fail("Error: %v", err)
		}
	}

	problems := 0
	checked := 0
	for _, name := range names {
		images, err := ws.Images(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			problems++
			continue
		}

		for _, image := range images {
			found, n := validateImage(ws, cfg.NamePolicy(), name, image)
			if found {
				checked++
			}
			problems += n
		}
	}

	fmt.Printf("Checked %d label files, %d problems\n", checked, problems)
	if problems > 0 {
		os.Exit(1)
	}
}

// validateImage reports whether the image has a label file and how many
// problems it holds
func validateImage(ws *collection.Workspace, policy labels.NamePolicy, collectionName, image string) (bool, int) {
	path := ws.LabelPath(collectionName, image)

	polys, err := labels.LoadFileOrdered(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return true, 1
	}

	problems := 0
	for _, p := range polys {
		if err := labels.CheckCommittable(p); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %q: %v\n", path, p.Name(), err)
			problems++
		}
		if _, err := labels.CheckName(p.Name(), policy, nil); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			problems++
		}
	}
	return true, problems
}
