package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/golabel/internal/collection"
	"github.com/philipparndt/golabel/internal/config"
	"github.com/philipparndt/golabel/internal/session"
	"github.com/philipparndt/golabel/version"
)

var (
	configPath    string
	workspaceRoot string
	strictNames   bool
)

var rootCmd = &cobra.Command{
	Use:   "golabel",
	Short: "Inspect and maintain polygon label files",
	Long: `golabel works on a labelling workspace: one folder per collection, each with
an images/ folder and a labels/ folder holding one ImageLabels XML file per image.
Use golabel-gui to draw labels; use this tool to list, check, render and tidy them.`,
	Version: version.GetFullVersion(),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.GetConfigPath(), "Configuration file")
	rootCmd.PersistentFlags().StringVarP(&workspaceRoot, "workspace", "w", "", "Workspace folder (overrides the configuration)")
	rootCmd.PersistentFlags().BoolVar(&strictNames, "strict", false, "Only accept ASCII letters and digits in label names")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration file and applies the command line overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	if workspaceRoot != "" {
		cfg.Workspace.Root = workspaceRoot
	}
	if rootCmd.PersistentFlags().Changed("strict") {
		cfg.Editor.StrictNames = strictNames
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func openWorkspace() (*config.Config, *collection.Workspace, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	ws, err := collection.Open(cfg.Workspace.Root)
	if err != nil {
		return nil, nil, err
	}
	return cfg, ws, nil
}

// openImage starts a session on one image of a collection
func openImage(collectionName, image string) (*collection.Workspace, *session.Session, error) {
	cfg, ws, err := openWorkspace()
	if err != nil {
		return nil, nil, err
	}
	if !ws.Exists(collectionName) {
		return nil, nil, fmt.Errorf("%w: %s", collection.ErrUnknownCollection, collectionName)
	}

	imagePath := ws.ImagePath(collectionName, image)
	if _, err := os.Stat(imagePath); err != nil {
		return nil, nil, fmt.Errorf("failed to open image: %w", err)
	}

	s := session.New(cfg.NamePolicy())
	if err := s.OpenImage(imagePath, ws.LabelPath(collectionName, image)); err != nil {
		return nil, nil, fmt.Errorf("failed to load labels: %w", err)
	}
	return ws, s, nil
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
