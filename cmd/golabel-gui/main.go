package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/philipparndt/golabel/internal/collection"
	"github.com/philipparndt/golabel/internal/config"
	"github.com/philipparndt/golabel/version"
)

var (
	configPath    string
	workspaceRoot string
	strictNames   bool
)

var rootCmd = &cobra.Command{
	Use:     "golabel-gui [collection]",
	Short:   "Draw polygon labels on images",
	Long:    `golabel-gui opens a labelling workspace and lets you outline regions of images with named polygons.`,
	Args:    cobra.MaximumNArgs(1),
	Version: version.GetFullVersion(),
	Run:     run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", config.GetConfigPath(), "Configuration file")
	rootCmd.Flags().StringVarP(&workspaceRoot, "workspace", "w", "", "Workspace folder (overrides the configuration)")
	rootCmd.Flags().BoolVar(&strictNames, "strict", false, "Only accept ASCII letters and digits in label names")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if workspaceRoot != "" {
		cfg.Workspace.Root = workspaceRoot
	}
	if cmd.Flags().Changed("strict") {
		cfg.Editor.StrictNames = strictNames
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	ws, err := collection.Open(cfg.Workspace.Root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening workspace: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Workspace: %s\n", ws.Root())

	a := app.NewWithID("io.github.philipparndt.golabel")
	w := a.NewWindow("golabel")

	editor, err := NewApp(w, cfg, ws)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting editor: %v\n", err)
		os.Exit(1)
	}
	defer editor.Close()

	if len(args) > 0 {
		editor.Restore(config.Settings{Collection: args[0]})
	} else {
		editor.RestoreLastSession()
	}

	w.Resize(fyne.NewSize(float32(cfg.Display.MaxImageWidth)+300, float32(cfg.Display.MaxImageHeight)+100))
	w.ShowAndRun()
}
