package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/philipparndt/golabel/pkg/labels"
	"github.com/philipparndt/golabel/pkg/render"
)

// Config holds the application configuration
type Config struct {
	Workspace WorkspaceConfig `json:"workspace"`
	Editor    EditorConfig    `json:"editor"`
	Display   DisplayConfig   `json:"display"`
	Render    RenderConfig    `json:"render"`
}

// WorkspaceConfig holds the location of the collection folders
type WorkspaceConfig struct {
	Root string `json:"root"`
}

// EditorConfig holds configuration for polygon editing
type EditorConfig struct {
	StrictNames       bool    `json:"strict_names"`
	VertexPickRadius  float64 `json:"vertex_pick_radius"`
	EdgePickTolerance float64 `json:"edge_pick_tolerance"`
}

// DisplayConfig holds configuration for image display
type DisplayConfig struct {
	MaxImageWidth  int `json:"max_image_width"`
	MaxImageHeight int `json:"max_image_height"`
	ThumbnailSize  int `json:"thumbnail_size"`
}

// RenderConfig holds configuration for drawing labels
type RenderConfig struct {
	LineWidth    int  `json:"line_width"`
	VertexRadius int  `json:"vertex_radius"`
	FillAlpha    int  `json:"fill_alpha"`
	ShowNames    bool `json:"show_names"`
}

// Default returns a configuration with default values
func Default() *Config {
	root := "golabel-workspace"
	if home, err := os.UserHomeDir(); err == nil {
		root = filepath.Join(home, "golabel-workspace")
	}

	return &Config{
		Workspace: WorkspaceConfig{
			Root: root,
		},
		Editor: EditorConfig{
			StrictNames:       false,
			VertexPickRadius:  8,
			EdgePickTolerance: 5,
		},
		Display: DisplayConfig{
			MaxImageWidth:  1200,
			MaxImageHeight: 800,
			ThumbnailSize:  96,
		},
		Render: RenderConfig{
			LineWidth:    2,
			VertexRadius: 3,
			FillAlpha:    64,
			ShowNames:    true,
		},
	}
}

// NamePolicy returns the label name policy selected by the editor settings
func (c *Config) NamePolicy() labels.NamePolicy {
	if c.Editor.StrictNames {
		return labels.PolicyStrict
	}
	return labels.PolicyLenient
}

// RenderStyle returns the overlay style with the configured sizes applied
func (c *Config) RenderStyle() render.Style {
	style := render.DefaultStyle()
	style.LineWidth = c.Render.LineWidth
	style.VertexRadius = c.Render.VertexRadius
	style.FillAlpha = uint8(c.Render.FillAlpha)
	style.ShowNames = c.Render.ShowNames
	return style
}

// LoadFromFile loads configuration from a JSON file.
// Fields missing from the file keep their default values.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// LoadOrDefault loads the configuration file if it exists and falls back to
// defaults otherwise
func LoadOrDefault(filename string) (*Config, error) {
	config, err := LoadFromFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Workspace.Root == "" {
		return fmt.Errorf("workspace.root cannot be empty")
	}

	if c.Editor.VertexPickRadius <= 0 {
		return fmt.Errorf("editor.vertex_pick_radius must be positive")
	}

	if c.Editor.EdgePickTolerance <= 0 {
		return fmt.Errorf("editor.edge_pick_tolerance must be positive")
	}

	if c.Display.MaxImageWidth < 1 || c.Display.MaxImageHeight < 1 {
		return fmt.Errorf("display.max_image_width and max_image_height must be positive")
	}

	if c.Display.ThumbnailSize < 16 {
		return fmt.Errorf("display.thumbnail_size must be at least 16")
	}

	if c.Render.LineWidth < 1 {
		return fmt.Errorf("render.line_width must be positive")
	}

	if c.Render.VertexRadius < 0 {
		return fmt.Errorf("render.vertex_radius cannot be negative")
	}

	if c.Render.FillAlpha < 0 || c.Render.FillAlpha > 255 {
		return fmt.Errorf("render.fill_alpha must be between 0 and 255")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "golabel.json"
	}
	return filepath.Join(dir, "golabel", "config.json")
}
