package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Settings remembers the collection and image that were open last
type Settings struct {
	Collection string
	Image      string
}

// LoadSettings reads the two-line settings file. A missing file is not an
// error and yields empty settings.
func LoadSettings(path string) (Settings, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to open settings file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() && len(lines) < 2 {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	var s Settings
	if len(lines) > 0 {
		s.Collection = lines[0]
	}
	if len(lines) > 1 && s.Collection != "" {
		s.Image = lines[1]
	}
	return s, nil
}

// SaveSettings writes the two-line settings file. The image line is only
// written when a collection is set.
func SaveSettings(path string, s Settings) error {
	var b strings.Builder
	b.WriteString(s.Collection)
	b.WriteString("\n")
	if s.Collection != "" {
		b.WriteString(s.Image)
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
