package collection

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/philipparndt/golabel/pkg/imageio"
	"github.com/philipparndt/golabel/pkg/labels"
)

const (
	imagesDir    = "images"
	labelsDir    = "labels"
	labelExt     = ".xml"
	settingsFile = ".golabel"
)

// Workspace is a folder holding one sub folder per collection.
// Each collection keeps its images in images/ and one label file per image
// in labels/.
type Workspace struct {
	root string
}

// Open opens the workspace at root, creating the folder if needed
func Open(root string) (*Workspace, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace %s: %w", root, err)
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return &Workspace{root: abs}, nil
}

// Root returns the absolute workspace folder
func (w *Workspace) Root() string {
	return w.root
}

// SettingsPath returns the path of the last-session settings file
func (w *Workspace) SettingsPath() string {
	return filepath.Join(w.root, settingsFile)
}

// Collections lists the collection names in alphabetical order
func (w *Workspace) Collections() ([]string, error) {
	entries, err := os.ReadDir(w.root)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether the named collection exists
func (w *Workspace) Exists(name string) bool {
	info, err := os.Stat(filepath.Join(w.root, name))
	return err == nil && info.IsDir()
}

// Create makes a new collection. Names follow the strict label name policy
// so they are safe as folder names.
func (w *Workspace) Create(raw string) (string, error) {
	name, err := labels.CheckName(raw, labels.PolicyStrict, nil)
	if err != nil {
		return "", err
	}
	if w.Exists(name) {
		return "", fmt.Errorf("%w: %s", ErrCollectionExists, name)
	}

	for _, dir := range []string{imagesDir, labelsDir} {
		if err := os.MkdirAll(filepath.Join(w.root, name, dir), 0755); err != nil {
			return "", fmt.Errorf("failed to create collection %s: %w", name, err)
		}
	}
	return name, nil
}

// Images lists the image file names of a collection in alphabetical order
func (w *Workspace) Images(collection string) ([]string, error) {
	if !w.Exists(collection) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}

	entries, err := os.ReadDir(w.ImagesDir(collection))
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() && imageio.IsSupported(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Import copies the image at src into the collection and returns its file name
func (w *Workspace) Import(collection, src string) (string, error) {
	if !w.Exists(collection) {
		return "", fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	if !imageio.IsSupported(src) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, filepath.Base(src))
	}

	name := filepath.Base(src)
	dst := w.ImagePath(collection, name)
	if _, err := os.Stat(dst); err == nil {
		return "", fmt.Errorf("%w: %s", ErrImageExists, name)
	}

	if err := os.MkdirAll(w.ImagesDir(collection), 0755); err != nil {
		return "", fmt.Errorf("failed to create images folder: %w", err)
	}
	if err := copyFile(src, dst); err != nil {
		return "", err
	}
	return name, nil
}

// ImagesDir returns the image folder of a collection
func (w *Workspace) ImagesDir(collection string) string {
	return filepath.Join(w.root, collection, imagesDir)
}

// ImagePath returns the path of an image inside a collection
func (w *Workspace) ImagePath(collection, image string) string {
	return filepath.Join(w.ImagesDir(collection), image)
}

// LabelPath returns the label file that belongs to an image
func (w *Workspace) LabelPath(collection, image string) string {
	stem := strings.TrimSuffix(image, filepath.Ext(image))
	return filepath.Join(w.root, collection, labelsDir, stem+labelExt)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return nil
}
