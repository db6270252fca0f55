package labels

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/philipparndt/golabel/pkg/polygon"
)

// SaveFile writes polygons to path. The document is written to a temporary
// file next to path and renamed into place, so a failed save leaves any
// existing file intact.
func SaveFile(path string, polygons []*polygon.Polygon) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &IOError{Op: "create directory for", Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if err := Encode(tmp, polygons); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &IOError{Op: "replace", Path: path, Err: err}
	}
	return nil
}

// LoadFile reads the label file at path into a name to polygon mapping
func LoadFile(path string) (map[string]*polygon.Polygon, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	result, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

// LoadFileOrdered reads the label file at path keeping document order
func LoadFileOrdered(path string) ([]*polygon.Polygon, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	polys, err := DecodeOrdered(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return polys, nil
}
