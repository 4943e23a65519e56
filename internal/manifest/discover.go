package manifest

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when no manifest exists in the start directory
// or any of its ancestors.
var ErrNotFound = errors.New("no dependency manifest found")

// Discover walks from start upward through its ancestors and returns the
// project directory, manifest path and manifest bytes of the nearest
// manifest named name. The nearest ancestor (start included) wins.
func Discover(start, name string) (projDir, path string, data []byte, err error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", "", nil, err
	}

	for {
		candidate := filepath.Join(dir, name)
		data, err := os.ReadFile(candidate)
		if err == nil {
			return dir, candidate, data, nil
		}
		if !os.IsNotExist(err) {
			return "", "", nil, err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", nil, ErrNotFound
		}
		dir = parent
	}
}
