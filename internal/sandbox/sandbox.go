// Package sandbox confines the reconciliation engine's filesystem
// mutations to the output directory it manages. Every recursive delete
// and directory creation goes through a containment check first, so a
// hostile dependency name can never direct the engine outside the tree
// it owns.
package sandbox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DepPath returns the absolute path for a managed dependency directory
// under outputDir, verifying that the joined path stays inside outputDir.
func DepPath(outputDir, name string) (string, error) {
	absRoot, err := filepath.Abs(outputDir)
	if err != nil {
		return "", fmt.Errorf("resolving output directory: %w", err)
	}

	candidate := filepath.Clean(filepath.Join(absRoot, name))

	// Trailing separator avoids prefix-matching "deps2" against "deps".
	rootPrefix := absRoot + string(filepath.Separator)
	if candidate == absRoot || !strings.HasPrefix(candidate, rootPrefix) {
		return "", fmt.Errorf("dependency path '%s' escapes output directory '%s'", name, absRoot)
	}

	return candidate, nil
}

// RemoveTree deletes the dependency directory for name under outputDir.
// A missing directory is not an error. A non-directory entry at the path
// is left alone for the subsequent create to trip over, so the caller
// reports it as a creation failure rather than silently destroying an
// unmanaged file.
func RemoveTree(outputDir, name string) error {
	path, err := DepPath(outputDir, name)
	if err != nil {
		return err
	}

	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return nil
	}

	return os.RemoveAll(path)
}

// Mkdir creates a fresh empty dependency directory for name under
// outputDir. Any pre-existing entry at the path is an error.
func Mkdir(outputDir, name string) (string, error) {
	path, err := DepPath(outputDir, name)
	if err != nil {
		return "", err
	}

	if err := os.Mkdir(path, 0755); err != nil {
		return "", err
	}

	return path, nil
}
