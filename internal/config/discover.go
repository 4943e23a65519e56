package config

import (
	"errors"
	"os"
	"path/filepath"
)

// Layer represents the precedence level of a settings file.
type Layer string

const (
	LayerUser    Layer = "user"
	LayerProject Layer = "project"
)

// LayerInfo describes a candidate settings file and its load status.
type LayerInfo struct {
	Err    error // non-nil if the file exists but failed to load
	Path   string
	Layer  Layer
	Loaded bool
}

// DiscoverPaths returns the ordered list of settings paths to check, from
// lowest precedence (user) to highest (project). Paths are deduplicated
// by resolved absolute path.
func DiscoverPaths(projectDir string) []LayerInfo {
	var layers []LayerInfo
	seen := make(map[string]bool)

	addLayer := func(layer Layer, path string) {
		if path == "" {
			return
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if seen[abs] {
			return
		}
		seen[abs] = true
		layers = append(layers, LayerInfo{Path: path, Layer: layer})
	}

	addLayer(LayerUser, defaultUserSettingsPath())
	addLayer(LayerProject, filepath.Join(projectDir, SettingsFileName))

	return layers
}

// Resolve loads and merges all settings layers for a project directory.
// Missing files are skipped; a file that exists but fails to load is a
// hard error. The returned LayerInfo slice reports what was consulted.
func Resolve(projectDir string) (*Settings, []LayerInfo, error) {
	merged := &Settings{}
	layers := DiscoverPaths(projectDir)

	for i := range layers {
		s, err := Load(layers[i].Path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			layers[i].Err = err
			return nil, layers, err
		}
		layers[i].Loaded = true
		merged = Merge(merged, s)
	}

	return merged, layers, nil
}

// defaultUserSettingsPath returns the platform-standard user settings path.
func defaultUserSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dpnd", SettingsFileName)
}
