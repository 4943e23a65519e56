// Package config loads the optional .dpnd.yaml settings file. Settings
// configure the tool itself — the manifest filename and the default for
// recursive installs — never the dependency set, which always comes from
// the plain-text manifest.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SettingsFileName is the filename settings are discovered under.
const SettingsFileName = ".dpnd.yaml"

// Settings represents a .dpnd.yaml settings file. Zero values mean
// "not set" so layers can be merged.
type Settings struct {
	// ManifestName overrides the conventional manifest filename.
	ManifestName string `yaml:"manifest_name,omitempty"`

	// Recursive sets the default for the install command's recursive
	// flag; an explicit command-line flag always wins.
	Recursive *bool `yaml:"recursive,omitempty"`
}

// Load reads and validates a settings file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}

	if errs := Validate(&s); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &s, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("settings validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Settings value for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(s *Settings) []string {
	var errs []string

	if strings.ContainsAny(s.ManifestName, "/\\") {
		errs = append(errs, fmt.Sprintf("'manifest_name' must be a bare filename, got '%s'", s.ManifestName))
	}

	return errs
}

// Merge overlays higher-precedence settings onto s, field by field.
func Merge(s, over *Settings) *Settings {
	merged := *s
	if over.ManifestName != "" {
		merged.ManifestName = over.ManifestName
	}
	if over.Recursive != nil {
		merged.Recursive = over.Recursive
	}
	return &merged
}
