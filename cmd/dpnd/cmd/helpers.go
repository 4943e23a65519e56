package cmd

import (
	"fmt"
	"os"

	"github.com/eZanmoto/dpnd/internal/config"
	"github.com/eZanmoto/dpnd/internal/manifest"
	"github.com/eZanmoto/dpnd/internal/tool"
)

// loadSettings resolves the optional settings layers for a project
// directory. Missing settings files are not an error.
func loadSettings(projectDir string) (*config.Settings, error) {
	settings, _, err := config.Resolve(projectDir)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// effectiveManifestName applies flag > settings > default precedence.
func effectiveManifestName(settings *config.Settings) string {
	if manifestName != "" {
		return manifestName
	}
	if settings.ManifestName != "" {
		return settings.ManifestName
	}
	return manifest.DefaultName
}

// newRegistry creates a tool registry with all built-in fetch tools.
func newRegistry() *tool.Registry {
	reg := tool.NewRegistry()
	reg.Register(tool.Git{})
	return reg
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Printf(format+"\n", args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		fmt.Printf("  "+format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
