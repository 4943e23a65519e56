// Package dpnd provides the public Go library API for dpnd.
//
// dpnd fetches named external source trees pinned to exact revisions and
// keeps a project's local copy consistent with its declarative manifest,
// including manifests nested inside fetched dependencies. This package
// exposes a small client for embedding that engine in other Go programs.
//
// # Basic Usage
//
//	client, err := dpnd.New(dpnd.Options{WorkDir: "/path/to/project"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = client.Install(ctx, dpnd.InstallOptions{Recursive: true})
package dpnd

import (
	"context"
	"fmt"
	"os"

	"github.com/eZanmoto/dpnd/internal/installer"
	"github.com/eZanmoto/dpnd/internal/manifest"
	"github.com/eZanmoto/dpnd/internal/tool"
)

// Tool fetches a dependency. Implementations place the tree for source
// at version into dir, which exists and is empty when Fetch is called.
type Tool = tool.Tool

// Options configures a dpnd client.
type Options struct {
	// WorkDir is the directory manifest discovery starts from. If empty,
	// the process working directory is used.
	WorkDir string

	// ManifestName overrides the conventional manifest filename,
	// "dpnd.txt". The ledger name is always derived from it.
	ManifestName string

	// Tools are extra fetch tools, registered after the built-in ones.
	// A tool whose Name matches a built-in replaces it.
	Tools []Tool
}

// InstallOptions configures an install operation.
type InstallOptions struct {
	// Recursive also reconciles manifests found inside installed
	// dependencies.
	Recursive bool
}

// Client reconciles a project against its manifest.
type Client struct {
	workDir string
	inst    *installer.Installer
}

// New creates a client with the built-in fetch tools registered.
func New(opts Options) (*Client, error) {
	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		workDir = wd
	}

	manifestName := opts.ManifestName
	if manifestName == "" {
		manifestName = manifest.DefaultName
	}

	reg := tool.NewRegistry()
	reg.Register(tool.Git{})
	for _, t := range opts.Tools {
		reg.Register(t)
	}

	return &Client{
		workDir: workDir,
		inst:    installer.New(manifestName, reg),
	}, nil
}

// Install locates the nearest manifest at or above the client's working
// directory and reconciles the project against it.
func (c *Client) Install(ctx context.Context, opts InstallOptions) error {
	return c.inst.Install(ctx, c.workDir, opts.Recursive)
}
