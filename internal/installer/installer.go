// Package installer orchestrates reconciliation across a project and,
// when recursion is requested, across the manifests found inside freshly
// installed dependencies.
package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/eZanmoto/dpnd/internal/ledger"
	"github.com/eZanmoto/dpnd/internal/manifest"
	"github.com/eZanmoto/dpnd/internal/reconcile"
	"github.com/eZanmoto/dpnd/internal/tool"
)

// Installer reconciles the nearest manifest above a working directory.
type Installer struct {
	// ManifestName is the filename manifests are discovered under.
	ManifestName string

	// LedgerName is the reserved ledger filename inside each output
	// directory.
	LedgerName string

	// Tools is the fetch tool registry used for parse-time validation
	// and install dispatch.
	Tools *tool.Registry
}

// New returns an Installer for the given manifest filename, deriving the
// ledger name by convention.
func New(manifestName string, tools *tool.Registry) *Installer {
	return &Installer{
		ManifestName: manifestName,
		LedgerName:   ledger.NameFor(manifestName),
		Tools:        tools,
	}
}

// project is one worklist entry: a directory whose manifest is pending
// reconciliation. parentDep is empty for the top-level project.
type project struct {
	dir          string
	parentDep    string
	manifestPath string
	data         []byte
}

// Install locates the nearest manifest at or above startDir and reconciles
// it. With recursive set, every dependency directory that itself contains
// a manifest is pushed onto a worklist and reconciled in turn, scoped to
// its own output directory and ledger.
//
// The worklist is bounded: a nested manifest is only discovered after its
// containing directory was freshly fetched, so the walk always terminates.
func (i *Installer) Install(ctx context.Context, startDir string, recursive bool) error {
	projDir, path, data, err := manifest.Discover(startDir, i.ManifestName)
	if err != nil {
		return err
	}

	projs := []project{{dir: projDir, manifestPath: path, data: data}}

	for len(projs) > 0 {
		proj := projs[len(projs)-1]
		projs = projs[:len(projs)-1]

		conf, err := manifest.Parse(proj.data, manifest.ParseOptions{
			LedgerName: i.LedgerName,
			Tools:      i.Tools,
		})
		if err != nil {
			return &ProjectError{Dep: proj.parentDep, ManifestPath: proj.manifestPath, Err: err}
		}

		outputDir := filepath.Join(proj.dir, filepath.FromSlash(conf.OutputDir))
		if err := i.reconcileProject(ctx, outputDir, conf); err != nil {
			return &ProjectError{Dep: proj.parentDep, ManifestPath: proj.manifestPath, Err: err}
		}

		if !recursive {
			break
		}

		// Probe every dependency of the project just reconciled for a
		// nested manifest of its own.
		for _, name := range sortedNames(conf.Deps) {
			depDir := filepath.Join(outputDir, name)
			nestedPath := filepath.Join(depDir, i.ManifestName)

			nested, err := os.ReadFile(nestedPath)
			if os.IsNotExist(err) {
				continue
			}
			if err != nil {
				return &ProjectError{
					Dep:          name,
					ManifestPath: nestedPath,
					Err:          fmt.Errorf("reading nested manifest: %w", err),
				}
			}

			projs = append(projs, project{
				dir:          depDir,
				parentDep:    name,
				manifestPath: nestedPath,
				data:         nested,
			})
		}
	}

	return nil
}

func (i *Installer) reconcileProject(ctx context.Context, outputDir string, conf *manifest.Manifest) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	ledgerPath := filepath.Join(outputDir, i.LedgerName)
	current, existed, err := ledger.Load(ledgerPath)
	if err != nil {
		return err
	}

	exec := &reconcile.Executor{
		OutputDir:  outputDir,
		LedgerPath: ledgerPath,
		Tools:      i.Tools,
	}
	return exec.Apply(ctx, existed, current, conf.Deps)
}

func sortedNames(deps map[string]manifest.Dependency) []string {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProjectError tags any failure with the manifest it occurred in and, for
// nested manifests, the dependency that owns it. This is what lets a
// caller tell "the top-level manifest is broken" apart from "dependency
// X's own manifest is broken".
type ProjectError struct {
	// Dep is the owning dependency's local name, or empty for the
	// top-level project.
	Dep          string
	ManifestPath string
	Err          error
}

func (e *ProjectError) Error() string {
	if e.Dep == "" {
		return fmt.Sprintf("%s: %s", e.ManifestPath, e.Err)
	}
	return fmt.Sprintf("dependency '%s' (%s): %s", e.Dep, e.ManifestPath, e.Err)
}

func (e *ProjectError) Unwrap() error {
	return e.Err
}
