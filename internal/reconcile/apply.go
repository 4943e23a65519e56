package reconcile

import (
	"context"
	"path/filepath"

	"github.com/eZanmoto/dpnd/internal/ledger"
	"github.com/eZanmoto/dpnd/internal/manifest"
	"github.com/eZanmoto/dpnd/internal/sandbox"
	"github.com/eZanmoto/dpnd/internal/tool"
)

// Executor applies planned actions against one project's output directory,
// rewriting the ledger after every mutation so the ledger never claims a
// directory exists when it doesn't.
type Executor struct {
	// OutputDir is the directory dependencies are installed under.
	OutputDir string

	// LedgerPath is the path of the ledger file inside OutputDir.
	LedgerPath string

	// Tools dispatches installs to the fetch tool named by each
	// dependency.
	Tools *tool.Registry
}

// Apply reconciles desired against current, one action at a time. Any
// single failure aborts the whole run immediately; the ledger as written
// up to that point still describes exactly what is on disk.
//
// ledgerExisted reports whether the ledger file was present before this
// run: a fresh project with zero actions still gets its ledger written
// once, so that an existing ledger can always be trusted.
func (e *Executor) Apply(ctx context.Context, ledgerExisted bool, current, desired map[string]manifest.Dependency) error {
	actions := Plan(current, desired)

	cur := make(map[string]manifest.Dependency, len(current))
	for name, dep := range current {
		cur[name] = dep
	}

	if len(actions) == 0 {
		if !ledgerExisted {
			if err := ledger.Write(e.LedgerPath, cur); err != nil {
				return &WriteLedgerError{Path: e.LedgerPath, Err: err}
			}
		}
		return nil
	}

	for _, act := range actions {
		// Wipe first, both for removes and for installs that replace a
		// stale directory, then commit the removal to the ledger before
		// anything else is attempted.
		if err := sandbox.RemoveTree(e.OutputDir, act.Name); err != nil {
			return &RemoveDepError{Name: act.Name, Path: filepath.Join(e.OutputDir, act.Name), Err: err}
		}
		delete(cur, act.Name)

		if err := ledger.Write(e.LedgerPath, cur); err != nil {
			return &WriteLedgerError{Name: act.Name, Path: e.LedgerPath, Err: err}
		}

		if act.Op != OpInstall {
			continue
		}

		dep := desired[act.Name]

		dir, err := sandbox.Mkdir(e.OutputDir, act.Name)
		if err != nil {
			return &CreateDepDirError{Name: act.Name, Path: filepath.Join(e.OutputDir, act.Name), Err: err}
		}

		t, err := e.Tools.Get(dep.ToolName)
		if err != nil {
			return &FetchDepError{Name: act.Name, Err: err}
		}
		if err := t.Fetch(ctx, dep.Source, dep.Version, dir); err != nil {
			return &FetchDepError{Name: act.Name, Err: err}
		}

		cur[act.Name] = dep
		if err := ledger.Write(e.LedgerPath, cur); err != nil {
			return &WriteLedgerError{Name: act.Name, Path: e.LedgerPath, Err: err}
		}
	}

	return nil
}
