// Package reconcile computes and applies the difference between the
// current dependency state recorded in the ledger and the desired state
// declared by a manifest.
package reconcile

import (
	"sort"

	"github.com/eZanmoto/dpnd/internal/manifest"
)

// Op is the kind of a reconciliation action.
type Op int

const (
	// OpInstall fetches a dependency that is missing or whose recorded
	// (tool, source, version) triple differs from the manifest.
	OpInstall Op = iota

	// OpRemove deletes a dependency no longer declared by the manifest.
	OpRemove
)

func (o Op) String() string {
	if o == OpRemove {
		return "remove"
	}
	return "install"
}

// Action is a single planned state transition for one dependency. Actions
// are produced by Plan and never persisted.
type Action struct {
	Op   Op
	Name string
}

// Plan diffs current against desired and returns the actions that
// transform one into the other. An unchanged dependency produces no
// action, so re-running against a matching ledger yields an empty plan.
// An install that replaces a changed dependency is a single action; the
// executor wipes any pre-existing directory before every install.
//
// No inter-action ordering is significant; actions are sorted by name
// only to make runs deterministic.
func Plan(current, desired map[string]manifest.Dependency) []Action {
	var actions []Action

	for name, want := range desired {
		cur, ok := current[name]
		if !ok || !cur.Equal(want) {
			actions = append(actions, Action{Op: OpInstall, Name: name})
		}
	}

	for name := range current {
		if _, ok := desired[name]; !ok {
			actions = append(actions, Action{Op: OpRemove, Name: name})
		}
	}

	sort.Slice(actions, func(i, j int) bool {
		return actions[i].Name < actions[j].Name
	})

	return actions
}
