// Package tool defines the fetch-tool capability the reconciliation engine
// dispatches on, plus the registry that maps manifest tool names to
// implementations. The engine never knows how a tool talks to a remote; it
// only requires that a successful fetch leaves the target directory
// populated at exactly the requested revision.
package tool

import (
	"context"
	"fmt"
	"sort"
)

// Tool materializes a (source, version) pair into a directory.
type Tool interface {
	// Name returns the identifier this tool is registered under. It must
	// be unique across all fetch tools.
	Name() string

	// Fetch retrieves source at version into dir, which is an existing
	// empty directory. Failures are reported as a *FetchError.
	Fetch(ctx context.Context, source, version, dir string) error
}

// FetchKind distinguishes the two ways a fetch can fail. The distinction
// changes the user-facing diagnosis, so tools must preserve it.
type FetchKind int

const (
	// RetrieveFailed means the source could not be obtained at all.
	RetrieveFailed FetchKind = iota

	// VersionChangeFailed means the source was obtained but could not be
	// switched to the requested version.
	VersionChangeFailed
)

// FetchError is the failure a Tool reports from Fetch.
type FetchError struct {
	Kind FetchKind
	Err  error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case VersionChangeFailed:
		return fmt.Sprintf("couldn't change the dependency version: %s", e.Err)
	default:
		return fmt.Sprintf("couldn't retrieve dependency: %s", e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Registry maps tool names to Tool implementations. It is constructed once
// at process start and passed explicitly to the parser and executor; there
// is no ambient global registry.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool under its own name.
func (r *Registry) Register(t Tool) {
	r.tools[t.Name()] = t
}

// Has reports whether a tool is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.tools[name]
	return ok
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (Tool, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool '%s' (supported tools: %v)", name, r.Names())
	}
	return t, nil
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
