package manifest

// DefaultName is the conventional filename for a dependency manifest.
const DefaultName = "dpnd.txt"

// Dependency is a named reference to an external source tree pinned to an
// exact revision. The local name is the map key, not part of the value.
type Dependency struct {
	ToolName string
	Source   string
	Version  string
}

// Equal reports whether two dependencies refer to the same source at the
// same revision via the same tool.
func (d Dependency) Equal(o Dependency) bool {
	return d.ToolName == o.ToolName && d.Source == o.Source && d.Version == o.Version
}

// Manifest is the desired state declared by one dependency manifest: an
// output directory plus a set of named dependencies.
type Manifest struct {
	// OutputDir is the manifest-relative directory dependencies are
	// installed under, always /-separated in the manifest text.
	OutputDir string

	Deps map[string]Dependency
}
