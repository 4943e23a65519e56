// Package ledger reads and writes the engine-authored record of which
// dependencies are currently installed under an output directory. The
// ledger uses the dependency-line grammar of the manifest, without the
// output directory header, so it is re-parseable with the same rules.
package ledger

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/eZanmoto/dpnd/internal/manifest"
)

// NameFor returns the conventional ledger filename for a manifest name.
func NameFor(manifestName string) string {
	return "current_" + manifestName
}

// ErrInvalidUTF8 is returned when ledger bytes are not valid UTF-8. A
// ledger that exists but can't be decoded is never treated as empty.
var ErrInvalidUTF8 = errors.New("ledger is not valid UTF-8")

// CorruptEntryError reports a ledger line that doesn't tokenize into
// exactly four fields. The engine only writes well-formed lines, so this
// indicates hand-editing or corruption.
type CorruptEntryError struct {
	Line int
	Text string
}

func (e *CorruptEntryError) Error() string {
	return fmt.Sprintf("line %d: invalid ledger entry: '%s'", e.Line, e.Text)
}

// Decode parses ledger text into the current-state map. Ledger contents
// are trusted beyond the per-line grammar check: names are not re-validated
// against the manifest's character set.
func Decode(data []byte) (map[string]manifest.Dependency, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}

	deps := make(map[string]manifest.Dependency)
	for i, raw := range strings.Split(string(data), "\n") {
		ln := strings.TrimLeftFunc(raw, unicode.IsSpace)
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}

		fields := manifest.SplitFields(ln)
		if len(fields) != 4 {
			return nil, &CorruptEntryError{Line: i + 1, Text: ln}
		}

		deps[fields[0]] = manifest.Dependency{
			ToolName: fields[1],
			Source:   fields[2],
			Version:  fields[3],
		}
	}

	return deps, nil
}

// Encode renders the current-state map as ledger text, one line per
// dependency. Ledger semantics are set-based; lines are sorted by name
// only to keep rewrites deterministic.
func Encode(deps map[string]manifest.Dependency) []byte {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		dep := deps[name]
		fmt.Fprintf(&b, "%s %s %s %s\n", name, dep.ToolName, dep.Source, dep.Version)
	}
	return []byte(b.String())
}

// Load reads and decodes the ledger at path. A missing ledger is a fresh
// project: an empty map with existed == false.
func Load(path string) (deps map[string]manifest.Dependency, existed bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]manifest.Dependency{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading ledger %s: %w", path, err)
	}

	deps, err = Decode(data)
	if err != nil {
		return nil, true, fmt.Errorf("parsing ledger %s: %w", path, err)
	}
	return deps, true, nil
}

// Write rewrites the full ledger atomically using a temp file and rename,
// so a crash mid-write can at worst leave the previous ledger in place,
// never a half-written one. The tilde in the temp name falls outside the
// manifest's name character set, so no dependency directory can occupy
// the temp path.
func Write(path string, deps map[string]manifest.Dependency) error {
	tmp := path + ".tmp~"
	if err := os.WriteFile(tmp, Encode(deps), 0644); err != nil {
		return fmt.Errorf("writing temp ledger %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("renaming temp ledger to %s: %w", path, err)
	}

	return nil
}
