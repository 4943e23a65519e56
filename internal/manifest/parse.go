package manifest

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToolSet reports which fetch tool names are available. It is satisfied by
// the tool registry; the parser only needs membership checks.
type ToolSet interface {
	Has(name string) bool
}

// ParseOptions carries the context a manifest is validated against.
type ParseOptions struct {
	// LedgerName is the reserved filename a dependency must not claim.
	LedgerName string

	// Tools is the set of registered fetch tool names.
	Tools ToolSet
}

// Parse turns raw manifest bytes into a Manifest, or a structured parse
// error. The first significant line is the output directory; every later
// significant line is a four-field dependency definition.
func Parse(data []byte, opts ParseOptions) (*Manifest, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}

	lines := splitLines(string(data))

	outputDir, rest, err := parseOutputDir(lines)
	if err != nil {
		return nil, err
	}

	deps, err := parseDeps(rest, opts)
	if err != nil {
		return nil, err
	}

	return &Manifest{OutputDir: outputDir, Deps: deps}, nil
}

// line pairs a significant manifest line with its 1-based line number.
type line struct {
	num  int
	text string
}

// splitLines returns the significant lines of a manifest, left-trimmed,
// with blank lines and comment lines dropped. Only ASCII whitespace is
// stripped from the right, so non-ASCII spacing at the end of an opaque
// token survives.
func splitLines(text string) []line {
	var out []line
	for i, raw := range strings.Split(text, "\n") {
		ln := strings.TrimLeftFunc(raw, unicode.IsSpace)
		if skippable(ln) {
			continue
		}
		out = append(out, line{num: i + 1, text: strings.TrimRightFunc(ln, isASCIISpace)})
	}
	return out
}

// SplitFields tokenizes a dependency line on ASCII whitespace only.
// Source and version are opaque, so non-ASCII spacing such as U+00A0 is
// ordinary token content, not a field separator.
func SplitFields(ln string) []string {
	return strings.FieldsFunc(ln, isASCIISpace)
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func skippable(ln string) bool {
	return ln == "" || strings.HasPrefix(ln, "#")
}

// parseOutputDir consumes the first significant line and validates its
// /-separated segments. "." and ".." segments are rejected so a manifest
// cannot direct output outside its own project.
func parseOutputDir(lines []line) (string, []line, error) {
	if len(lines) == 0 {
		return "", nil, ErrMissingOutputDir
	}

	ln := lines[0]
	for _, part := range strings.Split(ln.text, "/") {
		if part == "." || part == ".." {
			return "", nil, &InvalidOutputDirError{Line: ln.num, Part: part}
		}
	}

	return ln.text, lines[1:], nil
}

func parseDeps(lines []line, opts ParseOptions) (map[string]Dependency, error) {
	deps := make(map[string]Dependency)
	defnLines := make(map[string]int)

	for _, ln := range lines {
		fields := SplitFields(ln.text)
		if len(fields) != 4 {
			return nil, &InvalidDepLineError{Line: ln.num, Text: ln.text}
		}

		localName := fields[0]
		if idx, ok := firstBadNameByte(localName); ok {
			return nil, &InvalidNameCharError{Line: ln.num, Name: localName, Offset: idx}
		}
		if localName == opts.LedgerName {
			return nil, &ReservedNameError{Line: ln.num, Name: localName}
		}
		if orig, ok := defnLines[localName]; ok {
			return nil, &DuplicateNameError{Line: ln.num, OrigLine: orig, Name: localName}
		}

		toolName := fields[1]
		if opts.Tools == nil || !opts.Tools.Has(toolName) {
			return nil, &UnknownToolError{Line: ln.num, Name: localName, ToolName: toolName}
		}

		deps[localName] = Dependency{
			ToolName: toolName,
			Source:   fields[2],
			Version:  fields[3],
		}
		defnLines[localName] = ln.num
	}

	return deps, nil
}

// firstBadNameByte returns the offset of the first byte of name outside
// [A-Za-z0-9._-], if any.
func firstBadNameByte(name string) (int, bool) {
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '.' || c == '_' || c == '-':
		default:
			return i, true
		}
	}
	return 0, false
}
