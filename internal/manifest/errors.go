package manifest

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is returned when manifest bytes are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("manifest is not valid UTF-8")

// ErrMissingOutputDir is returned when a manifest has no significant lines.
var ErrMissingOutputDir = errors.New("manifest is missing an output directory line")

// InvalidOutputDirError reports a "." or ".." segment in the output
// directory line.
type InvalidOutputDirError struct {
	Line int
	Part string
}

func (e *InvalidOutputDirError) Error() string {
	return fmt.Sprintf("line %d: output directory contains invalid path component '%s'", e.Line, e.Part)
}

// InvalidDepLineError reports a dependency line that doesn't tokenize into
// exactly four fields.
type InvalidDepLineError struct {
	Line int
	Text string
}

func (e *InvalidDepLineError) Error() string {
	return fmt.Sprintf("line %d: invalid dependency specification: '%s'", e.Line, e.Text)
}

// InvalidNameCharError reports a dependency name containing a character
// outside [A-Za-z0-9._-]. Offset is the byte offset of the first bad
// character within the name.
type InvalidNameCharError struct {
	Line   int
	Name   string
	Offset int
}

func (e *InvalidNameCharError) Error() string {
	return fmt.Sprintf("line %d: dependency name '%s' contains an invalid character at position %d", e.Line, e.Name, e.Offset+1)
}

// ReservedNameError reports a dependency name that collides with the
// ledger filename.
type ReservedNameError struct {
	Line int
	Name string
}

func (e *ReservedNameError) Error() string {
	return fmt.Sprintf("line %d: '%s' is a reserved dependency name", e.Line, e.Name)
}

// DuplicateNameError reports a dependency name defined twice in one
// manifest, citing both definitions.
type DuplicateNameError struct {
	Line     int
	OrigLine int
	Name     string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("line %d: duplicate dependency name '%s' (first defined on line %d)", e.Line, e.Name, e.OrigLine)
}

// UnknownToolError reports a dependency whose tool name has no registered
// fetch tool.
type UnknownToolError struct {
	Line     int
	Name     string
	ToolName string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("line %d: dependency '%s' uses unknown tool '%s'", e.Line, e.Name, e.ToolName)
}
