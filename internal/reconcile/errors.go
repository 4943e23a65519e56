package reconcile

import "fmt"

// RemoveDepError reports a failed deletion of a dependency directory.
type RemoveDepError struct {
	Name string
	Path string
	Err  error
}

func (e *RemoveDepError) Error() string {
	return fmt.Sprintf("couldn't remove '%s' for dependency '%s': %s", e.Path, e.Name, e.Err)
}

func (e *RemoveDepError) Unwrap() error {
	return e.Err
}

// WriteLedgerError reports a failed ledger rewrite. Name is the dependency
// being processed when the write failed, or empty for the initial write on
// a fresh project.
type WriteLedgerError struct {
	Name string
	Path string
	Err  error
}

func (e *WriteLedgerError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("couldn't write ledger '%s': %s", e.Path, e.Err)
	}
	return fmt.Sprintf("couldn't write ledger '%s' while processing dependency '%s': %s", e.Path, e.Name, e.Err)
}

func (e *WriteLedgerError) Unwrap() error {
	return e.Err
}

// CreateDepDirError reports a failure to create a fresh dependency
// directory, including a collision with an unmanaged entry such as a
// regular file.
type CreateDepDirError struct {
	Name string
	Path string
	Err  error
}

func (e *CreateDepDirError) Error() string {
	return fmt.Sprintf("couldn't create directory '%s' for dependency '%s': %s", e.Path, e.Name, e.Err)
}

func (e *CreateDepDirError) Unwrap() error {
	return e.Err
}

// FetchDepError reports a failed fetch-tool invocation. The wrapped error
// is usually a *tool.FetchError carrying whether retrieval or the version
// change failed.
type FetchDepError struct {
	Name string
	Err  error
}

func (e *FetchDepError) Error() string {
	return fmt.Sprintf("dependency '%s': %s", e.Name, e.Err)
}

func (e *FetchDepError) Unwrap() error {
	return e.Err
}
