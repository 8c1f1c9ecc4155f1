package config

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrKind represents the category of a config I/O failure
type ErrKind int

const (
	// ErrKindIO indicates a generic read or write failure
	ErrKindIO ErrKind = iota
	// ErrKindNotFound indicates the file does not exist
	ErrKindNotFound
	// ErrKindPermission indicates the file or its directory is not accessible
	ErrKindPermission
)

// String returns a human-readable name for the error kind
func (k ErrKind) String() string {
	switch k {
	case ErrKindIO:
		return "I/O Error"
	case ErrKindNotFound:
		return "Not Found"
	case ErrKindPermission:
		return "Permission Denied"
	default:
		return fmt.Sprintf("ErrKind(%d)", k)
	}
}

// ErrStaleIterator is the panic value when a SectionIter is used after the
// store it came from was structurally modified.
var ErrStaleIterator = errors.New("config: section iterator used after mutation")

// Error describes a failed file operation on a config or checksum file.
type Error struct {
	Kind ErrKind // Category of failure
	Op   string  // "load", "save", "read checksum", "save checksum"
	Path string  // File the operation targeted
	Err  error   // Underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %s (caused by: %v)", e.Op, e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// newError classifies err into an *Error for op on path.
func newError(op, path string, err error) *Error {
	kind := ErrKindIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = ErrKindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = ErrKindPermission
	}
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// IsNotFound reports whether err is a config error for a missing file
func IsNotFound(err error) bool {
	var cfgErr *Error
	if errors.As(err, &cfgErr) {
		return cfgErr.Kind == ErrKindNotFound
	}
	return false
}

// IsPermission reports whether err is a config error caused by file permissions
func IsPermission(err error) bool {
	var cfgErr *Error
	if errors.As(err, &cfgErr) {
		return cfgErr.Kind == ErrKindPermission
	}
	return false
}
