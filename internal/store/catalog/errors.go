package catalog

import "errors"

var (
	// ErrNotFound means no row matched the identifier.
	ErrNotFound = errors.New("not found")
	// ErrConflict means an update lost an optimistic-locking race while the
	// row still exists. Callers decide whether to surface or re-read.
	ErrConflict = errors.New("conflict")
)
