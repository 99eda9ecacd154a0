package ports

import "errors"

// ErrNotFound covers missing profiles and placed items; ErrConflict
// covers optimistic version mismatches and duplicate idempotency keys.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
