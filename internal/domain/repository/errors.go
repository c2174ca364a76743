package repository

import "errors"

// Store outcome sentinels. Handlers map these onto transport statuses:
// ErrNotFound -> 404, ErrConflict -> 409, ErrEmptyPatch -> 400. Any other
// repository error is an internal failure.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrEmptyPatch = errors.New("empty patch")
)
