package manager

import "errors"

var (
	// ErrAlreadyExists is the only non-fatal outcome: start was called
	// for a binary path that is already registered.
	ErrAlreadyExists = errors.New("service already exists")

	// ErrNotFound means stop was called for an unregistered binary path.
	ErrNotFound = errors.New("service not found")

	// ErrMissingPID means a persisted record has no pid. Records are only
	// written after a successful spawn, so this signals a corrupted registry.
	ErrMissingPID = errors.New("service PID not found")
)
