package remote

import "errors"

// Error taxonomy of the remote record store. The engine folds every failure
// into one of these classes at its boundary.
var (
	// ErrTransient marks failures worth retrying on a later cycle: network
	// unreachable, throttling, server-side faults.
	ErrTransient = errors.New("transient remote failure")
	// ErrConflict means the remote holds a newer version of the record than
	// the one being saved.
	ErrConflict = errors.New("remote version conflict")
	// ErrTokenExpired means a stored change token is no longer honoured by
	// the server; the affected scope must be resynced from scratch.
	ErrTokenExpired = errors.New("change token expired")
	// ErrUnauthorized means the bearer token was missing or rejected.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrBadRequest means the server rejected the request shape.
	ErrBadRequest = errors.New("bad request")
)
