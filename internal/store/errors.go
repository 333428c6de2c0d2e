package store

import "errors"

var (
	// ErrRecordNotFound is returned when a requested record does not exist
	// in the local database.
	ErrRecordNotFound = errors.New("record not found in local store")
)
