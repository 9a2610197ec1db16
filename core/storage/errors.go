package storage

import "errors"

var (
	// ErrNotFound is returned by backends when a key holds no value.
	ErrNotFound = errors.New("storage: key not found")
	// ErrEmptyKey is returned for operations on an empty key.
	ErrEmptyKey = errors.New("storage: empty key")
	// ErrBackendPanic wraps a panic raised inside a backend call.
	ErrBackendPanic = errors.New("storage: backend panicked")
)
