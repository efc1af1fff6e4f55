package store

import "errors"

var (
	// ErrNotFound indicates the requested network does not exist.
	ErrNotFound = errors.New("store: network not found")

	// ErrMalformed indicates input that cannot be interpreted as a network.
	ErrMalformed = errors.New("store: malformed network data")

	// ErrUnknownFormat indicates a format name no codec handles.
	ErrUnknownFormat = errors.New("store: unknown format")
)
