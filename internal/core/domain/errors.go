package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedPayload indicates the raw provider payload is not a
	// mapping at all. This is the only error normalisation can produce;
	// missing fields degrade to defaults instead.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrFetchFailed indicates the fetch collaborator could not obtain
	// a provider payload for the source URL.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrNoUsableData indicates the normalised listing is entirely
	// default-valued, so no advisory report can be produced.
	ErrNoUsableData = errors.New("no usable data")
)
