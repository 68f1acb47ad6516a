package domain

import "errors"

var (
	// ErrProductNotFound marks a lookup for an ID absent from the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrUnknownAction marks a dispatch with an unrecognized action tag.
	// Unlike not-found conditions it is propagated, not swallowed:
	// it signals an integration bug.
	ErrUnknownAction = errors.New("unknown action")
)
