package drafts

import "errors"

var (
	// ErrNotFound indicates a draft or export was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
