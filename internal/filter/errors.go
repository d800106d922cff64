package filter

import "errors"

var (
	// ErrInvalidPattern is returned when a pattern is not a valid regular expression.
	ErrInvalidPattern = errors.New("filter: invalid pattern")

	// ErrHomeNotFound is returned when no home matches a selector.
	ErrHomeNotFound = errors.New("filter: home not found")
)
