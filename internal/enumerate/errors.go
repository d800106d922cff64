package enumerate

import "errors"

// Every failure an operation reports wraps exactly one of these.
var (
	// ErrNotFound is returned when the home selector matches no home, or an
	// operation name is unknown.
	ErrNotFound = errors.New("not found")

	// ErrNotImplemented is returned by operations that are declared but not
	// backed by real logic yet.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("internal error")

	// ErrInvalidArgument is returned when a request cannot be decoded.
	ErrInvalidArgument = errors.New("invalid argument")
)
