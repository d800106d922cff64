package homegraph

import "errors"

var (
	// ErrInvalidSnapshot is returned when a snapshot document cannot be parsed.
	ErrInvalidSnapshot = errors.New("homegraph: invalid snapshot")

	// ErrSchemaViolation is returned when a snapshot document fails schema validation.
	ErrSchemaViolation = errors.New("homegraph: snapshot violates schema")

	// ErrInvalidUUID is returned when an entity carries a malformed uuid.
	ErrInvalidUUID = errors.New("homegraph: invalid uuid")

	// ErrDuplicateUUID is returned when two entities of the same kind in a
	// home share a uuid.
	ErrDuplicateUUID = errors.New("homegraph: duplicate uuid")

	// ErrDanglingReference is returned when a reference names no entity.
	ErrDanglingReference = errors.New("homegraph: dangling reference")
)
