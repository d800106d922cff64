// Package enumerate implements the read operations clients use to browse
// the home graph.
//
// Every operation follows the same shape:
//
//	resolve home → filter (possibly cascading) → transform → response
//
// Each call reads the store's snapshot once, so a response never mixes two
// graph versions. Operations are pure over that snapshot and safe for
// concurrent use.
//
// Mutating operations (AddRemoveRoom, WriteCharacteristic,
// ExecuteActionSet) are declared and return ErrNotImplemented so clients can
// tell "unsupported" apart from "no data".
//
// Tests in this package use testify's assert and require, unlike the rest
// of the module, because they compare whole wire records field by field.
package enumerate
