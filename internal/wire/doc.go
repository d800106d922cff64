// Package wire defines the stable records exchanged with clients.
//
// Enumerations are int32-backed and travel by name in JSON and by number in
// CBOR. Their zero value is always the Invalid (or "no filter") member, so a
// missing field decodes to a well-defined value. Values and numbers are
// tagged unions: at most one field of Value or Number is set.
package wire
