// Package filter selects graph entities by a user-supplied pattern.
//
// A pattern is a case-insensitive regular expression searched (not
// anchored) in an entity's name and, when the name does not match, in its
// uuid. The empty pattern matches everything. A pattern that does not
// compile matches nothing.
package filter
