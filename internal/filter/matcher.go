package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nerrad567/gray-logic-homegraph/internal/homegraph"
)

// Matcher is a compiled pattern. The zero value matches nothing; use
// Compile or MatchAll.
type Matcher struct {
	re  *regexp.Regexp
	all bool
}

// MatchAll returns a matcher that accepts every entity.
func MatchAll() *Matcher {
	return &Matcher{all: true}
}

// Compile compiles pattern. The empty pattern matches everything.
// An invalid pattern returns ErrInvalidPattern together with a matcher
// that matches nothing, so callers may ignore the error and still get the
// required empty result.
func Compile(pattern string) (*Matcher, error) {
	if pattern == "" {
		return MatchAll(), nil
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return &Matcher{}, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return &Matcher{re: re}, nil
}

// MatchString reports whether s contains a match.
func (m *Matcher) MatchString(s string) bool {
	if m.all {
		return true
	}
	if m.re == nil {
		return false
	}
	return m.re.MatchString(s)
}

// Match tests the name first, then the uuid. Entities without a name are
// tested on uuid only.
func (m *Matcher) Match(e homegraph.Entity) bool {
	if m.all {
		return true
	}
	if n, ok := e.(homegraph.NamedEntity); ok && m.MatchString(n.EntityName()) {
		return true
	}
	return m.MatchString(e.EntityUUID())
}

// Match compiles pattern and tests e. An invalid pattern never matches.
func Match(pattern string, e homegraph.Entity) bool {
	m, _ := Compile(pattern) //nolint:errcheck // invalid patterns yield a match-nothing matcher
	return m.Match(e)
}

// MatchExact reports whether value equals e's uuid (ignoring case) or its
// name exactly.
func MatchExact(value string, e homegraph.Entity) bool {
	if strings.EqualFold(value, e.EntityUUID()) {
		return true
	}
	n, ok := e.(homegraph.NamedEntity)
	return ok && n.EntityName() == value
}

// Apply returns the items accepted by pattern in their original order.
// The pattern is compiled once for the whole call.
func Apply[T homegraph.Entity](items []T, pattern string) []T {
	m, _ := Compile(pattern) //nolint:errcheck // invalid patterns yield a match-nothing matcher
	return ApplyMatcher(items, m)
}

// ApplyMatcher is Apply with an already compiled matcher.
func ApplyMatcher[T homegraph.Entity](items []T, m *Matcher) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if m.Match(it) {
			out = append(out, it)
		}
	}
	return out
}
