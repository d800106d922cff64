package filter

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/nerrad567/gray-logic-homegraph/internal/homegraph"
)

// ResolveHome picks the single home a request is scoped to: the first home,
// in graph order, whose name or uuid matches selector. An empty selector
// selects the home flagged primary and fails when there is none. A
// selector that is itself a uuid is compared exactly before falling back
// to pattern matching.
func ResolveHome(homes []*homegraph.Home, selector string) (*homegraph.Home, error) {
	if selector == "" {
		for _, h := range homes {
			if h.IsPrimary {
				return h, nil
			}
		}
		return nil, fmt.Errorf("%w: no primary home", ErrHomeNotFound)
	}
	if _, err := uuid.Parse(selector); err == nil {
		for _, h := range homes {
			if MatchExact(selector, h) {
				return h, nil
			}
		}
	}

	m, err := Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrHomeNotFound, selector, err)
	}
	for _, h := range homes {
		if m.Match(h) {
			return h, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrHomeNotFound, selector)
}
