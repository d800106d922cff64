package homegraph

import "time"

// Graph is the read-only view the enumeration layer walks.
type Graph interface {
	Homes() []*Home
}

// Snapshot is one immutable version of the object graph.
type Snapshot struct {
	homes    []*Home
	Source   string
	LoadedAt time.Time
}

// NewSnapshot wraps an already-linked set of homes.
func NewSnapshot(homes []*Home, source string) *Snapshot {
	return &Snapshot{homes: homes, Source: source, LoadedAt: time.Now().UTC()}
}

// Homes returns the homes in graph order. Callers must not modify the result.
func (s *Snapshot) Homes() []*Home {
	if s == nil {
		return nil
	}
	return s.homes
}

// Counts summarises a snapshot for health and notification payloads.
type Counts struct {
	Homes           int `json:"homes"`
	Accessories     int `json:"accessories"`
	Services        int `json:"services"`
	Characteristics int `json:"characteristics"`
	Triggers        int `json:"triggers"`
}

// Counts walks the snapshot once and totals its entities.
func (s *Snapshot) Counts() Counts {
	var c Counts
	for _, h := range s.Homes() {
		c.Homes++
		c.Accessories += len(h.Accessories)
		c.Triggers += len(h.Triggers)
		for _, a := range h.Accessories {
			c.Services += len(a.Services)
			for _, svc := range a.Services {
				c.Characteristics += len(svc.Characteristics)
			}
		}
	}
	return c
}
