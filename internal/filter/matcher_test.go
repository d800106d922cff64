package filter

import (
	"errors"
	"testing"

	"github.com/nerrad567/gray-logic-homegraph/internal/homegraph"
)

const kitchenUUID = "6F1C2A4E-1D52-4A83-9C1E-5D6B1F0A0101"

func TestMatch(t *testing.T) {
	kitchen := &homegraph.Room{UUID: kitchenUUID, Name: "Kitchen"}
	profile := &homegraph.Profile{UUID: "ABCDEF00-0000-0000-0000-000000000000"}

	tests := []struct {
		name    string
		pattern string
		entity  homegraph.Entity
		want    bool
	}{
		{"empty pattern", "", kitchen, true},
		{"name substring", "itch", kitchen, true},
		{"case insensitive", "KITCHEN", kitchen, true},
		{"anchored name", "^Kit.*n$", kitchen, true},
		{"uuid fallback", "5D6B1F0A0101", kitchen, true},
		{"lower case uuid", "6f1c2a4e", kitchen, true},
		{"no match", "Bedroom", kitchen, false},
		{"invalid regex", "(", kitchen, false},
		{"unnamed by uuid", "abcdef", profile, true},
		{"unnamed ignores names", "Kitchen", profile, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.pattern, tt.entity); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestCompileInvalid(t *testing.T) {
	m, err := Compile("[a-")
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("Compile() error = %v, want ErrInvalidPattern", err)
	}
	if m.MatchString("a") {
		t.Error("invalid matcher matched")
	}
}

func TestMatchExact(t *testing.T) {
	kitchen := &homegraph.Room{UUID: kitchenUUID, Name: "Kitchen"}

	if !MatchExact("Kitchen", kitchen) {
		t.Error("exact name did not match")
	}
	if MatchExact("kitchen", kitchen) {
		t.Error("exact name match should be case sensitive")
	}
	if !MatchExact("6f1c2a4e-1d52-4a83-9c1e-5d6b1f0a0101", kitchen) {
		t.Error("uuid did not match ignoring case")
	}
	if MatchExact("Kit", kitchen) {
		t.Error("partial name matched exactly")
	}
}

func TestApply(t *testing.T) {
	rooms := []*homegraph.Room{
		{UUID: "1", Name: "Kitchen"},
		{UUID: "2", Name: "Den"},
		{UUID: "3", Name: "Kids Room"},
	}

	tests := []struct {
		pattern string
		want    []string
	}{
		{"", []string{"Kitchen", "Den", "Kids Room"}},
		{"^k", []string{"Kitchen", "Kids Room"}},
		{"den", []string{"Den"}},
		{"garage", nil},
		{"*", nil},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := Apply(rooms, tt.pattern)
			if len(got) != len(tt.want) {
				t.Fatalf("Apply(%q) = %d rooms, want %d", tt.pattern, len(got), len(tt.want))
			}
			for i, r := range got {
				if r.Name != tt.want[i] {
					t.Errorf("Apply(%q)[%d] = %q, want %q", tt.pattern, i, r.Name, tt.want[i])
				}
			}
		})
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	rooms := []*homegraph.Room{{UUID: "1", Name: "Kitchen"}, {UUID: "2", Name: "Den"}, {UUID: "3", Name: "Kids"}}
	once := Apply(rooms, "^k")
	twice := Apply(once, "^k")
	if len(once) != len(twice) {
		t.Fatalf("second Apply changed the result: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("element %d differs", i)
		}
	}
}
