package wire

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownEnum is returned when text names no member of an enumeration.
var ErrUnknownEnum = errors.New("unknown enum value")

func enumString(names []string, v int) string {
	if v >= 0 && v < len(names) && names[v] != "" {
		return names[v]
	}
	return strconv.Itoa(v)
}

// parseEnum matches names case-insensitively and also accepts the decimal
// form produced for out-of-range values.
func parseEnum(names []string, s string) (int, error) {
	for i, n := range names {
		if strings.EqualFold(n, s) {
			return i, nil
		}
	}
	if v, err := strconv.Atoi(s); err == nil && v >= 0 && v < len(names) {
		return v, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownEnum, s)
}
