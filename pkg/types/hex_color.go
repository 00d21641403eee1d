package types

import "strings"

// HexColor is a #RRGGBB (or #RGB) color string.
type HexColor string

// IsValid reports whether the value is a parseable hex color literal.
func (h HexColor) IsValid() bool {
	s := string(h)
	if !strings.HasPrefix(s, "#") {
		return false
	}
	digits := s[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return false
	}
	for _, r := range digits {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (h HexColor) String() string {
	return string(h)
}
