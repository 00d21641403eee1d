package enums

import "fmt"

// TextAlignment controls horizontal alignment within a text layer box.
type TextAlignment string

const (
	TextAlignmentLeft   TextAlignment = "left"
	TextAlignmentCenter TextAlignment = "center"
	TextAlignmentRight  TextAlignment = "right"
)

var validTextAlignments = []TextAlignment{
	TextAlignmentLeft,
	TextAlignmentCenter,
	TextAlignmentRight,
}

// String implements fmt.Stringer.
func (a TextAlignment) String() string {
	return string(a)
}

// IsValid reports whether the value is a known TextAlignment.
func (a TextAlignment) IsValid() bool {
	for _, candidate := range validTextAlignments {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseTextAlignment converts raw input into a TextAlignment.
func ParseTextAlignment(value string) (TextAlignment, error) {
	for _, candidate := range validTextAlignments {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid text alignment %q", value)
}
