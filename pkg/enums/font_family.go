package enums

import "fmt"

// FontFamily is the fixed set of typefaces the designer offers.
type FontFamily string

const (
	FontFamilyArial     FontFamily = "Arial"
	FontFamilyHelvetica FontFamily = "Helvetica"
	FontFamilyGeorgia   FontFamily = "Georgia"
	FontFamilyCourier   FontFamily = "Courier New"
	FontFamilyVerdana   FontFamily = "Verdana"
	FontFamilyImpact    FontFamily = "Impact"
)

var validFontFamilies = []FontFamily{
	FontFamilyArial,
	FontFamilyHelvetica,
	FontFamilyGeorgia,
	FontFamilyCourier,
	FontFamilyVerdana,
	FontFamilyImpact,
}

// DefaultFontFamily is applied when a text layer does not pick one.
const DefaultFontFamily = FontFamilyArial

// String implements fmt.Stringer.
func (f FontFamily) String() string {
	return string(f)
}

// IsValid reports whether the value is a known FontFamily.
func (f FontFamily) IsValid() bool {
	for _, candidate := range validFontFamilies {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFontFamily converts raw input into a FontFamily.
func ParseFontFamily(value string) (FontFamily, error) {
	for _, candidate := range validFontFamilies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid font family %q", value)
}
