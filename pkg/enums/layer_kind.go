package enums

import "fmt"

// LayerKind distinguishes the two element families on a placement zone.
type LayerKind string

const (
	LayerKindText    LayerKind = "text"
	LayerKindSticker LayerKind = "sticker"
)

var validLayerKinds = []LayerKind{
	LayerKindText,
	LayerKindSticker,
}

// String implements fmt.Stringer.
func (l LayerKind) String() string {
	return string(l)
}

// IsValid reports whether the value is a known LayerKind.
func (l LayerKind) IsValid() bool {
	for _, candidate := range validLayerKinds {
		if candidate == l {
			return true
		}
	}
	return false
}

// ParseLayerKind converts raw input into a LayerKind.
func ParseLayerKind(value string) (LayerKind, error) {
	for _, candidate := range validLayerKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid layer kind %q", value)
}
