package enums

import "fmt"

// AssetKind separates built-in catalog stickers from user uploads.
type AssetKind string

const (
	AssetKindBuiltin AssetKind = "builtin"
	AssetKindCustom  AssetKind = "custom"
)

var validAssetKinds = []AssetKind{
	AssetKindBuiltin,
	AssetKindCustom,
}

// String implements fmt.Stringer.
func (a AssetKind) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AssetKind.
func (a AssetKind) IsValid() bool {
	for _, candidate := range validAssetKinds {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAssetKind converts raw input into an AssetKind.
func ParseAssetKind(value string) (AssetKind, error) {
	for _, candidate := range validAssetKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid asset kind %q", value)
}
