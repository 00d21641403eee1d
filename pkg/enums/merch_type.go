package enums

import "fmt"

// MerchType identifies the base garment a design is built on.
type MerchType string

const (
	MerchTypeTShirt     MerchType = "tshirt"
	MerchTypeLongsleeve MerchType = "longsleeve"
	MerchTypeHoodie     MerchType = "hoodie"
	MerchTypeTrouser    MerchType = "trouser"
	MerchTypeShort      MerchType = "short"
	MerchTypeHat        MerchType = "hat"
)

var validMerchTypes = []MerchType{
	MerchTypeTShirt,
	MerchTypeLongsleeve,
	MerchTypeHoodie,
	MerchTypeTrouser,
	MerchTypeShort,
	MerchTypeHat,
}

// String implements fmt.Stringer.
func (m MerchType) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MerchType.
func (m MerchType) IsValid() bool {
	for _, candidate := range validMerchTypes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMerchType converts raw input into a MerchType.
func ParseMerchType(value string) (MerchType, error) {
	for _, candidate := range validMerchTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid merch type %q", value)
}
