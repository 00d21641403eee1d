package enums

import "fmt"

// GarmentSize is the closed set of sizes a design can be ordered in.
type GarmentSize string

const (
	GarmentSizeS   GarmentSize = "S"
	GarmentSizeM   GarmentSize = "M"
	GarmentSizeL   GarmentSize = "L"
	GarmentSizeXL  GarmentSize = "XL"
	GarmentSizeXXL GarmentSize = "XXL"
)

var validGarmentSizes = []GarmentSize{
	GarmentSizeS,
	GarmentSizeM,
	GarmentSizeL,
	GarmentSizeXL,
	GarmentSizeXXL,
}

// String implements fmt.Stringer.
func (g GarmentSize) String() string {
	return string(g)
}

// IsValid reports whether the value is a known GarmentSize.
func (g GarmentSize) IsValid() bool {
	for _, candidate := range validGarmentSizes {
		if candidate == g {
			return true
		}
	}
	return false
}

// ParseGarmentSize converts raw input into a GarmentSize.
func ParseGarmentSize(value string) (GarmentSize, error) {
	for _, candidate := range validGarmentSizes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid garment size %q", value)
}
