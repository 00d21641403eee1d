package enums

import "fmt"

// PlacementZone names a printable region of a garment.
type PlacementZone string

const (
	PlacementZoneFront PlacementZone = "front"
	PlacementZoneBack  PlacementZone = "back"
	PlacementZoneSide  PlacementZone = "side"
)

var validPlacementZones = []PlacementZone{
	PlacementZoneFront,
	PlacementZoneBack,
	PlacementZoneSide,
}

// zonesByMerchType fixes which regions each garment exposes. Hats only
// print on the front; trousers and shorts have no printable back panel.
var zonesByMerchType = map[MerchType][]PlacementZone{
	MerchTypeTShirt:     {PlacementZoneFront, PlacementZoneBack, PlacementZoneSide},
	MerchTypeLongsleeve: {PlacementZoneFront, PlacementZoneBack, PlacementZoneSide},
	MerchTypeHoodie:     {PlacementZoneFront, PlacementZoneBack, PlacementZoneSide},
	MerchTypeTrouser:    {PlacementZoneFront, PlacementZoneSide},
	MerchTypeShort:      {PlacementZoneFront, PlacementZoneSide},
	MerchTypeHat:        {PlacementZoneFront},
}

// String implements fmt.Stringer.
func (p PlacementZone) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PlacementZone.
func (p PlacementZone) IsValid() bool {
	for _, candidate := range validPlacementZones {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePlacementZone converts raw input into a PlacementZone.
func ParsePlacementZone(value string) (PlacementZone, error) {
	for _, candidate := range validPlacementZones {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid placement zone %q", value)
}

// ZonesFor returns the printable zones for a garment, in priority order.
func ZonesFor(merchType MerchType) []PlacementZone {
	zones, ok := zonesByMerchType[merchType]
	if !ok {
		return nil
	}
	out := make([]PlacementZone, len(zones))
	copy(out, zones)
	return out
}

// ZoneAllowed reports whether the garment exposes the given zone.
func ZoneAllowed(merchType MerchType, zone PlacementZone) bool {
	for _, candidate := range zonesByMerchType[merchType] {
		if candidate == zone {
			return true
		}
	}
	return false
}
