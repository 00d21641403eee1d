package design

import (
	"errors"

	"github.com/graceline/byom-backend/pkg/enums"
	"github.com/graceline/byom-backend/pkg/types"
)

// ErrInvalidMerchType is the only failure a document constructor can
// produce; every other operation is total and resolves invalid input
// to a no-op or a clamped value.
var ErrInvalidMerchType = errors.New("invalid merch type")

// TextSpec carries the styling for a new text layer. Zero values fall
// back to the designer defaults; FontSize is clamped into range.
type TextSpec struct {
	Content    string
	FontSize   int
	FontFamily enums.FontFamily
	Bold       bool
	Italic     bool
	Underline  bool
	Alignment  enums.TextAlignment
	Color      types.HexColor
}

// AddText appends a text layer to the zone at the canvas center.
// Empty or whitespace-only content returns the document unchanged:
// the storefront treats an inert "Add Text" as a no-op, not an error.
func AddText(doc Document, zone enums.PlacementZone, spec TextSpec) Document {
	if emptyContent(spec.Content) {
		return doc
	}
	if !enums.ZoneAllowed(doc.MerchType, zone) {
		return doc
	}

	fontSize := spec.FontSize
	if fontSize == 0 {
		fontSize = 24
	}
	fontSize = clampInt(fontSize, MinFontSize, MaxFontSize)

	family := spec.FontFamily
	if !family.IsValid() {
		family = enums.DefaultFontFamily
	}
	alignment := spec.Alignment
	if !alignment.IsValid() {
		alignment = enums.TextAlignmentCenter
	}
	color := spec.Color
	if !color.IsValid() {
		color = "#000000"
	}

	layer := TextLayer{
		ID:         newLayerID(),
		Content:    spec.Content,
		FontSize:   fontSize,
		FontFamily: family,
		Bold:       spec.Bold,
		Italic:     spec.Italic,
		Underline:  spec.Underline,
		Alignment:  alignment,
		Color:      color,
		X:          DefaultPosition,
		Y:          DefaultPosition,
	}

	out := doc.Clone()
	set := out.Placements[zone]
	set.Texts = append(set.Texts, layer)
	out.Placements[zone] = set
	return out
}

// AddSticker appends a sticker layer at the canvas center with scale 1.
func AddSticker(doc Document, zone enums.PlacementZone, assetID string, custom bool) Document {
	if assetID == "" {
		return doc
	}
	if !enums.ZoneAllowed(doc.MerchType, zone) {
		return doc
	}

	layer := StickerLayer{
		ID:      newLayerID(),
		AssetID: assetID,
		Custom:  custom,
		X:       DefaultPosition,
		Y:       DefaultPosition,
		Scale:   1.0,
	}

	out := doc.Clone()
	set := out.Placements[zone]
	set.Stickers = append(set.Stickers, layer)
	out.Placements[zone] = set
	return out
}

// RemoveText drops the matching text layer; no-op when absent.
func RemoveText(doc Document, zone enums.PlacementZone, textID string) Document {
	set, ok := doc.Placements[zone]
	if !ok {
		return doc
	}
	idx := -1
	for i, t := range set.Texts {
		if t.ID == textID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return doc
	}

	out := doc.Clone()
	outSet := out.Placements[zone]
	outSet.Texts = append(outSet.Texts[:idx], outSet.Texts[idx+1:]...)
	out.Placements[zone] = outSet
	return out
}

// RemoveSticker drops the matching sticker layer; no-op when absent.
func RemoveSticker(doc Document, zone enums.PlacementZone, stickerID string) Document {
	set, ok := doc.Placements[zone]
	if !ok {
		return doc
	}
	idx := -1
	for i, s := range set.Stickers {
		if s.ID == stickerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return doc
	}

	out := doc.Clone()
	outSet := out.Placements[zone]
	outSet.Stickers = append(outSet.Stickers[:idx], outSet.Stickers[idx+1:]...)
	out.Placements[zone] = outSet
	return out
}

// MoveLayer repositions a layer, clamping both axes into [0,100].
// Unknown zone, kind, or id is a no-op.
func MoveLayer(doc Document, zone enums.PlacementZone, kind enums.LayerKind, layerID string, x, y float64) Document {
	set, ok := doc.Placements[zone]
	if !ok {
		return doc
	}

	x = clampFloat(x, MinPosition, MaxPosition)
	y = clampFloat(y, MinPosition, MaxPosition)

	switch kind {
	case enums.LayerKindText:
		for i, t := range set.Texts {
			if t.ID != layerID {
				continue
			}
			out := doc.Clone()
			outSet := out.Placements[zone]
			outSet.Texts[i].X = x
			outSet.Texts[i].Y = y
			out.Placements[zone] = outSet
			return out
		}
	case enums.LayerKindSticker:
		for i, s := range set.Stickers {
			if s.ID != layerID {
				continue
			}
			out := doc.Clone()
			outSet := out.Placements[zone]
			outSet.Stickers[i].X = x
			outSet.Stickers[i].Y = y
			out.Placements[zone] = outSet
			return out
		}
	}
	return doc
}

// ScaleSticker adjusts a sticker's scale by delta, clamped to
// [MinStickerScale, MaxStickerScale]. No-op when the sticker is absent.
func ScaleSticker(doc Document, zone enums.PlacementZone, stickerID string, delta float64) Document {
	set, ok := doc.Placements[zone]
	if !ok {
		return doc
	}
	for i, s := range set.Stickers {
		if s.ID != stickerID {
			continue
		}
		out := doc.Clone()
		outSet := out.Placements[zone]
		outSet.Stickers[i].Scale = clampFloat(s.Scale+delta, MinStickerScale, MaxStickerScale)
		out.Placements[zone] = outSet
		return out
	}
	return doc
}

// SetColor updates the garment color pair.
func SetColor(doc Document, color types.HexColor, colorName string) Document {
	out := doc.Clone()
	out.Color = color
	out.ColorName = colorName
	return out
}

// SetSize updates the garment size; invalid sizes are a no-op.
func SetSize(doc Document, size enums.GarmentSize) Document {
	if !size.IsValid() {
		return doc
	}
	out := doc.Clone()
	out.Size = size
	return out
}

// SetMerchType re-keys the placements onto the new garment's zone set.
// Layers on zones the new garment exposes carry over; layers on zones
// it lacks are dropped. The data loss is the documented policy for a
// garment switch, captured as a single transition.
func SetMerchType(doc Document, merchType enums.MerchType) Document {
	if !merchType.IsValid() || merchType == doc.MerchType {
		return doc
	}

	out := doc.Clone()
	out.MerchType = merchType

	placements := make(map[enums.PlacementZone]LayerSet)
	for _, zone := range enums.ZonesFor(merchType) {
		if set, ok := out.Placements[zone]; ok {
			placements[zone] = set
		} else {
			placements[zone] = LayerSet{}
		}
	}
	out.Placements = placements
	return out
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
