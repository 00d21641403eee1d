package design

import (
	"encoding/json"
	"fmt"

	"github.com/graceline/byom-backend/pkg/enums"
)

// Marshal serializes a document for the customize -> preview handoff
// and for persistence blobs.
func Marshal(doc Document) ([]byte, error) {
	return json.Marshal(doc)
}

// Unmarshal decodes a document and normalizes it defensively: zones
// the garment exposes but the payload omits come back as empty sets,
// zones the garment does not expose are dropped, and positions, scales
// and font sizes are re-clamped. A payload written by an older client
// therefore always loads into a valid document.
func Unmarshal(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decoding design document: %w", err)
	}
	if !doc.MerchType.IsValid() {
		return Document{}, ErrInvalidMerchType
	}
	return Normalize(doc), nil
}

// Normalize re-establishes the document invariants on a decoded value.
func Normalize(doc Document) Document {
	placements := make(map[enums.PlacementZone]LayerSet)
	for _, zone := range enums.ZonesFor(doc.MerchType) {
		set := doc.Placements[zone]
		placements[zone] = normalizeLayerSet(set)
	}
	doc.Placements = placements

	if !doc.Size.IsValid() {
		doc.Size = enums.GarmentSizeM
	}
	if !doc.Color.IsValid() {
		doc.Color = "#000000"
	}
	return doc
}

func normalizeLayerSet(set LayerSet) LayerSet {
	out := cloneLayerSet(set)
	for i := range out.Texts {
		out.Texts[i].X = clampFloat(out.Texts[i].X, MinPosition, MaxPosition)
		out.Texts[i].Y = clampFloat(out.Texts[i].Y, MinPosition, MaxPosition)
		out.Texts[i].FontSize = clampInt(out.Texts[i].FontSize, MinFontSize, MaxFontSize)
		if !out.Texts[i].FontFamily.IsValid() {
			out.Texts[i].FontFamily = enums.DefaultFontFamily
		}
		if !out.Texts[i].Alignment.IsValid() {
			out.Texts[i].Alignment = enums.TextAlignmentCenter
		}
	}
	for i := range out.Stickers {
		out.Stickers[i].X = clampFloat(out.Stickers[i].X, MinPosition, MaxPosition)
		out.Stickers[i].Y = clampFloat(out.Stickers[i].Y, MinPosition, MaxPosition)
		out.Stickers[i].Scale = clampFloat(out.Stickers[i].Scale, MinStickerScale, MaxStickerScale)
	}
	return out
}
