package design

import (
	"strings"

	"github.com/google/uuid"

	"github.com/graceline/byom-backend/pkg/enums"
	"github.com/graceline/byom-backend/pkg/types"
)

// Position bounds, in percent of the canvas dimension.
const (
	MinPosition = 0.0
	MaxPosition = 100.0
)

// Sticker scale bounds.
const (
	MinStickerScale = 0.5
	MaxStickerScale = 3.0
)

// Font size bounds for text layers.
const (
	MinFontSize = 12
	MaxFontSize = 72
)

// DefaultPosition is where freshly added layers land (canvas center).
const DefaultPosition = 50.0

// TextLayer is one positioned, styled piece of text on a zone. X and Y
// are the center anchor of the text bounding box, in percent of the
// canvas dimensions.
type TextLayer struct {
	ID         string              `json:"id"`
	Content    string              `json:"content"`
	FontSize   int                 `json:"font_size"`
	FontFamily enums.FontFamily    `json:"font_family"`
	Bold       bool                `json:"bold"`
	Italic     bool                `json:"italic"`
	Underline  bool                `json:"underline"`
	Alignment  enums.TextAlignment `json:"alignment"`
	Color      types.HexColor      `json:"color"`
	X          float64             `json:"x"`
	Y          float64             `json:"y"`
}

// StickerLayer is one positioned sticker image on a zone. Custom marks
// a user-uploaded asset, which forces the moderation flow at submission.
type StickerLayer struct {
	ID      string  `json:"id"`
	AssetID string  `json:"asset_id"`
	Custom  bool    `json:"custom"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Scale   float64 `json:"scale"`
}

// LayerSet holds the layers of a single placement zone. Paint order is
// fixed: stickers render first, texts render above them; within each
// slice, insertion order is back-to-front. The rule is stable across
// drags because moves never reorder slices.
type LayerSet struct {
	Texts    []TextLayer    `json:"texts"`
	Stickers []StickerLayer `json:"stickers"`
}

// Document is the full customization state of one garment. All
// operations on it are value semantics: they return a new Document and
// never mutate the receiver, so history snapshots can share structure.
type Document struct {
	MerchType  enums.MerchType                  `json:"merch_type"`
	Color      types.HexColor                   `json:"color"`
	ColorName  string                           `json:"color_name"`
	Size       enums.GarmentSize                `json:"size"`
	Placements map[enums.PlacementZone]LayerSet `json:"placements"`
}

// NewDocument builds an empty document with every zone the garment
// exposes initialized to an empty layer set.
func NewDocument(merchType enums.MerchType, color types.HexColor, colorName string, size enums.GarmentSize) (Document, error) {
	if !merchType.IsValid() {
		return Document{}, ErrInvalidMerchType
	}
	placements := make(map[enums.PlacementZone]LayerSet)
	for _, zone := range enums.ZonesFor(merchType) {
		placements[zone] = LayerSet{}
	}
	return Document{
		MerchType:  merchType,
		Color:      color,
		ColorName:  colorName,
		Size:       size,
		Placements: placements,
	}, nil
}

// Clone returns a deep copy sharing no slices or maps with the receiver.
func (d Document) Clone() Document {
	out := d
	out.Placements = make(map[enums.PlacementZone]LayerSet, len(d.Placements))
	for zone, set := range d.Placements {
		out.Placements[zone] = cloneLayerSet(set)
	}
	return out
}

// TextCount sums text layers across every zone.
func (d Document) TextCount() int {
	total := 0
	for _, set := range d.Placements {
		total += len(set.Texts)
	}
	return total
}

// StickerCount sums sticker layers across every zone.
func (d Document) StickerCount() int {
	total := 0
	for _, set := range d.Placements {
		total += len(set.Stickers)
	}
	return total
}

// ElementCount is the combined layer count for a single zone.
func (d Document) ElementCount(zone enums.PlacementZone) int {
	set, ok := d.Placements[zone]
	if !ok {
		return 0
	}
	return len(set.Texts) + len(set.Stickers)
}

// HasCustomAsset reports whether any sticker references a user upload.
func (d Document) HasCustomAsset() bool {
	for _, set := range d.Placements {
		for _, s := range set.Stickers {
			if s.Custom {
				return true
			}
		}
	}
	return false
}

// FindSticker locates a sticker by id within a zone.
func (d Document) FindSticker(zone enums.PlacementZone, stickerID string) (StickerLayer, bool) {
	set, ok := d.Placements[zone]
	if !ok {
		return StickerLayer{}, false
	}
	for _, s := range set.Stickers {
		if s.ID == stickerID {
			return s, true
		}
	}
	return StickerLayer{}, false
}

// FindText locates a text layer by id within a zone.
func (d Document) FindText(zone enums.PlacementZone, textID string) (TextLayer, bool) {
	set, ok := d.Placements[zone]
	if !ok {
		return TextLayer{}, false
	}
	for _, t := range set.Texts {
		if t.ID == textID {
			return t, true
		}
	}
	return TextLayer{}, false
}

// AllTextContent returns every text layer's content across zones, in
// zone-priority then paint order.
func (d Document) AllTextContent() []string {
	var out []string
	for _, zone := range enums.ZonesFor(d.MerchType) {
		for _, t := range d.Placements[zone].Texts {
			out = append(out, t.Content)
		}
	}
	return out
}

func cloneLayerSet(set LayerSet) LayerSet {
	out := LayerSet{}
	if set.Texts != nil {
		out.Texts = make([]TextLayer, len(set.Texts))
		copy(out.Texts, set.Texts)
	}
	if set.Stickers != nil {
		out.Stickers = make([]StickerLayer, len(set.Stickers))
		copy(out.Stickers, set.Stickers)
	}
	return out
}

func newLayerID() string {
	return uuid.NewString()
}

func emptyContent(content string) bool {
	return strings.TrimSpace(content) == ""
}
