package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/graceline/byom-backend/internal/design"
	"github.com/graceline/byom-backend/pkg/enums"
)

// Per-element surcharges, in minor currency units.
var (
	TextUnitPrice    = decimal.NewFromInt(1000)
	StickerUnitPrice = decimal.NewFromInt(500)
)

var basePriceByMerchType = map[enums.MerchType]decimal.Decimal{
	enums.MerchTypeTShirt:     decimal.NewFromInt(15000),
	enums.MerchTypeLongsleeve: decimal.NewFromInt(18000),
	enums.MerchTypeHoodie:     decimal.NewFromInt(25000),
	enums.MerchTypeTrouser:    decimal.NewFromInt(20000),
	enums.MerchTypeShort:      decimal.NewFromInt(12000),
	enums.MerchTypeHat:        decimal.NewFromInt(8000),
}

// Quote is the derived price breakdown for a document.
type Quote struct {
	BasePrice         decimal.Decimal `json:"base_price"`
	TextCount         int             `json:"text_count"`
	StickerCount      int             `json:"sticker_count"`
	CustomizationCost decimal.Decimal `json:"customization_cost"`
	Total             decimal.Decimal `json:"total"`
}

// BasePrice returns the fixed base price for a garment. Unknown types
// price to zero; the document constructor already rejects them.
func BasePrice(merchType enums.MerchType) decimal.Decimal {
	if price, ok := basePriceByMerchType[merchType]; ok {
		return price
	}
	return decimal.Zero
}

// Compute derives the order price from document contents alone. It is
// count-based, so two documents with equal element counts always price
// identically regardless of layer positions or editing history.
func Compute(doc design.Document) Quote {
	textCount := doc.TextCount()
	stickerCount := doc.StickerCount()

	base := BasePrice(doc.MerchType)
	customization := TextUnitPrice.Mul(decimal.NewFromInt(int64(textCount))).
		Add(StickerUnitPrice.Mul(decimal.NewFromInt(int64(stickerCount))))

	return Quote{
		BasePrice:         base,
		TextCount:         textCount,
		StickerCount:      stickerCount,
		CustomizationCost: customization,
		Total:             base.Add(customization),
	}
}
