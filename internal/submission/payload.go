// Package submission converts a finished design document into the two
// shapes that leave the session: a cart line item for immediate
// checkout and a persistence payload for the save/approval flow.
package submission

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/graceline/byom-backend/internal/design"
	"github.com/graceline/byom-backend/internal/pricing"
	"github.com/graceline/byom-backend/pkg/enums"
	pkgerrors "github.com/graceline/byom-backend/pkg/errors"
	"github.com/graceline/byom-backend/pkg/types"
)

// CartLineItem is a checkout-ready line carrying the full document so
// cart and order views can render the customization.
type CartLineItem struct {
	ProductID uuid.UUID         `json:"product_id"`
	Name      string            `json:"name"`
	MerchType enums.MerchType   `json:"merch_type"`
	Size      enums.GarmentSize `json:"size"`
	Color     types.HexColor    `json:"color"`
	ColorName string            `json:"color_name"`
	Qty       int               `json:"qty"`
	UnitPrice decimal.Decimal   `json:"unit_price"`
	Document  design.Document   `json:"document"`
}

// DesignPayload is the flattened persistence shape for a design.
type DesignPayload struct {
	Name             string              `json:"name"`
	Description      string              `json:"description"`
	MerchType        enums.MerchType     `json:"merch_type"`
	Size             enums.GarmentSize   `json:"size"`
	Color            types.HexColor      `json:"color"`
	ColorName        string              `json:"color_name"`
	PrimaryZone      enums.PlacementZone `json:"primary_zone"`
	Config           []byte              `json:"config"`
	TextContents     []string            `json:"text_contents"`
	RequiresApproval bool                `json:"requires_approval"`
	TotalCents       int64               `json:"total_cents"`
}

// ToCartItem wraps the document and its derived price into a cart
// line with a synthetic product identity. The document is deep-copied:
// the cart copy and the session copy share nothing afterwards.
func ToCartItem(doc design.Document, quote pricing.Quote) CartLineItem {
	return CartLineItem{
		ProductID: uuid.New(),
		Name:      displayName(doc),
		MerchType: doc.MerchType,
		Size:      doc.Size,
		Color:     doc.Color,
		ColorName: doc.ColorName,
		Qty:       1,
		UnitPrice: quote.Total,
		Document:  doc.Clone(),
	}
}

// ToPersistencePayload flattens the document for storage: text content
// joined into one description, the busiest zone promoted to primary,
// and the full document serialized as an opaque configuration blob.
// The requires-approval flag is derived here and never dropped later.
func ToPersistencePayload(doc design.Document) (DesignPayload, error) {
	config, err := design.Marshal(doc)
	if err != nil {
		return DesignPayload{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "serialize design config")
	}

	contents := doc.AllTextContent()
	return DesignPayload{
		Name:             displayName(doc),
		Description:      strings.Join(contents, ", "),
		MerchType:        doc.MerchType,
		Size:             doc.Size,
		Color:            doc.Color,
		ColorName:        doc.ColorName,
		PrimaryZone:      PrimaryZone(doc),
		Config:           config,
		TextContents:     contents,
		RequiresApproval: doc.HasCustomAsset(),
		TotalCents:       pricing.Compute(doc).Total.IntPart(),
	}, nil
}

// PrimaryZone picks the zone with the most combined elements. Ties
// break on the fixed order front, back, side, which ZonesFor already
// yields.
func PrimaryZone(doc design.Document) enums.PlacementZone {
	zones := enums.ZonesFor(doc.MerchType)
	if len(zones) == 0 {
		return enums.PlacementZoneFront
	}
	best := zones[0]
	bestCount := doc.ElementCount(best)
	for _, zone := range zones[1:] {
		if count := doc.ElementCount(zone); count > bestCount {
			best = zone
			bestCount = count
		}
	}
	return best
}

func displayName(doc design.Document) string {
	return fmt.Sprintf("Custom %s (%s, %s)", doc.MerchType, doc.ColorName, doc.Size)
}
