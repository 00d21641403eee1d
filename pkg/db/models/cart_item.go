package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/graceline/byom-backend/pkg/enums"
)

// CartItem is one BYOM line in a synced cart. Config carries the full
// serialized design document so cart and order views can render the
// customization later.
type CartItem struct {
	ID             uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CartID         uuid.UUID         `gorm:"column:cart_id;type:uuid;not null"`
	ProductID      uuid.UUID         `gorm:"column:product_id;type:uuid;not null"`
	Name           string            `gorm:"column:name;not null"`
	MerchType      enums.MerchType   `gorm:"column:merch_type;not null"`
	Size           enums.GarmentSize `gorm:"column:size;not null"`
	Color          string            `gorm:"column:color;not null"`
	ColorName      string            `gorm:"column:color_name;not null;default:''"`
	Qty            int               `gorm:"column:qty;not null;default:1"`
	UnitPriceCents int64             `gorm:"column:unit_price_cents;not null"`
	Config         []byte            `gorm:"column:config;type:jsonb;not null"`
	CreatedAt      time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default pluralization.
func (CartItem) TableName() string {
	return "cart_items"
}
