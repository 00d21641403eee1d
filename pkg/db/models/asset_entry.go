package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/graceline/byom-backend/pkg/enums"
)

// AssetEntry is one sticker image the designer can place: either a
// built-in catalog entry or a reference to a user upload.
type AssetEntry struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string          `gorm:"column:name;not null"`
	ImageURL  string          `gorm:"column:image_url;not null"`
	Kind      enums.AssetKind `gorm:"column:kind;not null;default:'builtin'"`
	OwnerID   *uuid.UUID      `gorm:"column:owner_id;type:uuid"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default pluralization.
func (AssetEntry) TableName() string {
	return "asset_entries"
}
