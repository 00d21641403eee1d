package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/graceline/byom-backend/pkg/enums"
)

// CartRecord is the server-synchronized cart for one access-token
// subject. The local (in-session) cart variant never touches the DB.
type CartRecord struct {
	ID         uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Subject    string           `gorm:"column:subject;not null;uniqueIndex:idx_cart_subject_active"`
	Status     enums.CartStatus `gorm:"column:status;not null;default:'active';uniqueIndex:idx_cart_subject_active"`
	TotalCents int64            `gorm:"column:total_cents;not null;default:0"`
	Items      []CartItem       `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default pluralization.
func (CartRecord) TableName() string {
	return "cart_records"
}
