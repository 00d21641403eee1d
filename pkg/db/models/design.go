package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/graceline/byom-backend/pkg/enums"
)

// Design is a persisted customization: the saved-draft and
// submit-for-approval record behind the BYOM flow.
type Design struct {
	ID               uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID          uuid.UUID           `gorm:"column:owner_id;type:uuid;not null"`
	Name             string              `gorm:"column:name;not null"`
	Description      string              `gorm:"column:description;not null;default:''"`
	MerchType        enums.MerchType     `gorm:"column:merch_type;not null"`
	Size             enums.GarmentSize   `gorm:"column:size;not null"`
	Color            string              `gorm:"column:color;not null"`
	ColorName        string              `gorm:"column:color_name;not null;default:''"`
	PrimaryZone      enums.PlacementZone `gorm:"column:primary_zone;not null"`
	Status           enums.DesignStatus  `gorm:"column:status;not null;default:'draft'"`
	RequiresApproval bool                `gorm:"column:requires_approval;not null;default:false"`
	Config           []byte              `gorm:"column:config;type:jsonb;not null"`
	TextContents     pq.StringArray      `gorm:"column:text_contents;type:text[]"`
	TotalCents       int64               `gorm:"column:total_cents;not null;default:0"`
	SubmittedAt      *time.Time          `gorm:"column:submitted_at"`
	CreatedAt        time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default pluralization.
func (Design) TableName() string {
	return "designs"
}
