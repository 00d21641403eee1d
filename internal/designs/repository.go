package designs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/graceline/byom-backend/pkg/db/models"
	"github.com/graceline/byom-backend/pkg/enums"
)

// Repository encapsulates design persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds the repository to the provided GORM handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the provided design record.
func (r *Repository) Create(ctx context.Context, record *models.Design) (*models.Design, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// FindByIDForOwner loads one design scoped to its owner.
func (r *Repository) FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Design, error) {
	var record models.Design
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByOwner returns the owner's designs, newest first.
func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Design, error) {
	var records []models.Design
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateStatus moves the design to a new status, stamping the
// submission time when one is given.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.DesignStatus, submittedAt *time.Time) error {
	updates := map[string]any{"status": status}
	if submittedAt != nil {
		updates["submitted_at"] = *submittedAt
	}
	return r.db.WithContext(ctx).
		Model(&models.Design{}).
		Where("id = ?", id).
		Updates(updates).Error
}
