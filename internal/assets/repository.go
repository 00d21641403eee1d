package assets

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/graceline/byom-backend/pkg/db/models"
	"github.com/graceline/byom-backend/pkg/enums"
)

// Repository encapsulates asset catalog persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds the repository to the provided GORM handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the provided asset entry.
func (r *Repository) Create(ctx context.Context, entry *models.AssetEntry) (*models.AssetEntry, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// FindByID loads a single asset entry.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.AssetEntry, error) {
	var entry models.AssetEntry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListBuiltins returns the shared catalog in insertion order.
func (r *Repository) ListBuiltins(ctx context.Context) ([]models.AssetEntry, error) {
	var entries []models.AssetEntry
	err := r.db.WithContext(ctx).
		Where("kind = ?", enums.AssetKindBuiltin).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ListForOwner returns custom uploads registered by the given owner.
func (r *Repository) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]models.AssetEntry, error) {
	var entries []models.AssetEntry
	err := r.db.WithContext(ctx).
		Where("kind = ? AND owner_id = ?", enums.AssetKindCustom, ownerID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
