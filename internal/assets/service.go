package assets

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/graceline/byom-backend/pkg/db/models"
	"github.com/graceline/byom-backend/pkg/enums"
	pkgerrors "github.com/graceline/byom-backend/pkg/errors"
)

// Service exposes the sticker catalog read path plus custom-upload
// registration.
type Service interface {
	ListCatalog(ctx context.Context, ownerID *uuid.UUID) ([]AssetDTO, error)
	RegisterUpload(ctx context.Context, ownerID uuid.UUID, input RegisterUploadInput) (*AssetDTO, error)
}

// AssetDTO is the catalog entry shape returned to clients.
type AssetDTO struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	ImageURL string          `json:"image_url"`
	Kind     enums.AssetKind `json:"kind"`
}

// RegisterUploadInput captures a custom upload reference.
type RegisterUploadInput struct {
	Name     string
	ImageURL string
}

type assetRepository interface {
	Create(ctx context.Context, entry *models.AssetEntry) (*models.AssetEntry, error)
	ListBuiltins(ctx context.Context) ([]models.AssetEntry, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]models.AssetEntry, error)
}

type service struct {
	repo assetRepository
}

// NewService constructs the asset catalog service.
func NewService(repo assetRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("asset repository required")
	}
	return &service{repo: repo}, nil
}

// ListCatalog returns the built-in catalog plus, when an owner is
// known, that owner's custom uploads. A storage failure is reported as
// a dependency error: the caller keeps its session and may retry.
func (s *service) ListCatalog(ctx context.Context, ownerID *uuid.UUID) ([]AssetDTO, error) {
	builtins, err := s.repo.ListBuiltins(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load asset catalog")
	}

	entries := builtins
	if ownerID != nil && *ownerID != uuid.Nil {
		customs, err := s.repo.ListForOwner(ctx, *ownerID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load custom uploads")
		}
		entries = append(entries, customs...)
	}

	out := make([]AssetDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toDTO(entry))
	}
	return out, nil
}

// RegisterUpload records a custom upload reference for the owner. The
// entry is what a submitted design points at when it needs approval.
func (s *service) RegisterUpload(ctx context.Context, ownerID uuid.UUID, input RegisterUploadInput) (*AssetDTO, error) {
	if ownerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "owner id is required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	imageURL := strings.TrimSpace(input.ImageURL)
	if imageURL == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image_url is required")
	}
	if parsed, err := url.Parse(imageURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image_url must be an absolute URL")
	}

	entry, err := s.repo.Create(ctx, &models.AssetEntry{
		Name:     name,
		ImageURL: imageURL,
		Kind:     enums.AssetKindCustom,
		OwnerID:  &ownerID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "register upload")
	}

	dto := toDTO(*entry)
	return &dto, nil
}

func toDTO(entry models.AssetEntry) AssetDTO {
	return AssetDTO{
		ID:       entry.ID,
		Name:     entry.Name,
		ImageURL: entry.ImageURL,
		Kind:     entry.Kind,
	}
}
