package designs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/graceline/byom-backend/internal/submission"
	"github.com/graceline/byom-backend/pkg/db/models"
	"github.com/graceline/byom-backend/pkg/enums"
	pkgerrors "github.com/graceline/byom-backend/pkg/errors"
	"github.com/graceline/byom-backend/pkg/logger"
)

// Service exposes design persistence: creation from a submitted
// document, listing, and the approval transition.
type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, payload submission.DesignPayload) (*models.Design, error)
	Get(ctx context.Context, ownerID, designID uuid.UUID) (*models.Design, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Design, error)
	SubmitForApproval(ctx context.Context, ownerID, designID uuid.UUID) (*models.Design, error)
}

type designRepository interface {
	Create(ctx context.Context, record *models.Design) (*models.Design, error)
	FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Design, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Design, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.DesignStatus, submittedAt *time.Time) error
}

type service struct {
	repo designRepository
	logg *logger.Logger
	now  func() time.Time
}

// NewService constructs a design persistence service.
func NewService(repo designRepository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("design repository required")
	}
	return &service{repo: repo, logg: logg, now: time.Now}, nil
}

// Create persists a submitted design. Designs carrying custom imagery
// enter the moderation queue as pending_approval; everything else is
// composed of built-in content and goes live immediately.
func (s *service) Create(ctx context.Context, ownerID uuid.UUID, payload submission.DesignPayload) (*models.Design, error) {
	if ownerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "owner id is required")
	}
	if !payload.MerchType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid merch type")
	}

	status := enums.DesignStatusApproved
	if payload.RequiresApproval {
		status = enums.DesignStatusPendingApproval
	}
	now := s.now()

	record, err := s.repo.Create(ctx, &models.Design{
		OwnerID:          ownerID,
		Name:             payload.Name,
		Description:      payload.Description,
		MerchType:        payload.MerchType,
		Size:             payload.Size,
		Color:            string(payload.Color),
		ColorName:        payload.ColorName,
		PrimaryZone:      payload.PrimaryZone,
		Status:           status,
		RequiresApproval: payload.RequiresApproval,
		Config:           payload.Config,
		TextContents:     payload.TextContents,
		TotalCents:       payload.TotalCents,
		SubmittedAt:      &now,
	})
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "persist design failed", err)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist design")
	}
	return record, nil
}

// Get loads one design scoped to its owner.
func (s *service) Get(ctx context.Context, ownerID, designID uuid.UUID) (*models.Design, error) {
	record, err := s.repo.FindByIDForOwner(ctx, designID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "design not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load design")
	}
	return record, nil
}

// ListByOwner returns the caller's saved designs.
func (s *service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Design, error) {
	if ownerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "owner id is required")
	}
	records, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list designs")
	}
	return records, nil
}

// SubmitForApproval pushes a draft or rejected design back into the
// moderation queue. Designs already queued or approved stay put.
func (s *service) SubmitForApproval(ctx context.Context, ownerID, designID uuid.UUID) (*models.Design, error) {
	record, err := s.Get(ctx, ownerID, designID)
	if err != nil {
		return nil, err
	}

	switch record.Status {
	case enums.DesignStatusDraft, enums.DesignStatusRejected:
		// eligible
	case enums.DesignStatusPendingApproval:
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "design is already awaiting approval")
	default:
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "design is already approved")
	}

	now := s.now()
	if err := s.repo.UpdateStatus(ctx, record.ID, enums.DesignStatusPendingApproval, &now); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update design status")
	}
	record.Status = enums.DesignStatusPendingApproval
	record.SubmittedAt = &now
	return record, nil
}
