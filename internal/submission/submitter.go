package submission

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/graceline/byom-backend/internal/design"
	"github.com/graceline/byom-backend/pkg/db/models"
	pkgerrors "github.com/graceline/byom-backend/pkg/errors"
	"github.com/graceline/byom-backend/pkg/logger"
)

// designCreator is the slice of the persistence service the submitter needs.
type designCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, payload DesignPayload) (*models.Design, error)
}

// Submitter drives the one asynchronous operation in the core: sending
// a finished design to the persistence service. Failures leave the
// caller's document and history untouched so the user can retry.
type Submitter struct {
	designs designCreator
	logg    *logger.Logger
}

func NewSubmitter(designs designCreator, logg *logger.Logger) (*Submitter, error) {
	if designs == nil {
		return nil, fmt.Errorf("design creator required")
	}
	return &Submitter{designs: designs, logg: logg}, nil
}

// Submit persists the document. A design containing custom imagery
// must arrive with at least one upload reference; refusing here keeps
// unmoderated content from shipping as if it were approved. A context
// cancelled mid-flight (the user navigated away) discards the response
// rather than reporting a result for a session that no longer exists.
func (s *Submitter) Submit(ctx context.Context, ownerID uuid.UUID, doc design.Document, uploadRefs []string) (*models.Design, error) {
	if ownerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "owner id is required")
	}

	payload, err := ToPersistencePayload(doc)
	if err != nil {
		return nil, err
	}

	if payload.RequiresApproval && len(uploadRefs) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			"design contains custom imagery but no upload was provided")
	}

	record, err := s.designs.Create(ctx, ownerID, payload)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "design submission failed", err)
		}
		return nil, err
	}

	if ctx.Err() != nil {
		// the session is gone; the record exists but nobody is waiting
		if s.logg != nil {
			s.logg.Warn(ctx, "design submission completed after session left")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, ctx.Err(), "submission abandoned")
	}

	return record, nil
}
