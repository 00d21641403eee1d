package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/graceline/byom-backend/api/middleware"
	"github.com/graceline/byom-backend/api/responses"
	"github.com/graceline/byom-backend/api/validators"
	designsvc "github.com/graceline/byom-backend/internal/designs"
	"github.com/graceline/byom-backend/internal/session"
	"github.com/graceline/byom-backend/internal/submission"
	"github.com/graceline/byom-backend/pkg/db/models"
	pkgerrors "github.com/graceline/byom-backend/pkg/errors"
	"github.com/graceline/byom-backend/pkg/logger"
	"github.com/graceline/byom-backend/pkg/metrics"
)

type designResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	MerchType        string     `json:"merch_type"`
	Size             string     `json:"size"`
	Color            string     `json:"color"`
	ColorName        string     `json:"color_name"`
	PrimaryZone      string     `json:"primary_zone"`
	Status           string     `json:"status"`
	RequiresApproval bool       `json:"requires_approval"`
	TotalCents       int64      `json:"total_cents"`
	SubmittedAt      *time.Time `json:"submitted_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func newDesignResponse(record *models.Design) designResponse {
	return designResponse{
		ID:               record.ID.String(),
		Name:             record.Name,
		Description:      record.Description,
		MerchType:        record.MerchType.String(),
		Size:             record.Size.String(),
		Color:            record.Color,
		ColorName:        record.ColorName,
		PrimaryZone:      record.PrimaryZone.String(),
		Status:           record.Status.String(),
		RequiresApproval: record.RequiresApproval,
		TotalCents:       record.TotalCents,
		SubmittedAt:      record.SubmittedAt,
		CreatedAt:        record.CreatedAt,
	}
}

func ownerFromContext(r *http.Request) (uuid.UUID, error) {
	subject := middleware.UserIDFromContext(r.Context())
	if subject == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "access token required")
	}
	ownerID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token subject")
	}
	return ownerID, nil
}

type submitDesignRequest struct {
	UploadRefs []string `json:"upload_refs"`
}

// SessionSubmit persists the session's document as a design. Custom
// imagery must arrive with upload references or the submission is
// refused outright.
func SessionSubmit(reg *session.Registry, submitter *submission.Submitter, sm *metrics.SessionMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r, reg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ownerID, err := ownerFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload submitDesignRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		start := time.Now()
		record, err := submitter.Submit(r.Context(), ownerID, sess.Document(), payload.UploadRefs)
		if err != nil {
			sm.ObserveSubmission("error", time.Since(start))
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		sm.ObserveSubmission("ok", time.Since(start))

		if logg != nil {
			ctx := logg.WithDesignID(r.Context(), record.ID.String())
			logg.Info(ctx, "design submitted")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, newDesignResponse(record))
	}
}

// DesignsList returns the caller's saved designs.
func DesignsList(svc designsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ownerFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		records, err := svc.ListByOwner(r.Context(), ownerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out := make([]designResponse, 0, len(records))
		for i := range records {
			out = append(out, newDesignResponse(&records[i]))
		}
		responses.WriteSuccess(w, out)
	}
}

// DesignSubmitForApproval pushes a draft or rejected design into the
// moderation queue.
func DesignSubmitForApproval(svc designsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ownerFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		designID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid design id"))
			return
		}

		record, err := svc.SubmitForApproval(r.Context(), ownerID, designID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newDesignResponse(record))
	}
}
