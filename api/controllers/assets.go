package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/graceline/byom-backend/api/middleware"
	"github.com/graceline/byom-backend/api/responses"
	"github.com/graceline/byom-backend/api/validators"
	assetsvc "github.com/graceline/byom-backend/internal/assets"
	"github.com/graceline/byom-backend/pkg/logger"
)

// AssetsList returns the sticker catalog. Authenticated callers also
// see their own custom uploads.
func AssetsList(svc assetsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ownerID *uuid.UUID
		if subject := middleware.UserIDFromContext(r.Context()); subject != "" {
			if parsed, err := uuid.Parse(subject); err == nil {
				ownerID = &parsed
			}
		}

		entries, err := svc.ListCatalog(r.Context(), ownerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, entries)
	}
}

type registerUploadRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	ImageURL string `json:"image_url" validate:"required,url"`
}

// AssetsRegisterCustom records a custom upload reference so a design
// can point at it when it enters the approval queue.
func AssetsRegisterCustom(svc assetsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ownerFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload registerUploadRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entry, err := svc.RegisterUpload(r.Context(), ownerID, assetsvc.RegisterUploadInput{
			Name:     payload.Name,
			ImageURL: payload.ImageURL,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, entry)
	}
}
