package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/graceline/byom-backend/api/responses"
	"github.com/graceline/byom-backend/internal/design"
	"github.com/graceline/byom-backend/internal/pricing"
	"github.com/graceline/byom-backend/internal/session"
	"github.com/graceline/byom-backend/pkg/logger"
)

type previewResponse struct {
	SessionID string          `json:"session_id"`
	Document  design.Document `json:"document"`
	Quote     pricing.Quote   `json:"quote"`
}

// PreviewGet loads the handed-off document from the transient store.
// A missing key reads as not found so the client restarts the flow
// instead of rendering an empty garment.
func PreviewGet(handoff *session.HandoffStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "id")

		doc, err := handoff.Get(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, previewResponse{
			SessionID: sessionID,
			Document:  doc,
			Quote:     pricing.Compute(doc),
		})
	}
}
