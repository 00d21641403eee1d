package controllers

import (
	"net/http"

	"github.com/graceline/byom-backend/api/middleware"
	"github.com/graceline/byom-backend/api/responses"
	cartsvc "github.com/graceline/byom-backend/internal/cart"
	"github.com/graceline/byom-backend/internal/session"
	"github.com/graceline/byom-backend/internal/submission"
	"github.com/graceline/byom-backend/pkg/db/models"
	pkgerrors "github.com/graceline/byom-backend/pkg/errors"
	"github.com/graceline/byom-backend/pkg/logger"
)

type cartItemResponse struct {
	ID             string `json:"id"`
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	MerchType      string `json:"merch_type"`
	Size           string `json:"size"`
	Color          string `json:"color"`
	ColorName      string `json:"color_name"`
	Qty            int    `json:"qty"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type cartResponse struct {
	CartID     string             `json:"cart_id"`
	Status     string             `json:"status"`
	TotalCents int64              `json:"total_cents"`
	Items      []cartItemResponse `json:"items"`
}

func newCartResponse(record *models.CartRecord) cartResponse {
	items := make([]cartItemResponse, 0, len(record.Items))
	for _, item := range record.Items {
		items = append(items, cartItemResponse{
			ID:             item.ID.String(),
			ProductID:      item.ProductID.String(),
			Name:           item.Name,
			MerchType:      item.MerchType.String(),
			Size:           item.Size.String(),
			Color:          item.Color,
			ColorName:      item.ColorName,
			Qty:            item.Qty,
			UnitPriceCents: item.UnitPriceCents,
		})
	}
	return cartResponse{
		CartID:     record.ID.String(),
		Status:     record.Status.String(),
		TotalCents: record.TotalCents,
		Items:      items,
	}
}

// SessionAddToCart converts the session's document into a cart line
// and appends it to the caller's synced cart.
func SessionAddToCart(reg *session.Registry, svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r, reg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		subject := middleware.UserIDFromContext(r.Context())
		if subject == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "access token required for cart sync"))
			return
		}

		item := submission.ToCartItem(sess.Document(), sess.Quote())
		record, err := svc.Add(r.Context(), subject, item)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, newCartResponse(record))
	}
}

// CartGet returns the caller's active synced cart.
func CartGet(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject := middleware.UserIDFromContext(r.Context())
		if subject == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "access token required for cart sync"))
			return
		}

		record, err := svc.GetActive(r.Context(), subject)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(record))
	}
}
