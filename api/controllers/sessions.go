package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/graceline/byom-backend/api/responses"
	"github.com/graceline/byom-backend/api/validators"
	"github.com/graceline/byom-backend/internal/design"
	"github.com/graceline/byom-backend/internal/interaction"
	"github.com/graceline/byom-backend/internal/pricing"
	"github.com/graceline/byom-backend/internal/session"
	"github.com/graceline/byom-backend/pkg/enums"
	pkgerrors "github.com/graceline/byom-backend/pkg/errors"
	"github.com/graceline/byom-backend/pkg/logger"
	"github.com/graceline/byom-backend/pkg/metrics"
	"github.com/graceline/byom-backend/pkg/types"
)

type sessionResponse struct {
	SessionID string          `json:"session_id"`
	CreatedAt time.Time       `json:"created_at"`
	Document  design.Document `json:"document"`
	Quote     pricing.Quote   `json:"quote"`
	CanUndo   bool            `json:"can_undo"`
}

func newSessionResponse(sess *session.Session) sessionResponse {
	return sessionResponse{
		SessionID: sess.ID.String(),
		CreatedAt: sess.CreatedAt,
		Document:  sess.Document(),
		Quote:     sess.Quote(),
		CanUndo:   sess.CanUndo(),
	}
}

func sessionFromRequest(r *http.Request, reg *session.Registry) (*session.Session, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid session id")
	}
	return reg.Get(id)
}

// SessionCreate starts a new design session for the chosen garment.
func SessionCreate(reg *session.Registry, sm *metrics.SessionMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createSessionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		merchType, err := enums.ParseMerchType(payload.MerchType)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid merch type"))
			return
		}
		size, err := enums.ParseGarmentSize(payload.Size)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid size"))
			return
		}
		color := types.HexColor(payload.Color)
		if !color.IsValid() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid color"))
			return
		}

		sess, err := session.New(merchType, color, payload.ColorName, size)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "start session"))
			return
		}
		reg.Add(sess)
		sm.SetActiveSessions(reg.Len())

		if logg != nil {
			logg.Info(logg.WithSessionID(r.Context(), sess.ID.String()), "session started")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, newSessionResponse(sess))
	}
}

type createSessionRequest struct {
	MerchType string `json:"merch_type" validate:"required"`
	Color     string `json:"color" validate:"required"`
	ColorName string `json:"color_name"`
	Size      string `json:"size" validate:"required"`
}

// SessionGet returns the live document and its price.
func SessionGet(reg *session.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r, reg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newSessionResponse(sess))
	}
}

// SessionDelete drops the session from the registry.
func SessionDelete(reg *session.Registry, sm *metrics.SessionMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid session id"))
			return
		}
		reg.Remove(id)
		sm.SetActiveSessions(reg.Len())
		responses.WriteSuccess(w, map[string]string{"status": "removed"})
	}
}

type addTextRequest struct {
	Zone       string `json:"zone" validate:"required"`
	Content    string `json:"content" validate:"required"`
	FontSize   int    `json:"font_size"`
	FontFamily string `json:"font_family"`
	Bold       bool   `json:"bold"`
	Italic     bool   `json:"italic"`
	Underline  bool   `json:"underline"`
	Alignment  string `json:"alignment"`
	Color      string `json:"color"`
}

// SessionAddText places a text layer at the center of the zone.
func SessionAddText(reg *session.Registry, sm *metrics.SessionMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r, reg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addTextRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		zone, err := enums.ParsePlacementZone(payload.Zone)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid zone"))
			return
		}

		sess.AddText(zone, design.TextSpec{
			Content:    payload.Content,
			FontSize:   payload.FontSize,
			FontFamily: enums.FontFamily(payload.FontFamily),
			Bold:       payload.Bold,
			Italic:     payload.Italic,
			Underline:  payload.Underline,
			Alignment:  enums.TextAlignment(payload.Alignment),
			Color:      types.HexColor(payload.Color),
		})
		sm.IncCommit("add_text")
		responses.WriteSuccess(w, newSessionResponse(sess))
	}
}

type addStickerRequest struct {
	Zone    string `json:"zone" validate:"required"`
	AssetID string `json:"asset_id" validate:"required"`
	Custom  bool   `json:"custom"`
}

// SessionAddSticker places a sticker layer at the center of the zone.
func SessionAddSticker(reg *session.Registry, sm *metrics.SessionMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r, reg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addStickerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		zone, err := enums.ParsePlacementZone(payload.Zone)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid zone"))
			return
		}

		sess.AddSticker(zone, payload.AssetID, payload.Custom)
		sm.IncCommit("add_sticker")
		responses.WriteSuccess(w, newSessionResponse(sess))
	}
}

// SessionRemoveLayer deletes a layer addressed by zone, kind and id.
func SessionRemoveLayer(reg *session.Registry, sm *metrics.SessionMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r, reg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		zone, err := enums.ParsePlacementZone(r.URL.Query().Get("zone"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid zone"))
			return
		}
		kind, err := enums.ParseLayerKind(chi.URLParam(r, "kind"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid layer kind"))
			return
		}

		sess.RemoveLayer(zone, kind, chi.URLParam(r, "layerID"))
		sm.IncCommit("remove_layer")
		responses.WriteSuccess(w, newSessionResponse(sess))
	}
}

type scaleStickerRequest struct {
	Zone      string  `json:"zone" validate:"required"`
	StickerID string  `json:"sticker_id" validate:"required"`
	Delta     float64 `json:"delta" validate:"required"`
}

// SessionScaleSticker grows or shrinks a sticker by a delta.
func SessionScaleSticker(reg *session.Registry, sm *metrics.SessionMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r, reg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload scaleStickerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		zone, err := enums.ParsePlacementZone(payload.Zone)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid zone"))
			return
		}

		sess.ScaleSticker(zone, payload.StickerID, payload.Delta)
		sm.IncCommit("scale_sticker")
		responses.WriteSuccess(w, newSessionResponse(sess))
	}
}

type updateSessionRequest struct {
	MerchType *string `json:"merch_type"`
	Color     *string `json:"color"`
	ColorName *string `json:"color_name"`
	Size      *string `json:"size"`
}

// SessionUpdate patches garment attributes: color, size, merch type.
// Switching merch type drops layers in zones the new garment lacks.
func SessionUpdate(reg *session.Registry, sm *metrics.SessionMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r, reg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateSessionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if payload.Color != nil {
			color := types.HexColor(*payload.Color)
			if !color.IsValid() {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid color"))
				return
			}
			colorName := sess.Document().ColorName
			if payload.ColorName != nil {
				colorName = *payload.ColorName
			}
			sess.SetColor(color, colorName)
			sm.IncCommit("set_color")
		}

		if payload.Size != nil {
			size, err := enums.ParseGarmentSize(*payload.Size)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid size"))
				return
			}
			sess.SetSize(size)
			sm.IncCommit("set_size")
		}

		if payload.MerchType != nil {
			merchType, err := enums.ParseMerchType(*payload.MerchType)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid merch type"))
				return
			}
			sess.SetMerchType(merchType)
			sm.IncCommit("set_merch_type")
		}

		responses.WriteSuccess(w, newSessionResponse(sess))
	}
}

type pointerEventRequest struct {
	Event   string  `json:"event" validate:"required,oneof=down move up leave"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Zone    string  `json:"zone"`
	Kind    string  `json:"kind"`
	LayerID string  `json:"layer_id"`
	Canvas  struct {
		OriginX float64 `json:"origin_x"`
		OriginY float64 `json:"origin_y"`
		Width   float64 `json:"width"`
		Height  float64 `json:"height"`
	} `json:"canvas"`
}

// SessionPointer drives the drag engine with device-coordinate pointer
// events. Down grabs a layer, move repositions it, up and leave commit
// the gesture as a single undoable step.
func SessionPointer(reg *session.Registry, sm *metrics.SessionMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r, reg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload pointerEventRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		canvas := interaction.Canvas{
			OriginX: payload.Canvas.OriginX,
			OriginY: payload.Canvas.OriginY,
			Width:   payload.Canvas.Width,
			Height:  payload.Canvas.Height,
		}

		switch payload.Event {
		case "down":
			zone, err := enums.ParsePlacementZone(payload.Zone)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid zone"))
				return
			}
			kind, err := enums.ParseLayerKind(payload.Kind)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid layer kind"))
				return
			}
			sess.PointerDown(canvas, zone, kind, payload.LayerID, payload.X, payload.Y)

		case "move":
			sess.PointerMove(canvas, payload.X, payload.Y)

		case "up":
			sess.PointerUp()
			sm.IncCommit("drag")

		case "leave":
			sess.PointerLeave()
			sm.IncCommit("drag")
		}

		responses.WriteSuccess(w, newSessionResponse(sess))
	}
}

// SessionUndo steps the session back one committed state.
func SessionUndo(reg *session.Registry, sm *metrics.SessionMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r, reg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if _, ok := sess.Undo(); ok {
			sm.IncUndo()
		}
		responses.WriteSuccess(w, newSessionResponse(sess))
	}
}

// SessionReset replaces the document with a fresh one for the same
// garment. The reset itself is undoable.
func SessionReset(reg *session.Registry, sm *metrics.SessionMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r, reg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sess.Reset()
		sm.IncCommit("reset")
		responses.WriteSuccess(w, newSessionResponse(sess))
	}
}

// SessionHandoff serializes the current document into the transient
// store so the preview screen can pick it up.
func SessionHandoff(reg *session.Registry, handoff *session.HandoffStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r, reg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := handoff.Put(r.Context(), sess.ID.String(), sess.Document()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"session_id": sess.ID.String(), "status": "stored"})
	}
}
