// Package interaction translates raw pointer events into clamped
// percentage coordinates on the design document and governs the drag
// lifecycle for a single customization session.
package interaction

import (
	"github.com/graceline/byom-backend/internal/design"
	"github.com/graceline/byom-backend/pkg/enums"
)

// Canvas is the design surface's bounding box in device pixels.
type Canvas struct {
	OriginX float64 `json:"origin_x"`
	OriginY float64 `json:"origin_y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// Mounted reports whether the canvas has a usable size. Events that
// arrive before layout are dropped instead of dividing by zero.
func (c Canvas) Mounted() bool {
	return c.Width > 0 && c.Height > 0
}

// ToPercent maps a device-pixel pointer coordinate into percentage
// space, independently per axis, without clamping. Final layer
// positions are clamped when they are written to the document.
func (c Canvas) ToPercent(px, py float64) (float64, float64) {
	x := (px - c.OriginX) / c.Width * 100
	y := (py - c.OriginY) / c.Height * 100
	return x, y
}

// Engine is the per-session drag state machine: Idle until a pointer
// goes down over a layer, Dragging until the pointer is released or
// leaves the canvas. Moves update the live document only; the caller
// commits to history on release.
type Engine struct {
	dragging bool
	zone     enums.PlacementZone
	kind     enums.LayerKind
	layerID  string
	offsetX  float64
	offsetY  float64

	selectedZone    enums.PlacementZone
	selectedSticker string
}

func NewEngine() *Engine {
	return &Engine{}
}

// PointerDown begins a drag over the identified layer. It stores the
// pointer-to-layer-center offset in percent units so subsequent moves
// are offset-relative rather than jumping the layer to the pointer.
// Returns false (and stays Idle) for an unmounted canvas or a layer
// that is not in the document.
func (e *Engine) PointerDown(doc design.Document, canvas Canvas, zone enums.PlacementZone, kind enums.LayerKind, layerID string, px, py float64) bool {
	if !canvas.Mounted() {
		return false
	}

	var centerX, centerY float64
	switch kind {
	case enums.LayerKindText:
		layer, ok := doc.FindText(zone, layerID)
		if !ok {
			return false
		}
		centerX, centerY = layer.X, layer.Y
	case enums.LayerKindSticker:
		layer, ok := doc.FindSticker(zone, layerID)
		if !ok {
			return false
		}
		centerX, centerY = layer.X, layer.Y
		e.selectedZone = zone
		e.selectedSticker = layerID
	default:
		return false
	}

	pointerX, pointerY := canvas.ToPercent(px, py)
	e.dragging = true
	e.zone = zone
	e.kind = kind
	e.layerID = layerID
	e.offsetX = pointerX - centerX
	e.offsetY = pointerY - centerY
	return true
}

// PointerMove applies the current pointer position to the live
// document. Moves are last-write-wins: each call derives the position
// from the latest pointer coordinate alone. Returns the input document
// untouched when no drag is active or the canvas is unmounted.
func (e *Engine) PointerMove(doc design.Document, canvas Canvas, px, py float64) (design.Document, bool) {
	if !e.dragging || !canvas.Mounted() {
		return doc, false
	}
	pointerX, pointerY := canvas.ToPercent(px, py)
	next := design.MoveLayer(doc, e.zone, e.kind, e.layerID, pointerX-e.offsetX, pointerY-e.offsetY)
	return next, true
}

// PointerUp ends the active drag and reports whether one was active;
// the caller commits the live document to history when it returns
// true. A stray release with no drag in flight is a no-op.
func (e *Engine) PointerUp() bool {
	if !e.dragging {
		return false
	}
	e.dragging = false
	e.zone = ""
	e.kind = ""
	e.layerID = ""
	e.offsetX = 0
	e.offsetY = 0
	return true
}

// PointerLeave is treated like a release: the drag commits at its last
// position instead of snapping back.
func (e *Engine) PointerLeave() bool {
	return e.PointerUp()
}

// Dragging reports whether a drag is in flight.
func (e *Engine) Dragging() bool {
	return e.dragging
}

// SelectedSticker returns the sticker the scale controls target.
func (e *Engine) SelectedSticker() (enums.PlacementZone, string, bool) {
	if e.selectedSticker == "" {
		return "", "", false
	}
	return e.selectedZone, e.selectedSticker, true
}

// ClearSelection drops the sticker selection, e.g. after removal.
func (e *Engine) ClearSelection() {
	e.selectedZone = ""
	e.selectedSticker = ""
}
