// Package session owns the lifecycle of one customization: the live
// design document, its undo history, and the drag engine. A session is
// single-writer by construction; the mutex only serializes the HTTP
// surface onto that model.
package session

import (
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/graceline/byom-backend/internal/design"
	"github.com/graceline/byom-backend/internal/history"
	"github.com/graceline/byom-backend/internal/interaction"
	"github.com/graceline/byom-backend/internal/pricing"
	"github.com/graceline/byom-backend/pkg/enums"
	"github.com/graceline/byom-backend/pkg/types"
)

// Session is one open customization screen.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu     sync.Mutex
	live   design.Document
	hist   *history.Stack
	engine *interaction.Engine
}

// New starts a session with an empty document for the chosen garment.
func New(merchType enums.MerchType, color types.HexColor, colorName string, size enums.GarmentSize) (*Session, error) {
	doc, err := design.NewDocument(merchType, color, colorName, size)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		live:      doc,
		hist:      history.New(doc),
		engine:    interaction.NewEngine(),
	}, nil
}

// Document returns the live document, including any uncommitted drag
// position.
func (s *Session) Document() design.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live
}

// Quote prices the last committed document. Drags in flight do not
// change counts, so the displayed price never flickers mid-drag.
func (s *Session) Quote() pricing.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.Compute(s.hist.Current())
}

// CanUndo reports whether an undo would change state.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.CanUndo()
}

// apply runs a document operation and commits the result when it
// produced a change. Validation no-ops (empty text, unknown ids) fall
// out naturally: the operation returns an equal document and nothing
// is recorded.
func (s *Session) apply(op func(design.Document) design.Document) design.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := op(s.live)
	if !reflect.DeepEqual(next, s.live) {
		s.live = next
		s.hist.Commit(next)
	}
	return s.live
}

// AddText commits a new text layer; inert on empty content.
func (s *Session) AddText(zone enums.PlacementZone, spec design.TextSpec) design.Document {
	return s.apply(func(doc design.Document) design.Document {
		return design.AddText(doc, zone, spec)
	})
}

// AddSticker commits a new sticker layer at the canvas center.
func (s *Session) AddSticker(zone enums.PlacementZone, assetID string, custom bool) design.Document {
	return s.apply(func(doc design.Document) design.Document {
		return design.AddSticker(doc, zone, assetID, custom)
	})
}

// RemoveLayer drops a layer by kind and id; removing the selected
// sticker also clears the scale-control selection.
func (s *Session) RemoveLayer(zone enums.PlacementZone, kind enums.LayerKind, layerID string) design.Document {
	s.mu.Lock()
	if kind == enums.LayerKindSticker {
		if selZone, selID, ok := s.engine.SelectedSticker(); ok && selZone == zone && selID == layerID {
			s.engine.ClearSelection()
		}
	}
	s.mu.Unlock()

	return s.apply(func(doc design.Document) design.Document {
		switch kind {
		case enums.LayerKindText:
			return design.RemoveText(doc, zone, layerID)
		case enums.LayerKindSticker:
			return design.RemoveSticker(doc, zone, layerID)
		default:
			return doc
		}
	})
}

// ScaleSticker commits a clamped scale adjustment.
func (s *Session) ScaleSticker(zone enums.PlacementZone, stickerID string, delta float64) design.Document {
	return s.apply(func(doc design.Document) design.Document {
		return design.ScaleSticker(doc, zone, stickerID, delta)
	})
}

// ScaleSelected adjusts whichever sticker the last pointer-down
// selected; no-op when nothing is selected.
func (s *Session) ScaleSelected(delta float64) design.Document {
	s.mu.Lock()
	zone, stickerID, ok := s.engine.SelectedSticker()
	s.mu.Unlock()
	if !ok {
		return s.Document()
	}
	return s.ScaleSticker(zone, stickerID, delta)
}

// SetColor commits a garment color change.
func (s *Session) SetColor(color types.HexColor, colorName string) design.Document {
	return s.apply(func(doc design.Document) design.Document {
		return design.SetColor(doc, color, colorName)
	})
}

// SetSize commits a garment size change.
func (s *Session) SetSize(size enums.GarmentSize) design.Document {
	return s.apply(func(doc design.Document) design.Document {
		return design.SetSize(doc, size)
	})
}

// SetMerchType commits a garment switch as a single history entry, so
// one undo restores the dropped zones along with the old type.
func (s *Session) SetMerchType(merchType enums.MerchType) design.Document {
	return s.apply(func(doc design.Document) design.Document {
		return design.SetMerchType(doc, merchType)
	})
}

// PointerDown starts a drag on the identified layer.
func (s *Session) PointerDown(canvas interaction.Canvas, zone enums.PlacementZone, kind enums.LayerKind, layerID string, px, py float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.PointerDown(s.live, canvas, zone, kind, layerID, px, py)
}

// PointerMove updates the live document without touching history; the
// preview follows the drag in real time but only the release commits.
func (s *Session) PointerMove(canvas interaction.Canvas, px, py float64) design.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	if next, moved := s.engine.PointerMove(s.live, canvas, px, py); moved {
		s.live = next
	}
	return s.live
}

// PointerUp ends the drag and commits the final position.
func (s *Session) PointerUp() design.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine.PointerUp() {
		if !reflect.DeepEqual(s.live, s.hist.Current()) {
			s.hist.Commit(s.live)
		}
	}
	return s.live
}

// PointerLeave commits like a release; the drag does not snap back.
func (s *Session) PointerLeave() design.Document {
	return s.PointerUp()
}

// SelectedSticker exposes the scale-control target.
func (s *Session) SelectedSticker() (enums.PlacementZone, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.SelectedSticker()
}

// Undo steps back one committed state. Reports false at the bottom of
// the stack; that is an expected user action, not an error.
func (s *Session) Undo() (design.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.hist.Undo()
	if ok {
		s.live = doc
	}
	return s.live, ok
}

// Reset commits a fresh empty document for the current garment. It is
// itself an undoable step, not a history wipe.
func (s *Session) Reset() design.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	fresh, err := design.NewDocument(s.live.MerchType, s.live.Color, s.live.ColorName, s.live.Size)
	if err != nil {
		return s.live
	}
	if !reflect.DeepEqual(fresh, s.live) {
		s.live = fresh
		s.hist.Commit(fresh)
	}
	return s.live
}
