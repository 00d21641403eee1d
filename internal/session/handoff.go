package session

import (
	"context"
	"errors"
	"time"

	"github.com/graceline/byom-backend/internal/design"
	pkgerrors "github.com/graceline/byom-backend/pkg/errors"
	"github.com/graceline/byom-backend/pkg/redis"
)

// handoffStore is the slice of the redis client the handoff needs.
type handoffStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	HandoffKey(sessionID string) string
}

// HandoffStore carries the in-progress document from the customize
// screen to the preview screen under a fixed per-session key. Entries
// expire with the session-abandonment TTL.
type HandoffStore struct {
	store handoffStore
	ttl   time.Duration
}

// NewHandoffStore builds the transient handoff on the shared redis client.
func NewHandoffStore(store handoffStore, ttl time.Duration) (*HandoffStore, error) {
	if store == nil {
		return nil, errors.New("handoff store backend required")
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &HandoffStore{store: store, ttl: ttl}, nil
}

// Put serializes the document under the session's handoff key.
func (h *HandoffStore) Put(ctx context.Context, sessionID string, doc design.Document) error {
	data, err := design.Marshal(doc)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "serialize design for handoff")
	}
	if err := h.store.Set(ctx, h.store.HandoffKey(sessionID), string(data), h.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store design handoff")
	}
	return nil
}

// Get loads and normalizes the handed-off document. An absent key is a
// typed not-found so the preview screen can redirect back to the start
// of the flow; a payload with missing zones loads as empty sets.
func (h *HandoffStore) Get(ctx context.Context, sessionID string) (design.Document, error) {
	raw, err := h.store.Get(ctx, h.store.HandoffKey(sessionID))
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return design.Document{}, pkgerrors.New(pkgerrors.CodeNotFound, "no design handed off for this session")
		}
		return design.Document{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load design handoff")
	}
	doc, err := design.Unmarshal([]byte(raw))
	if err != nil {
		return design.Document{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode design handoff")
	}
	return doc, nil
}

// Drop removes the handoff entry once the flow completes.
func (h *HandoffStore) Drop(ctx context.Context, sessionID string) error {
	if err := h.store.Del(ctx, h.store.HandoffKey(sessionID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "drop design handoff")
	}
	return nil
}
