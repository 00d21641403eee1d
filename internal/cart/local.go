// Package cart holds the two cart variants behind the BYOM flow: a
// local, session-scoped cart for anonymous shoppers and a
// server-synchronized cart keyed by the caller's access-token subject.
package cart

import (
	"sync"

	"github.com/graceline/byom-backend/internal/submission"
)

// Local is the in-memory cart used when no access token is presented.
// It lives and dies with the design session.
type Local struct {
	mu    sync.Mutex
	items []submission.CartLineItem
}

// NewLocal returns an empty local cart.
func NewLocal() *Local {
	return &Local{}
}

// Add appends a line item.
func (l *Local) Add(item submission.CartLineItem) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, item)
}

// Items returns a copy of the current lines.
func (l *Local) Items() []submission.CartLineItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]submission.CartLineItem, len(l.items))
	copy(out, l.items)
	return out
}

// TotalCents sums the lines.
func (l *Local) TotalCents() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	var total int64
	for _, item := range l.items {
		total += item.UnitPrice.IntPart() * int64(item.Qty)
	}
	return total
}

// Len reports the number of lines.
func (l *Local) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}
