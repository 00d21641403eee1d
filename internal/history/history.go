// Package history keeps the undo stack for a customization session.
// Entries are full document snapshots; because document operations are
// immutable, snapshots can be stored by value without aliasing the
// live document.
package history

import "github.com/graceline/byom-backend/internal/design"

// Stack is an append-only sequence of document snapshots with a cursor
// pointing at the current state. The cursor is always a valid index.
type Stack struct {
	entries []design.Document
	cursor  int
}

// New creates a stack seeded with the session's initial document.
func New(initial design.Document) *Stack {
	return &Stack{
		entries: []design.Document{initial},
		cursor:  0,
	}
}

// Commit records a snapshot. Any redo tail beyond the cursor is
// truncated first: an edit after an undo discards the undone states.
func (s *Stack) Commit(doc design.Document) {
	s.entries = append(s.entries[:s.cursor+1], doc)
	s.cursor = len(s.entries) - 1
}

// Undo steps the cursor back one entry and returns that snapshot. At
// the bottom of the stack it reports false rather than erroring, since
// undo-with-nothing-to-undo is an expected user action.
func (s *Stack) Undo() (design.Document, bool) {
	if s.cursor == 0 {
		return s.Current(), false
	}
	s.cursor--
	return s.entries[s.cursor], true
}

// Current returns the snapshot under the cursor.
func (s *Stack) Current() design.Document {
	return s.entries[s.cursor]
}

// CanUndo reports whether an undo would change state.
func (s *Stack) CanUndo() bool {
	return s.cursor > 0
}

// Len is the number of recorded snapshots (including redo tail).
func (s *Stack) Len() int {
	return len(s.entries)
}

// Cursor exposes the current index, mainly for diagnostics.
func (s *Stack) Cursor() int {
	return s.cursor
}
