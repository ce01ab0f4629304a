// Package history keeps the linear undo/redo stack for an annotation
// document. Each entry is a full copy of the committed element list taken at
// commit time; at the element counts an annotation session produces, whole
// snapshots are cheaper to reason about than a command log.
package history

import "github.com/example/inkover/internal/element"

// Stack is a linear undo/redo stack of committed element-list snapshots.
// cursor indexes the snapshot the document currently shows; -1 means the
// document is before the first snapshot (an empty canvas).
type Stack struct {
	snapshots [][]element.Element
	cursor    int
}

// New returns an empty stack positioned before the first snapshot.
func New() *Stack {
	return &Stack{cursor: -1}
}

// Record stores a new snapshot of the committed list. Anything previously
// undone past the cursor is discarded, so redo history does not survive a
// new commit.
func (s *Stack) Record(committed []element.Element) {
	s.snapshots = s.snapshots[:s.cursor+1]
	s.snapshots = append(s.snapshots, element.CloneList(committed))
	s.cursor = len(s.snapshots) - 1
}

// Undo steps the cursor back one snapshot and returns the list the document
// should show. Undoing while on the first snapshot lands on an empty canvas
// (cursor -1) rather than staying put; undoing again after that reports
// ok=false and changes nothing.
func (s *Stack) Undo() (committed []element.Element, ok bool) {
	if s.cursor > 0 {
		s.cursor--
		return element.CloneList(s.snapshots[s.cursor]), true
	}
	if s.cursor == 0 {
		s.cursor = -1
		return nil, true
	}
	return nil, false
}

// Redo steps the cursor forward one snapshot if one was undone. At the top
// of the stack it reports ok=false and changes nothing.
func (s *Stack) Redo() (committed []element.Element, ok bool) {
	if s.cursor < len(s.snapshots)-1 {
		s.cursor++
		return element.CloneList(s.snapshots[s.cursor]), true
	}
	return nil, false
}

// Clear drops every snapshot and resets the cursor.
func (s *Stack) Clear() {
	s.snapshots = nil
	s.cursor = -1
}

// Cursor returns the current snapshot index, or -1 before the first one.
func (s *Stack) Cursor() int { return s.cursor }

// Len returns the number of stored snapshots.
func (s *Stack) Len() int { return len(s.snapshots) }
