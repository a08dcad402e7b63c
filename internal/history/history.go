// Package history keeps the undo and redo stacks of surface snapshots.
//
// A checkpoint is recorded when a gesture starts, so the top of the undo
// stack is always the canvas as it was before the most recent gesture.
package history

import "Sketchpad/internal/surface"

// Stack is a pair of snapshot stacks. A snapshot lives in exactly one of them.
type Stack struct {
	limit int
	undo  []*surface.Snapshot
	redo  []*surface.Snapshot
}

// New returns empty stacks. limit caps the undo depth; zero means unbounded.
func New(limit int) *Stack {
	return &Stack{limit: max(limit, 0)}
}

// Checkpoint pushes snap onto the undo stack and discards all redo entries.
func (h *Stack) Checkpoint(snap *surface.Snapshot) {
	h.pushUndo(snap)
	clear(h.redo)
	h.redo = h.redo[:0]
}

// Undo pops the latest checkpoint and parks current on the redo stack.
// It reports false, and keeps current out of both stacks, when there is nothing to undo.
func (h *Stack) Undo(current *surface.Snapshot) (*surface.Snapshot, bool) {
	snap, ok := pop(&h.undo)
	if !ok {
		return nil, false
	}
	h.redo = append(h.redo, current)
	return snap, true
}

// Redo is the mirror of Undo.
func (h *Stack) Redo(current *surface.Snapshot) (*surface.Snapshot, bool) {
	snap, ok := pop(&h.redo)
	if !ok {
		return nil, false
	}
	h.pushUndo(current)
	return snap, true
}

// Reset empties both stacks.
func (h *Stack) Reset() {
	h.undo = nil
	h.redo = nil
}

func (h *Stack) CanUndo() bool  { return len(h.undo) > 0 }
func (h *Stack) CanRedo() bool  { return len(h.redo) > 0 }
func (h *Stack) UndoDepth() int { return len(h.undo) }
func (h *Stack) RedoDepth() int { return len(h.redo) }

// pushUndo appends snap and drops the oldest entries beyond limit.
func (h *Stack) pushUndo(snap *surface.Snapshot) {
	h.undo = append(h.undo, snap)
	if h.limit > 0 && len(h.undo) > h.limit {
		drop := len(h.undo) - h.limit
		clear(h.undo[:drop])
		h.undo = h.undo[drop:]
	}
}

func pop(stack *[]*surface.Snapshot) (*surface.Snapshot, bool) {
	s := *stack
	if len(s) == 0 {
		return nil, false
	}
	top := s[len(s)-1]
	s[len(s)-1] = nil
	*stack = s[:len(s)-1]
	return top, true
}
