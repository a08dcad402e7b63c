package history

import (
	"image/color"
	"testing"

	"Sketchpad/internal/surface"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snaps(n int) []*surface.Snapshot {
	s := surface.New(4, 4, color.White)
	out := make([]*surface.Snapshot, n)
	for i := range out {
		out[i] = s.Snapshot()
	}
	return out
}

func TestUndoRedo_EmptyIsNoop(t *testing.T) {
	h := New(0)
	cur := snaps(1)[0]

	got, ok := h.Undo(cur)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Equal(t, 0, h.RedoDepth())

	got, ok = h.Redo(cur)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Equal(t, 0, h.UndoDepth())
}

func TestUndoRedo_MovesBetweenStacks(t *testing.T) {
	s := snaps(3)
	h := New(0)
	h.Checkpoint(s[0])
	h.Checkpoint(s[1])
	require.Equal(t, 2, h.UndoDepth())

	got, ok := h.Undo(s[2])
	require.True(t, ok)
	assert.Same(t, s[1], got)
	assert.Equal(t, 1, h.UndoDepth())
	assert.Equal(t, 1, h.RedoDepth())

	got, ok = h.Redo(s[1])
	require.True(t, ok)
	assert.Same(t, s[2], got)
	assert.Equal(t, 2, h.UndoDepth())
	assert.Equal(t, 0, h.RedoDepth())
	assert.False(t, h.CanRedo())
	assert.True(t, h.CanUndo())
}

func TestCheckpoint_ClearsRedo(t *testing.T) {
	s := snaps(3)
	h := New(0)
	h.Checkpoint(s[0])
	_, ok := h.Undo(s[1])
	require.True(t, ok)
	require.True(t, h.CanRedo())

	h.Checkpoint(s[2])
	assert.False(t, h.CanRedo())
	_, ok = h.Redo(s[0])
	assert.False(t, ok)
}

func TestCheckpoint_Limit(t *testing.T) {
	s := snaps(5)
	h := New(3)
	for _, snap := range s {
		h.Checkpoint(snap)
	}
	assert.Equal(t, 3, h.UndoDepth())

	// oldest entries were dropped
	var popped []*surface.Snapshot
	for h.CanUndo() {
		got, _ := h.Undo(s[0])
		popped = append(popped, got)
	}
	assert.Equal(t, []*surface.Snapshot{s[4], s[3], s[2]}, popped)
}

func TestRedo_RespectsLimit(t *testing.T) {
	s := snaps(4)
	h := New(2)
	h.Checkpoint(s[0])
	h.Checkpoint(s[1])

	_, ok := h.Undo(s[2])
	require.True(t, ok)
	_, ok = h.Redo(s[3])
	require.True(t, ok)
	assert.Equal(t, 2, h.UndoDepth())

	got, _ := h.Undo(s[0])
	assert.Same(t, s[3], got)
}

func TestReset(t *testing.T) {
	s := snaps(2)
	h := New(0)
	h.Checkpoint(s[0])
	h.Checkpoint(s[1])
	_, _ = h.Undo(s[1])

	h.Reset()
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	_, ok := h.Undo(s[0])
	assert.False(t, ok)
}
