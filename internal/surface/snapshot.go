package surface

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// Snapshot is an immutable capture of the whole pixel buffer.
type Snapshot struct {
	id            uuid.UUID
	width, height int
	pix           []byte
}

func (s *Snapshot) ID() uuid.UUID    { return s.id }
func (s *Snapshot) Size() (int, int) { return s.width, s.height }

// Equal reports whether two snapshots hold the same pixels.
func (s *Snapshot) Equal(o *Snapshot) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.width == o.width && s.height == o.height && bytes.Equal(s.pix, o.pix)
}

// Snapshot copies the current buffer.
func (s *Surface) Snapshot() *Snapshot {
	pix := make([]byte, len(s.pixmap.Data()))
	copy(pix, s.pixmap.Data())
	return &Snapshot{
		id:     uuid.New(),
		width:  s.width,
		height: s.height,
		pix:    pix,
	}
}

// Restore overwrites the whole buffer with snap. It completes before returning.
// A nil or mismatched snapshot leaves the buffer untouched.
func (s *Surface) Restore(snap *Snapshot) error {
	if snap == nil || snap.width != s.width || snap.height != s.height || len(snap.pix) != len(s.pixmap.Data()) {
		w, h := 0, 0
		if snap != nil {
			w, h = snap.width, snap.height
		}
		return fmt.Errorf("restore %dx%d onto %dx%d: %w", w, h, s.width, s.height, ErrSnapshotMismatch)
	}
	s.dc.ClearPath()
	copy(s.pixmap.Data(), snap.pix)
	return nil
}
