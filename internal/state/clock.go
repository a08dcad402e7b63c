package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Session identifies one sketchpad run in logs.
type Session struct {
	ID      string
	gesture atomic.Uint64
}

func NewSession() *Session {
	return &Session{ID: uuid.NewString()}
}

// NextGesture returns the sequence number of the gesture that is starting.
func (s *Session) NextGesture() uint64 {
	return s.gesture.Add(1)
}

// Gestures is how many gestures have started so far.
func (s *Session) Gestures() uint64 {
	return s.gesture.Load()
}
