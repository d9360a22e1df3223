package services

import (
	"errors"
	"sync"
)

// ErrNoActiveDrag reports a drop or query against a session with no drag in
// flight.
var ErrNoActiveDrag = errors.New("no active drag")

// DragSession tracks a single in-flight drag gesture: which meal is being
// dragged and the day it started from. It exists so the schedule's MoveMeal
// can stay stateless — the session only carries the gesture from begin to
// drop. Whatever ends the gesture, drop or cancel, clears it, so a stale
// meal id can never leak into the next gesture.
type DragSession struct {
	mu       sync.Mutex
	dragging bool
	mealID   string
	fromDay  int
}

func NewDragSession() *DragSession {
	return &DragSession{}
}

// Begin starts tracking a drag. A begin while another drag is in flight
// replaces it; the pointer can only hold one thing at a time.
func (session *DragSession) Begin(mealID string, fromDay int) {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.dragging = true
	session.mealID = mealID
	session.fromDay = fromDay
}

// Drop ends the gesture and returns the dragged meal id and its originating
// day. The session is cleared whether or not the caller's move succeeds.
func (session *DragSession) Drop() (mealID string, fromDay int, err error) {
	session.mu.Lock()
	defer session.mu.Unlock()
	if !session.dragging {
		return "", 0, ErrNoActiveDrag
	}
	mealID, fromDay = session.mealID, session.fromDay
	session.clearLocked()
	return mealID, fromDay, nil
}

// Cancel discards the in-flight drag, if any. A cancelled gesture means no
// move occurred.
func (session *DragSession) Cancel() {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.clearLocked()
}

// Active reports whether a drag is in flight.
func (session *DragSession) Active() bool {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.dragging
}

func (session *DragSession) clearLocked() {
	session.dragging = false
	session.mealID = ""
	session.fromDay = 0
}
