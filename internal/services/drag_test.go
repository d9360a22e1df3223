package services

import (
	"errors"
	"testing"
)

func TestDragSession_BeginThenDrop(t *testing.T) {
	session := NewDragSession()

	session.Begin("meal-1", 2)
	if !session.Active() {
		t.Fatal("expected an active drag after Begin")
	}

	mealID, fromDay, err := session.Drop()
	if err != nil {
		t.Fatalf("dropping: %v", err)
	}
	if mealID != "meal-1" || fromDay != 2 {
		t.Errorf("expected meal-1 from day 2, got %s from day %d", mealID, fromDay)
	}
	if session.Active() {
		t.Error("expected session cleared after drop")
	}
}

func TestDragSession_DropWithoutBegin(t *testing.T) {
	session := NewDragSession()

	if _, _, err := session.Drop(); !errors.Is(err, ErrNoActiveDrag) {
		t.Fatalf("expected ErrNoActiveDrag, got %v", err)
	}
}

func TestDragSession_CancelMeansNoMove(t *testing.T) {
	session := NewDragSession()

	session.Begin("meal-1", 0)
	session.Cancel()

	if session.Active() {
		t.Error("expected session cleared after cancel")
	}
	if _, _, err := session.Drop(); !errors.Is(err, ErrNoActiveDrag) {
		t.Errorf("expected drop after cancel to fail, got %v", err)
	}

	// cancel with nothing in flight is harmless
	session.Cancel()
}

func TestDragSession_BeginReplacesInFlightDrag(t *testing.T) {
	session := NewDragSession()

	session.Begin("meal-1", 0)
	session.Begin("meal-2", 4)

	mealID, fromDay, err := session.Drop()
	if err != nil {
		t.Fatalf("dropping: %v", err)
	}
	if mealID != "meal-2" || fromDay != 4 {
		t.Errorf("expected the newer drag, got %s from day %d", mealID, fromDay)
	}
}
