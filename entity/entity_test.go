package entity

import (
	"testing"

	"github.com/google/uuid"
)

type marker struct{}

func (marker) ComponentName() string { return "marker" }

type health struct{ Value int }

func (health) ComponentName() string { return "health" }

// fakeHealth shares the name of health, but is a different type.
type fakeHealth struct{}

func (fakeHealth) ComponentName() string { return "health" }

func TestEntityComponents(t *testing.T) {
	e := New(marker{}, health{Value: 20})
	if e.ID() == uuid.Nil {
		t.Fatalf("expected entity to have a random id")
	}
	if !e.Has("marker", "health") {
		t.Fatalf("expected entity to have marker and health")
	}
	h, ok := Get[health](e)
	if !ok || h.Value != 20 {
		t.Fatalf("expected health 20, got %v (%v)", h.Value, ok)
	}

	e.Add(health{Value: 5})
	if h, _ := Get[health](e); h.Value != 5 {
		t.Fatalf("expected health to be replaced, got %v", h.Value)
	}

	e.Remove(Name[marker]())
	if e.Has("marker") {
		t.Fatalf("expected marker to be removed")
	}
	if _, ok := Get[marker](e); ok {
		t.Fatalf("expected no marker after removal")
	}

	e.Add(fakeHealth{})
	if _, ok := Get[health](e); ok {
		t.Fatalf("expected component of a different type to not be returned")
	}
	if _, ok := Get[health](nil); ok {
		t.Fatalf("expected lookup on nil entity to fail")
	}
}

func TestNewWithID(t *testing.T) {
	id := uuid.New()
	if e := NewWithID(id); e.ID() != id {
		t.Fatalf("expected id %v, got %v", id, e.ID())
	}
}
