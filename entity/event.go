package entity

import "github.com/google/uuid"

// Event is delivered to entities by the host.
type Event interface {
	EventName() string
}

// ActivateEvent is sent to an entity when it is activated, for example when a player uses the block it represents.
type ActivateEvent struct {
	// Instigator is the UUID of the entity that activated the target, or uuid.Nil if it was not activated by an
	// entity.
	Instigator uuid.UUID
}

// EventName ...
func (ActivateEvent) EventName() string { return "activate" }
