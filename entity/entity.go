package entity

import (
	"sync"

	"github.com/google/uuid"
)

// Component is a piece of data attached to an Entity. An Entity holds at most one component per name.
type Component interface {
	// ComponentName returns the name the component is stored under. It must not depend on the value of the
	// component, as it is also called on zero values to look components up.
	ComponentName() string
}

// Entity is a thing in the world that events may be delivered to. Its behaviour is entirely determined by the
// components attached to it.
type Entity struct {
	id uuid.UUID

	mu         sync.RWMutex
	components map[string]Component
}

// New creates an Entity with a random UUID and the components passed.
func New(components ...Component) *Entity {
	return NewWithID(uuid.New(), components...)
}

// NewWithID creates an Entity with the UUID and components passed.
func NewWithID(id uuid.UUID, components ...Component) *Entity {
	e := &Entity{id: id, components: make(map[string]Component, len(components))}
	for _, c := range components {
		e.components[c.ComponentName()] = c
	}
	return e
}

// ID returns the UUID of the entity.
func (e *Entity) ID() uuid.UUID {
	return e.id
}

// Add attaches c to the entity, replacing a component with the same name.
func (e *Entity) Add(c Component) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.components[c.ComponentName()] = c
}

// Remove detaches the component with the name passed.
func (e *Entity) Remove(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.components, name)
}

// Has checks if components are attached under all names passed.
func (e *Entity) Has(names ...string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, name := range names {
		if _, ok := e.components[name]; !ok {
			return false
		}
	}
	return true
}

// Get returns the component of type C attached to e. False is returned if no component with the name of C is
// attached, or if the attached component is of a different type.
func Get[C Component](e *Entity) (C, bool) {
	var zero C
	if e == nil {
		return zero, false
	}
	e.mu.RLock()
	c, ok := e.components[zero.ComponentName()]
	e.mu.RUnlock()
	if !ok {
		return zero, false
	}
	v, ok := c.(C)
	return v, ok
}

// Name returns the component name of C.
func Name[C Component]() string {
	var zero C
	return zero.ComponentName()
}
