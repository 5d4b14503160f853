package family

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/df-mc/rotatable/orientation"
)

// ErrDuplicateFamily is returned when registering a Family under an identifier that is already taken.
var ErrDuplicateFamily = errors.New("block family already registered")

// Registry holds families by their identifier, so that other subsystems can look up variants by orientation.
// A Registry is safe for concurrent use.
type Registry[B any] struct {
	mu       sync.RWMutex
	families map[ID]*Family[B]
}

// NewRegistry returns an empty Registry.
func NewRegistry[B any]() *Registry[B] {
	return &Registry[B]{families: make(map[ID]*Family[B])}
}

// Register adds f to the registry under f.ID().
func (r *Registry[B]) Register(f *Family[B]) error {
	if f == nil {
		return errors.New("register family: family is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.families[f.ID()]; ok {
		return fmt.Errorf("register family: %w: %v", ErrDuplicateFamily, f.ID())
	}
	r.families[f.ID()] = f
	return nil
}

// Unregister removes the family with the identifier passed. It reports if the family was present.
func (r *Registry[B]) Unregister(id ID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.families[id]; !ok {
		return false
	}
	delete(r.families, id)
	return true
}

// Family returns the family registered under id.
func (r *Registry[B]) Family(id ID) (*Family[B], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.families[id]
	return f, ok
}

// Variant looks up the variant with orientation o of the family registered under id.
func (r *Registry[B]) Variant(id ID, o orientation.Orientation) (Variant[B], bool) {
	f, ok := r.Family(id)
	if !ok {
		var zero Variant[B]
		return zero, false
	}
	return f.ByOrientation(o)
}

// Families returns all registered families sorted by their identifier.
func (r *Registry[B]) Families() []*Family[B] {
	r.mu.RLock()
	families := make([]*Family[B], 0, len(r.families))
	for _, f := range r.families {
		families = append(families, f)
	}
	r.mu.RUnlock()

	slices.SortFunc(families, func(a, b *Family[B]) int {
		return strings.Compare(string(a.ID()), string(b.ID()))
	})
	return families
}

// Len returns the number of registered families.
func (r *Registry[B]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.families)
}
