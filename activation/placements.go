package activation

import (
	"sync"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/rotatable/family"
)

// Placements remembers the variant last placed at every position. The Block component of an entity is captured
// when the entity is created and is never changed by the System, so after the first rotation it no longer matches
// the world. A System with Placements rotates from the variant it placed last instead. Placements is safe for
// concurrent use.
type Placements[B any] struct {
	mu sync.RWMutex
	m  map[cube.Pos]placement[B]
}

type placement[B any] struct {
	family  family.ID
	variant family.Variant[B]
}

// NewPlacements returns an empty Placements.
func NewPlacements[B any]() *Placements[B] {
	return &Placements[B]{m: make(map[cube.Pos]placement[B])}
}

// Store records that the variant v of f was placed at pos, replacing anything placed there before.
func (p *Placements[B]) Store(pos cube.Pos, f *family.Family[B], v family.Variant[B]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.m[pos] = placement[B]{family: f.ID(), variant: v}
}

// Load returns the variant of f last placed at pos. False is returned if nothing was placed at pos or if the block
// placed there is of another family.
func (p *Placements[B]) Load(pos cube.Pos, f *family.Family[B]) (family.Variant[B], bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	pl, ok := p.m[pos]
	if !ok || pl.family != f.ID() {
		var zero family.Variant[B]
		return zero, false
	}
	return pl.variant, true
}
