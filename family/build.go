package family

import (
	"fmt"

	"github.com/df-mc/rotatable/orientation"
)

// Transformer produces a rotated copy of a block. It is implemented by the host, which knows how to reorient the
// shape and textures of a block.
type Transformer[B any] interface {
	// Transform returns a copy of base rotated by r.
	Transform(base B, r orientation.Rotation) B
}

// TransformerFunc is a function that implements Transformer.
type TransformerFunc[B any] func(base B, r orientation.Rotation) B

// Transform calls f(base, r).
func (f TransformerFunc[B]) Transform(base B, r orientation.Rotation) B {
	return f(base, r)
}

// Build creates a complete Family of 24 variants from the definition passed, calling t exactly once for every
// reachable orientation. Variants are created in the order of orientation.All, so the result is the same every time.
func Build[B any](def Definition[B], t Transformer[B]) (*Family[B], error) {
	all := orientation.All()
	variants := make([]Variant[B], 0, len(all))
	for _, o := range all {
		r := orientation.MustLookup(o)
		variants = append(variants, Variant[B]{Orientation: o, Rotation: r, Block: t.Transform(def.Base, r)})
	}
	f, err := New(def, variants)
	if err != nil {
		return nil, fmt.Errorf("build family: %w", err)
	}
	return f, nil
}

// Partial creates a Family holding only the orientations passed, in that order. It is useful for blocks that may
// only be rotated in some ways.
func Partial[B any](def Definition[B], t Transformer[B], orientations ...orientation.Orientation) (*Family[B], error) {
	variants := make([]Variant[B], 0, len(orientations))
	for _, o := range orientations {
		r, ok := orientation.Lookup(o)
		if !ok {
			return nil, fmt.Errorf("build partial family: %w: %v", ErrInvalidOrientation, o)
		}
		variants = append(variants, Variant[B]{Orientation: o, Rotation: r, Block: t.Transform(def.Base, r)})
	}
	f, err := New(def, variants)
	if err != nil {
		return nil, fmt.Errorf("build partial family: %w", err)
	}
	return f, nil
}
