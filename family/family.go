package family

import (
	"errors"
	"fmt"
	"slices"

	"github.com/brentp/intintmap"
	"github.com/df-mc/rotatable/orientation"
)

var (
	// ErrEmptyFamily is returned when creating a Family without variants.
	ErrEmptyFamily = errors.New("block family has no variants")
	// ErrDuplicateOrientation is returned when two variants of a Family share an orientation or a rotation.
	ErrDuplicateOrientation = errors.New("block family has duplicate orientation")
	// ErrInvalidOrientation is returned when a variant has an orientation that cannot be reached by rotating a cube.
	ErrInvalidOrientation = errors.New("block family has unreachable orientation")
)

// Variant is a single block of a Family, bound to the rotation it was created with.
type Variant[B any] struct {
	// Orientation holds the sides of the base block that face up and front in this variant.
	Orientation orientation.Orientation
	// Rotation is the rotation applied to the base block to produce Block.
	Rotation orientation.Rotation
	// Block is the rotated block definition.
	Block B
}

// Direction returns the side of the base block that this variant exposes at the front.
func (v Variant[B]) Direction() orientation.Side {
	return v.Orientation.Front
}

// Family is the set of all oriented variants of one base block. A Family is read-only after construction and may be
// shared freely between goroutines.
type Family[B any] struct {
	id         ID
	name       string
	categories []string

	variants   []Variant[B]
	byRotation *intintmap.Map
	index      [6][6]int
}

// New creates a Family from the definition and variants passed. Variants keep the order they are passed in, which
// is the order they are enumerated in by Variants. A Family may hold any number of variants between 1 and 24, as long
// as no orientation or rotation is present twice.
func New[B any](def Definition[B], variants []Variant[B]) (*Family[B], error) {
	id, err := def.ID()
	if err != nil {
		return nil, err
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("create family %v: %w", id, ErrEmptyFamily)
	}
	f := &Family[B]{
		id:         id,
		name:       def.Name,
		categories: slices.Clone(def.Categories),
		variants:   slices.Clone(variants),
		byRotation: intintmap.New(len(variants), 0.6),
	}
	for i := range f.index {
		for j := range f.index[i] {
			f.index[i][j] = -1
		}
	}
	for i, v := range f.variants {
		o := v.Orientation
		if !o.Valid() {
			return nil, fmt.Errorf("create family %v: %w: %v", id, ErrInvalidOrientation, o)
		}
		if f.index[o.Top][o.Front] != -1 {
			return nil, fmt.Errorf("create family %v: %w: %v", id, ErrDuplicateOrientation, o)
		}
		if _, ok := f.byRotation.Get(v.Rotation.Key()); ok {
			return nil, fmt.Errorf("create family %v: %w: rotation %v", id, ErrDuplicateOrientation, v.Rotation)
		}
		f.index[o.Top][o.Front] = i
		f.byRotation.Put(v.Rotation.Key(), int64(i))
	}
	return f, nil
}

// ID returns the stable identifier the family is registered under.
func (f *Family[B]) ID() ID {
	return f.id
}

// Name returns the name of the base block.
func (f *Family[B]) Name() string {
	return f.name
}

// Categories returns the categories of the base block.
func (f *Family[B]) Categories() []string {
	return slices.Clone(f.categories)
}

// Len returns the number of variants in the family.
func (f *Family[B]) Len() int {
	return len(f.variants)
}

// Variants returns all variants of the family in their enumeration order.
func (f *Family[B]) Variants() []Variant[B] {
	return slices.Clone(f.variants)
}

// ByRotation returns the variant created with rotation r.
func (f *Family[B]) ByRotation(r orientation.Rotation) (Variant[B], bool) {
	i, ok := f.byRotation.Get(r.Key())
	if !ok {
		var zero Variant[B]
		return zero, false
	}
	return f.variants[i], true
}

// ByOrientation returns the variant with orientation o.
func (f *Family[B]) ByOrientation(o orientation.Orientation) (Variant[B], bool) {
	if !o.Valid() {
		var zero Variant[B]
		return zero, false
	}
	i := f.index[o.Top][o.Front]
	if i < 0 {
		var zero Variant[B]
		return zero, false
	}
	return f.variants[i], true
}

// Archetype returns the variant in the default orientation, or the first variant if the family is partial and does
// not hold it.
func (f *Family[B]) Archetype() Variant[B] {
	if v, ok := f.ByOrientation(orientation.Default); ok {
		return v
	}
	return f.variants[0]
}

// URI returns a readable identifier of the variant v within the family, for example tutorial:lamp.top.front.
func (f *Family[B]) URI(v Variant[B]) string {
	return fmt.Sprintf("%v.%v.%v", f.id, v.Orientation.Top, v.Orientation.Front)
}
