package cycle

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/rotatable/family"
	"github.com/df-mc/rotatable/orientation"
)

// ErrDegenerateFamily is returned by Cycler.Cycle if the family holds no orientation other than the current one, so
// there is nothing to cycle to.
var ErrDegenerateFamily = errors.New("block family has fewer than two orientations")

// Placer places blocks in a world. It is implemented by the host and is expected to replace whatever block is at
// the position passed atomically.
type Placer[B any] interface {
	// SetBlock replaces the block at pos with b.
	SetBlock(pos cube.Pos, b B)
}

// PlacerFunc is a function that implements Placer.
type PlacerFunc[B any] func(pos cube.Pos, b B)

// SetBlock calls f(pos, b).
func (f PlacerFunc[B]) SetBlock(pos cube.Pos, b B) {
	f(pos, b)
}

// Select picks a variant whose orientation differs from current, uniformly at random using src. Variants are walked
// in the order passed, so the choice only depends on the numbers drawn from src. False is returned if no variant
// differs from current, in which case src is not used.
func Select[B any](variants []family.Variant[B], current orientation.Orientation, src Source) (family.Variant[B], bool) {
	candidates := 0
	for _, v := range variants {
		if v.Orientation != current {
			candidates++
		}
	}
	if candidates == 0 {
		var zero family.Variant[B]
		return zero, false
	}
	index := src.IntN(candidates)
	for _, v := range variants {
		if v.Orientation == current {
			continue
		}
		if index == 0 {
			return v, true
		}
		index--
	}
	panic("should never happen")
}

// Cycler replaces blocks with another orientation of the same family. A Cycler is not safe for concurrent use, as its
// Source is not.
type Cycler[B any] struct {
	placer Placer[B]
	src    Source
	log    *slog.Logger
}

// New creates a Cycler placing blocks with p and drawing random numbers from src. If log is nil, slog.Default() is
// used.
func New[B any](p Placer[B], src Source, log *slog.Logger) *Cycler[B] {
	if log == nil {
		log = slog.Default()
	}
	return &Cycler[B]{placer: p, src: src, log: log}
}

// Cycle picks a random variant of f other than current and places it at pos, returning the variant placed. If f
// holds no other orientation, ErrDegenerateFamily is returned and the world is left untouched.
func (c *Cycler[B]) Cycle(pos cube.Pos, current family.Variant[B], f *family.Family[B]) (family.Variant[B], error) {
	next, ok := Select(f.Variants(), current.Orientation, c.src)
	if !ok {
		return next, fmt.Errorf("cycle %v: %w", f.ID(), ErrDegenerateFamily)
	}
	c.log.Info("Rotating block.", "pos", pos, "from", f.URI(current), "to", f.URI(next))
	c.placer.SetBlock(pos, next.Block)
	return next, nil
}
