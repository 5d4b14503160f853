package activation

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/rotatable/family"
)

// RotateOnActivate marks an entity whose block should be rotated whenever the entity is activated.
type RotateOnActivate struct{}

// ComponentName ...
func (RotateOnActivate) ComponentName() string { return "rotate_on_activate" }

// Block links an entity to the block it represents in the world.
type Block[B any] struct {
	// Family is the family the block belongs to.
	Family *family.Family[B]
	// Variant is the variant currently placed.
	Variant family.Variant[B]
	// Pos is the position of the block in the world.
	Pos cube.Pos
}

// ComponentName ...
func (Block[B]) ComponentName() string { return "block" }
