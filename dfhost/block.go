// Package dfhost adapts rotatable block families to dragonfly worlds.
package dfhost

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/block/customblock"
	"github.com/df-mc/dragonfly/server/block/model"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/df-mc/rotatable/family"
	"github.com/df-mc/rotatable/orientation"
	"github.com/df-mc/rotatable/tutorial"
)

// Block is a full, solid block of a rotatable family in one of its orientations. A Block may only be placed in a
// world after its family was registered using Register.
type Block struct {
	// Family is the identifier of the family the block belongs to. It is also the name the block is encoded with.
	Family family.ID
	// Rotation is the rotation of the block from its default orientation.
	Rotation orientation.Rotation
}

// Orientation returns the orientation of the block.
func (b Block) Orientation() orientation.Orientation {
	return b.Rotation.Orientation()
}

// EncodeBlock ...
func (b Block) EncodeBlock() (string, map[string]any) {
	o := b.Orientation()
	return string(b.Family), map[string]any{"top_side": o.Top.String(), "front_side": o.Front.String()}
}

// Hash ...
func (b Block) Hash() (uint64, uint64) {
	h, ok := baseHash(b.Family)
	if !ok {
		return 0, math.MaxUint64
	}
	return h, uint64(b.Rotation.Key())
}

// Model ...
func (Block) Model() world.BlockModel {
	return model.Solid{}
}

// Properties ...
func (b Block) Properties() customblock.Properties {
	return customblock.Properties{
		Cube:     true,
		Rotation: cube.Pos{int(b.Rotation.Pitch), int(b.Rotation.Yaw), int(b.Rotation.Roll)},
	}
}

// Transform rotates a Block. Blocks of other types cannot be rotated and are returned unchanged.
var Transform = family.TransformerFunc[world.Block](func(base world.Block, r orientation.Rotation) world.Block {
	b, ok := base.(Block)
	if !ok {
		return base
	}
	b.Rotation = r
	return b
})

// Base returns the unrotated Block for a block in the user configuration. It may be passed to tutorial.ToConfig.
func Base(c tutorial.BlockConfig) world.Block {
	id, _ := family.Definition[world.Block]{Name: c.Name, Categories: c.Categories}.ID()
	return Block{Family: id}
}

// Compile time check to make sure Block implements world.CustomBlock.
var _ world.CustomBlock = Block{}
