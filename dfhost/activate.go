package dfhost

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/df-mc/rotatable/activation"
	"github.com/df-mc/rotatable/entity"
	"github.com/df-mc/rotatable/extension"
	"github.com/df-mc/rotatable/family"
	"github.com/google/uuid"
)

// Entity returns an entity for the block b placed at pos, carrying the components needed to rotate it on
// activation. False is returned if b is not a Block of a family registered in reg.
func Entity(reg *family.Registry[world.Block], pos cube.Pos, b world.Block) (*entity.Entity, bool) {
	rb, ok := b.(Block)
	if !ok {
		return nil, false
	}
	f, ok := reg.Family(rb.Family)
	if !ok {
		return nil, false
	}
	v, ok := f.ByRotation(rb.Rotation)
	if !ok {
		return nil, false
	}
	return entity.New(activation.RotateOnActivate{}, activation.Block[world.Block]{Family: f, Variant: v, Pos: pos}), true
}

// Activate delivers an activation of the block b at pos by instigator to the systems of h. It reports whether any
// system handled the activation, which is the value a dragonfly Activate method should return.
func Activate(h *extension.Host[world.Block], pos cube.Pos, b world.Block, instigator uuid.UUID) bool {
	e, ok := Entity(h.Families(), pos, b)
	if !ok {
		return false
	}
	return h.Dispatch(entity.ActivateEvent{Instigator: instigator}, e) > 0
}
