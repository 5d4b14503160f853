package dfhost

import (
	"errors"
	"fmt"
	"sync"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/df-mc/rotatable/family"
)

// ErrForeignBlock is returned by Register if a variant of the family is not a Block.
var ErrForeignBlock = errors.New("variant is not a rotatable block")

var (
	registryMu sync.RWMutex
	// hashes holds the base hash of every registered family.
	hashes = map[family.ID]uint64{}
)

// Register registers all variants of f with dragonfly's block registry, so that they may be placed in worlds.
// dragonfly finalises its registry when the first world is created, so Register must be called before that.
// Blocks cannot be unregistered: registering a family that is already registered is a no-op.
func Register(f *family.Family[world.Block]) error {
	variants := f.Variants()
	for _, v := range variants {
		if _, ok := v.Block.(Block); !ok {
			return fmt.Errorf("register family %v: %w: %T", f.ID(), ErrForeignBlock, v.Block)
		}
	}

	registryMu.Lock()
	if _, ok := hashes[f.ID()]; ok {
		registryMu.Unlock()
		return nil
	}
	hashes[f.ID()] = block.NextHash()
	registryMu.Unlock()

	for _, v := range variants {
		world.RegisterBlock(v.Block)
	}
	return nil
}

// Registered checks if the family with the identifier passed was registered using Register.
func Registered(id family.ID) bool {
	_, ok := baseHash(id)
	return ok
}

func baseHash(id family.ID) (uint64, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	h, ok := hashes[id]
	return h, ok
}
