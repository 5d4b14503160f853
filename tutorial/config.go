package tutorial

import (
	"errors"
	"log/slog"

	"github.com/df-mc/rotatable/cycle"
	"github.com/df-mc/rotatable/extension"
	"github.com/df-mc/rotatable/family"
)

// Config contains the options for creating the rotatable blocks plugin. B is the type of block definitions used by
// the host.
type Config[B any] struct {
	// Log is the Logger to use for logging information. If nil, the logger of the plugin API is used.
	Log *slog.Logger
	// Random is the source of random numbers used to pick the next orientation of a block. If nil, a source seeded
	// with Seed is created.
	Random cycle.Source
	// Seed is the seed of the random source created if Random is nil. A Seed of 0 is replaced with a random seed.
	Seed int64
	// Placer places rotated blocks in the world. It must be set.
	Placer cycle.Placer[B]
	// Transformer produces the rotated copies of every block in Blocks. It must be set.
	Transformer family.Transformer[B]
	// Blocks holds the base blocks to create rotatable families for. Every block gets a family of 24 variants.
	Blocks []family.Definition[B]
	// WorldBacked should be set by hosts that create the Block component of an entity from the block in the world
	// on every activation. If false, the plugin remembers the variant it last placed at every position and rotates
	// from that variant, so entities returned by Plugin.Place stay valid after rotating.
	WorldBacked bool
}

var (
	// ErrNoPlacer is returned when creating the plugin without a Placer.
	ErrNoPlacer = errors.New("config: placer must be set")
	// ErrNoTransformer is returned when creating the plugin without a Transformer.
	ErrNoTransformer = errors.New("config: transformer must be set")
)

// Factory returns an extension.Factory creating the plugin with conf. It may be passed to extension.Host.Enable.
func (conf Config[B]) Factory() extension.Factory[B] {
	return func(api *extension.API[B]) (extension.Plugin, error) {
		p, err := conf.New(api)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

func (conf Config[B]) withDefaults(api *extension.API[B]) (Config[B], error) {
	if conf.Placer == nil {
		return conf, ErrNoPlacer
	}
	if conf.Transformer == nil {
		return conf, ErrNoTransformer
	}
	if conf.Log == nil {
		conf.Log = api.Logger()
	}
	if conf.Random == nil {
		seed := uint64(conf.Seed)
		if seed == 0 {
			seed = cycle.RandomSeed()
		}
		conf.Random = cycle.NewSource(seed)
	}
	return conf, nil
}
