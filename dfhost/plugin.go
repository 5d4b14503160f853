package dfhost

import (
	"github.com/df-mc/dragonfly/server/world"
	"github.com/df-mc/rotatable/cycle"
	"github.com/df-mc/rotatable/extension"
	"github.com/df-mc/rotatable/tutorial"
)

// Init returns the factory enabling the rotatable blocks plugin for dragonfly with the user configuration uc. The
// families of the plugin are registered with dragonfly, so the plugin must be enabled before the first world is
// created. Rotations are placed using placer, which is usually a WorldPlacer.
func Init(uc tutorial.UserConfig, placer cycle.Placer[world.Block]) extension.Factory[world.Block] {
	return func(api *extension.API[world.Block]) (extension.Plugin, error) {
		conf, err := tutorial.ToConfig(uc, api.Logger(), Base)
		if err != nil {
			return nil, err
		}
		// Activate reads the block from the world for every activation.
		conf.Placer, conf.Transformer, conf.WorldBacked = placer, Transform, true
		p, err := conf.New(api)
		if err != nil {
			return nil, err
		}
		for _, f := range p.Families() {
			if err := Register(f); err != nil {
				_ = p.Close()
				return nil, err
			}
		}
		return p, nil
	}
}
