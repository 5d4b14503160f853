package tutorial

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/rotatable/activation"
	"github.com/df-mc/rotatable/cycle"
	"github.com/df-mc/rotatable/entity"
	"github.com/df-mc/rotatable/extension"
	"github.com/df-mc/rotatable/family"
	"github.com/df-mc/rotatable/orientation"
)

// Version is the version of the plugin.
const Version = "1.0.0"

var (
	// ErrUnknownFamily is returned by Plugin.Place if no family is registered under the identifier passed.
	ErrUnknownFamily = errors.New("unknown block family")
	// ErrUnknownOrientation is returned by Plugin.Place if the family holds no variant with the orientation passed.
	ErrUnknownOrientation = errors.New("family has no such orientation")
)

// Plugin registers a rotatable family for every configured block and rotates placed blocks of those families when
// they are activated.
type Plugin[B any] struct {
	api    *extension.API[B]
	log    *slog.Logger
	placer cycle.Placer[B]
	placed *activation.Placements[B]

	families   []*family.Family[B]
	unregister func()
}

// New creates the plugin using the fields of conf, registering its block families and activation system through the
// API passed.
func (conf Config[B]) New(api *extension.API[B]) (*Plugin[B], error) {
	conf, err := conf.withDefaults(api)
	if err != nil {
		return nil, err
	}
	p := &Plugin[B]{api: api, log: conf.Log, placer: conf.Placer}
	if !conf.WorldBacked {
		p.placed = activation.NewPlacements[B]()
	}

	for _, def := range conf.Blocks {
		f, err := family.Build(def, conf.Transformer)
		if err != nil {
			p.unregisterFamilies()
			return nil, fmt.Errorf("create family %q: %w", def.Name, err)
		}
		if err := api.Families().Register(f); err != nil {
			p.unregisterFamilies()
			return nil, err
		}
		p.families = append(p.families, f)
		p.log.Info("Registered block family.", "id", f.ID(), "variants", f.Len())
	}

	sys := activation.NewSystem(cycle.New(conf.Placer, conf.Random, conf.Log), p.placed, conf.Log)
	p.unregister = api.RegisterSystem(sys)
	return p, nil
}

// Init is the factory a host calls to enable the plugin with the user configuration uc. base produces the host's
// block for every configured block, which t rotates into the variants of its family.
func Init[B any](uc UserConfig, placer cycle.Placer[B], t family.Transformer[B], base func(b BlockConfig) B) extension.Factory[B] {
	return func(api *extension.API[B]) (extension.Plugin, error) {
		conf, err := ToConfig(uc, api.Logger(), base)
		if err != nil {
			return nil, err
		}
		conf.Placer, conf.Transformer = placer, t
		p, err := conf.New(api)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

// Name ...
func (p *Plugin[B]) Name() string {
	return "Rotatable Blocks"
}

// Version ...
func (p *Plugin[B]) Version() string {
	return Version
}

// Families returns the families registered by the plugin, in the order they were configured in.
func (p *Plugin[B]) Families() []*family.Family[B] {
	families := make([]*family.Family[B], len(p.families))
	copy(families, p.families)
	return families
}

// Place places the variant with orientation o of the family registered under id at pos and returns an entity
// representing the placed block. Activating the entity rotates the block.
func (p *Plugin[B]) Place(pos cube.Pos, id family.ID, o orientation.Orientation) (*entity.Entity, error) {
	f, ok := p.api.Families().Family(id)
	if !ok {
		return nil, fmt.Errorf("place %v: %w", id, ErrUnknownFamily)
	}
	v, ok := f.ByOrientation(o)
	if !ok {
		return nil, fmt.Errorf("place %v: %w: %v", id, ErrUnknownOrientation, o)
	}
	p.placer.SetBlock(pos, v.Block)
	if p.placed != nil {
		p.placed.Store(pos, f, v)
	}
	return entity.New(activation.RotateOnActivate{}, activation.Block[B]{Family: f, Variant: v, Pos: pos}), nil
}

// Close unregisters the activation system and all block families of the plugin.
func (p *Plugin[B]) Close() error {
	if p.unregister != nil {
		p.unregister()
	}
	p.unregisterFamilies()
	p.log.Info("Shut down rotatable blocks plugin.")
	return nil
}

func (p *Plugin[B]) unregisterFamilies() {
	for _, f := range p.families {
		p.api.Families().Unregister(f.ID())
	}
	p.families = nil
}

// Compile time check to make sure Plugin implements extension.VersionedPlugin.
var _ extension.VersionedPlugin = (*Plugin[struct{}])(nil)
