package dfhost

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/df-mc/rotatable/cycle"
)

// BlockSetter sets blocks in a world. It is implemented by *world.Tx.
type BlockSetter interface {
	SetBlock(pos cube.Pos, b world.Block, opts *world.SetOpts)
}

// Placer places blocks through a BlockSetter. Because a *world.Tx is only valid while its transaction runs, a
// Placer wrapping one must not outlive it.
type Placer struct {
	s    BlockSetter
	opts *world.SetOpts
}

// NewPlacer returns a Placer setting blocks through s with the options passed. opts may be nil.
func NewPlacer(s BlockSetter, opts *world.SetOpts) Placer {
	return Placer{s: s, opts: opts}
}

// SetBlock ...
func (p Placer) SetBlock(pos cube.Pos, b world.Block) {
	p.s.SetBlock(pos, b, p.opts)
}

// Executor runs functions in a transaction of a world. It is implemented by *world.World.
type Executor interface {
	Exec(f world.ExecFunc) <-chan struct{}
}

// WorldPlacer places blocks by queuing a transaction on a world. Unlike Placer it may be kept for the lifetime of the
// world, which makes it suitable as the placer of the plugin. Blocks are set asynchronously: SetBlock does not wait
// for the transaction to run.
type WorldPlacer struct {
	w    Executor
	opts *world.SetOpts
}

// NewWorldPlacer returns a WorldPlacer setting blocks in w with the options passed. opts may be nil.
func NewWorldPlacer(w Executor, opts *world.SetOpts) WorldPlacer {
	return WorldPlacer{w: w, opts: opts}
}

// SetBlock ...
func (p WorldPlacer) SetBlock(pos cube.Pos, b world.Block) {
	opts := p.opts
	p.w.Exec(func(tx *world.Tx) {
		tx.SetBlock(pos, b, opts)
	})
}

// Compile time checks to make sure the placers implement cycle.Placer.
var (
	_ cycle.Placer[world.Block] = Placer{}
	_ cycle.Placer[world.Block] = WorldPlacer{}
	_ BlockSetter               = (*world.Tx)(nil)
	_ Executor                  = (*world.World)(nil)
)
