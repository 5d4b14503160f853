package activation

import (
	"errors"
	"log/slog"

	"github.com/df-mc/rotatable/cycle"
	"github.com/df-mc/rotatable/entity"
)

// System rotates blocks of entities carrying both a RotateOnActivate and a Block component when they are activated.
// Rotating is expressed entirely as a block placement: the System never changes components itself.
type System[B any] struct {
	cycler *cycle.Cycler[B]
	placed *Placements[B]
	log    *slog.Logger
}

// NewSystem creates a System rotating blocks with the cycler passed. If placed is non-nil, the System records every
// variant it places in it and rotates from the recorded variant rather than the one in the Block component. placed
// should be nil if Block components are read from the world on every activation. If log is nil, slog.Default() is
// used.
func NewSystem[B any](c *cycle.Cycler[B], placed *Placements[B], log *slog.Logger) *System[B] {
	if log == nil {
		log = slog.Default()
	}
	return &System[B]{cycler: c, placed: placed, log: log.With("system", "rotate_on_activate")}
}

// Name ...
func (s *System[B]) Name() string {
	return "rotate_on_activate"
}

// Handles checks if e has all components the System needs to receive events.
func (s *System[B]) Handles(e *entity.Entity) bool {
	return e != nil && e.Has(entity.Name[RotateOnActivate](), entity.Name[Block[B]]())
}

// HandleEvent rotates the block of e if ev is an entity.ActivateEvent. Other events are ignored.
func (s *System[B]) HandleEvent(ev entity.Event, e *entity.Entity) {
	if act, ok := ev.(entity.ActivateEvent); ok {
		s.OnActivate(act, e)
	}
}

// OnActivate replaces the block of e with a random other orientation from its family. Entities without a block, or
// whose family holds no other orientation, are left untouched.
func (s *System[B]) OnActivate(ev entity.ActivateEvent, e *entity.Entity) {
	if _, ok := entity.Get[RotateOnActivate](e); !ok {
		return
	}
	b, ok := entity.Get[Block[B]](e)
	if !ok || b.Family == nil {
		s.log.Debug("Activated entity is not a block.", "entity", e.ID())
		return
	}
	current := b.Variant
	if s.placed != nil {
		if v, ok := s.placed.Load(b.Pos, b.Family); ok {
			current = v
		}
	}
	next, err := s.cycler.Cycle(b.Pos, current, b.Family)
	if err != nil {
		if errors.Is(err, cycle.ErrDegenerateFamily) {
			s.log.Debug("Block has no other orientation.", "entity", e.ID(), "family", b.Family.ID())
			return
		}
		s.log.Error("Rotate block.", "entity", e.ID(), "instigator", ev.Instigator, "error", err)
		return
	}
	if s.placed != nil {
		s.placed.Store(b.Pos, b.Family, next)
	}
}
