package family

import (
	"errors"
	"testing"

	"github.com/df-mc/rotatable/orientation"
)

type testBlock struct {
	name string
	rot  orientation.Rotation
}

type countingTransformer struct {
	calls int
}

func (c *countingTransformer) Transform(base testBlock, r orientation.Rotation) testBlock {
	c.calls++
	return testBlock{name: base.name, rot: r}
}

func lampDefinition() Definition[testBlock] {
	return Definition[testBlock]{Name: "Lamp", Categories: []string{"Tutorial"}, Base: testBlock{name: "lamp"}}
}

func TestBuildCreatesAllVariants(t *testing.T) {
	tr := &countingTransformer{}
	f, err := Build(lampDefinition(), tr)
	if err != nil {
		t.Fatalf("expected build to succeed, got %v", err)
	}
	if tr.calls != 24 {
		t.Fatalf("expected transformer to be called 24 times, got %d", tr.calls)
	}
	if f.Len() != 24 {
		t.Fatalf("expected 24 variants, got %d", f.Len())
	}
	if f.ID() != "tutorial:lamp" {
		t.Fatalf("expected id tutorial:lamp, got %v", f.ID())
	}
	for _, v := range f.Variants() {
		if v.Block.rot != v.Rotation {
			t.Fatalf("expected block of %v to be rotated by %v, got %v", v.Orientation, v.Rotation, v.Block.rot)
		}
		if want := orientation.MustLookup(v.Orientation); v.Rotation != want {
			t.Fatalf("expected rotation %v for %v, got %v", want, v.Orientation, v.Rotation)
		}
		byRot, ok := f.ByRotation(v.Rotation)
		if !ok || byRot.Orientation != v.Orientation {
			t.Fatalf("expected lookup by rotation %v to return %v", v.Rotation, v.Orientation)
		}
		byOrientation, ok := f.ByOrientation(v.Orientation)
		if !ok || byOrientation.Rotation != v.Rotation {
			t.Fatalf("expected lookup by orientation %v to return rotation %v", v.Orientation, v.Rotation)
		}
	}
	if a := f.Archetype(); a.Orientation != orientation.Default {
		t.Fatalf("expected archetype in default orientation, got %v", a.Orientation)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a, err := Build(lampDefinition(), &countingTransformer{})
	if err != nil {
		t.Fatalf("expected build to succeed, got %v", err)
	}
	b, err := Build(lampDefinition(), &countingTransformer{})
	if err != nil {
		t.Fatalf("expected build to succeed, got %v", err)
	}
	va, vb := a.Variants(), b.Variants()
	for i := range va {
		if va[i] != vb[i] {
			t.Fatalf("expected variant %d to match between builds, got %v and %v", i, va[i], vb[i])
		}
	}
}

func TestPartialFamily(t *testing.T) {
	tr := &countingTransformer{}
	orientations := []orientation.Orientation{
		{Top: orientation.Top, Front: orientation.Front},
		{Top: orientation.Top, Front: orientation.Right},
	}
	f, err := Partial(lampDefinition(), tr, orientations...)
	if err != nil {
		t.Fatalf("expected partial build to succeed, got %v", err)
	}
	if f.Len() != 2 || tr.calls != 2 {
		t.Fatalf("expected 2 variants from 2 transforms, got %d from %d", f.Len(), tr.calls)
	}
	if _, ok := f.ByOrientation(orientation.Orientation{Top: orientation.Bottom, Front: orientation.Back}); ok {
		t.Fatalf("expected orientation outside of the partial family to be absent")
	}

	_, err = Partial(lampDefinition(), tr, orientation.Orientation{Top: orientation.Top, Front: orientation.Bottom})
	if !errors.Is(err, ErrInvalidOrientation) {
		t.Fatalf("expected unreachable orientation to be rejected, got %v", err)
	}
}

func TestNewRejectsInvalidVariants(t *testing.T) {
	def := lampDefinition()
	if _, err := New(def, nil); !errors.Is(err, ErrEmptyFamily) {
		t.Fatalf("expected empty family to be rejected, got %v", err)
	}

	v := Variant[testBlock]{Orientation: orientation.Default, Rotation: orientation.MustLookup(orientation.Default)}
	if _, err := New(def, []Variant[testBlock]{v, v}); !errors.Is(err, ErrDuplicateOrientation) {
		t.Fatalf("expected duplicate orientation to be rejected, got %v", err)
	}

	def.Name = "   "
	if _, err := New(def, []Variant[testBlock]{v}); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected blank name to be rejected, got %v", err)
	}
}

func TestDefinitionID(t *testing.T) {
	cases := map[string]struct {
		name       string
		categories []string
	}{
		"tutorial:lamp":         {name: "Lamp", categories: []string{"tutorial"}},
		"tutorial:reading_lamp": {name: "Reading  Lamp", categories: []string{"Tutorial", "decoration"}},
		"engine:lamp":           {name: "LAMP"},
		"engine:stone":          {name: "Stone", categories: []string{" "}},
	}
	for want, c := range cases {
		id, err := Definition[testBlock]{Name: c.name, Categories: c.categories}.ID()
		if err != nil {
			t.Fatalf("expected id for %q, got error %v", c.name, err)
		}
		if id != ID(want) {
			t.Fatalf("expected id %v for %q, got %v", want, c.name, id)
		}
	}
	if ID("tutorial:lamp").Hash() != ID("tutorial:lamp").Hash() {
		t.Fatalf("expected hash to be stable")
	}
	if ID("tutorial:lamp").Hash() == ID("tutorial:stone").Hash() {
		t.Fatalf("expected different ids to hash differently")
	}
	if ns := ID("tutorial:lamp").Namespace(); ns != "tutorial" {
		t.Fatalf("expected namespace tutorial, got %v", ns)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry[testBlock]()
	lamp, err := Build(lampDefinition(), &countingTransformer{})
	if err != nil {
		t.Fatalf("expected build to succeed, got %v", err)
	}
	stone, err := Build(Definition[testBlock]{Name: "Stone", Categories: []string{"core"}}, &countingTransformer{})
	if err != nil {
		t.Fatalf("expected build to succeed, got %v", err)
	}
	if err := r.Register(lamp); err != nil {
		t.Fatalf("expected register to succeed, got %v", err)
	}
	if err := r.Register(stone); err != nil {
		t.Fatalf("expected register to succeed, got %v", err)
	}
	if err := r.Register(lamp); !errors.Is(err, ErrDuplicateFamily) {
		t.Fatalf("expected duplicate registration to fail, got %v", err)
	}

	families := r.Families()
	if len(families) != 2 || families[0].ID() != "core:stone" || families[1].ID() != "tutorial:lamp" {
		t.Fatalf("expected families sorted by id, got %v", families)
	}
	o := orientation.Orientation{Top: orientation.Left, Front: orientation.Back}
	v, ok := r.Variant("tutorial:lamp", o)
	if !ok || v.Orientation != o {
		t.Fatalf("expected variant %v of tutorial:lamp", o)
	}
	if _, ok := r.Variant("tutorial:missing", o); ok {
		t.Fatalf("expected lookup of unknown family to fail")
	}
	if !r.Unregister("core:stone") || r.Unregister("core:stone") {
		t.Fatalf("expected unregister to remove the family exactly once")
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 family after unregister, got %d", r.Len())
	}
}

func TestVariantDirection(t *testing.T) {
	f, err := Build(lampDefinition(), &countingTransformer{})
	if err != nil {
		t.Fatalf("expected build to succeed, got %v", err)
	}
	perDirection := map[orientation.Side][]orientation.Orientation{}
	for _, v := range f.Variants() {
		if v.Direction() != v.Orientation.Front {
			t.Fatalf("expected direction of %v to be its front side, got %v", v.Orientation, v.Direction())
		}
		perDirection[v.Direction()] = append(perDirection[v.Direction()], v.Orientation)
	}
	// Every side faces front in four orientations, one for each side orthogonal to it facing up. A direction alone
	// therefore does not identify a variant.
	for _, s := range orientation.Sides() {
		if got := perDirection[s]; len(got) != 4 {
			t.Fatalf("expected %v to face front in 4 orientations, got %v", s, got)
		}
	}
}
