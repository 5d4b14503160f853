package cycle

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/rotatable/family"
	"github.com/df-mc/rotatable/orientation"
)

var rotateBlock = family.TransformerFunc[string](func(base string, r orientation.Rotation) string {
	return base + " " + r.String()
})

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func lampFamily(t *testing.T, orientations ...orientation.Orientation) *family.Family[string] {
	t.Helper()
	def := family.Definition[string]{Name: "Lamp", Categories: []string{"tutorial"}, Base: "lamp"}
	var (
		f   *family.Family[string]
		err error
	)
	if len(orientations) == 0 {
		f, err = family.Build(def, rotateBlock)
	} else {
		f, err = family.Partial(def, rotateBlock, orientations...)
	}
	if err != nil {
		t.Fatalf("expected family to build, got %v", err)
	}
	return f
}

type placement struct {
	pos   cube.Pos
	block string
}

type recordingPlacer struct {
	placed []placement
}

func (r *recordingPlacer) SetBlock(pos cube.Pos, b string) {
	r.placed = append(r.placed, placement{pos: pos, block: b})
}

func TestSelectNeverReturnsCurrent(t *testing.T) {
	f := lampFamily(t)
	src := NewSource(1)
	for _, current := range f.Variants() {
		for i := 0; i < 200; i++ {
			next, ok := Select(f.Variants(), current.Orientation, src)
			if !ok {
				t.Fatalf("expected a variant to be selected for %v", current.Orientation)
			}
			if next.Orientation == current.Orientation {
				t.Fatalf("expected current orientation %v never to be selected", current.Orientation)
			}
		}
	}
}

// fixedSource returns the numbers passed in order and records the bounds requested.
type fixedSource struct {
	values []int
	bounds []int
}

func (f *fixedSource) IntN(n int) int {
	f.bounds = append(f.bounds, n)
	v := f.values[0]
	f.values = f.values[1:]
	return v
}

func TestSelectDrawsOverRemainingOrientations(t *testing.T) {
	f := lampFamily(t)
	variants := f.Variants()
	current := variants[3].Orientation

	src := &fixedSource{values: []int{0, 3, 22}}
	want := []orientation.Orientation{variants[0].Orientation, variants[4].Orientation, variants[23].Orientation}
	for i, w := range want {
		next, _ := Select(variants, current, src)
		if next.Orientation != w {
			t.Fatalf("draw %d: expected %v, got %v", i, w, next.Orientation)
		}
	}
	for _, n := range src.bounds {
		if n != 23 {
			t.Fatalf("expected draws over [0, 22], got bound %d", n)
		}
	}
}

func TestSelectIsDeterministic(t *testing.T) {
	f := lampFamily(t)
	a, b := NewSource(42), NewSource(42)
	current := orientation.Default
	for i := 0; i < 100; i++ {
		va, _ := Select(f.Variants(), current, a)
		vb, _ := Select(f.Variants(), current, b)
		if va != vb {
			t.Fatalf("draw %d: expected the same variant for the same seed, got %v and %v", i, va.Orientation, vb.Orientation)
		}
		current = va.Orientation
	}
}

func TestSelectIsUniform(t *testing.T) {
	f := lampFamily(t, orientation.All()[:5]...)
	current := orientation.All()[2]
	src := NewSource(7)

	const trials = 40000
	counts := make(map[orientation.Orientation]int)
	for i := 0; i < trials; i++ {
		next, ok := Select(f.Variants(), current, src)
		if !ok {
			t.Fatalf("expected a variant to be selected")
		}
		counts[next.Orientation]++
	}
	if len(counts) != 4 {
		t.Fatalf("expected 4 distinct orientations to be selected, got %d", len(counts))
	}
	for o, n := range counts {
		if freq := float64(n) / trials; math.Abs(freq-0.25) > 0.02 {
			t.Fatalf("expected %v to be selected with frequency 0.25, got %.4f", o, freq)
		}
	}
}

func TestSelectSingleVariant(t *testing.T) {
	f := lampFamily(t, orientation.Default)
	src := &fixedSource{}
	if _, ok := Select(f.Variants(), orientation.Default, src); ok {
		t.Fatalf("expected no variant to be selected from a family holding only the current orientation")
	}
	if len(src.bounds) != 0 {
		t.Fatalf("expected no random draw for a degenerate family, got %v", src.bounds)
	}

	// A block that is not part of the family can always be replaced by its only variant.
	other := orientation.Orientation{Top: orientation.Bottom, Front: orientation.Back}
	src = &fixedSource{values: []int{0}}
	next, ok := Select(f.Variants(), other, src)
	if !ok || next.Orientation != orientation.Default {
		t.Fatalf("expected the only variant to be selected, got %v", next.Orientation)
	}
}

func TestCyclerPlacesSelectedVariant(t *testing.T) {
	f := lampFamily(t)
	placer := &recordingPlacer{}
	c := New[string](placer, NewSource(3), testLogger())

	pos := cube.Pos{4, 64, -2}
	current := f.Archetype()
	next, err := c.Cycle(pos, current, f)
	if err != nil {
		t.Fatalf("expected cycle to succeed, got %v", err)
	}
	if next.Orientation == current.Orientation {
		t.Fatalf("expected a different orientation than %v", current.Orientation)
	}
	if len(placer.placed) != 1 {
		t.Fatalf("expected exactly one placement, got %d", len(placer.placed))
	}
	if p := placer.placed[0]; p.pos != pos || p.block != next.Block {
		t.Fatalf("expected %q to be placed at %v, got %q at %v", next.Block, pos, p.block, p.pos)
	}
}

func TestCyclerDegenerateFamily(t *testing.T) {
	f := lampFamily(t, orientation.Default)
	placer := &recordingPlacer{}
	c := New[string](placer, NewSource(3), testLogger())

	if _, err := c.Cycle(cube.Pos{}, f.Archetype(), f); !errors.Is(err, ErrDegenerateFamily) {
		t.Fatalf("expected degenerate family error, got %v", err)
	}
	if len(placer.placed) != 0 {
		t.Fatalf("expected no placement for a degenerate family, got %d", len(placer.placed))
	}
}
