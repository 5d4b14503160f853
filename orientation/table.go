package orientation

import (
	"errors"
	"fmt"
)

// ErrDefectiveTable is returned by Verify if the orientation table is not total over the 24 reachable orientations
// or if any of its rotations are wrong.
var ErrDefectiveTable = errors.New("defective orientation table")

type entry struct {
	rot     Rotation
	present bool
}

// table holds the rotation for every orientation, indexed by the side on top first and the side at the front second.
type table [sideCount][sideCount]entry

var (
	rotations, order = buildTable()
)

func init() {
	if err := verify(&rotations); err != nil {
		panic(err)
	}
}

// buildTable fills the table for all six sides on top. Bringing a side up is a fixed pitch or roll; the four sides
// around the vertical axis are then walked clockwise, adding 90 degrees of yaw for every step.
func buildTable() (t table, all []Orientation) {
	for _, row := range []struct {
		top         Side
		pitch, roll Angle
		fronts      [4]Side
	}{
		{top: Top, fronts: [4]Side{Front, Right, Back, Left}},
		{top: Bottom, roll: Clockwise180, fronts: [4]Side{Front, Left, Back, Right}},
		{top: Front, pitch: Clockwise90, fronts: [4]Side{Bottom, Right, Top, Left}},
		{top: Back, pitch: Clockwise270, fronts: [4]Side{Top, Right, Bottom, Left}},
		{top: Left, roll: Clockwise90, fronts: [4]Side{Front, Top, Back, Bottom}},
		{top: Right, roll: Clockwise270, fronts: [4]Side{Front, Bottom, Back, Top}},
	} {
		for yaw, front := range row.fronts {
			t[row.top][front] = entry{rot: Rotate(Angle(yaw), row.pitch, row.roll), present: true}
			all = append(all, Orientation{Top: row.top, Front: front})
		}
	}
	return t, all
}

// Lookup returns the rotation that turns a block so that o.Top faces up and o.Front faces front. False is returned
// if o is not reachable, which is the case when o.Front is o.Top or its opposite.
func Lookup(o Orientation) (Rotation, bool) {
	if !o.Top.Valid() || !o.Front.Valid() {
		return Rotation{}, false
	}
	e := rotations[o.Top][o.Front]
	return e.rot, e.present
}

// MustLookup is like Lookup but panics if o is not reachable.
func MustLookup(o Orientation) Rotation {
	r, ok := Lookup(o)
	if !ok {
		panic(fmt.Sprintf("orientation %v is not reachable", o))
	}
	return r
}

// Fronts returns the four sides that may face front while top faces up, in clockwise order.
func Fronts(top Side) []Side {
	fronts := make([]Side, 0, 4)
	for _, o := range order {
		if o.Top == top {
			fronts = append(fronts, o.Front)
		}
	}
	return fronts
}

// All returns all 24 reachable orientations. The order is stable: tops in the order of Sides and, for every top, the
// fronts in clockwise order starting at the one that needs no yaw.
func All() []Orientation {
	all := make([]Orientation, len(order))
	copy(all, order)
	return all
}

// Verify checks the invariants of the orientation table. It is run once on initialisation; a non-nil error indicates
// a programming defect.
func Verify() error {
	return verify(&rotations)
}

func verify(t *table) error {
	seen := make(map[Rotation]Orientation, 24)
	count := 0
	for _, top := range Sides() {
		fronts := 0
		for _, front := range Sides() {
			e := t[top][front]
			o := Orientation{Top: top, Front: front}
			if !o.Valid() {
				if e.present {
					return fmt.Errorf("%w: %v has a rotation but is not reachable", ErrDefectiveTable, o)
				}
				continue
			}
			if !e.present {
				return fmt.Errorf("%w: %v has no rotation", ErrDefectiveTable, o)
			}
			if other, ok := seen[e.rot]; ok {
				return fmt.Errorf("%w: %v and %v share rotation %v", ErrDefectiveTable, other, o, e.rot)
			}
			seen[e.rot] = o
			if up, fwd := e.rot.Apply(top), e.rot.Apply(front); up != Top || fwd != Front {
				return fmt.Errorf("%w: rotation %v for %v moves top to %v and front to %v", ErrDefectiveTable, e.rot, o, up, fwd)
			}
			fronts++
		}
		if fronts != 4 {
			return fmt.Errorf("%w: %v on top has %d fronts, expected 4", ErrDefectiveTable, top, fronts)
		}
		count += fronts
	}
	if count != 24 {
		return fmt.Errorf("%w: %d orientations, expected 24", ErrDefectiveTable, count)
	}
	return nil
}
