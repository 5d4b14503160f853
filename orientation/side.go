package orientation

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Side is one of the six faces of a cube-shaped block, named from the point of view of the block itself.
type Side int

const (
	// Top is the face pointing up in the block's default orientation.
	Top Side = iota
	// Bottom is the face opposite to Top.
	Bottom
	// Front is the face pointing towards the viewer in the block's default orientation.
	Front
	// Back is the face opposite to Front.
	Back
	// Left is the face on the left when looking at the Front face.
	Left
	// Right is the face opposite to Left.
	Right
)

const sideCount = 6

// Sides returns all six sides in their declaration order.
func Sides() []Side {
	return []Side{Top, Bottom, Front, Back, Left, Right}
}

// Valid checks if the Side is one of the six declared sides.
func (s Side) Valid() bool {
	return s >= Top && s <= Right
}

// Opposite returns the side on the other end of the axis s lies on. Opposite pairs are declared next to each other,
// so flipping the lowest bit is enough.
func (s Side) Opposite() Side {
	return s ^ 1
}

// Vec3 returns the unit vector that the side points to when the block is not rotated. The frame is right-handed with
// Right on +X, Top on +Y and Front on +Z.
func (s Side) Vec3() mgl64.Vec3 {
	switch s {
	case Top:
		return mgl64.Vec3{0, 1, 0}
	case Bottom:
		return mgl64.Vec3{0, -1, 0}
	case Front:
		return mgl64.Vec3{0, 0, 1}
	case Back:
		return mgl64.Vec3{0, 0, -1}
	case Left:
		return mgl64.Vec3{-1, 0, 0}
	case Right:
		return mgl64.Vec3{1, 0, 0}
	}
	panic("invalid side")
}

// SideOf returns the side whose unit vector v points to. Components are rounded first so that vectors produced by
// rotation matrices match despite floating point error. False is returned if v is not axis aligned.
func SideOf(v mgl64.Vec3) (Side, bool) {
	r := mgl64.Vec3{math.Round(v[0]), math.Round(v[1]), math.Round(v[2])}
	for _, s := range Sides() {
		if s.Vec3() == r {
			return s, true
		}
	}
	return 0, false
}

// String ...
func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Front:
		return "front"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}
