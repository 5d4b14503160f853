package orientation

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Angle is a clockwise rotation about a single axis, measured in quarter turns.
type Angle uint8

const (
	None Angle = iota
	Clockwise90
	Clockwise180
	Clockwise270
)

// Degrees returns the angle in degrees, one of 0, 90, 180 or 270.
func (a Angle) Degrees() int {
	return int(a%4) * 90
}

// Radians returns the angle as a right-handed rotation in radians. Clockwise rotations are negative.
func (a Angle) Radians() float64 {
	return -mgl64.DegToRad(float64(a.Degrees()))
}

// Add returns the sum of a and b, wrapping around after a full turn.
func (a Angle) Add(b Angle) Angle {
	return (a + b) % 4
}

// Rotation is a discrete reorientation of a cube, made up of a yaw about the vertical axis, a pitch about the
// left-right axis and a roll about the front-back axis. Roll is applied first, then pitch and finally yaw, so the
// yaw never changes which side faces up. Two rotations are equal if all three angles are equal.
type Rotation struct {
	Yaw, Pitch, Roll Angle
}

// Rotate returns a Rotation composed of the angles passed.
func Rotate(yaw, pitch, roll Angle) Rotation {
	return Rotation{Yaw: yaw % 4, Pitch: pitch % 4, Roll: roll % 4}
}

// Matrix returns the rotation matrix of r.
func (r Rotation) Matrix() mgl64.Mat3 {
	return mgl64.Rotate3DY(r.Yaw.Radians()).
		Mul3(mgl64.Rotate3DX(r.Pitch.Radians())).
		Mul3(mgl64.Rotate3DZ(r.Roll.Radians()))
}

// Apply returns the side that s faces after rotating a block by r. For the identity rotation the side is unchanged.
func (r Rotation) Apply(s Side) Side {
	out, ok := SideOf(r.Matrix().Mul3x1(s.Vec3()))
	if !ok {
		// Quarter turns always map axis vectors onto axis vectors.
		panic(fmt.Sprintf("rotation %v does not map %v onto an axis", r, s))
	}
	return out
}

// Orientation returns the Orientation of a block rotated by r from its default orientation: the sides of the block
// that end up facing up and forward.
func (r Rotation) Orientation() Orientation {
	var o Orientation
	for _, s := range Sides() {
		switch r.Apply(s) {
		case Top:
			o.Top = s
		case Front:
			o.Front = s
		}
	}
	return o
}

// Key packs r into a small non-negative integer that is unique for every rotation.
func (r Rotation) Key() int64 {
	return int64(r.Yaw%4)<<4 | int64(r.Pitch%4)<<2 | int64(r.Roll%4)
}

// String ...
func (r Rotation) String() string {
	return fmt.Sprintf("yaw=%d pitch=%d roll=%d", r.Yaw.Degrees(), r.Pitch.Degrees(), r.Roll.Degrees())
}
