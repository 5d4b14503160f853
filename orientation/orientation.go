package orientation

import "fmt"

// Orientation describes how a block is placed: Top is the side of the block facing up and Front is the side facing
// front. Only pairs of orthogonal sides describe a reachable orientation.
type Orientation struct {
	Top, Front Side
}

// Default is the orientation of a block that was not rotated at all.
var Default = Orientation{Top: Top, Front: Front}

// Valid checks if o is one of the 24 reachable orientations.
func (o Orientation) Valid() bool {
	return o.Top.Valid() && o.Front.Valid() && o.Front != o.Top && o.Front != o.Top.Opposite()
}

// String ...
func (o Orientation) String() string {
	return fmt.Sprintf("top=%v,front=%v", o.Top, o.Front)
}
