package world

import "github.com/go-gl/mathgl/mgl32"

// Shape is the prefab variant drawn for a tile.
type Shape int

const (
	// ShapeIsolated is a cell with no open neighbours. Only a one-cell maze
	// produces it.
	ShapeIsolated Shape = iota
	ShapeDeadEnd
	ShapeStraight
	ShapeCorner
	ShapeTJunction
	ShapeCross
)

// Model keys handed to the rendering side.
const (
	ModelIsolated  = "isolated"
	ModelDeadEnd   = "deadend"
	ModelStraight  = "straight"
	ModelCorner    = "corner"
	ModelTJunction = "tjunction"
	ModelCross     = "cross"
	ModelEnemy     = "enemy"
)

// ModelKey returns the name of the model used to draw s.
func (s Shape) ModelKey() string {
	switch s {
	case ShapeDeadEnd:
		return ModelDeadEnd
	case ShapeStraight:
		return ModelStraight
	case ShapeCorner:
		return ModelCorner
	case ShapeTJunction:
		return ModelTJunction
	case ShapeCross:
		return ModelCross
	default:
		return ModelIsolated
	}
}

// String returns the model key.
func (s Shape) String() string {
	return s.ModelKey()
}

// Rotation is a placement rotation about the vertical axis, in degrees.
type Rotation int

// Radians returns r in radians.
func (r Rotation) Radians() float32 {
	return mgl32.DegToRad(float32(r))
}

type placement struct {
	shape    Shape
	rotation Rotation
}

// shapeTable maps a neighbour pattern (bit 0 left, 1 up, 2 right, 3 down)
// to the prefab and rotation whose openings line up with it.
var shapeTable = [16]placement{
	0b0000: {ShapeIsolated, 0},

	0b1000: {ShapeDeadEnd, 0},
	0b0001: {ShapeDeadEnd, -90},
	0b0010: {ShapeDeadEnd, 180},
	0b0100: {ShapeDeadEnd, 90},

	0b1010: {ShapeStraight, 0},
	0b0101: {ShapeStraight, 90},

	0b1100: {ShapeCorner, 0},
	0b1001: {ShapeCorner, -90},
	0b0011: {ShapeCorner, 180},
	0b0110: {ShapeCorner, 90},

	0b1110: {ShapeTJunction, 0},
	0b1101: {ShapeTJunction, -90},
	0b1011: {ShapeTJunction, 180},
	0b0111: {ShapeTJunction, 90},

	0b1111: {ShapeCross, 0},
}

// ShapeFor returns the prefab and rotation for a neighbour pattern.
func ShapeFor(pattern uint8) (Shape, Rotation) {
	p := shapeTable[pattern&0x0f]
	return p.shape, p.rotation
}

// PlacementTransform returns the model matrix for a tile at c: a rotation
// about Y followed by a translation to (c.X, 0, c.Y).
func PlacementTransform(c Coord, r Rotation) mgl32.Mat4 {
	return mgl32.Translate3D(float32(c.X), 0, float32(c.Y)).Mul4(mgl32.HomogRotate3DY(r.Radians()))
}
