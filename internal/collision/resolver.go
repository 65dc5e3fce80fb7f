// Package collision keeps moving bodies inside the open cells of a grid.
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Grid is the walkable area a Resolver checks against.
type Grid interface {
	// Origin returns the grid coordinate of the cell at index (0, 0).
	Origin() (x, y int)
	// Open reports whether the cell at index (gx, gy) can be entered.
	// Out-of-bounds indices are never open.
	Open(gx, gy int) bool
}

// Slide records which candidate displacement Resolve accepted.
type Slide int

const (
	// Blocked means no candidate fit; the body stays put.
	Blocked Slide = iota
	// Full means the whole displacement was applied.
	Full
	// SlideZ means only the Z component was applied.
	SlideZ
	// SlideX means only the X component was applied.
	SlideX
)

// String returns the slide name.
func (s Slide) String() string {
	switch s {
	case Blocked:
		return "blocked"
	case Full:
		return "full"
	case SlideZ:
		return "slide_z"
	case SlideX:
		return "slide_x"
	default:
		return "unknown"
	}
}

// Resolver moves a point body of half-width hitbox through a Grid.
type Resolver struct {
	grid   Grid
	hitbox float32
}

// NewResolver creates a resolver for grid with the given hitbox half-width.
func NewResolver(grid Grid, hitbox float32) *Resolver {
	return &Resolver{grid: grid, hitbox: hitbox}
}

// Hitbox returns the hitbox half-width.
func (r *Resolver) Hitbox() float32 {
	return r.hitbox
}

// SetHitbox changes the hitbox half-width.
func (r *Resolver) SetHitbox(h float32) {
	r.hitbox = h
}

// CellIndex maps a world position on the X/Z plane to grid indices.
// World X is grid X and world Z is grid Y; cell centres sit on integers.
func CellIndex(g Grid, x, z float32) (gx, gy int) {
	ox, oy := g.Origin()
	gx = int(math.Floor(float64(x) - float64(ox) + 0.5))
	gy = int(math.Floor(float64(z) - float64(oy) + 0.5))
	return gx, gy
}

// CanMove reports whether pos+delta lands in an open cell once the hitbox
// is added in the direction of travel. It also returns the unbiased target.
// A zero component is biased like a positive one.
func (r *Resolver) CanMove(pos, delta mgl32.Vec3) (mgl32.Vec3, bool) {
	next := pos.Add(delta)
	edgeX := next.X() + r.bias(delta.X())
	edgeZ := next.Z() + r.bias(delta.Z())

	gx, gy := CellIndex(r.grid, edgeX, edgeZ)
	if !r.grid.Open(gx, gy) {
		return pos, false
	}
	return next, true
}

func (r *Resolver) bias(d float32) float32 {
	if d < 0 {
		return -r.hitbox
	}
	return r.hitbox
}

// Resolve tries the full displacement, then its Z component alone, then its
// X component alone, and applies the first that fits.
func (r *Resolver) Resolve(pos, delta mgl32.Vec3) (mgl32.Vec3, Slide) {
	if next, ok := r.CanMove(pos, delta); ok {
		return next, Full
	}
	if next, ok := r.CanMove(pos, mgl32.Vec3{0, 0, delta.Z()}); ok {
		return next, SlideZ
	}
	if next, ok := r.CanMove(pos, mgl32.Vec3{delta.X(), 0, 0}); ok {
		return next, SlideX
	}
	return pos, Blocked
}

// Move is Resolve without the slide report.
func (r *Resolver) Move(pos, delta mgl32.Vec3) mgl32.Vec3 {
	next, _ := r.Resolve(pos, delta)
	return next
}
