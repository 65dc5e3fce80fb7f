// Package combat provides the melee strike used by the player's attack.
package combat

import "github.com/go-gl/mathgl/mgl32"

// Target is anything a strike can knock down.
type Target interface {
	Position() mgl32.Vec3
	Vulnerable() bool
	KnockDown()
}

// StrikeResult contains the outcome of resolving a strike.
type StrikeResult struct {
	Hits       int // Targets knocked down
	Considered int // Vulnerable targets checked
}

// Hit reports whether anything was knocked down.
func (r StrikeResult) Hit() bool {
	return r.Hits > 0
}

// StrikeResolver checks melee strikes against nearby targets.
type StrikeResolver struct {
	reach float32
}

// NewStrikeResolver creates a resolver that hits targets closer than reach.
func NewStrikeResolver(reach float32) *StrikeResolver {
	return &StrikeResolver{reach: reach}
}

// Reach returns the strike distance.
func (r *StrikeResolver) Reach() float32 {
	return r.reach
}

// SetReach changes the strike distance.
func (r *StrikeResolver) SetReach(reach float32) {
	r.reach = reach
}

// InReach reports whether a strike from origin along look reaches a target at
// pos: the target must be in front (positive dot product) and closer than
// the reach. Heights are ignored so the test is the same whatever the eye
// height.
func (r *StrikeResolver) InReach(origin, look, pos mgl32.Vec3) bool {
	rel := mgl32.Vec2{pos.X() - origin.X(), pos.Z() - origin.Z()}
	dir := mgl32.Vec2{look.X(), look.Z()}
	return dir.Dot(rel) > 0 && rel.Len() < r.reach
}

// Resolve knocks down every vulnerable target in reach.
func (r *StrikeResolver) Resolve(origin, look mgl32.Vec3, targets []Target) StrikeResult {
	var result StrikeResult
	for _, t := range targets {
		if !t.Vulnerable() {
			continue
		}
		result.Considered++
		if r.InReach(origin, look, t.Position()) {
			t.KnockDown()
			result.Hits++
		}
	}
	return result
}
