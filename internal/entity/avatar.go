package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Avatar is the player's body in the maze. It is the same in first-person and
// top-down views; only BaseHeight differs.
type Avatar struct {
	Pos        mgl32.Vec3 // World position; Y carries the head bob
	Angle      float32    // Facing angle in radians around the vertical axis
	Look       mgl32.Vec3 // Unit look vector on the ground plane
	BaseHeight float32    // Y when not bobbing

	bobPhase    float32
	attackTicks int
}

// NewAvatar creates an avatar at pos facing angle. pos.Y becomes the base
// height.
func NewAvatar(pos mgl32.Vec3, angle float32) *Avatar {
	a := &Avatar{
		Pos:        pos,
		BaseHeight: pos.Y(),
	}
	a.setAngle(angle)
	return a
}

// Position returns the avatar's current world position.
func (a *Avatar) Position() mgl32.Vec3 {
	return a.Pos
}

// Turn rotates the avatar by delta radians and recomputes the look vector.
func (a *Avatar) Turn(delta float32) {
	a.setAngle(a.Angle + delta)
}

func (a *Avatar) setAngle(angle float32) {
	a.Angle = angle
	a.Look = mgl32.Vec3{
		float32(math.Cos(float64(angle))),
		0,
		float32(math.Sin(float64(angle))),
	}
}

// Forward returns a displacement of speed along the look vector.
func (a *Avatar) Forward(speed float32) mgl32.Vec3 {
	return a.Look.Mul(speed)
}

// StrafeLeft returns a displacement of speed perpendicular to the look vector,
// to the avatar's left. Negate it for a right strafe.
func (a *Avatar) StrafeLeft(speed float32) mgl32.Vec3 {
	return mgl32.Vec3{a.Look.Z() * speed, 0, -a.Look.X() * speed}
}

// Bob advances the walking bob phase and sets the height from it.
func (a *Avatar) Bob(step, amplitude float32) {
	a.bobPhase += step
	a.Pos[1] = a.BaseHeight + float32(math.Cos(float64(a.bobPhase)))*amplitude
}

// TryAttack advances the attack cycle by one tick and reports whether a new
// attack starts this tick. An attack lasts duration ticks; afterwards the
// attack input must be released before another attack can start.
func (a *Avatar) TryAttack(pressed bool, duration int) bool {
	if a.attackTicks > 1 {
		a.attackTicks--
		return false
	}
	if a.attackTicks == 1 && pressed {
		return false
	}
	a.attackTicks = 0
	if !pressed {
		return false
	}
	a.attackTicks = max(duration, 1)
	return true
}

// Swinging reports whether an attack animation is in progress.
func (a *Avatar) Swinging() bool {
	return a.attackTicks > 1
}
