// Package entity provides the actors that move through the maze: roaming
// enemies and the player's avatar.
package entity

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/samdwyer/mazewalk/internal/audio"
	"github.com/samdwyer/mazewalk/internal/gamedata"
)

// AnimState is the enemy's animation state. It only moves forward:
// wandering, then falling, then defeated.
type AnimState int

const (
	// StateWandering enemies pick random directions and walk.
	StateWandering AnimState = iota
	// StateFalling enemies play the fall animation in place.
	StateFalling
	// StateDefeated enemies stay on the floor and are no longer updated.
	StateDefeated
)

// String returns the state name.
func (s AnimState) String() string {
	switch s {
	case StateWandering:
		return "wandering"
	case StateFalling:
		return "falling"
	case StateDefeated:
		return "defeated"
	default:
		return "unknown"
	}
}

// Mover resolves a requested displacement against the maze.
type Mover interface {
	Move(pos, delta mgl32.Vec3) mgl32.Vec3
}

// Env is everything an enemy needs from the world during Update.
type Env struct {
	Mover  Mover
	Rand   *rand.Rand
	Sounds audio.Trigger
	Tuning gamedata.EnemyTuning
}

// Enemy is a roaming actor. Its owning tile is tracked by the maze, not here.
type Enemy struct {
	ID        uuid.UUID
	Def       *gamedata.EnemyDef // Kind definition (nil uses tuning defaults)
	Pos       mgl32.Vec3         // World position; Y stays 0
	Direction mgl32.Vec2         // Per-tick displacement on the X/Z plane
	State     AnimState
	Frame     int // Walk frame while wandering, fall frame while falling
	Ticks     int // Updates received while not defeated

	decision   Countdown
	animation  Countdown
	speak      Countdown
	fallFrames int
}

// NewEnemy creates a wandering enemy at pos with a random direction and
// random decision and speak countdowns.
func NewEnemy(def *gamedata.EnemyDef, pos mgl32.Vec3, rng *rand.Rand, t gamedata.EnemyTuning) *Enemy {
	e := &Enemy{
		ID:         uuid.New(),
		Def:        def,
		Pos:        mgl32.Vec3{pos.X(), 0, pos.Z()},
		State:      StateWandering,
		fallFrames: t.FallFrames,
	}
	e.animation.Set(t.AnimationTicks)
	e.speak.Set(randRange(rng, t.SpeakMinTicks, t.SpeakMaxTicks))
	e.redirect(rng, t)
	return e
}

// Position returns the enemy's world position.
func (e *Enemy) Position() mgl32.Vec3 {
	return e.Pos
}

// Active reports whether Update still does anything for this enemy.
func (e *Enemy) Active() bool {
	return e.State != StateDefeated
}

// Vulnerable reports whether a strike can knock the enemy down.
func (e *Enemy) Vulnerable() bool {
	return e.State == StateWandering
}

// KnockDown starts the fall animation. The first fall frame shows after
// FallFrames ticks, later ones every AnimationTicks. It does nothing unless
// the enemy is wandering.
func (e *Enemy) KnockDown() {
	if e.State != StateWandering {
		return
	}
	e.State = StateFalling
	e.Frame = 0
	e.animation.Set(e.fallFrames)
}

// Update advances the enemy by one tick. Defeated enemies are skipped and
// Update returns false for them.
func (e *Enemy) Update(env *Env) bool {
	if e.State == StateDefeated {
		return false
	}
	e.Ticks++
	e.fallFrames = env.Tuning.FallFrames

	if e.State == StateFalling {
		e.fall(env.Tuning)
		return true
	}

	if e.speak.Tick() {
		env.Sounds.Play(audio.SoundVocalize)
		e.speak.Set(randRange(env.Rand, env.Tuning.SpeakMinTicks, env.Tuning.SpeakMaxTicks))
	}
	if e.decision.Tick() {
		e.redirect(env.Rand, env.Tuning)
	}
	if e.animation.Tick() {
		e.Frame = (e.Frame + 1) % max(env.Tuning.WalkFrames, 1)
		e.animation.Set(env.Tuning.AnimationTicks)
	}

	e.Pos = env.Mover.Move(e.Pos, mgl32.Vec3{e.Direction.X(), 0, e.Direction.Y()})
	return true
}

// fall advances the fall animation and settles into StateDefeated once the
// last fall frame has been shown.
func (e *Enemy) fall(t gamedata.EnemyTuning) {
	if !e.animation.Tick() {
		return
	}
	e.Frame++
	if e.Frame > t.FallFrames {
		e.State = StateDefeated
		e.Frame = 0
		return
	}
	e.animation.Set(t.AnimationTicks)
}

// redirect draws a new direction with each component uniform in
// [-speed, speed] and a new decision countdown.
func (e *Enemy) redirect(rng *rand.Rand, t gamedata.EnemyTuning) {
	speed := e.Def.SpeedOr(t.Speed)
	e.Direction = mgl32.Vec2{
		(rng.Float32()*2 - 1) * speed,
		(rng.Float32()*2 - 1) * speed,
	}
	e.decision.Set(randRange(rng, t.DecisionMinTicks, t.DecisionMaxTicks))
}

// Name returns the enemy kind's display name.
func (e *Enemy) Name() string {
	if e.Def != nil {
		return e.Def.Name
	}
	return "Enemy"
}

// Glyph returns the rune used to draw the enemy.
func (e *Enemy) Glyph() rune {
	if e.Def != nil {
		return e.Def.GlyphRune()
	}
	return 'e'
}

// randRange returns an int uniform in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
