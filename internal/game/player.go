package game

import (
	"context"

	"github.com/go-gl/mathgl/mgl32"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazewalk/internal/audio"
	"github.com/samdwyer/mazewalk/internal/collision"
	"github.com/samdwyer/mazewalk/internal/combat"
	"github.com/samdwyer/mazewalk/internal/entity"
	"github.com/samdwyer/mazewalk/internal/gamedata"
	"github.com/samdwyer/mazewalk/internal/input"
	"github.com/samdwyer/mazewalk/internal/telemetry"
	"github.com/samdwyer/mazewalk/internal/world"
)

// PlayerResult reports what the player did in one frame.
type PlayerResult struct {
	Moved         bool            // A translation was requested
	Slide         collision.Slide // How the resolver applied it
	AttackStarted bool
	Strike        combat.StrikeResult
}

// PlayerController applies the intent set to the avatar.
type PlayerController struct {
	avatar *entity.Avatar
	maze   *world.Maze
	mover  *collision.Resolver
	strike *combat.StrikeResolver
	sounds audio.Trigger
	tuning gamedata.PlayerTuning
}

// NewPlayerController creates a controller for avatar in maze.
func NewPlayerController(avatar *entity.Avatar, maze *world.Maze, mover *collision.Resolver, strike *combat.StrikeResolver, sounds audio.Trigger, tuning gamedata.PlayerTuning) *PlayerController {
	return &PlayerController{
		avatar: avatar,
		maze:   maze,
		mover:  mover,
		strike: strike,
		sounds: sounds,
		tuning: tuning,
	}
}

// SetTuning switches to new player constants.
func (p *PlayerController) SetTuning(t gamedata.PlayerTuning) {
	p.tuning = t
	p.strike.SetReach(t.HitDistance)
}

// Update applies one frame of intent: translation, turning, head bob and the
// attack cycle, in that order.
func (p *PlayerController) Update(ctx context.Context, intent input.Intent) PlayerResult {
	var result PlayerResult

	if intent.Moving() {
		result.Moved = true
		p.avatar.Pos, result.Slide = p.mover.Resolve(p.avatar.Pos, p.moveDelta(intent))
	}

	if intent.TurnLeft {
		p.avatar.Turn(-p.tuning.TurnSpeed)
	}
	if intent.TurnRight {
		p.avatar.Turn(p.tuning.TurnSpeed)
	}

	if intent.Moving() {
		p.avatar.Bob(p.tuning.BobStep, p.tuning.BobAmplitude)
	}

	if p.avatar.TryAttack(intent.Attack, p.tuning.AttackTicks) {
		result.AttackStarted = true
		result.Strike = p.attack(ctx)
	}

	return result
}

// moveDelta sums the forward/back and strafe displacements so the resolver
// runs once per frame.
func (p *PlayerController) moveDelta(intent input.Intent) mgl32.Vec3 {
	speed := p.tuning.Speed
	var delta mgl32.Vec3
	if intent.Forward {
		delta = delta.Add(p.avatar.Forward(speed))
	}
	if intent.Back {
		delta = delta.Sub(p.avatar.Forward(speed))
	}
	if intent.StrafeLeft {
		delta = delta.Add(p.avatar.StrafeLeft(speed))
	}
	if intent.StrafeRight {
		delta = delta.Sub(p.avatar.StrafeLeft(speed))
	}
	return delta
}

// attack swings at every enemy in the 3x3 block of tiles around the avatar.
func (p *PlayerController) attack(ctx context.Context) combat.StrikeResult {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "player.strike")
	defer span.End()

	p.sounds.Play(audio.SoundSwing)

	gx, gy := p.maze.CellIndex(p.avatar.Pos)
	nearby := p.maze.EnemiesAround(gx, gy, 1)
	targets := make([]combat.Target, len(nearby))
	for i, e := range nearby {
		targets[i] = e
	}

	result := p.strike.Resolve(p.avatar.Pos, p.avatar.Look, targets)
	if result.Hit() {
		p.sounds.Play(audio.SoundHit)
	}

	span.SetAttributes(
		attribute.Int("strike.nearby", len(nearby)),
		attribute.Int("strike.considered", result.Considered),
		attribute.Int("strike.hits", result.Hits),
	)

	return result
}
