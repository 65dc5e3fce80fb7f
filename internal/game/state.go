// Package game provides the main game loop and state management.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazewalk/internal/audio"
	"github.com/samdwyer/mazewalk/internal/collision"
	"github.com/samdwyer/mazewalk/internal/combat"
	"github.com/samdwyer/mazewalk/internal/entity"
	"github.com/samdwyer/mazewalk/internal/gamedata"
	"github.com/samdwyer/mazewalk/internal/input"
	"github.com/samdwyer/mazewalk/internal/telemetry"
	"github.com/samdwyer/mazewalk/internal/ui"
	"github.com/samdwyer/mazewalk/internal/world"
)

// Phase is where the session is in its lifecycle.
type Phase int

const (
	// PhasePlaying is the normal frame-stepped play.
	PhasePlaying Phase = iota
	// PhaseQuit means a quit was requested; the loop exits after this frame.
	PhaseQuit
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// State owns everything that changes during a session: the maze with its
// enemies, the avatar and the tuning in force. Step advances it by one frame.
type State struct {
	Maze   *world.Maze
	Avatar *entity.Avatar
	Tuning gamedata.Tuning
	View   ui.ViewMode
	Phase  Phase
	Tick   int
	Seed   int64

	resolver *collision.Resolver
	player   *PlayerController
	env      *entity.Env
}

// StepResult summarises one call to Step.
type StepResult struct {
	Player PlayerResult
	Roam   world.TickStats
}

// NewState generates a maze, spawns enemies and places the avatar on the
// seed cell facing +X.
func NewState(ctx context.Context, cfg Config, tuning gamedata.Tuning, registry *gamedata.EnemyRegistry, sounds audio.Trigger) (*State, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	maze, err := world.NewGenerator(world.RandomDirections(rng)).Generate(ctx, cfg.Cells)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("generate maze: %w", err)
	}
	maze.SpawnEnemies(ctx, cfg.Enemies, rng, registry, tuning.Enemy)

	s := &State{
		Maze:   maze,
		Avatar: entity.NewAvatar(world.Coord{}.World(), 0),
		View:   cfg.View,
		Phase:  PhasePlaying,
		Seed:   seed,
	}
	s.resolver = collision.NewResolver(maze, tuning.HitboxSize)
	s.player = NewPlayerController(s.Avatar, maze, s.resolver, combat.NewStrikeResolver(tuning.Player.HitDistance), sounds, tuning.Player)
	s.env = &entity.Env{
		Mover:  s.resolver,
		Rand:   rng,
		Sounds: sounds,
	}
	s.ApplyTuning(tuning)

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.String("game.view", cfg.View.String()),
		attribute.Int("maze.cells", maze.CellCount()),
		attribute.Int("maze.enemies", len(maze.Enemies)),
	)

	return s, nil
}

// ApplyTuning switches every component to t. It is safe to call between
// frames.
func (s *State) ApplyTuning(t gamedata.Tuning) {
	s.Tuning = t
	s.resolver.SetHitbox(t.HitboxSize)
	s.player.SetTuning(t.Player)
	s.env.Tuning = t.Enemy

	base := t.Player.EyeHeight
	if s.View == ui.ViewTopDown {
		base = t.Player.TopDownHeight
	}
	s.Avatar.BaseHeight = base
	s.Avatar.Pos[1] = base
}

// Step advances the session by one frame: the player acts on intent, then
// every enemy roams once. A quit intent ends the session without advancing.
func (s *State) Step(ctx context.Context, intent input.Intent) StepResult {
	if s.Phase != PhasePlaying {
		return StepResult{}
	}
	if intent.Quit {
		s.Phase = PhaseQuit
		return StepResult{}
	}

	var result StepResult
	result.Player = s.player.Update(ctx, intent)
	result.Roam = s.Maze.Advance(s.env)
	s.Tick++
	return result
}

// Defeated returns how many enemies have been knocked out for good.
func (s *State) Defeated() int {
	n := 0
	for _, e := range s.Maze.Enemies {
		if e.State == entity.StateDefeated {
			n++
		}
	}
	return n
}

// Frame returns what the renderer needs to draw the current state.
func (s *State) Frame() ui.Frame {
	return ui.Frame{
		Maze:            s.Maze,
		Avatar:          s.Avatar,
		Mode:            s.View,
		VisibleDistance: s.Tuning.VisibleDistance,
		Tick:            s.Tick,
		Defeated:        s.Defeated(),
		Total:           len(s.Maze.Enemies),
	}
}
