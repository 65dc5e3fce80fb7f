package world

import (
	"context"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazewalk/internal/entity"
	"github.com/samdwyer/mazewalk/internal/gamedata"
	"github.com/samdwyer/mazewalk/internal/telemetry"
)

// SpawnEnemies scatters n enemies over the maze. Points are drawn uniformly
// over the bounding box and rejected until they land in a tile. Each enemy is
// filed under that tile and appended to m.Enemies. Kinds come from registry;
// a nil registry spawns plain enemies.
func (m *Maze) SpawnEnemies(ctx context.Context, n int, rng *rand.Rand, registry *gamedata.EnemyRegistry, tuning gamedata.EnemyTuning) []*entity.Enemy {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "maze.spawn")
	defer span.End()

	spawned := make([]*entity.Enemy, 0, max(n, 0))
	attempts := 0
	kinds := make(map[string]int)

	for len(spawned) < n {
		attempts++
		x := rng.Float32() * float32(m.Width)
		z := rng.Float32() * float32(m.Height)
		pos := mgl32.Vec3{
			x + float32(m.Offset.X) - 0.5,
			0,
			z + float32(m.Offset.Y) - 0.5,
		}

		tile := m.TileAtPosition(pos)
		if tile == nil {
			continue
		}

		var def *gamedata.EnemyDef
		if registry != nil {
			def = registry.SpawnRandom(rng)
		}
		e := entity.NewEnemy(def, pos, rng, tuning)
		tile.add(e)
		m.Enemies = append(m.Enemies, e)
		spawned = append(spawned, e)

		if def != nil {
			kinds[def.ID]++
		}
	}

	span.SetAttributes(
		attribute.Int("spawn.requested", n),
		attribute.Int("spawn.attempts", attempts),
		attribute.Int("spawn.kinds", len(kinds)),
	)

	return spawned
}
