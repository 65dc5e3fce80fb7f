package world

import (
	"context"
	"time"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazewalk/internal/telemetry"
)

// ctxCheckInterval is how many walk steps run between context checks.
const ctxCheckInterval = 1024

// Generator grows mazes by random walk.
type Generator struct {
	dirs DirectionSource
}

// NewGenerator creates a generator drawing its steps from dirs.
func NewGenerator(dirs DirectionSource) *Generator {
	return &Generator{dirs: dirs}
}

// Generate walks from (0, 0) until target distinct cells have been visited
// and returns the resulting maze. The cursor always moves onto the stepped-to
// cell, visited or not; only new cells count toward target. A target below 2
// yields the single seed cell. The only error is ctx's.
func (g *Generator) Generate(ctx context.Context, target int) (*Maze, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()

	cursor := Coord{}
	visited := mapset.New[Coord]()
	visited.Put(cursor)
	order := []Coord{cursor}
	b := newBounds(cursor)

	steps := 0
	for visited.Size() < target {
		if steps%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				span.RecordError(err)
				return nil, err
			}
		}
		steps++

		next := cursor.Add(g.dirs.Next().Delta())
		if !visited.Has(next) {
			visited.Put(next)
			order = append(order, next)
			b.include(next)
		}
		cursor = next
	}

	m := build(order, visited, b)

	span.SetAttributes(
		attribute.Int("maze.target", target),
		attribute.Int("maze.cells", m.CellCount()),
		attribute.Int("maze.width", m.Width),
		attribute.Int("maze.height", m.Height),
		attribute.Int("maze.steps", steps),
		attribute.Int64("maze.duration_us", time.Since(startTime).Microseconds()),
	)

	return m, nil
}
