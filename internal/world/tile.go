package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/samdwyer/mazewalk/internal/entity"
)

// Tile is one occupied maze cell and the enemies standing in it.
type Tile struct {
	Coord     Coord
	Pattern   uint8 // Open neighbours, one bit per Direction
	Shape     Shape
	Rotation  Rotation
	Transform mgl32.Mat4
	Enemies   []*entity.Enemy
}

func newTile(c Coord, pattern uint8) *Tile {
	shape, rot := ShapeFor(pattern)
	return &Tile{
		Coord:     c,
		Pattern:   pattern,
		Shape:     shape,
		Rotation:  rot,
		Transform: PlacementTransform(c, rot),
	}
}

// Open reports whether the neighbour in direction d is part of the maze.
func (t *Tile) Open(d Direction) bool {
	return t.Pattern&d.Bit() != 0
}

// ModelKey returns the key of the model drawn for this tile.
func (t *Tile) ModelKey() string {
	return t.Shape.ModelKey()
}

// Center returns the world position of the tile's centre.
func (t *Tile) Center() mgl32.Vec3 {
	return t.Coord.World()
}

func (t *Tile) add(e *entity.Enemy) {
	t.Enemies = append(t.Enemies, e)
}

// removeAt detaches and returns the enemy at index i, keeping the order of
// the rest.
func (t *Tile) removeAt(i int) *entity.Enemy {
	if i < 0 || i >= len(t.Enemies) {
		panic(fmt.Sprintf("world: tile %v has no enemy at index %d (len %d)", t.Coord, i, len(t.Enemies)))
	}
	e := t.Enemies[i]
	copy(t.Enemies[i:], t.Enemies[i+1:])
	t.Enemies[len(t.Enemies)-1] = nil
	t.Enemies = t.Enemies[:len(t.Enemies)-1]
	return e
}
