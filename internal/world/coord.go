// Package world provides maze generation, the tile grid and the per-tick
// bookkeeping that keeps enemies filed under the tile they stand in.
package world

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Coord identifies a grid cell.
type Coord struct {
	X, Y int
}

// Add returns c offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{c.X + d.X, c.Y + d.Y}
}

// World returns the world position of the centre of cell c. World X is
// grid X and world Z is grid Y.
func (c Coord) World() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X), 0, float32(c.Y)}
}

// String returns "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four axis-aligned unit steps. The values double as
// bit positions in a tile's neighbour pattern.
type Direction int

const (
	Left Direction = iota
	Up
	Right
	Down
)

// Directions lists all four directions in pattern bit order.
var Directions = [4]Direction{Left, Up, Right, Down}

// Delta returns the unit step for d. Up is -Y.
func (d Direction) Delta() Coord {
	switch d {
	case Left:
		return Coord{-1, 0}
	case Up:
		return Coord{0, -1}
	case Right:
		return Coord{1, 0}
	case Down:
		return Coord{0, 1}
	default:
		panic(fmt.Sprintf("world: invalid direction %d", int(d)))
	}
}

// Bit returns d's bit in a neighbour pattern.
func (d Direction) Bit() uint8 {
	return 1 << uint(d)
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// DirectionSource supplies the steps of the generator's random walk.
type DirectionSource interface {
	Next() Direction
}

// randomDirections draws directions uniformly.
type randomDirections struct {
	rng *rand.Rand
}

// RandomDirections returns a DirectionSource backed by rng.
func RandomDirections(rng *rand.Rand) DirectionSource {
	return &randomDirections{rng: rng}
}

func (r *randomDirections) Next() Direction {
	return Direction(r.rng.Intn(4))
}

// ScriptedDirections replays a fixed sequence, cycling when it runs out.
type ScriptedDirections struct {
	Steps []Direction
	next  int
}

// Next returns the next scripted step.
func (s *ScriptedDirections) Next() Direction {
	if len(s.Steps) == 0 {
		return Right
	}
	d := s.Steps[s.next%len(s.Steps)]
	s.next++
	return d
}
