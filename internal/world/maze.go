package world

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/mazewalk/internal/collision"
	"github.com/samdwyer/mazewalk/internal/entity"
)

// Maze is a dense Width x Height grid of optional tiles. Index (0, 0) is the
// cell at Offset, the smallest coordinate the generator visited.
type Maze struct {
	Width   int
	Height  int
	Offset  Coord
	Enemies []*entity.Enemy // Every spawned enemy, in spawn order

	tiles []*Tile
	cells int
}

// NewMaze builds a maze from a set of occupied coordinates. Each tile's
// shape is derived from which of its neighbours are also in coords. An empty
// list yields the single cell at (0, 0).
func NewMaze(coords []Coord) *Maze {
	if len(coords) == 0 {
		coords = []Coord{{}}
	}
	visited := mapset.New[Coord]()
	b := newBounds(coords[0])
	for _, c := range coords {
		visited.Put(c)
		b.include(c)
	}
	return build(coords, visited, b)
}

// bounds is a running min/max over visited coordinates.
type bounds struct {
	min, max Coord
}

func newBounds(seed Coord) bounds {
	return bounds{min: seed, max: seed}
}

func (b *bounds) include(c Coord) {
	b.min.X = min(b.min.X, c.X)
	b.min.Y = min(b.min.Y, c.Y)
	b.max.X = max(b.max.X, c.X)
	b.max.Y = max(b.max.Y, c.Y)
}

// build lays the visited coordinates into a grid covering b, which must
// contain every coordinate.
func build(coords []Coord, visited mapset.Set[Coord], b bounds) *Maze {
	m := &Maze{
		Width:  b.max.X - b.min.X + 1,
		Height: b.max.Y - b.min.Y + 1,
		Offset: b.min,
	}
	m.tiles = make([]*Tile, m.Width*m.Height)

	for _, c := range coords {
		i := m.index(c.X-b.min.X, c.Y-b.min.Y)
		if m.tiles[i] != nil {
			continue
		}
		m.tiles[i] = newTile(c, neighbourPattern(visited, c))
		m.cells++
	}
	return m
}

func neighbourPattern(visited mapset.Set[Coord], c Coord) uint8 {
	var pattern uint8
	for _, d := range Directions {
		if visited.Has(c.Add(d.Delta())) {
			pattern |= d.Bit()
		}
	}
	return pattern
}

func (m *Maze) index(gx, gy int) int {
	return gy*m.Width + gx
}

// InBounds reports whether (gx, gy) is a valid index.
func (m *Maze) InBounds(gx, gy int) bool {
	return gx >= 0 && gy >= 0 && gx < m.Width && gy < m.Height
}

// TileAt returns the tile at index (gx, gy), or nil if the cell is empty or
// out of bounds.
func (m *Maze) TileAt(gx, gy int) *Tile {
	if !m.InBounds(gx, gy) {
		return nil
	}
	return m.tiles[m.index(gx, gy)]
}

// TileAtCoord returns the tile at grid coordinate c, or nil.
func (m *Maze) TileAtCoord(c Coord) *Tile {
	return m.TileAt(c.X-m.Offset.X, c.Y-m.Offset.Y)
}

// TileAtPosition returns the tile whose bounds contain the world position p,
// or nil.
func (m *Maze) TileAtPosition(p mgl32.Vec3) *Tile {
	return m.TileAt(m.CellIndex(p))
}

// CellIndex maps a world position to grid indices without any hitbox bias.
func (m *Maze) CellIndex(p mgl32.Vec3) (gx, gy int) {
	return collision.CellIndex(m, p.X(), p.Z())
}

// Origin returns the grid coordinate of index (0, 0).
func (m *Maze) Origin() (x, y int) {
	return m.Offset.X, m.Offset.Y
}

// Open reports whether index (gx, gy) holds a tile.
func (m *Maze) Open(gx, gy int) bool {
	return m.TileAt(gx, gy) != nil
}

// CellCount returns the number of occupied cells.
func (m *Maze) CellCount() int {
	return m.cells
}

// Tiles returns the occupied tiles in row-major order.
func (m *Maze) Tiles() []*Tile {
	out := make([]*Tile, 0, m.cells)
	for _, t := range m.tiles {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

// EnemiesAround returns the enemies filed under tiles within radius cells
// (Chebyshev distance) of index (gx, gy).
func (m *Maze) EnemiesAround(gx, gy, radius int) []*entity.Enemy {
	var out []*entity.Enemy
	for y := gy - radius; y <= gy+radius; y++ {
		for x := gx - radius; x <= gx+radius; x++ {
			if t := m.TileAt(x, y); t != nil {
				out = append(out, t.Enemies...)
			}
		}
	}
	return out
}
