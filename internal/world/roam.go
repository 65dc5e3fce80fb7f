package world

import "github.com/samdwyer/mazewalk/internal/entity"

// TickStats summarises one Advance call.
type TickStats struct {
	Updated     int // Enemies whose Update did work
	Transferred int // Enemies re-filed under another tile
}

// Advance runs one roaming tick. Every enemy filed under a tile is updated
// exactly once, then each enemy is re-filed under the tile containing its new
// position. An enemy whose position maps to no tile stays where it is.
func (m *Maze) Advance(env *entity.Env) TickStats {
	var stats TickStats

	for _, t := range m.tiles {
		if t == nil {
			continue
		}
		for _, e := range t.Enemies {
			if e.Update(env) {
				stats.Updated++
			}
		}
	}

	for _, t := range m.tiles {
		if t == nil {
			continue
		}
		stats.Transferred += m.rehome(t)
	}

	return stats
}

// rehome moves enemies that have left t into the tile they now stand in.
func (m *Maze) rehome(t *Tile) int {
	moved := 0
	for i := 0; i < len(t.Enemies); {
		dest := m.TileAtPosition(t.Enemies[i].Pos)
		if dest == nil || dest == t {
			i++
			continue
		}
		// The next enemy slides into slot i; don't advance.
		dest.add(t.removeAt(i))
		moved++
	}
	return moved
}

// Owner returns the tile e is filed under, or nil.
func (m *Maze) Owner(e *entity.Enemy) *Tile {
	for _, t := range m.tiles {
		if t == nil {
			continue
		}
		for _, other := range t.Enemies {
			if other == e {
				return t
			}
		}
	}
	return nil
}
