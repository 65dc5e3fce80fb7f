// Package snapshot draws a generated maze to an image file.
package snapshot

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/samdwyer/mazewalk/internal/entity"
	"github.com/samdwyer/mazewalk/internal/world"
)

// Palette
const (
	backgroundHex = "#101010"
	floorHex      = "#C8C8C8"
	startHex      = "#FFD700"
	defeatedHex   = "#606060"
	enemyHex      = "#D03030"
)

// Options controls the image size.
type Options struct {
	CellSize int // Pixels per maze cell before scaling
	Scale    int // Nearest-neighbour upscale factor applied by Write
}

// DefaultOptions returns 8-pixel cells scaled up 4 times.
func DefaultOptions() Options {
	return Options{CellSize: 8, Scale: 4}
}

// Render draws the maze: each tile as a floor square with corridors toward
// its open neighbours, the start cell marked, and every enemy as a dot.
func Render(m *world.Maze, opts Options) image.Image {
	cs := float64(max(opts.CellSize, 4))
	dc := gg.NewContext(m.Width*int(cs), m.Height*int(cs))

	dc.SetHexColor(backgroundHex)
	dc.Clear()

	inset := cs / 4
	dc.SetHexColor(floorHex)
	for _, tile := range m.Tiles() {
		x := float64(tile.Coord.X-m.Offset.X) * cs
		y := float64(tile.Coord.Y-m.Offset.Y) * cs

		dc.DrawRectangle(x+inset, y+inset, cs-2*inset, cs-2*inset)
		if tile.Open(world.Left) {
			dc.DrawRectangle(x, y+inset, inset, cs-2*inset)
		}
		if tile.Open(world.Right) {
			dc.DrawRectangle(x+cs-inset, y+inset, inset, cs-2*inset)
		}
		if tile.Open(world.Up) {
			dc.DrawRectangle(x+inset, y, cs-2*inset, inset)
		}
		if tile.Open(world.Down) {
			dc.DrawRectangle(x+inset, y+cs-inset, cs-2*inset, inset)
		}
	}
	dc.Fill()

	// The generator always starts at (0, 0).
	sx := float64(-m.Offset.X)*cs + cs/2
	sy := float64(-m.Offset.Y)*cs + cs/2
	dc.SetHexColor(startHex)
	dc.DrawCircle(sx, sy, cs/6)
	dc.Fill()

	for _, e := range m.Enemies {
		ex := (float64(e.Pos.X()-float32(m.Offset.X)) + 0.5) * cs
		ey := (float64(e.Pos.Z()-float32(m.Offset.Y)) + 0.5) * cs
		dc.SetHexColor(enemyColor(e))
		dc.DrawCircle(ex, ey, cs/8)
		dc.Fill()
	}

	return dc.Image()
}

func enemyColor(e *entity.Enemy) string {
	switch {
	case e.State == entity.StateDefeated:
		return defeatedHex
	case e.Def != nil && e.Def.Color != "":
		return e.Def.Color
	default:
		return enemyHex
	}
}

// Write renders the maze, scales it up and saves it to path. The format
// follows the file extension.
func Write(path string, m *world.Maze, opts Options) error {
	img := Render(m, opts)
	if opts.Scale > 1 {
		b := img.Bounds()
		img = imaging.Resize(img, b.Dx()*opts.Scale, b.Dy()*opts.Scale, imaging.NearestNeighbor)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
