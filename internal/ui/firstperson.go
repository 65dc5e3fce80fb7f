package ui

import (
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/samdwyer/mazewalk/internal/entity"
)

// fovScale is the camera plane half-width; 0.66 gives roughly 66 degrees.
const fovScale = 0.66

// Wall shades from near to far.
var wallShades = [4]rune{'█', '▓', '▒', '░'}

func (r *Renderer) renderFirstPerson(f Frame, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	pos := f.Avatar.Pos
	dir := mgl32.Vec2{f.Avatar.Look.X(), f.Avatar.Look.Z()}
	right := mgl32.Vec2{-dir.Y(), dir.X()}
	maxDist := float32(f.VisibleDistance) + 0.5

	horizon := h/2 + int(math.Round(float64((pos.Y()-f.Avatar.BaseHeight)*float32(h))))
	zbuf := make([]float32, w)

	for x := 0; x < w; x++ {
		camX := 2*float32(x)/float32(w) - 1
		ray := dir.Add(right.Mul(fovScale * camX))
		hit := CastRay(f.Maze, pos.X(), pos.Z(), ray.X(), ray.Y(), maxDist)
		zbuf[x] = hit.Distance

		top, bottom := horizon, horizon
		if hit.Hit {
			lineH := int(float32(h) / max(hit.Distance, 0.05))
			top = horizon - lineH/2
			bottom = top + lineH
		}
		wall := wallCell(hit, maxDist)

		for y := 0; y < h; y++ {
			switch {
			case y < top:
				// ceiling stays blank
			case y < bottom:
				r.screen.SetContent(x, y, wall.r, wall.style)
			case y > horizon:
				r.screen.SetContent(x, y, '.', floorStyle)
			}
		}
	}

	r.drawSprites(f, w, h, horizon, dir, right, zbuf, maxDist)
	r.drawHand(f.Avatar, w, h)
}

type shadedCell struct {
	r     rune
	style tcell.Style
}

// wallCell picks the wall glyph by distance; faces crossed along Z are drawn
// one step darker.
func wallCell(hit RayHit, maxDist float32) shadedCell {
	shade := int(hit.Distance / maxDist * float32(len(wallShades)))
	shade = min(shade+hit.Side, len(wallShades)-1)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if hit.Side == 1 {
		style = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	}
	return shadedCell{r: wallShades[shade], style: style}
}

type sprite struct {
	enemy *entity.Enemy
	depth float32
	lat   float32
}

// drawSprites draws visible enemies far to near, clipped by the wall depth
// buffer.
func (r *Renderer) drawSprites(f Frame, w, h, horizon int, dir, right mgl32.Vec2, zbuf []float32, maxDist float32) {
	agx, agy := f.Maze.CellIndex(f.Avatar.Pos)
	var sprites []sprite
	for _, e := range f.Maze.EnemiesAround(agx, agy, f.VisibleDistance) {
		rel := mgl32.Vec2{e.Pos.X() - f.Avatar.Pos.X(), e.Pos.Z() - f.Avatar.Pos.Z()}
		depth := rel.Dot(dir)
		if depth < 0.1 || depth > maxDist {
			continue
		}
		sprites = append(sprites, sprite{enemy: e, depth: depth, lat: rel.Dot(right)})
	}
	sort.Slice(sprites, func(i, j int) bool { return sprites[i].depth > sprites[j].depth })

	for _, s := range sprites {
		sx := int(float32(w) / 2 * (1 + s.lat/(s.depth*fovScale)))
		size := max(int(float32(h)/s.depth*0.5), 1)
		floor := horizon + int(float32(h)/s.depth)/2

		glyph, style := enemyRune(s.enemy), enemyStyle(s.enemy)
		height := size
		if s.enemy.State != entity.StateWandering {
			height = max(size/3, 1)
		}

		for col := sx - size/2; col < sx-size/2+size; col++ {
			if col < 0 || col >= w || s.depth >= zbuf[col] {
				continue
			}
			for y := floor - height; y < floor; y++ {
				if y >= 0 && y < h {
					r.screen.SetContent(col, y, glyph, style)
				}
			}
		}
	}
}

// drawHand draws the weapon hand in the lower right: raised while idle,
// swept across while an attack is in progress.
func (r *Renderer) drawHand(a *entity.Avatar, w, h int) {
	art := []string{
		"  |",
		"  |",
		" [#]",
	}
	if a.Swinging() {
		art = []string{
			"\\",
			" \\",
			"  [#]",
		}
	}

	left := w - 8
	top := h - len(art)
	for j, line := range art {
		i := 0
		for _, ch := range line {
			if ch != ' ' && inView(left+i, top+j, w, h) {
				r.screen.SetContent(left+i, top+j, ch, handStyle)
			}
			i++
		}
	}
}

var handStyle = tcell.StyleDefault.Foreground(tcell.ColorTan)
