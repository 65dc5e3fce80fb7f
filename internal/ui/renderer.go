package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazewalk/internal/entity"
	"github.com/samdwyer/mazewalk/internal/world"
)

const (
	// Top-down cell size in characters
	cellWidth  = 6
	cellHeight = 3

	hudRows = 1
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame in the frame's view mode.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	w, h := r.screen.Size()
	switch f.Mode {
	case ViewTopDown:
		r.renderTopDown(f, w, h-hudRows)
	default:
		r.renderFirstPerson(f, w, h-hudRows)
	}
	r.renderHUD(f, h-1)

	r.screen.Show()
}

// ===== top-down =====

func (r *Renderer) renderTopDown(f Frame, w, h int) {
	pos := f.Avatar.Pos
	cx, cy := w/2, h/2
	agx, agy := f.Maze.CellIndex(pos)

	// Screen position of a world point; the avatar sits at the centre.
	project := func(x, z float32) (int, int) {
		sx := cx + int(math.Floor(float64((x-pos.X())*cellWidth)+0.5))
		sy := cy + int(math.Floor(float64((z-pos.Z())*cellHeight)+0.5))
		return sx, sy
	}

	for _, tile := range f.Maze.Tiles() {
		gx, gy := tile.Coord.X-f.Maze.Offset.X, tile.Coord.Y-f.Maze.Offset.Y
		if !withinDistance(gx, gy, agx, agy, f.VisibleDistance) {
			continue
		}
		sx, sy := project(float32(tile.Coord.X), float32(tile.Coord.Y))
		r.drawCell(tile, sx-cellWidth/2, sy-cellHeight/2, w, h)
	}

	for _, e := range f.Maze.EnemiesAround(agx, agy, f.VisibleDistance) {
		sx, sy := project(e.Pos.X(), e.Pos.Z())
		if inView(sx, sy, w, h) {
			r.screen.SetContent(sx, sy, enemyRune(e), enemyStyle(e))
		}
	}

	r.screen.SetContent(cx, cy, avatarArrow(f.Avatar.Angle), avatarStyle)
	if f.Avatar.Swinging() {
		look := f.Avatar.Look
		sx, sy := project(pos.X()+look.X()*0.3, pos.Z()+look.Z()*0.3)
		if (sx != cx || sy != cy) && inView(sx, sy, w, h) {
			r.screen.SetContent(sx, sy, '*', swingStyle)
		}
	}
}

// drawCell draws a tile's block with its top-left corner at (left, top).
// Border characters are floor where the tile opens onto a neighbour.
func (r *Renderer) drawCell(tile *world.Tile, left, top, w, h int) {
	for j := 0; j < cellHeight; j++ {
		for i := 0; i < cellWidth; i++ {
			x, y := left+i, top+j
			if !inView(x, y, w, h) {
				continue
			}
			if cellBorder(tile, i, j) {
				r.screen.SetContent(x, y, '#', wallStyle)
			} else {
				r.screen.SetContent(x, y, '.', floorStyle)
			}
		}
	}
}

// cellBorder reports whether block position (i, j) is wall.
func cellBorder(tile *world.Tile, i, j int) bool {
	edgeX := i == 0 || i == cellWidth-1
	edgeY := j == 0 || j == cellHeight-1
	switch {
	case edgeX && edgeY:
		return true
	case i == 0:
		return !tile.Open(world.Left)
	case i == cellWidth-1:
		return !tile.Open(world.Right)
	case j == 0:
		return !tile.Open(world.Up)
	case j == cellHeight-1:
		return !tile.Open(world.Down)
	default:
		return false
	}
}

// avatarArrow returns the arrow closest to the facing angle. Angle 0 faces +X
// and positive angles turn toward +Z, which is down on screen.
func avatarArrow(angle float32) rune {
	arrows := [4]rune{'>', 'v', '<', '^'}
	quarter := int(math.Round(float64(angle)/(math.Pi/2))) % 4
	if quarter < 0 {
		quarter += 4
	}
	return arrows[quarter]
}

// ===== HUD =====

func (r *Renderer) renderHUD(f Frame, y int) {
	status := fmt.Sprintf(" %s | tick %d | defeated %d/%d | WASD move, arrows turn, space attack, q quit",
		f.Mode, f.Tick, f.Defeated, f.Total)
	r.RenderMessage(status, y)
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	i := 0
	for _, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
		i++
	}
}

// ===== styles and glyphs =====

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	floorStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	avatarStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	swingStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// enemyRune returns the glyph for an enemy in its current state.
func enemyRune(e *entity.Enemy) rune {
	switch e.State {
	case entity.StateFalling:
		return '~'
	case entity.StateDefeated:
		return '%'
	default:
		return e.Glyph()
	}
}

func enemyStyle(e *entity.Enemy) tcell.Style {
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)
	if e.Def != nil {
		style = style.Foreground(e.Def.TCellColor())
	}
	if e.State == entity.StateWandering && e.Frame%2 == 1 {
		style = style.Bold(true)
	}
	if e.State == entity.StateDefeated {
		style = style.Dim(true)
	}
	return style
}

func inView(x, y, w, h int) bool {
	return x >= 0 && y >= 0 && x < w && y < h
}

func withinDistance(x, y, cx, cy, d int) bool {
	return abs(x-cx) <= d && abs(y-cy) <= d
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
