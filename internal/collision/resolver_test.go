package collision

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// testGrid is a Grid built from a list of open cells given in grid
// coordinates.
type testGrid struct {
	ox, oy int
	w, h   int
	open   map[[2]int]bool
}

func newTestGrid(cells ...[2]int) *testGrid {
	g := &testGrid{open: make(map[[2]int]bool)}
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for _, c := range cells {
		g.open[c] = true
		minX, maxX = min(minX, c[0]), max(maxX, c[0])
		minY, maxY = min(minY, c[1]), max(maxY, c[1])
	}
	g.ox, g.oy = minX, minY
	g.w, g.h = maxX-minX+1, maxY-minY+1
	return g
}

func (g *testGrid) Origin() (int, int) { return g.ox, g.oy }

func (g *testGrid) Open(gx, gy int) bool {
	if gx < 0 || gy < 0 || gx >= g.w || gy >= g.h {
		return false
	}
	return g.open[[2]int{gx + g.ox, gy + g.oy}]
}

func approxVec(a, b mgl32.Vec3) bool {
	for i := range a {
		if d := a[i] - b[i]; d > 1e-5 || d < -1e-5 {
			return false
		}
	}
	return true
}

func TestCellIndex(t *testing.T) {
	g := newTestGrid([2]int{-2, -1}, [2]int{0, 0})

	tests := []struct {
		x, z   float32
		gx, gy int
	}{
		{-2, -1, 0, 0},
		{-2.4, -1.4, 0, 0},
		{-1.6, -0.6, 0, 0},
		{-1.4, -0.4, 1, 1},
		{0, 0, 2, 1},
		{-2.6, -1, -1, 0},
	}

	for _, tt := range tests {
		gx, gy := CellIndex(g, tt.x, tt.z)
		if gx != tt.gx || gy != tt.gy {
			t.Errorf("CellIndex(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.z, gx, gy, tt.gx, tt.gy)
		}
	}
}

func TestCanMoveHitboxBias(t *testing.T) {
	// Single open cell; its walls sit at +-0.5 from the centre.
	r := NewResolver(newTestGrid([2]int{0, 0}), 0.05)

	tests := []struct {
		name  string
		pos   mgl32.Vec3
		delta mgl32.Vec3
		ok    bool
	}{
		{"well inside", mgl32.Vec3{0.40, 0, 0}, mgl32.Vec3{0.02, 0, 0}, true},
		{"leading edge crosses", mgl32.Vec3{0.40, 0, 0}, mgl32.Vec3{0.08, 0, 0}, false},
		{"negative leading edge crosses", mgl32.Vec3{-0.40, 0, 0}, mgl32.Vec3{-0.08, 0, 0}, false},
		{"negative well inside", mgl32.Vec3{-0.40, 0, 0}, mgl32.Vec3{-0.02, 0, 0}, true},
		{"zero component biased positive", mgl32.Vec3{0, 0, 0.47}, mgl32.Vec3{0, 0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := r.CanMove(tt.pos, tt.delta)
			if ok != tt.ok {
				t.Fatalf("CanMove(%v, %v) ok = %v, want %v", tt.pos, tt.delta, ok, tt.ok)
			}
			want := tt.pos
			if tt.ok {
				want = tt.pos.Add(tt.delta)
			}
			if !approxVec(next, want) {
				t.Errorf("CanMove(%v, %v) = %v, want %v", tt.pos, tt.delta, next, want)
			}
		})
	}
}

func TestCanMoveKeepsHeight(t *testing.T) {
	r := NewResolver(newTestGrid([2]int{0, 0}), 0.05)
	next, ok := r.CanMove(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0.1, 0, 0.1})
	if !ok || next.Y() != 5 {
		t.Errorf("CanMove() = %v, %v; want Y 5 and ok", next, ok)
	}
}

func TestResolveWallSlide(t *testing.T) {
	diagonal := mgl32.Vec3{0.6, 0, 0.6}

	tests := []struct {
		name  string
		cells [][2]int
		want  mgl32.Vec3
		slide Slide
	}{
		{
			name:  "open diagonal",
			cells: [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
			want:  mgl32.Vec3{0.6, 0, 0.6},
			slide: Full,
		},
		{
			name:  "slide along x",
			cells: [][2]int{{0, 0}, {1, 0}},
			want:  mgl32.Vec3{0.6, 0, 0},
			slide: SlideX,
		},
		{
			name:  "slide along z",
			cells: [][2]int{{0, 0}, {0, 1}},
			want:  mgl32.Vec3{0, 0, 0.6},
			slide: SlideZ,
		},
		{
			name:  "z preferred over x",
			cells: [][2]int{{0, 0}, {1, 0}, {0, 1}},
			want:  mgl32.Vec3{0, 0, 0.6},
			slide: SlideZ,
		},
		{
			name:  "dead end",
			cells: [][2]int{{0, 0}},
			want:  mgl32.Vec3{0, 0, 0},
			slide: Blocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(newTestGrid(tt.cells...), 0.05)
			got, slide := r.Resolve(mgl32.Vec3{}, diagonal)
			if slide != tt.slide {
				t.Errorf("Resolve() slide = %v, want %v", slide, tt.slide)
			}
			if !approxVec(got, tt.want) {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
			if moved := r.Move(mgl32.Vec3{}, diagonal); !approxVec(moved, got) {
				t.Errorf("Move() = %v, want %v", moved, got)
			}
		})
	}
}

func TestMoveOutOfBounds(t *testing.T) {
	g := newTestGrid([2]int{3, 3}, [2]int{4, 3})
	r := NewResolver(g, 0.05)

	start := mgl32.Vec3{3, 0, 3}
	if got := r.Move(start, mgl32.Vec3{-0.6, 0, 0}); got != start {
		t.Errorf("Move() past the west edge = %v, want unchanged %v", got, start)
	}
	if got := r.Move(start, mgl32.Vec3{0, 0, 0.6}); got != start {
		t.Errorf("Move() past the south edge = %v, want unchanged %v", got, start)
	}
	if got := r.Move(start, mgl32.Vec3{0.6, 0, 0}); !approxVec(got, mgl32.Vec3{3.6, 0, 3}) {
		t.Errorf("Move() into open neighbour = %v, want (3.6, 0, 3)", got)
	}
}

func TestMoveContainment(t *testing.T) {
	g := newTestGrid(
		[2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0},
		[2]int{2, 1}, [2]int{2, 2}, [2]int{1, 2},
	)
	r := NewResolver(g, 0.05)
	rng := rand.New(rand.NewSource(42))

	pos := mgl32.Vec3{}
	for i := 0; i < 5000; i++ {
		delta := mgl32.Vec3{(rng.Float32()*2 - 1) * 0.2, 0, (rng.Float32()*2 - 1) * 0.2}
		next, slide := r.Resolve(pos, delta)

		var applied mgl32.Vec3
		switch slide {
		case Full:
			applied = delta
		case SlideZ:
			applied = mgl32.Vec3{0, 0, delta.Z()}
		case SlideX:
			applied = mgl32.Vec3{delta.X(), 0, 0}
		case Blocked:
			if next != pos {
				t.Fatalf("step %d: blocked move changed position %v -> %v", i, pos, next)
			}
			continue
		}

		edgeX := next.X() + r.bias(applied.X())
		edgeZ := next.Z() + r.bias(applied.Z())
		if gx, gy := CellIndex(g, edgeX, edgeZ); !g.Open(gx, gy) {
			t.Fatalf("step %d: leading edge of %v is in closed cell (%d, %d)", i, next, gx, gy)
		}
		pos = next
	}
}

func TestMoveDeterministic(t *testing.T) {
	g := newTestGrid([2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1})
	a := NewResolver(g, 0.05)
	b := NewResolver(g, 0.05)

	pos := mgl32.Vec3{0.3, 0, 0.2}
	delta := mgl32.Vec3{0.4, 0, 0.45}
	first := a.Move(pos, delta)
	for i := 0; i < 10; i++ {
		if got := b.Move(pos, delta); got != first {
			t.Fatalf("Move() = %v on run %d, want %v", got, i, first)
		}
	}
}

func TestSlideString(t *testing.T) {
	tests := []struct {
		slide    Slide
		expected string
	}{
		{Blocked, "blocked"},
		{Full, "full"},
		{SlideZ, "slide_z"},
		{SlideX, "slide_x"},
		{Slide(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.slide.String(); got != tt.expected {
			t.Errorf("Slide(%d).String() = %q, want %q", tt.slide, got, tt.expected)
		}
	}
}
