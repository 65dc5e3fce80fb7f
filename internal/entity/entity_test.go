package entity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/samdwyer/mazewalk/internal/audio"
	"github.com/samdwyer/mazewalk/internal/gamedata"
)

// freeMover applies every displacement.
type freeMover struct{ calls int }

func (m *freeMover) Move(pos, delta mgl32.Vec3) mgl32.Vec3 {
	m.calls++
	return pos.Add(delta)
}

func testTuning() gamedata.EnemyTuning {
	return gamedata.EnemyTuning{
		Speed:            0.02,
		DecisionMinTicks: 100,
		DecisionMaxTicks: 100,
		SpeakMinTicks:    1000,
		SpeakMaxTicks:    1000,
		AnimationTicks:   4,
		WalkFrames:       2,
		FallFrames:       3,
	}
}

func newTestEnv(t gamedata.EnemyTuning) (*Env, *freeMover, *audio.Recorder) {
	mover := &freeMover{}
	sounds := &audio.Recorder{}
	return &Env{
		Mover:  mover,
		Rand:   rand.New(rand.NewSource(7)),
		Sounds: sounds,
		Tuning: t,
	}, mover, sounds
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestCountdown(t *testing.T) {
	var c Countdown
	c.Set(2)

	if c.Tick() {
		t.Error("Tick() at 2 reported zero")
	}
	if !c.Tick() {
		t.Error("Tick() at 1 should reach zero")
	}
	// Saturates instead of wrapping
	if !c.Tick() || c.Remaining() != 0 {
		t.Errorf("Tick() at 0 = remaining %d, want saturated 0", c.Remaining())
	}

	c.Set(-5)
	if c.Remaining() != 0 {
		t.Errorf("Set(-5) remaining = %d, want 0", c.Remaining())
	}
}

func TestAnimStateString(t *testing.T) {
	tests := []struct {
		state    AnimState
		expected string
	}{
		{StateWandering, "wandering"},
		{StateFalling, "falling"},
		{StateDefeated, "defeated"},
		{AnimState(9), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("AnimState(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestNewEnemy(t *testing.T) {
	tuning := testTuning()
	rng := rand.New(rand.NewSource(1))
	e := NewEnemy(nil, mgl32.Vec3{1.5, 3, -2}, rng, tuning)

	if e.State != StateWandering {
		t.Errorf("State = %v, want wandering", e.State)
	}
	if e.Pos.Y() != 0 {
		t.Errorf("Pos.Y = %v, want 0 (ground bound)", e.Pos.Y())
	}
	if e.Pos.X() != 1.5 || e.Pos.Z() != -2 {
		t.Errorf("Pos = %v, want X 1.5 Z -2", e.Pos)
	}
	if abs32(e.Direction.X()) > tuning.Speed || abs32(e.Direction.Y()) > tuning.Speed {
		t.Errorf("Direction = %v exceeds speed %v", e.Direction, tuning.Speed)
	}
	if e.decision.Remaining() != 100 {
		t.Errorf("decision countdown = %d, want 100", e.decision.Remaining())
	}
	if e.speak.Remaining() != 1000 {
		t.Errorf("speak countdown = %d, want 1000", e.speak.Remaining())
	}
}

func TestEnemyKindSpeed(t *testing.T) {
	def := &gamedata.EnemyDef{ID: "fast", Speed: 0.5}
	rng := rand.New(rand.NewSource(3))

	sawFast := false
	for i := 0; i < 20; i++ {
		e := NewEnemy(def, mgl32.Vec3{}, rng, testTuning())
		if abs32(e.Direction.X()) > 0.5 || abs32(e.Direction.Y()) > 0.5 {
			t.Fatalf("Direction = %v exceeds kind speed 0.5", e.Direction)
		}
		if abs32(e.Direction.X()) > 0.02 || abs32(e.Direction.Y()) > 0.02 {
			sawFast = true
		}
	}
	if !sawFast {
		t.Error("kind speed was never used")
	}
}

func TestEnemyUpdateMoves(t *testing.T) {
	env, mover, _ := newTestEnv(testTuning())
	e := NewEnemy(nil, mgl32.Vec3{2, 0, 3}, env.Rand, env.Tuning)
	dir := e.Direction

	if !e.Update(env) {
		t.Fatal("Update() = false for wandering enemy")
	}

	want := mgl32.Vec3{2 + dir.X(), 0, 3 + dir.Y()}
	if !approx(e.Pos.X(), want.X()) || !approx(e.Pos.Z(), want.Z()) || e.Pos.Y() != 0 {
		t.Errorf("Pos = %v, want %v", e.Pos, want)
	}
	if mover.calls != 1 {
		t.Errorf("Mover calls = %d, want 1", mover.calls)
	}
	if e.Ticks != 1 {
		t.Errorf("Ticks = %d, want 1", e.Ticks)
	}
}

func TestEnemyRedirects(t *testing.T) {
	tuning := testTuning()
	tuning.DecisionMinTicks = 2
	tuning.DecisionMaxTicks = 2
	env, _, _ := newTestEnv(tuning)
	e := NewEnemy(nil, mgl32.Vec3{}, env.Rand, tuning)
	first := e.Direction

	e.Update(env)
	if e.Direction != first {
		t.Error("direction changed before the decision countdown elapsed")
	}
	e.Update(env)
	if e.Direction == first {
		t.Error("direction not redrawn when the decision countdown elapsed")
	}
	if e.decision.Remaining() != 2 {
		t.Errorf("decision countdown = %d, want reset to 2", e.decision.Remaining())
	}
}

func TestEnemyWalkFrames(t *testing.T) {
	env, _, _ := newTestEnv(testTuning()) // AnimationTicks 4, WalkFrames 2
	e := NewEnemy(nil, mgl32.Vec3{}, env.Rand, env.Tuning)

	expected := []int{0, 0, 0, 1, 1, 1, 1, 0}
	for i, want := range expected {
		e.Update(env)
		if e.Frame != want {
			t.Errorf("after update %d Frame = %d, want %d", i+1, e.Frame, want)
		}
	}
}

func TestEnemySpeaks(t *testing.T) {
	tuning := testTuning()
	tuning.SpeakMinTicks = 3
	tuning.SpeakMaxTicks = 3
	env, _, sounds := newTestEnv(tuning)
	e := NewEnemy(nil, mgl32.Vec3{}, env.Rand, tuning)

	for i := 0; i < 6; i++ {
		e.Update(env)
	}
	if got := sounds.Count(audio.SoundVocalize); got != 2 {
		t.Errorf("vocalizations after 6 ticks = %d, want 2", got)
	}
}

func TestEnemyFallAndDefeat(t *testing.T) {
	tuning := testTuning()
	env, mover, _ := newTestEnv(tuning)
	e := NewEnemy(nil, mgl32.Vec3{1, 0, 1}, env.Rand, tuning)

	e.KnockDown()
	if e.State != StateFalling || e.Frame != 0 {
		t.Fatalf("after KnockDown state = %v frame %d, want falling frame 0", e.State, e.Frame)
	}
	if e.Vulnerable() {
		t.Error("falling enemy should not be vulnerable")
	}

	// First frame after FallFrames (3) ticks, then every AnimationTicks (4):
	// frame 1 at tick 3, 2 at 7, 3 at 11, defeated at 15.
	steps := []struct {
		ticks int
		state AnimState
		frame int
	}{
		{2, StateFalling, 0},
		{3, StateFalling, 1},
		{7, StateFalling, 2},
		{14, StateFalling, 3},
		{15, StateDefeated, 0},
	}
	done := 0
	for _, st := range steps {
		for ; done < st.ticks; done++ {
			e.Update(env)
		}
		if e.State != st.state || e.Frame != st.frame {
			t.Fatalf("after %d ticks state = %v frame %d, want %v frame %d", st.ticks, e.State, e.Frame, st.state, st.frame)
		}
	}
	if mover.calls != 0 {
		t.Errorf("falling enemy moved %d times, want 0", mover.calls)
	}

	ticks := e.Ticks
	if e.Update(env) {
		t.Error("Update() = true for defeated enemy")
	}
	if e.Ticks != ticks || e.Active() {
		t.Error("defeated enemy should be skipped")
	}

	e.KnockDown()
	if e.State != StateDefeated {
		t.Error("KnockDown() revived a defeated enemy")
	}
}

func TestAvatarLookAndTurn(t *testing.T) {
	a := NewAvatar(mgl32.Vec3{0, 0, 0}, 0)
	if !approx(a.Look.X(), 1) || !approx(a.Look.Z(), 0) {
		t.Errorf("Look = %v, want (1, 0, 0)", a.Look)
	}

	a.Turn(math.Pi / 2)
	if !approx(a.Look.X(), 0) || !approx(a.Look.Z(), 1) {
		t.Errorf("Look after quarter turn = %v, want (0, 0, 1)", a.Look)
	}
	if !approx(a.Look.Len(), 1) {
		t.Errorf("|Look| = %v, want 1", a.Look.Len())
	}
}

func TestAvatarDisplacements(t *testing.T) {
	a := NewAvatar(mgl32.Vec3{}, 0)

	fwd := a.Forward(0.05)
	if !approx(fwd.X(), 0.05) || !approx(fwd.Z(), 0) {
		t.Errorf("Forward(0.05) = %v, want (0.05, 0, 0)", fwd)
	}
	left := a.StrafeLeft(0.05)
	if !approx(left.X(), 0) || !approx(left.Z(), -0.05) {
		t.Errorf("StrafeLeft(0.05) = %v, want (0, 0, -0.05)", left)
	}
	if fwd.Dot(left) != 0 {
		t.Error("strafe should be perpendicular to the look vector")
	}
}

func TestAvatarBob(t *testing.T) {
	a := NewAvatar(mgl32.Vec3{0, 5, 0}, 0)
	if a.BaseHeight != 5 {
		t.Fatalf("BaseHeight = %v, want 5", a.BaseHeight)
	}

	a.Bob(0.25, 0.05)
	want := 5 + float32(math.Cos(0.25))*0.05
	if !approx(a.Pos.Y(), want) {
		t.Errorf("Pos.Y after bob = %v, want %v", a.Pos.Y(), want)
	}
}

func TestAvatarTryAttack(t *testing.T) {
	a := NewAvatar(mgl32.Vec3{}, 0)

	steps := []struct {
		pressed  bool
		started  bool
		swinging bool
	}{
		{true, true, true},    // rising edge starts an attack (3 ticks)
		{true, false, true},   // 2 left
		{true, false, false},  // 1 left, animation over
		{true, false, false},  // still held: no restart
		{false, false, false}, // released
		{true, true, true},    // fresh press attacks again
	}

	for i, s := range steps {
		if got := a.TryAttack(s.pressed, 3); got != s.started {
			t.Errorf("step %d: TryAttack(%v) = %v, want %v", i, s.pressed, got, s.started)
		}
		if got := a.Swinging(); got != s.swinging {
			t.Errorf("step %d: Swinging() = %v, want %v", i, got, s.swinging)
		}
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
