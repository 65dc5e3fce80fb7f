package gamedata

import (
	"errors"
	"fmt"
)

// Tuning holds the gameplay constants shared by the avatar, enemies and the
// collision resolver. Values are in world units (one grid cell = 1.0) and
// frame ticks.
type Tuning struct {
	HitboxSize      float32      `json:"hitboxSize"`      // Leading-edge bias used by collision checks
	VisibleDistance int          `json:"visibleDistance"` // Tiles drawn around the avatar
	Player          PlayerTuning `json:"player"`
	Enemy           EnemyTuning  `json:"enemy"`
}

// PlayerTuning holds avatar movement and melee constants.
type PlayerTuning struct {
	Speed         float32 `json:"speed"`
	TurnSpeed     float32 `json:"turnSpeed"` // Radians per tick
	AttackTicks   int     `json:"attackTicks"`
	HitDistance   float32 `json:"hitDistance"`
	BobStep       float32 `json:"bobStep"`
	BobAmplitude  float32 `json:"bobAmplitude"`
	EyeHeight     float32 `json:"eyeHeight"`     // Base height in first-person mode
	TopDownHeight float32 `json:"topDownHeight"` // Base height in top-down mode
}

// EnemyTuning holds roaming enemy constants.
type EnemyTuning struct {
	Speed            float32 `json:"speed"`
	DecisionMinTicks int     `json:"decisionMinTicks"`
	DecisionMaxTicks int     `json:"decisionMaxTicks"`
	SpeakMinTicks    int     `json:"speakMinTicks"`
	SpeakMaxTicks    int     `json:"speakMaxTicks"`
	AnimationTicks   int     `json:"animationTicks"`
	WalkFrames       int     `json:"walkFrames"`
	FallFrames       int     `json:"fallFrames"`
}

// LoadTuning loads the embedded tuning.json.
func LoadTuning() (Tuning, error) {
	t, err := Load[Tuning]("tuning.json")
	if err != nil {
		return Tuning{}, err
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("embedded tuning.json: %w", err)
	}
	return t, nil
}

// MustLoadTuning loads the embedded tuning, panicking on error.
func MustLoadTuning() Tuning {
	t, err := LoadTuning()
	if err != nil {
		panic(err)
	}
	return t
}

// LoadTuningFile applies a JSON override file on top of base and validates
// the result. base is not modified.
func LoadTuningFile(path string, base Tuning) (Tuning, error) {
	t := base
	if err := LoadFileInto(path, &t); err != nil {
		return base, err
	}
	if err := t.Validate(); err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Validate reports the first constant that would break the tick logic.
func (t Tuning) Validate() error {
	switch {
	case t.HitboxSize < 0 || t.HitboxSize >= 0.5:
		return errors.New("hitboxSize must be in [0, 0.5)")
	case t.VisibleDistance < 0:
		return errors.New("visibleDistance must not be negative")
	case t.Player.Speed <= 0:
		return errors.New("player.speed must be positive")
	case t.Player.AttackTicks < 1:
		return errors.New("player.attackTicks must be at least 1")
	case t.Player.HitDistance <= 0:
		return errors.New("player.hitDistance must be positive")
	case t.Enemy.Speed < 0:
		return errors.New("enemy.speed must not be negative")
	case t.Enemy.DecisionMinTicks < 1 || t.Enemy.DecisionMaxTicks < t.Enemy.DecisionMinTicks:
		return errors.New("enemy decision range must satisfy 1 <= min <= max")
	case t.Enemy.SpeakMinTicks < 1 || t.Enemy.SpeakMaxTicks < t.Enemy.SpeakMinTicks:
		return errors.New("enemy speak range must satisfy 1 <= min <= max")
	case t.Enemy.AnimationTicks < 1:
		return errors.New("enemy.animationTicks must be at least 1")
	case t.Enemy.WalkFrames < 1:
		return errors.New("enemy.walkFrames must be at least 1")
	case t.Enemy.FallFrames < 0:
		return errors.New("enemy.fallFrames must not be negative")
	}
	return nil
}
