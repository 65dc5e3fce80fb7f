package game

import (
	"testing"
	"time"

	"github.com/samdwyer/mazewalk/internal/ui"
)

func envFrom(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Cells != 64 || cfg.Enemies != 32 {
		t.Errorf("DefaultConfig() cells/enemies = %d/%d, want 64/32", cfg.Cells, cfg.Enemies)
	}
	if cfg.FrameInterval != 16*time.Millisecond {
		t.Errorf("DefaultConfig().FrameInterval = %v, want 16ms", cfg.FrameInterval)
	}
	if cfg.View != ui.ViewFirstPerson || !cfg.Audio || cfg.Seed != 0 {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestConfigFromEnv(t *testing.T) {
	cfg, err := ConfigFromEnv(envFrom(map[string]string{
		EnvSeed:       "12345",
		EnvCells:      "100",
		EnvEnemies:    "0",
		EnvView:       "top-down",
		EnvFrameMS:    "33",
		EnvAudio:      "false",
		EnvTuningFile: "tuning.json",
		EnvLogFile:    "mazewalk.log",
		EnvEnemyKind:  "skitter",
	}))
	if err != nil {
		t.Fatalf("ConfigFromEnv() error = %v", err)
	}

	want := Config{
		Seed:          12345,
		Cells:         100,
		Enemies:       0,
		View:          ui.ViewTopDown,
		FrameInterval: 33 * time.Millisecond,
		Audio:         false,
		TuningFile:    "tuning.json",
		LogFile:       "mazewalk.log",
		EnemyKind:     "skitter",
	}
	if cfg != want {
		t.Errorf("ConfigFromEnv() = %+v, want %+v", cfg, want)
	}
}

func TestConfigFromEnvEmpty(t *testing.T) {
	cfg, err := ConfigFromEnv(envFrom(nil))
	if err != nil {
		t.Fatalf("ConfigFromEnv() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("ConfigFromEnv() = %+v, want defaults", cfg)
	}
}

func TestConfigFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"bad seed", map[string]string{EnvSeed: "abc"}},
		{"bad cells", map[string]string{EnvCells: "many"}},
		{"negative enemies", map[string]string{EnvEnemies: "-1"}},
		{"bad view", map[string]string{EnvView: "sideways"}},
		{"bad frame", map[string]string{EnvFrameMS: "fast"}},
		{"zero frame", map[string]string{EnvFrameMS: "0"}},
		{"bad audio", map[string]string{EnvAudio: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ConfigFromEnv(envFrom(tt.vars)); err == nil {
				t.Error("ConfigFromEnv() error = nil, want error")
			}
		})
	}
}

func TestConfigFromEnvClampsCells(t *testing.T) {
	for _, v := range []string{"0", "-5"} {
		cfg, err := ConfigFromEnv(envFrom(map[string]string{EnvCells: v}))
		if err != nil {
			t.Fatalf("ConfigFromEnv(cells=%s) error = %v", v, err)
		}
		if cfg.Cells != 1 {
			t.Errorf("ConfigFromEnv(cells=%s).Cells = %d, want 1", v, cfg.Cells)
		}
	}
}

func TestNormalized(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cells = -3
	if got := cfg.Normalized().Cells; got != 1 {
		t.Errorf("Normalized().Cells = %d, want 1", got)
	}
	if got := DefaultConfig().Normalized(); got != DefaultConfig() {
		t.Errorf("Normalized() changed a valid config: %+v", got)
	}
}
