package gamedata

import "github.com/gdamore/tcell/v2"

// EnemyDef defines a roaming enemy kind loaded from JSON.
type EnemyDef struct {
	ID          string  `json:"id"`          // Unique identifier (e.g., "crawler")
	Name        string  `json:"name"`        // Display name (e.g., "Crawler")
	Glyph       string  `json:"glyph"`       // Single character for rendering (e.g., "c")
	Color       string  `json:"color"`       // Hex color code (e.g., "#00FF00")
	Speed       float32 `json:"speed"`       // Per-axis speed bound; 0 uses the tuning default
	SpawnWeight int     `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// SpeedOr returns the kind's speed, or fallback when the kind doesn't set one.
func (e *EnemyDef) SpeedOr(fallback float32) float32 {
	if e == nil || e.Speed <= 0 {
		return fallback
	}
	return e.Speed
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
