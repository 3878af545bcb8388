package gamedata

import "github.com/gdamore/tcell/v2"

// EnemyTemplate defines the base stats of an enemy tier loaded from JSON.
// Templates are listed in ascending difficulty and never mutated after load.
type EnemyTemplate struct {
	ID         string `json:"id"`         // Unique identifier (e.g., "goblin")
	Name       string `json:"name"`       // Display name (e.g., "Goblin")
	Glyph      string `json:"glyph"`      // Single character for map rendering
	Color      string `json:"color"`      // Hex color code (e.g., "#00FF00")
	HP         int    `json:"hp"`         // Base hit points
	Attack     int    `json:"attack"`     // Base attack power
	Defense    int    `json:"defense"`    // Base defense value
	ExpReward  int    `json:"exp"`        // Base experience granted on defeat
	GoldReward int    `json:"gold"`       // Base gold granted on defeat
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyTemplate) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyTemplate) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyTemplate `json:"enemies"`
}

// LoadEnemies loads enemy templates from the embedded enemies.json file.
func LoadEnemies() ([]EnemyTemplate, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
