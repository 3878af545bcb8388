package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeondelve/internal/combat"
	"github.com/samdwyer/dungeondelve/internal/gamedata"
)

// Enemy represents a hostile creature guarding a room.
type Enemy struct {
	Stats
	Template   *gamedata.EnemyTemplate // Template the enemy was scaled from
	Name       string                  // Display name, boss-prefixed for bosses
	Symbol     rune                    // Display symbol
	ExpReward  int                     // Experience granted on defeat
	GoldReward int                     // Gold granted on defeat
	Level      int                     // Dungeon level the enemy spawned on
	Boss       bool                    // True for the exit guardian on boss levels
}

// GetName returns the enemy's name.
func (e *Enemy) GetName() string { return e.Name }

// ID returns the enemy's template identifier.
func (e *Enemy) ID() string {
	if e.Template != nil {
		return e.Template.ID
	}
	return "unknown"
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	if e.Boss {
		return tcell.ColorRed
	}
	if e.Template != nil {
		return e.Template.TCellColor()
	}
	return tcell.ColorPurple
}

// Ensure Enemy implements combat.Combatant
var _ combat.Combatant = (*Enemy)(nil)
