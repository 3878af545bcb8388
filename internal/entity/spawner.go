package entity

import "github.com/samdwyer/dungeondelve/internal/gamedata"

// BossPrefix marks the name of a boss enemy.
const BossPrefix = "BOSS "

const (
	scalePerLevel  = 0.3
	bossHPMultiple = 2
	bossAttackMult = 1.5
)

// ScaleFactor returns the stat multiplier for enemies on the given level.
func ScaleFactor(level int) float64 {
	// Explicit conversion forbids a fused multiply-add.
	return 1 + float64(float64(level-1)*scalePerLevel)
}

// Scale multiplies a base stat by factor and truncates toward zero.
func Scale(base int, factor float64) int {
	return int(float64(base) * factor)
}

// Spawner creates level-scaled enemies from the template registry.
type Spawner struct {
	templates *gamedata.TemplateRegistry
}

// NewSpawner creates a spawner over the given registry.
func NewSpawner(templates *gamedata.TemplateRegistry) *Spawner {
	return &Spawner{templates: templates}
}

// Spawn creates an enemy for the given dungeon level. Boss enemies get
// double health and half again the attack after level scaling.
// It returns nil if the registry holds no templates.
func (s *Spawner) Spawn(level int, boss bool) *Enemy {
	tmpl := s.templates.ForLevel(level)
	if tmpl == nil {
		return nil
	}

	factor := ScaleFactor(level)
	hp := Scale(tmpl.HP, factor)
	attack := Scale(tmpl.Attack, factor)
	name := tmpl.Name

	if boss {
		hp *= bossHPMultiple
		attack = Scale(attack, bossAttackMult)
		name = BossPrefix + name
	}

	return &Enemy{
		Stats: Stats{
			HP:      hp,
			MaxHP:   hp,
			Attack:  attack,
			Defense: Scale(tmpl.Defense, factor),
		},
		Template:   tmpl,
		Name:       name,
		Symbol:     tmpl.GlyphRune(),
		ExpReward:  Scale(tmpl.ExpReward, factor),
		GoldReward: Scale(tmpl.GoldReward, factor),
		Level:      level,
		Boss:       boss,
	}
}
