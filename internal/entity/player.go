package entity

import "github.com/samdwyer/dungeondelve/internal/combat"

// Inventory item names.
const (
	ItemPotion = "potion"
	ItemKey    = "key"
)

// Starting values for a new adventurer.
const (
	StartHP      = 100
	StartAttack  = 10
	StartDefense = 5

	// expPerLevel times the current level is the experience needed to level up.
	expPerLevel = 50

	levelUpHP      = 20
	levelUpAttack  = 5
	levelUpDefense = 2

	// PotionHeal is the HP restored by drinking one potion.
	PotionHeal = 30
)

// Player is the adventurer controlled by the user.
type Player struct {
	Stats
	Name       string
	Level      int
	Experience int
	Gold       int
	Inventory  map[string]int
	X, Y       int // Current room coordinate
}

// NewPlayer creates a level 1 adventurer at the origin.
func NewPlayer() *Player {
	return &Player{
		Stats: Stats{
			HP:      StartHP,
			MaxHP:   StartHP,
			Attack:  StartAttack,
			Defense: StartDefense,
		},
		Name:      "You",
		Level:     1,
		Inventory: map[string]int{ItemPotion: 3, ItemKey: 0},
	}
}

// GetName returns the player's name.
func (p *Player) GetName() string { return p.Name }

// MoveTo places the player in the given room.
func (p *Player) MoveTo(x, y int) {
	p.X = x
	p.Y = y
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}

// NextLevelAt returns the experience required for the next level.
func (p *Player) NextLevelAt() int {
	return p.Level * expPerLevel
}

// AddExperience grants experience and applies every level-up it earns,
// re-checking the threshold after each one. It returns the number of
// levels gained.
func (p *Player) AddExperience(exp int) int {
	p.Experience += exp
	gained := 0
	for p.Experience >= p.NextLevelAt() {
		p.levelUp()
		gained++
	}
	return gained
}

// levelUp raises the player one level and fully restores health.
// Surplus experience is discarded.
func (p *Player) levelUp() {
	p.Level++
	p.MaxHP += levelUpHP
	p.Attack += levelUpAttack
	p.Defense += levelUpDefense
	p.HP = p.MaxHP
	p.Experience = 0
}

// AddItem adds count of an item to the inventory.
func (p *Player) AddItem(name string, count int) {
	if count <= 0 {
		return
	}
	p.Inventory[name] += count
}

// ItemCount returns how many of an item the player carries.
func (p *Player) ItemCount(name string) int {
	return p.Inventory[name]
}

// UsePotion drinks a potion if one is available and returns the HP restored.
// ok is false when the inventory has no potions.
func (p *Player) UsePotion() (healed int, ok bool) {
	if p.Inventory[ItemPotion] <= 0 {
		return 0, false
	}
	p.Inventory[ItemPotion]--
	return p.Heal(PotionHeal), true
}

// Ensure Player implements combat.Combatant
var _ combat.Combatant = (*Player)(nil)
