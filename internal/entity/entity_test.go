package entity

import (
	"strings"
	"testing"

	"github.com/samdwyer/dungeondelve/internal/gamedata"
)

func TestTakeDamageFloor(t *testing.T) {
	tests := []struct {
		name    string
		defense int
		amount  int
		want    int
	}{
		{"above defense", 5, 12, 7},
		{"equal to defense", 5, 5, 1},
		{"below defense", 10, 3, 1},
		{"zero amount", 2, 0, 1},
		{"negative amount", 2, -4, 1},
		{"no defense", 0, 9, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Stats{HP: 50, MaxHP: 50, Defense: tt.defense}
			got := s.TakeDamage(tt.amount)
			if got != tt.want {
				t.Errorf("TakeDamage(%d) with defense %d = %d, want %d", tt.amount, tt.defense, got, tt.want)
			}
			if s.HP != 50-tt.want {
				t.Errorf("HP = %d, want %d", s.HP, 50-tt.want)
			}
		})
	}
}

func TestTakeDamageCanGoNegative(t *testing.T) {
	s := &Stats{HP: 3, MaxHP: 10}
	s.TakeDamage(10)
	if s.HP != -7 {
		t.Errorf("HP = %d, want -7", s.HP)
	}
	if s.IsAlive() {
		t.Error("combatant with negative HP should not be alive")
	}
}

func TestHealClamps(t *testing.T) {
	s := &Stats{HP: 90, MaxHP: 100}
	if got := s.Heal(30); got != 10 {
		t.Errorf("Heal(30) = %d, want 10", got)
	}
	if s.HP != 100 {
		t.Errorf("HP = %d, want 100", s.HP)
	}
	if got := s.Heal(-5); got != 0 {
		t.Errorf("Heal(-5) = %d, want 0", got)
	}
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer()

	if p.HP != 100 || p.MaxHP != 100 || p.Attack != 10 || p.Defense != 5 {
		t.Errorf("NewPlayer stats = %+v, want 100/100/10/5", p.Stats)
	}
	if p.Level != 1 || p.Experience != 0 || p.Gold != 0 {
		t.Errorf("NewPlayer progress = level %d exp %d gold %d", p.Level, p.Experience, p.Gold)
	}
	if p.ItemCount(ItemPotion) != 3 || p.ItemCount(ItemKey) != 0 {
		t.Errorf("NewPlayer inventory = %v, want potion:3 key:0", p.Inventory)
	}
	if x, y := p.Position(); x != 0 || y != 0 {
		t.Errorf("NewPlayer position = (%d,%d), want (0,0)", x, y)
	}
}

func TestAddExperienceBelowThreshold(t *testing.T) {
	p := NewPlayer()
	if gained := p.AddExperience(49); gained != 0 {
		t.Errorf("AddExperience(49) gained %d levels, want 0", gained)
	}
	if p.Experience != 49 {
		t.Errorf("Experience = %d, want 49", p.Experience)
	}
}

func TestAddExperienceLevelUp(t *testing.T) {
	p := NewPlayer()
	p.HP = 12

	gained := p.AddExperience(60)

	if gained != 1 {
		t.Fatalf("AddExperience(60) gained %d levels, want 1", gained)
	}
	if p.Level != 2 {
		t.Errorf("Level = %d, want 2", p.Level)
	}
	if p.Experience != 0 {
		t.Errorf("Experience = %d, want 0 after level up", p.Experience)
	}
	if p.MaxHP != 120 || p.HP != 120 {
		t.Errorf("HP = %d/%d, want 120/120", p.HP, p.MaxHP)
	}
	if p.Attack != 15 || p.Defense != 7 {
		t.Errorf("Attack/Defense = %d/%d, want 15/7", p.Attack, p.Defense)
	}
}

func TestAddExperienceInvariant(t *testing.T) {
	for _, exp := range []int{0, 1, 49, 50, 99, 100, 250, 1000} {
		p := NewPlayer()
		p.AddExperience(exp)
		if p.Experience >= p.NextLevelAt() {
			t.Errorf("after AddExperience(%d): experience %d >= threshold %d", exp, p.Experience, p.NextLevelAt())
		}
	}
}

func TestUsePotion(t *testing.T) {
	p := NewPlayer()
	p.HP = 50

	healed, ok := p.UsePotion()
	if !ok || healed != PotionHeal {
		t.Errorf("UsePotion() = %d, %v, want %d, true", healed, ok, PotionHeal)
	}
	if p.ItemCount(ItemPotion) != 2 {
		t.Errorf("potions = %d, want 2", p.ItemCount(ItemPotion))
	}

	p.Inventory[ItemPotion] = 0
	if _, ok := p.UsePotion(); ok {
		t.Error("UsePotion() with no potions should fail")
	}
	if p.ItemCount(ItemPotion) != 0 {
		t.Errorf("potions = %d, want 0", p.ItemCount(ItemPotion))
	}
}

func TestAddItemIgnoresNonPositive(t *testing.T) {
	p := NewPlayer()
	p.AddItem(ItemKey, 0)
	p.AddItem(ItemKey, -2)
	p.AddItem(ItemKey, 1)
	if p.ItemCount(ItemKey) != 1 {
		t.Errorf("keys = %d, want 1", p.ItemCount(ItemKey))
	}
}

func TestScaleFactor(t *testing.T) {
	tests := []struct {
		level int
		base  int
		want  int
	}{
		{1, 30, 30},
		{2, 30, 39},
		{4, 50, 95},
		{4, 12, 22},
		{4, 20, 38},
		{5, 80, 176},
		{7, 150, 420},
	}

	for _, tt := range tests {
		if got := Scale(tt.base, ScaleFactor(tt.level)); got != tt.want {
			t.Errorf("Scale(%d, level %d) = %d, want %d", tt.base, tt.level, got, tt.want)
		}
	}
}

func TestSpawnLevelOneGoblin(t *testing.T) {
	s := NewSpawner(gamedata.MustLoadTemplateRegistry())

	e := s.Spawn(1, false)

	if e.Name != "Goblin" {
		t.Errorf("Name = %q, want Goblin", e.Name)
	}
	if e.HP != 30 || e.MaxHP != 30 || e.Attack != 8 || e.Defense != 2 {
		t.Errorf("stats = %+v, want 30/30/8/2", e.Stats)
	}
	if e.ExpReward != 15 || e.GoldReward != 10 {
		t.Errorf("rewards = %d/%d, want 15/10", e.ExpReward, e.GoldReward)
	}
	if e.Level != 1 || e.Boss {
		t.Errorf("Level/Boss = %d/%v, want 1/false", e.Level, e.Boss)
	}
}

func TestSpawnLevelFourOrc(t *testing.T) {
	s := NewSpawner(gamedata.MustLoadTemplateRegistry())

	e := s.Spawn(4, false)

	if e.ID() != "orc" {
		t.Errorf("ID = %q, want orc", e.ID())
	}
	if e.HP != 95 {
		t.Errorf("HP = %d, want 95", e.HP)
	}
	if e.Attack != 22 || e.Defense != 7 || e.ExpReward != 47 || e.GoldReward != 38 {
		t.Errorf("scaled = atk %d def %d exp %d gold %d, want 22/7/47/38",
			e.Attack, e.Defense, e.ExpReward, e.GoldReward)
	}
	if e.Level != 4 {
		t.Errorf("Level = %d, want 4 (dungeon level, not tier)", e.Level)
	}
}

func TestSpawnBoss(t *testing.T) {
	s := NewSpawner(gamedata.MustLoadTemplateRegistry())

	e := s.Spawn(3, true)

	if !strings.HasPrefix(e.Name, BossPrefix) || e.Name != "BOSS Orc" {
		t.Errorf("Name = %q, want BOSS Orc", e.Name)
	}
	// Orc at level 3: hp 80, attack 19 before boss modifiers
	if e.HP != 160 || e.MaxHP != 160 {
		t.Errorf("HP = %d/%d, want 160/160", e.HP, e.MaxHP)
	}
	if e.Attack != 28 {
		t.Errorf("Attack = %d, want 28", e.Attack)
	}
	if e.Defense != 6 {
		t.Errorf("Defense = %d, want 6 (bosses keep scaled defense)", e.Defense)
	}
	if !e.Boss {
		t.Error("Boss flag not set")
	}
}

func TestSpawnEmptyRegistry(t *testing.T) {
	s := NewSpawner(gamedata.NewTemplateRegistry(nil))
	if e := s.Spawn(1, false); e != nil {
		t.Errorf("Spawn with empty registry = %+v, want nil", e)
	}
}
