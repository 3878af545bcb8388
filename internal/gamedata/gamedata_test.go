package gamedata

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadEnemies(t *testing.T) {
	enemies, err := LoadEnemies()
	if err != nil {
		t.Fatalf("Failed to load enemies: %v", err)
	}

	want := []string{"goblin", "orc", "troll", "dragon"}
	if len(enemies) != len(want) {
		t.Fatalf("Expected %d enemies, got %d", len(want), len(enemies))
	}

	// Order is difficulty order and must be preserved
	for i, id := range want {
		if enemies[i].ID != id {
			t.Errorf("enemies[%d].ID = %q, want %q", i, enemies[i].ID, id)
		}
	}
}

func TestGoblinBaseStats(t *testing.T) {
	registry := MustLoadTemplateRegistry()

	goblin := registry.GetByID("goblin")
	if goblin == nil {
		t.Fatal("Goblin not found by ID")
	}
	if goblin.HP != 30 || goblin.Attack != 8 || goblin.Defense != 2 {
		t.Errorf("Goblin stats = %d/%d/%d, want 30/8/2", goblin.HP, goblin.Attack, goblin.Defense)
	}
	if goblin.ExpReward != 15 || goblin.GoldReward != 10 {
		t.Errorf("Goblin rewards = %d exp/%d gold, want 15/10", goblin.ExpReward, goblin.GoldReward)
	}
}

func TestTierForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{0, 0},
		{1, 0},
		{2, 0},
		{3, 1},
		{4, 1},
		{5, 2},
		{6, 2},
		{7, 3},
		{20, 3},
	}

	for _, tt := range tests {
		if got := TierForLevel(tt.level, 4); got != tt.want {
			t.Errorf("TierForLevel(%d, 4) = %d, want %d", tt.level, got, tt.want)
		}
	}

	if got := TierForLevel(3, 0); got != -1 {
		t.Errorf("TierForLevel with no templates = %d, want -1", got)
	}
}

func TestRegistryForLevel(t *testing.T) {
	registry := MustLoadTemplateRegistry()

	if got := registry.ForLevel(4).Name; got != "Orc" {
		t.Errorf("ForLevel(4) = %q, want Orc", got)
	}
	if got := registry.ForLevel(9).Name; got != "Dragon" {
		t.Errorf("ForLevel(9) = %q, want Dragon", got)
	}

	// Returned templates are copies
	registry.ForLevel(1).HP = 1
	if got := registry.ForLevel(1).HP; got != 30 {
		t.Errorf("registry template mutated through ForLevel: HP = %d", got)
	}

	empty := NewTemplateRegistry(nil)
	if empty.ForLevel(1) != nil {
		t.Error("ForLevel on empty registry should return nil")
	}
}

func TestLoadRoomText(t *testing.T) {
	text, err := LoadRoomText()
	if err != nil {
		t.Fatalf("Failed to load room text: %v", err)
	}
	if text.Boss == "" || text.Danger == "" || text.Treasure == "" {
		t.Errorf("room text has empty entries: %+v", text)
	}
	if got := At(text.Empty, 2, 3); !strings.Contains(got, "(2, 3)") {
		t.Errorf("At(empty, 2, 3) = %q, want coordinate substituted", got)
	}
	if got := At(text.Entrance, 2, 3); got != text.Entrance {
		t.Errorf("At(entrance) = %q, want unchanged %q", got, text.Entrance)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	if _, err := Load[RoomText]("missing.txt"); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		want  tcell.Color
		valid bool
	}{
		{"#FF0000", tcell.NewRGBColor(255, 0, 0), true},
		{"00FF00", tcell.NewRGBColor(0, 255, 0), true},
		{"#CC3333", tcell.NewRGBColor(0xCC, 0x33, 0x33), true},
		{"#F60", tcell.NewRGBColor(0xFF, 0x66, 0x00), true},
		{"invalid", tcell.ColorDefault, false},
		{"#GG0000", tcell.ColorDefault, false},
		{"#FFFF", tcell.ColorDefault, false},
		{"", tcell.ColorDefault, false},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.input)
		if !tt.valid {
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("ParseHexColor(%q) error = %v, want ErrInvalidColor", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestEnemyTemplateMethods(t *testing.T) {
	def := EnemyTemplate{
		ID:    "test",
		Name:  "Test Enemy",
		Glyph: "T",
		Color: "#FF0000",
		HP:    10,
	}

	if def.GlyphRune() != 'T' {
		t.Errorf("Expected glyph 'T', got %c", def.GlyphRune())
	}

	color := def.TCellColor()
	if color == 0 {
		t.Error("TCellColor returned zero color")
	}

	def.Glyph = ""
	if def.GlyphRune() != '?' {
		t.Errorf("Expected fallback glyph '?', got %c", def.GlyphRune())
	}
}
