package game

import (
	"errors"
	"testing"

	"github.com/samdwyer/dungeondelve/internal/world"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"n", Command{Kind: CommandMove, Direction: world.North}},
		{"S", Command{Kind: CommandMove, Direction: world.South}},
		{"  e ", Command{Kind: CommandMove, Direction: world.East}},
		{"W\n", Command{Kind: CommandMove, Direction: world.West}},
		{"map", Command{Kind: CommandMap}},
		{"Stats", Command{Kind: CommandStats}},
		{"INV", Command{Kind: CommandInventory}},
		{"use", Command{Kind: CommandUsePotion}},
		{"quit", Command{Kind: CommandQuit}},
	}

	for _, tt := range tests {
		got, err := ParseCommand(tt.input)
		if err != nil {
			t.Errorf("ParseCommand(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCommand(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestParseCommandRejects(t *testing.T) {
	for _, input := range []string{"", "   ", "north", "go n", "a", "r", "inventory"} {
		if _, err := ParseCommand(input); !errors.Is(err, ErrUnknownCommand) {
			t.Errorf("ParseCommand(%q) error = %v, want ErrUnknownCommand", input, err)
		}
	}
}

func TestParseCombatCommand(t *testing.T) {
	tests := []struct {
		input   string
		want    CommandKind
		wantErr bool
	}{
		{"a", CommandAttack, false},
		{" A", CommandAttack, false},
		{"r", CommandFlee, false},
		{"R ", CommandFlee, false},
		{"quit", CommandQuit, false},
		{"Quit", CommandQuit, false},
		{"n", 0, true},
		{"map", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseCombatCommand(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidCombatAction) {
				t.Errorf("ParseCombatCommand(%q) error = %v, want ErrInvalidCombatAction", tt.input, err)
			}
			continue
		}
		if err != nil || got.Kind != tt.want {
			t.Errorf("ParseCombatCommand(%q) = %+v, %v; want kind %v", tt.input, got, err, tt.want)
		}
	}
}

func TestResultFind(t *testing.T) {
	r := Result{Events: []Event{
		{Kind: EventPlayerHit, Amount: 6},
		{Kind: EventEnemyHit, Amount: 1},
		{Kind: EventPlayerHit, Amount: 9},
	}}

	if ev, ok := r.Find(EventPlayerHit); !ok || ev.Amount != 6 {
		t.Errorf("Find() = %+v, %v; want first hit", ev, ok)
	}
	if r.Has(EventVictory) {
		t.Error("Has(victory) should be false")
	}
	if EventLevelUp.String() != "level_up" || EventKind(999).String() != "unknown" {
		t.Error("unexpected event names")
	}
}
