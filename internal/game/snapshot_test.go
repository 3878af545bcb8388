package game

import (
	"testing"

	"github.com/samdwyer/dungeondelve/internal/entity"
	"github.com/samdwyer/dungeondelve/internal/world"
)

func TestMapViewPriority(t *testing.T) {
	g, _ := newTestGame(t)
	clearLevel(g)
	g.level.Room(world.Pos{X: 1, Y: 1}).HasEnemy = true
	g.level.Room(world.Pos{X: 2, Y: 2}).HasTreasure = true
	g.level.Room(world.Pos{X: 0, Y: 1}).Visited = true
	collected := g.level.Room(world.Pos{X: 3, Y: 3})
	collected.HasTreasure = true
	collected.TreasureCollected = true
	collected.Visited = true
	// A treasure room that is also visited still shows treasure
	both := g.level.Room(world.Pos{X: 4, Y: 0})
	both.HasTreasure = true
	both.Visited = true

	m := g.MapView()
	if m.Size != 6 || len(m.Cells) != 6 {
		t.Fatalf("map size = %d, want 6", m.Size)
	}

	tests := []struct {
		pos  world.Pos
		want CellKind
	}{
		{world.Pos{X: 0, Y: 0}, CellPlayer},
		{world.Pos{X: 5, Y: 5}, CellExit},
		{world.Pos{X: 1, Y: 1}, CellEnemy},
		{world.Pos{X: 2, Y: 2}, CellTreasure},
		{world.Pos{X: 4, Y: 0}, CellTreasure},
		{world.Pos{X: 0, Y: 1}, CellVisited},
		{world.Pos{X: 3, Y: 3}, CellVisited},
		{world.Pos{X: 5, Y: 0}, CellUnexplored},
	}
	for _, tt := range tests {
		if got := m.Cells[tt.pos.X][tt.pos.Y]; got != tt.want {
			t.Errorf("cell %v = %v, want %v", tt.pos, got, tt.want)
		}
	}

	// The player outranks the exit
	g.player.MoveTo(5, 5)
	if got := g.MapView().Cells[5][5]; got != CellPlayer {
		t.Errorf("player on exit = %v, want player", got)
	}
}

func TestViewSnapshot(t *testing.T) {
	g, _ := newTestGame(t)
	clearLevel(g)
	g.player.AddItem(entity.ItemKey, 2)

	v := g.View(Result{Panel: PanelStats}, nil)

	if v.LevelNumber != 1 || v.Panel != PanelStats || v.Combat != nil || v.Summary != nil {
		t.Errorf("view = %+v", v)
	}
	if !v.Room.FirstVisit || v.Room.Description != "The dungeon entrance" {
		t.Errorf("room = %+v", v.Room)
	}
	wantDirs := []world.Direction{world.South, world.East}
	if len(v.Room.Directions) != len(wantDirs) {
		t.Fatalf("directions = %v, want %v", v.Room.Directions, wantDirs)
	}
	for i, d := range wantDirs {
		if v.Room.Directions[i] != d {
			t.Errorf("directions = %v, want %v", v.Room.Directions, wantDirs)
		}
	}

	if v.Player.HP != 100 || v.Player.NextLevelAt != 50 || v.Player.Level != 1 {
		t.Errorf("player = %+v", v.Player)
	}

	// Inventory lines are sorted by item name
	if len(v.Inventory) != 2 || v.Inventory[0] != (ItemView{"key", 2}) || v.Inventory[1] != (ItemView{"potion", 3}) {
		t.Errorf("inventory = %+v", v.Inventory)
	}
}

func TestViewDuringCombat(t *testing.T) {
	g, _ := newTestGame(t)
	clearLevel(g)
	g.level.Room(world.Pos{X: 1, Y: 0}).HasEnemy = true
	mustHandle(t, g, "s")
	mustHandle(t, g, "a")

	v := g.View(Result{}, nil)
	if v.Combat == nil {
		t.Fatal("combat view should be set while fighting")
	}
	if v.Combat.EnemyName != "Goblin" || v.Combat.EnemyHP != 24 || v.Combat.EnemyMaxHP != 30 {
		t.Errorf("combat = %+v", v.Combat)
	}
	if v.Combat.TurnsElapsed != 1 || v.Combat.PlayerHP != 99 {
		t.Errorf("combat = %+v", v.Combat)
	}
	if !v.Room.EnemyPresent || v.Room.EnemyName != "Goblin" || v.Room.EnemyLevel != 1 {
		t.Errorf("room = %+v", v.Room)
	}
}

func TestCellKindString(t *testing.T) {
	if CellPlayer.String() != "player" || CellKind(42).String() != "unknown" {
		t.Error("unexpected cell kind names")
	}
}
