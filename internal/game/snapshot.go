package game

import (
	"maps"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeondelve/internal/world"
)

// View is a read-only snapshot of the session for a frontend to render.
type View struct {
	LevelNumber int
	Position    world.Pos
	Mode        Mode
	Status      Status
	Room        RoomView
	Player      PlayerView
	Inventory   []ItemView
	Map         MapView
	Combat      *CombatView // Set while fighting
	Summary     *Summary    // Set once the session is over
	Events      []Event     // Outcome of the last command
	Panel       Panel       // Informational panel requested by the last command
	Err         error       // Rejection of the last command, if any
}

// RoomView describes the room the player stands in.
type RoomView struct {
	Description  string
	FirstVisit   bool
	EnemyPresent bool
	EnemyName    string // Empty until the enemy has spawned
	EnemyLevel   int
	Treasure     bool
	IsExit       bool
	Boss         bool
	Directions   []world.Direction
}

// PlayerView holds the player's stats.
type PlayerView struct {
	Level       int
	HP, MaxHP   int
	Attack      int
	Defense     int
	Experience  int
	NextLevelAt int
	Gold        int
	Defeated    int // Enemies defeated this session
}

// ItemView is one inventory line.
type ItemView struct {
	Name  string
	Count int
}

// CellKind classifies a map cell for display.
type CellKind int

const (
	CellUnexplored CellKind = iota
	CellVisited
	CellTreasure
	CellEnemy
	CellExit
	CellPlayer
)

// String returns a human-readable cell kind.
func (c CellKind) String() string {
	switch c {
	case CellUnexplored:
		return "unexplored"
	case CellVisited:
		return "visited"
	case CellTreasure:
		return "treasure"
	case CellEnemy:
		return "enemy"
	case CellExit:
		return "exit"
	case CellPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// MapView is the level grid indexed [x][y].
type MapView struct {
	Size  int
	Cells [][]CellKind
}

// CombatView describes the active fight.
type CombatView struct {
	EnemyName    string
	EnemySymbol  rune
	EnemyColor   tcell.Color
	Boss         bool
	EnemyHP      int
	EnemyMaxHP   int
	PlayerHP     int
	PlayerMaxHP  int
	TurnsElapsed int
}

// Summary is the final statistics of a session.
type Summary struct {
	Outcome         Status
	Quit            bool
	LevelReached    int
	PlayerLevel     int
	Gold            int
	EnemiesDefeated int
}

// View returns a snapshot of the session together with the last command's
// outcome.
func (g *Game) View(last Result, lastErr error) View {
	v := View{
		LevelNumber: g.levelNumber,
		Position:    g.position(),
		Mode:        g.mode,
		Status:      g.status,
		Room:        g.roomView(),
		Player:      g.playerView(),
		Inventory:   g.inventoryView(),
		Map:         g.MapView(),
		Events:      last.Events,
		Panel:       last.Panel,
		Err:         lastErr,
	}

	if g.encounter != nil {
		enemy := g.currentRoom().Enemy
		v.Combat = &CombatView{
			EnemyName:    enemy.Name,
			EnemySymbol:  enemy.Symbol,
			EnemyColor:   enemy.Color(),
			Boss:         enemy.Boss,
			EnemyHP:      enemy.HP,
			EnemyMaxHP:   enemy.MaxHP,
			PlayerHP:     g.player.HP,
			PlayerMaxHP:  g.player.MaxHP,
			TurnsElapsed: g.encounter.Turns,
		}
	}
	if g.IsOver() {
		s := g.Summary()
		v.Summary = &s
	}
	return v
}

// Summary returns the session's statistics.
func (g *Game) Summary() Summary {
	return Summary{
		Outcome:         g.status,
		Quit:            g.quit,
		LevelReached:    g.levelNumber,
		PlayerLevel:     g.player.Level,
		Gold:            g.player.Gold,
		EnemiesDefeated: g.enemiesDefeated,
	}
}

// MapView classifies every cell of the current level. Priority is player,
// exit, enemy, treasure, visited, unexplored.
func (g *Game) MapView() MapView {
	size := g.level.Size
	pos := g.position()

	cells := make([][]CellKind, size)
	for x := range cells {
		cells[x] = make([]CellKind, size)
		for y := range cells[x] {
			p := world.Pos{X: x, Y: y}
			room := g.level.Room(p)
			switch {
			case p == pos:
				cells[x][y] = CellPlayer
			case p == g.level.Exit:
				cells[x][y] = CellExit
			case room.HasEnemy:
				cells[x][y] = CellEnemy
			case room.HasUncollectedTreasure():
				cells[x][y] = CellTreasure
			case room.Visited:
				cells[x][y] = CellVisited
			default:
				cells[x][y] = CellUnexplored
			}
		}
	}
	return MapView{Size: size, Cells: cells}
}

func (g *Game) roomView() RoomView {
	room := g.currentRoom()
	rv := RoomView{
		Description:  room.Description,
		FirstVisit:   g.firstVisit,
		EnemyPresent: room.HasEnemy,
		Treasure:     room.HasUncollectedTreasure(),
		IsExit:       room.IsExit,
		Boss:         room.HasBoss,
		Directions:   g.level.AvailableDirections(g.position()),
	}
	if enemy := room.LiveEnemy(); enemy != nil {
		rv.EnemyName = enemy.Name
		rv.EnemyLevel = enemy.Level
	}
	return rv
}

func (g *Game) playerView() PlayerView {
	p := g.player
	return PlayerView{
		Level:       p.Level,
		HP:          p.HP,
		MaxHP:       p.MaxHP,
		Attack:      p.Attack,
		Defense:     p.Defense,
		Experience:  p.Experience,
		NextLevelAt: p.NextLevelAt(),
		Gold:        p.Gold,
		Defeated:    g.enemiesDefeated,
	}
}

func (g *Game) inventoryView() []ItemView {
	names := slices.Sorted(maps.Keys(g.player.Inventory))
	items := make([]ItemView, 0, len(names))
	for _, name := range names {
		items = append(items, ItemView{Name: name, Count: g.player.Inventory[name]})
	}
	return items
}
