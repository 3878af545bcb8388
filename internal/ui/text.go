package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samdwyer/dungeondelve/internal/game"
	"github.com/samdwyer/dungeondelve/internal/world"
)

// Tone classifies a line of output so each frontend can style it.
type Tone int

const (
	ToneNormal Tone = iota
	ToneTitle
	ToneSubtle
	ToneGood
	ToneBad
	ToneLoot
	ToneAlert
)

// Line is one styled line of text.
type Line struct {
	Text string
	Tone Tone
}

const rule = "=================================================="

// Glyphs used on the dungeon map.
var cellGlyphs = map[game.CellKind]rune{
	game.CellPlayer:     '@',
	game.CellExit:       '>',
	game.CellEnemy:      'M',
	game.CellTreasure:   '$',
	game.CellVisited:    '.',
	game.CellUnexplored: '?',
}

// Glyph returns the map symbol for a cell kind.
func Glyph(k game.CellKind) rune {
	if r, ok := cellGlyphs[k]; ok {
		return r
	}
	return ' '
}

// WelcomeLines returns the title screen with the command reference.
func WelcomeLines() []Line {
	return []Line{
		{rule, ToneSubtle},
		{"DUNGEON DELVE", ToneTitle},
		{rule, ToneSubtle},
		{"Welcome, adventurer!", ToneNormal},
		{"Explore the dungeon, defeat monsters and gather treasure.", ToneNormal},
		{"", ToneNormal},
		{"Commands:", ToneTitle},
		{"n/s/e/w - move north/south/east/west", ToneNormal},
		{"map     - show the dungeon map", ToneNormal},
		{"stats   - show your stats", ToneNormal},
		{"inv     - show your inventory", ToneNormal},
		{"use     - drink a potion", ToneNormal},
		{"quit    - leave the game", ToneNormal},
		{"In combat: a to attack, r to run", ToneNormal},
		{rule, ToneSubtle},
	}
}

// Compose lays out a view as text. The map panel is included only when
// inlineMap is set.
func Compose(v game.View, inlineMap bool) []Line {
	lines := []Line{
		{rule, ToneSubtle},
		{fmt.Sprintf("Level %d - Position (%d, %d)", v.LevelNumber, v.Position.X, v.Position.Y), ToneTitle},
		{rule, ToneSubtle},
	}
	lines = append(lines, RoomLines(v.Room)...)

	if len(v.Events) > 0 {
		lines = append(lines, Line{})
		for _, ev := range v.Events {
			lines = append(lines, EventLine(ev))
		}
	}
	if v.Err != nil {
		lines = append(lines, Line{}, ErrorLine(v.Err))
	}

	switch v.Panel {
	case game.PanelMap:
		if inlineMap {
			lines = append(lines, Line{})
			lines = append(lines, MapLines(v.Map)...)
		}
	case game.PanelStats:
		lines = append(lines, Line{})
		lines = append(lines, StatsLines(v)...)
	case game.PanelInventory:
		lines = append(lines, Line{})
		lines = append(lines, InventoryLines(v.Inventory)...)
	}

	switch {
	case v.Summary != nil:
		lines = append(lines, Line{})
		lines = append(lines, SummaryLines(*v.Summary)...)
	case v.Combat != nil:
		lines = append(lines, Line{})
		lines = append(lines, CombatLines(*v.Combat)...)
	default:
		lines = append(lines, Line{})
		lines = append(lines, DirectionLines(v.Room.Directions)...)
	}
	return lines
}

// RoomLines describes the current room and what it holds.
func RoomLines(r game.RoomView) []Line {
	var lines []Line
	if r.FirstVisit {
		lines = append(lines, Line{r.Description, ToneNormal})
	} else {
		lines = append(lines, Line{r.Description + " (visited)", ToneSubtle})
	}

	switch {
	case r.EnemyName != "":
		lines = append(lines, Line{fmt.Sprintf("A %s is here! (level %d)", r.EnemyName, r.EnemyLevel), ToneBad})
	case r.EnemyPresent:
		lines = append(lines, Line{"A monster lurks here!", ToneBad})
	}
	if r.Treasure {
		lines = append(lines, Line{"There is treasure here!", ToneLoot})
	}
	if r.IsExit {
		if r.Boss {
			lines = append(lines, Line{"THE BOSS AWAITS! Prepare yourself!", ToneAlert})
		} else {
			lines = append(lines, Line{"The exit of this level!", ToneGood})
		}
	}
	return lines
}

// DirectionLines lists the exits from the current room.
func DirectionLines(dirs []world.Direction) []Line {
	lines := []Line{{"Directions:", ToneTitle}}
	for _, d := range dirs {
		lines = append(lines, Line{fmt.Sprintf("- %s (%s)", d.Name(), d), ToneNormal})
	}
	return lines
}

// EventLine renders one event as a sentence.
func EventLine(ev game.Event) Line {
	switch ev.Kind {
	case game.EventMoved:
		return Line{fmt.Sprintf("You head %s.", strings.ToLower(world.Direction(ev.Name).Name())), ToneSubtle}
	case game.EventEnemySpawned:
		return Line{fmt.Sprintf("A %s (level %d) appears!", ev.Name, ev.Amount), ToneBad}
	case game.EventCombatStarted:
		return Line{fmt.Sprintf("Battle with %s! Enemy HP: %d", ev.Name, ev.Amount), ToneAlert}
	case game.EventPlayerHit:
		return Line{fmt.Sprintf("You strike! %s takes %d damage.", ev.Name, ev.Amount), ToneGood}
	case game.EventEnemyHit:
		return Line{fmt.Sprintf("%s strikes! You take %d damage.", ev.Name, ev.Amount), ToneBad}
	case game.EventFled:
		return Line{fmt.Sprintf("You escaped from %s!", ev.Name), ToneNormal}
	case game.EventFleeFailed:
		return Line{fmt.Sprintf("You failed to escape %s!", ev.Name), ToneBad}
	case game.EventEnemyDefeated:
		return Line{fmt.Sprintf("You defeated %s!", ev.Name), ToneGood}
	case game.EventExpGained:
		return Line{fmt.Sprintf("+%d EXP", ev.Amount), ToneGood}
	case game.EventGoldGained:
		return Line{fmt.Sprintf("+%d gold", ev.Amount), ToneLoot}
	case game.EventLevelUp:
		return Line{fmt.Sprintf("LEVEL UP! You are now level %d.", ev.Amount), ToneAlert}
	case game.EventPotionFound:
		return Line{fmt.Sprintf("Found %d potion(s)!", ev.Amount), ToneLoot}
	case game.EventBossDefeated:
		return Line{fmt.Sprintf("VICTORY! %s has fallen!", ev.Name), ToneAlert}
	case game.EventKeyFound:
		return Line{"You obtain the boss key!", ToneLoot}
	case game.EventTreasureFound:
		return Line{fmt.Sprintf("You found treasure! +%d gold", ev.Amount), ToneLoot}
	case game.EventExitBlocked:
		return Line{fmt.Sprintf("%s blocks the way out! Defeat the boss first.", ev.Name), ToneBad}
	case game.EventLevelComplete:
		return Line{fmt.Sprintf("LEVEL COMPLETE! Completion bonus: %d gold", ev.Amount), ToneAlert}
	case game.EventHealed:
		return Line{fmt.Sprintf("You rest and recover %d HP.", ev.Amount), ToneGood}
	case game.EventLevelEntered:
		return Line{fmt.Sprintf("Entering level %d...", ev.Amount), ToneTitle}
	case game.EventVictory:
		return Line{"You conquered the dungeon!", ToneAlert}
	case game.EventDefeat:
		return Line{fmt.Sprintf("You were slain by %s.", ev.Name), ToneBad}
	case game.EventPotionUsed:
		return Line{fmt.Sprintf("You drink a potion and recover %d HP.", ev.Amount), ToneGood}
	case game.EventNoPotion:
		return Line{"You have no potions!", ToneBad}
	case game.EventQuit:
		return Line{"Thanks for playing!", ToneTitle}
	default:
		return Line{ev.Kind.String(), ToneSubtle}
	}
}

// ErrorLine explains why a command was rejected.
func ErrorLine(err error) Line {
	switch {
	case errors.Is(err, game.ErrInvalidCombatAction):
		return Line{"Invalid action! Attack (a) or run (r).", ToneBad}
	case errors.Is(err, game.ErrUnknownCommand):
		return Line{"Unknown command. Try again.", ToneBad}
	default:
		return Line{err.Error(), ToneBad}
	}
}

// MapRows returns one string per grid row.
func MapRows(m game.MapView) []string {
	rows := make([]string, 0, m.Size)
	for x := 0; x < m.Size; x++ {
		var b strings.Builder
		for y := 0; y < m.Size; y++ {
			if y > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(Glyph(m.Cells[x][y]))
		}
		rows = append(rows, b.String())
	}
	return rows
}

// MapLines returns the map with its legend.
func MapLines(m game.MapView) []Line {
	lines := []Line{{"DUNGEON MAP", ToneTitle}}
	for _, row := range MapRows(m) {
		lines = append(lines, Line{row, ToneNormal})
	}
	return append(lines, LegendLines()...)
}

// LegendLines explains the map glyphs.
func LegendLines() []Line {
	return []Line{
		{"Legend:", ToneSubtle},
		{fmt.Sprintf("%c you  %c exit  %c monster", Glyph(game.CellPlayer), Glyph(game.CellExit), Glyph(game.CellEnemy)), ToneSubtle},
		{fmt.Sprintf("%c treasure  %c visited  %c unexplored", Glyph(game.CellTreasure), Glyph(game.CellVisited), Glyph(game.CellUnexplored)), ToneSubtle},
	}
}

// StatsLines shows the player's stats.
func StatsLines(v game.View) []Line {
	p := v.Player
	return []Line{
		{"PLAYER STATS", ToneTitle},
		{fmt.Sprintf("Level: %d", p.Level), ToneNormal},
		{fmt.Sprintf("HP: %d/%d", p.HP, p.MaxHP), ToneNormal},
		{fmt.Sprintf("Attack: %d", p.Attack), ToneNormal},
		{fmt.Sprintf("Defense: %d", p.Defense), ToneNormal},
		{fmt.Sprintf("EXP: %d/%d", p.Experience, p.NextLevelAt), ToneNormal},
		{fmt.Sprintf("Gold: %d", p.Gold), ToneLoot},
		{fmt.Sprintf("Enemies defeated: %d", p.Defeated), ToneNormal},
		{fmt.Sprintf("Dungeon level: %d", v.LevelNumber), ToneNormal},
	}
}

// InventoryLines lists carried items.
func InventoryLines(items []game.ItemView) []Line {
	lines := []Line{{"INVENTORY", ToneTitle}}
	for _, it := range items {
		lines = append(lines, Line{fmt.Sprintf("%s: %d", it.Name, it.Count), ToneNormal})
	}
	return lines
}

// CombatLines shows both fighters' health during a fight.
func CombatLines(c game.CombatView) []Line {
	return []Line{
		{fmt.Sprintf("%s HP: %d/%d", c.EnemyName, c.EnemyHP, c.EnemyMaxHP), ToneBad},
		{fmt.Sprintf("Your HP: %d/%d", c.PlayerHP, c.PlayerMaxHP), ToneGood},
	}
}

// SummaryLines shows the final statistics.
func SummaryLines(s game.Summary) []Line {
	title := Line{"GAME OVER", ToneBad}
	switch {
	case s.Outcome == game.StatusVictory:
		title = Line{"VICTORY! You conquered the dungeon!", ToneAlert}
	case s.Quit:
		title = Line{"FAREWELL, ADVENTURER", ToneTitle}
	}
	return []Line{
		{rule, ToneSubtle},
		title,
		{rule, ToneSubtle},
		{fmt.Sprintf("Dungeon level reached: %d", s.LevelReached), ToneNormal},
		{fmt.Sprintf("Player level: %d", s.PlayerLevel), ToneNormal},
		{fmt.Sprintf("Gold collected: %d", s.Gold), ToneLoot},
		{fmt.Sprintf("Enemies defeated: %d", s.EnemiesDefeated), ToneNormal},
	}
}
