package game

// EventKind tags something that happened while handling a command.
type EventKind int

const (
	EventMoved          EventKind = iota + 1 // Name: direction token
	EventEnemySpawned                        // Name: enemy, Amount: enemy level
	EventCombatStarted                       // Name: enemy, Amount: enemy HP
	EventPlayerHit                           // Name: enemy, Amount: damage dealt to it
	EventEnemyHit                            // Name: enemy, Amount: damage dealt to the player
	EventFled                                // Name: enemy
	EventFleeFailed                          // Name: enemy
	EventEnemyDefeated                       // Name: enemy
	EventExpGained                           // Amount: experience
	EventGoldGained                          // Amount: gold
	EventLevelUp                             // Amount: new player level
	EventPotionFound                         // Amount: potions
	EventBossDefeated                        // Name: boss
	EventKeyFound                            // Amount: keys
	EventTreasureFound                       // Amount: gold
	EventExitBlocked                         // Name: boss
	EventLevelComplete                       // Amount: completion bonus gold
	EventHealed                              // Amount: HP restored
	EventLevelEntered                        // Amount: dungeon level number
	EventVictory
	EventDefeat
	EventPotionUsed // Amount: HP restored
	EventNoPotion
	EventQuit
)

var eventNames = map[EventKind]string{
	EventMoved:         "moved",
	EventEnemySpawned:  "enemy_spawned",
	EventCombatStarted: "combat_started",
	EventPlayerHit:     "player_hit",
	EventEnemyHit:      "enemy_hit",
	EventFled:          "fled",
	EventFleeFailed:    "flee_failed",
	EventEnemyDefeated: "enemy_defeated",
	EventExpGained:     "exp_gained",
	EventGoldGained:    "gold_gained",
	EventLevelUp:       "level_up",
	EventPotionFound:   "potion_found",
	EventBossDefeated:  "boss_defeated",
	EventKeyFound:      "key_found",
	EventTreasureFound: "treasure_found",
	EventExitBlocked:   "exit_blocked",
	EventLevelComplete: "level_complete",
	EventHealed:        "healed",
	EventLevelEntered:  "level_entered",
	EventVictory:       "victory",
	EventDefeat:        "defeat",
	EventPotionUsed:    "potion_used",
	EventNoPotion:      "no_potion",
	EventQuit:          "quit",
}

// String returns the event kind's name.
func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is one tagged step of a command's outcome.
type Event struct {
	Kind   EventKind
	Amount int
	Name   string
}

// Panel is an informational view requested by a command.
type Panel int

const (
	PanelNone Panel = iota
	PanelMap
	PanelStats
	PanelInventory
)

// Result is the outcome of one handled command.
type Result struct {
	Events []Event
	Panel  Panel
}

// Has reports whether the result contains an event of kind k.
func (r Result) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// Find returns the first event of kind k.
func (r Result) Find(k EventKind) (Event, bool) {
	for _, e := range r.Events {
		if e.Kind == k {
			return e, true
		}
	}
	return Event{}, false
}
