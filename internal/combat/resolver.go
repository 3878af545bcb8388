// Package combat provides the turn-based duel between the player and a
// room's enemy.
package combat

import (
	"errors"
	"strings"

	"github.com/samdwyer/dungeondelve/internal/rng"
)

// Combatant is the interface for any entity that can participate in combat.
// Both the player and enemies implement this interface.
type Combatant interface {
	// Identity
	GetName() string
	IsAlive() bool

	// Stats
	GetHP() int
	GetMaxHP() int
	GetAttack() int
	GetDefense() int

	// Mutations
	TakeDamage(amount int) int // Returns actual damage taken
}

// Action is a player decision during combat.
type Action int

const (
	// ActionAttack strikes the enemy, who counter-attacks if it survives.
	ActionAttack Action = iota + 1
	// ActionFlee tries to escape the room's enemy.
	ActionFlee
)

// String returns the command token for the action.
func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionFlee:
		return "flee"
	default:
		return "unknown"
	}
}

// ParseAction maps a combat command token ("a" or "r") to an Action.
func ParseAction(token string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "a":
		return ActionAttack, true
	case "r":
		return ActionFlee, true
	default:
		return 0, false
	}
}

// Outcome is the state of an encounter.
type Outcome int

const (
	// Ongoing - waiting for the next player action
	Ongoing Outcome = iota
	// PlayerVictory - the enemy dropped to zero health
	PlayerVictory
	// PlayerDefeated - the player dropped to zero health
	PlayerDefeated
	// PlayerFled - the player escaped; the enemy keeps its health
	PlayerFled
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case PlayerVictory:
		return "victory"
	case PlayerDefeated:
		return "defeat"
	case PlayerFled:
		return "fled"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the encounter has ended.
func (o Outcome) IsTerminal() bool {
	return o != Ongoing
}

// Tuning for the attack and flee rolls.
const (
	playerSwingMin = -2
	playerSwingMax = 3
	enemySwingMin  = -2
	enemySwingMax  = 2

	// FleeChance is the probability that a flee attempt succeeds.
	FleeChance = 0.7
)

var (
	// ErrUnknownAction is returned for an action the resolver does not handle.
	ErrUnknownAction = errors.New("unknown combat action")
	// ErrEncounterOver is returned when acting in a finished encounter.
	ErrEncounterOver = errors.New("encounter is over")
)

// Encounter holds the state of one fight.
type Encounter struct {
	Player  Combatant
	Enemy   Combatant
	Outcome Outcome
	Turns   int // Actions resolved so far
}

// NewEncounter starts a fight between the player and an enemy.
func NewEncounter(player, enemy Combatant) *Encounter {
	return &Encounter{
		Player:  player,
		Enemy:   enemy,
		Outcome: Ongoing,
	}
}

// TurnResult describes what happened during one resolved action.
type TurnResult struct {
	Action        Action
	PlayerDamage  int  // Damage the player dealt to the enemy
	EnemyDamage   int  // Damage the enemy dealt to the player
	EnemyAttacked bool // True if the enemy took a swing this turn
	FleeFailed    bool // True if a flee attempt was caught
	Outcome       Outcome
}

// Resolver applies player actions to an encounter.
type Resolver struct {
	rng rng.Source
}

// NewResolver creates a resolver drawing from src.
func NewResolver(src rng.Source) *Resolver {
	return &Resolver{rng: src}
}

// Resolve applies one player action and advances the encounter. Unknown
// actions return ErrUnknownAction without consuming a turn.
func (r *Resolver) Resolve(enc *Encounter, action Action) (TurnResult, error) {
	if enc.Outcome.IsTerminal() {
		return TurnResult{Outcome: enc.Outcome}, ErrEncounterOver
	}

	result := TurnResult{Action: action}

	switch action {
	case ActionAttack:
		result.PlayerDamage = enc.Enemy.TakeDamage(r.playerStrike(enc.Player))
		if !enc.Enemy.IsAlive() {
			enc.Outcome = PlayerVictory
			break
		}
		r.enemyTurn(enc, &result)

	case ActionFlee:
		if rng.Chance(r.rng, FleeChance) {
			enc.Outcome = PlayerFled
			break
		}
		result.FleeFailed = true
		r.enemyTurn(enc, &result)

	default:
		return TurnResult{Outcome: enc.Outcome}, ErrUnknownAction
	}

	enc.Turns++
	result.Outcome = enc.Outcome
	return result, nil
}

// enemyTurn lets the enemy strike and checks for player defeat.
func (r *Resolver) enemyTurn(enc *Encounter, result *TurnResult) {
	result.EnemyAttacked = true
	result.EnemyDamage = enc.Player.TakeDamage(r.enemyStrike(enc.Enemy))
	if !enc.Player.IsAlive() {
		enc.Outcome = PlayerDefeated
	}
}

// playerStrike rolls the raw damage of a player attack before defense.
func (r *Resolver) playerStrike(player Combatant) int {
	return max(1, player.GetAttack()+rng.Between(r.rng, playerSwingMin, playerSwingMax))
}

// enemyStrike rolls the raw damage of an enemy attack before defense.
func (r *Resolver) enemyStrike(enemy Combatant) int {
	return max(1, enemy.GetAttack()+rng.Between(r.rng, enemySwingMin, enemySwingMax))
}
