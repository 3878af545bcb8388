package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samdwyer/dungeondelve/internal/combat"
	"github.com/samdwyer/dungeondelve/internal/world"
)

var (
	// ErrUnknownCommand is returned for input that is not a command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrInvalidCombatAction is returned for anything but attack or flee during combat.
	ErrInvalidCombatAction = errors.New("invalid combat action")
	// ErrSessionOver is returned when a command arrives after the game ended.
	ErrSessionOver = errors.New("session is over")
)

// CommandKind identifies a player command.
type CommandKind int

const (
	CommandMove CommandKind = iota + 1
	CommandMap
	CommandStats
	CommandInventory
	CommandUsePotion
	CommandQuit
	CommandAttack
	CommandFlee
)

// Command is a parsed line of player input.
type Command struct {
	Kind      CommandKind
	Direction world.Direction // Set for CommandMove
}

// ParseCommand parses an exploration command. Input is trimmed and
// case-insensitive.
func ParseCommand(line string) (Command, error) {
	token := strings.ToLower(strings.TrimSpace(line))

	if dir, ok := world.ParseDirection(token); ok {
		return Command{Kind: CommandMove, Direction: dir}, nil
	}

	switch token {
	case "map":
		return Command{Kind: CommandMap}, nil
	case "stats":
		return Command{Kind: CommandStats}, nil
	case "inv":
		return Command{Kind: CommandInventory}, nil
	case "use":
		return Command{Kind: CommandUsePotion}, nil
	case "quit":
		return Command{Kind: CommandQuit}, nil
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, token)
	}
}

// ParseCombatCommand parses input while a fight is in progress. Only attack,
// flee and quit are accepted.
func ParseCombatCommand(line string) (Command, error) {
	if action, ok := combat.ParseAction(line); ok {
		if action == combat.ActionFlee {
			return Command{Kind: CommandFlee}, nil
		}
		return Command{Kind: CommandAttack}, nil
	}
	if strings.EqualFold(strings.TrimSpace(line), "quit") {
		return Command{Kind: CommandQuit}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrInvalidCombatAction, strings.TrimSpace(line))
}
