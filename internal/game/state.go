// Package game provides the play session: movement, room events, combat
// turns and level progression.
package game

// Mode is what kind of command the session is waiting for.
type Mode int

const (
	// ModeExplore accepts movement and menu commands.
	ModeExplore Mode = iota
	// ModeCombat accepts only attack and flee.
	ModeCombat
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeExplore:
		return "explore"
	case ModeCombat:
		return "combat"
	default:
		return "unknown"
	}
}

// Status is the session's terminal state. GameOver and Victory are
// mutually exclusive and final.
type Status int

const (
	// StatusPlaying means the session loop keeps running.
	StatusPlaying Status = iota
	// StatusGameOver is reached by death or quitting.
	StatusGameOver
	// StatusVictory is reached by clearing the final level.
	StatusVictory
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game_over"
	case StatusVictory:
		return "victory"
	default:
		return "unknown"
	}
}
