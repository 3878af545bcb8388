package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeondelve/internal/combat"
	"github.com/samdwyer/dungeondelve/internal/entity"
	"github.com/samdwyer/dungeondelve/internal/gamedata"
	"github.com/samdwyer/dungeondelve/internal/rng"
	"github.com/samdwyer/dungeondelve/internal/telemetry"
	"github.com/samdwyer/dungeondelve/internal/world"
)

// Frontend presents game state and collects player input.
type Frontend interface {
	// Show presents the current state together with the last command's outcome.
	Show(view View)
	// ReadLine returns the next line of player input. io.EOF ends the session.
	ReadLine(prompt string) (string, error)
}

// Game holds the entire game state.
type Game struct {
	cfg       Config
	sessionID string

	rng       rng.Source
	generator *world.Generator
	spawner   *entity.Spawner
	resolver  *combat.Resolver

	player          *entity.Player
	level           *world.Level
	levelNumber     int
	encounter       *combat.Encounter
	mode            Mode
	status          Status
	quit            bool
	firstVisit      bool
	enemiesDefeated int
}

// Option customizes a Game at construction.
type Option func(*options)

type options struct {
	src       rng.Source
	templates *gamedata.TemplateRegistry
	text      *gamedata.RoomText
}

// WithSource replaces the seeded random source.
func WithSource(src rng.Source) Option {
	return func(o *options) { o.src = src }
}

// WithTemplates replaces the embedded enemy templates.
func WithTemplates(templates *gamedata.TemplateRegistry) Option {
	return func(o *options) { o.templates = templates }
}

// WithRoomText replaces the embedded room descriptions.
func WithRoomText(text gamedata.RoomText) Option {
	return func(o *options) { o.text = &text }
}

// New creates a game session and generates the first level.
func New(ctx context.Context, cfg Config, opts ...Option) (*Game, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.src == nil {
		o.src = rng.New(cfg.Seed)
	}
	if o.templates == nil {
		templates, err := gamedata.LoadTemplateRegistry()
		if err != nil {
			return nil, fmt.Errorf("load enemy templates: %w", err)
		}
		o.templates = templates
	}
	if o.text == nil {
		text, err := gamedata.LoadRoomText()
		if err != nil {
			return nil, fmt.Errorf("load room text: %w", err)
		}
		o.text = &text
	}

	if cfg.SessionID == "" {
		cfg.SessionID = uuid.NewString()
	}

	g := &Game{
		cfg:         cfg,
		sessionID:   cfg.SessionID,
		rng:         o.src,
		generator:   world.NewGenerator(o.src, *o.text),
		spawner:     entity.NewSpawner(o.templates),
		resolver:    combat.NewResolver(o.src),
		player:      entity.NewPlayer(),
		levelNumber: 1,
		mode:        ModeExplore,
		status:      StatusPlaying,
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	g.loadLevel(ctx)
	span.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.Int("level.size", g.level.Size),
	)
	span.End()

	return g, nil
}

// Handle parses and applies one line of player input. Invalid input returns
// ErrUnknownCommand or ErrInvalidCombatAction and leaves the state untouched.
func (g *Game) Handle(ctx context.Context, line string) (Result, error) {
	if g.IsOver() {
		return Result{}, ErrSessionOver
	}

	var (
		cmd Command
		err error
	)
	if g.mode == ModeCombat {
		cmd, err = ParseCombatCommand(line)
	} else {
		cmd, err = ParseCommand(line)
	}
	if err != nil {
		return Result{}, err
	}

	return g.Apply(ctx, cmd)
}

// Apply executes a parsed command.
func (g *Game) Apply(ctx context.Context, cmd Command) (Result, error) {
	if g.IsOver() {
		return Result{}, ErrSessionOver
	}

	inCombat := g.mode == ModeCombat
	switch cmd.Kind {
	case CommandAttack, CommandFlee:
		if !inCombat {
			return Result{}, fmt.Errorf("%w: no enemy to fight", ErrUnknownCommand)
		}
	case CommandQuit:
	default:
		if inCombat {
			return Result{}, ErrInvalidCombatAction
		}
	}

	var result Result
	switch cmd.Kind {
	case CommandMove:
		result.Events = g.move(ctx, cmd.Direction)
	case CommandMap:
		result.Panel = PanelMap
	case CommandStats:
		result.Panel = PanelStats
	case CommandInventory:
		result.Panel = PanelInventory
	case CommandUsePotion:
		result.Events = g.usePotion()
	case CommandQuit:
		result.Events = g.endSession(ctx)
	case CommandAttack:
		result.Events = g.combatTurn(ctx, combat.ActionAttack)
	case CommandFlee:
		result.Events = g.combatTurn(ctx, combat.ActionFlee)
	default:
		return Result{}, fmt.Errorf("%w: kind %d", ErrUnknownCommand, cmd.Kind)
	}

	if g.status == StatusPlaying && !g.player.IsAlive() {
		g.status = StatusGameOver
	}
	return result, nil
}

// Run executes the main game loop until the session ends or the frontend
// runs out of input. It returns the final statistics.
func (g *Game) Run(ctx context.Context, fe Frontend) (Summary, error) {
	result := Result{Events: []Event{{Kind: EventLevelEntered, Amount: g.levelNumber}}}
	var lastErr error

	for !g.IsOver() {
		fe.Show(g.View(result, lastErr))

		line, err := fe.ReadLine(g.Prompt())
		if errors.Is(err, io.EOF) {
			result, lastErr = Result{Events: g.endSession(ctx)}, nil
			break
		}
		if err != nil {
			return g.Summary(), fmt.Errorf("read command: %w", err)
		}

		result, lastErr = g.Handle(ctx, line)
	}

	fe.Show(g.View(result, lastErr))
	return g.Summary(), nil
}

// Quit ends the session without a command, as when input is abandoned,
// and returns the final statistics.
func (g *Game) Quit(ctx context.Context) Summary {
	if !g.IsOver() {
		g.endSession(ctx)
	}
	return g.Summary()
}

// Prompt returns the input prompt for the current mode.
func (g *Game) Prompt() string {
	if g.mode == ModeCombat {
		return "Attack (a) or run (r)?"
	}
	return "What do you do?"
}

// IsOver reports whether the session reached game over or victory.
func (g *Game) IsOver() bool {
	return g.status != StatusPlaying
}

// Status returns the session status.
func (g *Game) Status() Status { return g.status }

// Mode returns what kind of command the session expects.
func (g *Game) Mode() Mode { return g.mode }

// LevelNumber returns the current dungeon level.
func (g *Game) LevelNumber() int { return g.levelNumber }

// Level returns the current dungeon level's grid.
func (g *Game) Level() *world.Level { return g.level }

// Player returns the adventurer.
func (g *Game) Player() *entity.Player { return g.player }

// EnemiesDefeated returns the number of enemies killed this session.
func (g *Game) EnemiesDefeated() int { return g.enemiesDefeated }

// SessionID returns the session identifier used in telemetry.
func (g *Game) SessionID() string { return g.sessionID }

// position returns the player's coordinate.
func (g *Game) position() world.Pos {
	x, y := g.player.Position()
	return world.Pos{X: x, Y: y}
}

// currentRoom returns the room the player stands in.
func (g *Game) currentRoom() *world.Room {
	return g.level.Room(g.position())
}
