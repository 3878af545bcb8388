package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeondelve/internal/entity"
	"github.com/samdwyer/dungeondelve/internal/rng"
	"github.com/samdwyer/dungeondelve/internal/telemetry"
	"github.com/samdwyer/dungeondelve/internal/world"
)

// Progression tuning.
const (
	// FinalLevel is the dungeon level whose exit wins the game.
	FinalLevel = 5

	completionGoldPerLevel = 25

	potionDropChance = 0.3
	bossKeyReward    = 1

	treasureGoldMin      = 20
	treasureGoldMax      = 50
	treasurePotionChance = 0.4
	treasurePotionMin    = 1
	treasurePotionMax    = 3
)

// roomStep is one guarded stage of resolving a room. halt stops the
// remaining stages.
type roomStep func(ctx context.Context, room *world.Room) (events []Event, halt bool)

// entrySteps returns the full cascade run when the player walks in.
func (g *Game) entrySteps() []roomStep {
	return []roomStep{g.spawnStep, g.encounterStep, g.treasureStep, g.exitStep}
}

// afterCombatSteps returns the stages that follow a won fight.
func (g *Game) afterCombatSteps() []roomStep {
	return []roomStep{g.treasureStep, g.exitStep}
}

// runSteps runs steps in order until one halts.
func (g *Game) runSteps(ctx context.Context, room *world.Room, steps []roomStep) []Event {
	var events []Event
	for _, step := range steps {
		out, halt := step(ctx, room)
		events = append(events, out...)
		if halt {
			break
		}
	}
	return events
}

// move steps the player one room in dir. Moves off the grid are ignored.
func (g *Game) move(ctx context.Context, dir world.Direction) []Event {
	target := g.position().Step(dir)
	if !g.level.InBounds(target) {
		return nil
	}

	g.player.MoveTo(target.X, target.Y)
	g.firstVisit = g.level.Room(target).Visit()

	events := []Event{{Kind: EventMoved, Name: string(dir)}}
	return append(events, g.enterRoom(ctx)...)
}

// enterRoom resolves the room the player just walked into.
func (g *Game) enterRoom(ctx context.Context) []Event {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "room.enter")
	defer span.End()

	room := g.currentRoom()
	pos := g.position()
	span.SetAttributes(
		attribute.Int("room.x", pos.X),
		attribute.Int("room.y", pos.Y),
		attribute.Bool("room.first_visit", g.firstVisit),
		attribute.Bool("room.enemy", room.HasEnemy),
		attribute.Bool("room.treasure", room.HasUncollectedTreasure()),
		attribute.Bool("room.exit", room.IsExit),
	)

	return g.runSteps(ctx, room, g.entrySteps())
}

// spawnStep creates the room's enemy on first entry.
func (g *Game) spawnStep(_ context.Context, room *world.Room) ([]Event, bool) {
	if !room.NeedsSpawn() {
		return nil, false
	}
	room.Enemy = g.spawner.Spawn(g.levelNumber, room.HasBoss)
	if room.Enemy == nil {
		return nil, false
	}
	return []Event{{Kind: EventEnemySpawned, Name: room.Enemy.Name, Amount: room.Enemy.Level}}, false
}

// encounterStep starts a fight with a live enemy and halts until it ends.
func (g *Game) encounterStep(ctx context.Context, room *world.Room) ([]Event, bool) {
	enemy := room.LiveEnemy()
	if enemy == nil {
		return nil, false
	}
	return g.startCombat(ctx, enemy), true
}

// treasureStep collects uncollected treasure.
func (g *Game) treasureStep(_ context.Context, room *world.Room) ([]Event, bool) {
	if !room.CollectTreasure() {
		return nil, false
	}

	gold := rng.Between(g.rng, treasureGoldMin, treasureGoldMax) * g.levelNumber
	g.player.Gold += gold
	events := []Event{{Kind: EventTreasureFound, Amount: gold}}

	if rng.Chance(g.rng, treasurePotionChance) {
		potions := rng.Between(g.rng, treasurePotionMin, treasurePotionMax)
		g.player.AddItem(entity.ItemPotion, potions)
		events = append(events, Event{Kind: EventPotionFound, Amount: potions})
	}
	return events, false
}

// exitStep completes the level unless a boss still guards the exit.
func (g *Game) exitStep(ctx context.Context, room *world.Room) ([]Event, bool) {
	if !room.IsExit {
		return nil, false
	}
	if boss := room.LiveEnemy(); room.HasBoss && boss != nil {
		return []Event{{Kind: EventExitBlocked, Name: boss.Name}}, true
	}
	return g.completeLevel(ctx), true
}

// defeatEnemy awards the spoils of a won fight and clears the room.
func (g *Game) defeatEnemy(room *world.Room) []Event {
	enemy := room.Enemy
	events := []Event{
		{Kind: EventEnemyDefeated, Name: enemy.Name},
		{Kind: EventExpGained, Amount: enemy.ExpReward},
	}

	levelsBefore := g.player.Level
	gained := g.player.AddExperience(enemy.ExpReward)
	for i := 1; i <= gained; i++ {
		events = append(events, Event{Kind: EventLevelUp, Amount: levelsBefore + i})
	}

	g.player.Gold += enemy.GoldReward
	g.enemiesDefeated++
	events = append(events, Event{Kind: EventGoldGained, Amount: enemy.GoldReward})

	if rng.Chance(g.rng, potionDropChance) {
		g.player.AddItem(entity.ItemPotion, 1)
		events = append(events, Event{Kind: EventPotionFound, Amount: 1})
	}

	if room.HasBoss {
		g.player.AddItem(entity.ItemKey, bossKeyReward)
		events = append(events,
			Event{Kind: EventBossDefeated, Name: enemy.Name},
			Event{Kind: EventKeyFound, Amount: bossKeyReward},
		)
	}

	room.ClearEnemy()
	return events
}

// completeLevel pays the completion bonus, heals, and either wins the game
// or descends to the next level.
func (g *Game) completeLevel(ctx context.Context) []Event {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "level.complete")
	defer span.End()

	bonus := g.levelNumber * completionGoldPerLevel
	g.player.Gold += bonus
	healed := g.player.Heal(g.player.MaxHP / 2)

	events := []Event{
		{Kind: EventLevelComplete, Amount: bonus},
		{Kind: EventHealed, Amount: healed},
	}
	span.SetAttributes(
		attribute.Int("level.number", g.levelNumber),
		attribute.Int("level.bonus_gold", bonus),
		attribute.Int("player.hp", g.player.HP),
	)

	if g.levelNumber >= FinalLevel {
		g.status = StatusVictory
		span.SetAttributes(attribute.Bool("game.victory", true))
		g.recordEnd(ctx)
		return append(events, Event{Kind: EventVictory})
	}

	g.levelNumber++
	g.loadLevel(ctx)
	return append(events, Event{Kind: EventLevelEntered, Amount: g.levelNumber})
}

// loadLevel generates the current level number and places the player at its start.
func (g *Game) loadLevel(ctx context.Context) {
	g.level = g.generator.Generate(ctx, g.levelNumber, world.SizeFor(g.levelNumber))
	g.player.MoveTo(g.level.Start.X, g.level.Start.Y)
	g.firstVisit = g.level.Room(g.level.Start).Visit()
}

// usePotion drinks a potion outside combat.
func (g *Game) usePotion() []Event {
	healed, ok := g.player.UsePotion()
	if !ok {
		return []Event{{Kind: EventNoPotion}}
	}
	return []Event{{Kind: EventPotionUsed, Amount: healed}}
}

// endSession quits the game.
func (g *Game) endSession(ctx context.Context) []Event {
	g.quit = true
	g.status = StatusGameOver
	g.mode = ModeExplore
	g.encounter = nil
	g.recordEnd(ctx)
	return []Event{{Kind: EventQuit}}
}

// recordEnd emits the end-of-session span.
func (g *Game) recordEnd(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.end")
	s := g.Summary()
	span.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.String("outcome", s.Outcome.String()),
		attribute.Bool("quit", s.Quit),
		attribute.Int("level.reached", s.LevelReached),
		attribute.Int("player.level", s.PlayerLevel),
		attribute.Int("player.gold", s.Gold),
		attribute.Int("enemies_defeated", s.EnemiesDefeated),
	)
	span.End()
}
