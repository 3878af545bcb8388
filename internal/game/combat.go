package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeondelve/internal/combat"
	"github.com/samdwyer/dungeondelve/internal/entity"
	"github.com/samdwyer/dungeondelve/internal/telemetry"
)

// startCombat enters combat mode against the room's enemy.
func (g *Game) startCombat(ctx context.Context, enemy *entity.Enemy) []Event {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.start")
	span.SetAttributes(
		attribute.String("enemy", enemy.Name),
		attribute.String("enemy.id", enemy.ID()),
		attribute.Int("enemy.hp", enemy.HP),
		attribute.Bool("enemy.boss", enemy.Boss),
		attribute.Int("player.hp", g.player.HP),
	)
	span.End()

	g.encounter = combat.NewEncounter(g.player, enemy)
	g.mode = ModeCombat

	return []Event{{Kind: EventCombatStarted, Name: enemy.Name, Amount: enemy.HP}}
}

// combatTurn resolves one player action in the active fight.
func (g *Game) combatTurn(ctx context.Context, action combat.Action) []Event {
	tracer := telemetry.Tracer("combat")
	ctx, span := tracer.Start(ctx, "combat.turn")
	defer span.End()

	enemy := g.encounter.Enemy
	result, err := g.resolver.Resolve(g.encounter, action)
	if err != nil {
		// Encounter already ended; nothing to resolve
		span.SetAttributes(attribute.String("error", err.Error()))
		return nil
	}

	span.SetAttributes(
		attribute.String("action", action.String()),
		attribute.String("enemy", enemy.GetName()),
		attribute.Int("turn", g.encounter.Turns),
		attribute.Int("damage.dealt", result.PlayerDamage),
		attribute.Int("damage.taken", result.EnemyDamage),
		attribute.String("outcome", result.Outcome.String()),
	)

	var events []Event
	if result.PlayerDamage > 0 {
		events = append(events, Event{Kind: EventPlayerHit, Name: enemy.GetName(), Amount: result.PlayerDamage})
	}
	if result.FleeFailed {
		events = append(events, Event{Kind: EventFleeFailed, Name: enemy.GetName()})
	}
	if result.EnemyAttacked {
		events = append(events, Event{Kind: EventEnemyHit, Name: enemy.GetName(), Amount: result.EnemyDamage})
	}

	switch result.Outcome {
	case combat.PlayerVictory:
		g.endCombat(ctx)
		room := g.currentRoom()
		events = append(events, g.defeatEnemy(room)...)
		events = append(events, g.runSteps(ctx, room, g.afterCombatSteps())...)
	case combat.PlayerDefeated:
		g.endCombat(ctx)
		g.status = StatusGameOver
		g.recordEnd(ctx)
		events = append(events, Event{Kind: EventDefeat, Name: enemy.GetName()})
	case combat.PlayerFled:
		g.endCombat(ctx)
		events = append(events, Event{Kind: EventFled, Name: enemy.GetName()})
	}

	return events
}

// endCombat leaves combat mode and records the fight's outcome.
func (g *Game) endCombat(ctx context.Context) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("outcome", g.encounter.Outcome.String()),
		attribute.Int("turns_taken", g.encounter.Turns),
		attribute.Int("player_hp_remaining", g.player.HP),
	)
	span.End()

	g.encounter = nil
	g.mode = ModeExplore
}
