package world

import (
	"context"
	"slices"
	"time"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeondelve/internal/gamedata"
	"github.com/samdwyer/dungeondelve/internal/rng"
	"github.com/samdwyer/dungeondelve/internal/telemetry"
)

// bossEvery is the level interval at which the exit hosts a boss.
const bossEvery = 3

// EnemyCount returns how many enemy rooms a level receives.
func EnemyCount(levelNumber, size int) int {
	return min(levelNumber+2, size*size/2)
}

// TreasureCount returns how many treasure rooms a level receives.
func TreasureCount(levelNumber, size int) int {
	return min(levelNumber+1, size*size/3)
}

// IsBossLevel reports whether the level's exit is guarded by a boss.
func IsBossLevel(levelNumber int) bool {
	return levelNumber%bossEvery == 0
}

// Generator builds levels with randomly placed enemies and treasure.
type Generator struct {
	rng  rng.Source
	text gamedata.RoomText
}

// NewGenerator creates a generator drawing from src and describing rooms
// with text.
func NewGenerator(src rng.Source, text gamedata.RoomText) *Generator {
	return &Generator{rng: src, text: text}
}

// Generate creates the level for levelNumber on a size x size grid.
// Size is clamped to [MinSize, MaxSize] so start and exit never coincide.
func (g *Generator) Generate(ctx context.Context, levelNumber, size int) *Level {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "level.generate")
	defer span.End()

	startTime := time.Now()
	size = max(MinSize, min(size, MaxSize))

	level := newLevel(levelNumber, size, func(x, y int) string {
		return gamedata.At(g.text.Empty, x, y)
	})
	level.Room(level.Start).Description = g.text.Entrance

	// Start and exit never hold enemies or treasure
	reserved := mapset.New[Pos]()
	reserved.Put(level.Start)
	reserved.Put(level.Exit)

	enemies := g.place(level, reserved, EnemyCount(levelNumber, size), func(p Pos, r *Room) {
		r.HasEnemy = true
		r.Description = gamedata.At(g.text.Danger, p.X, p.Y)
	})
	treasures := g.place(level, reserved, TreasureCount(levelNumber, size), func(p Pos, r *Room) {
		r.HasTreasure = true
		r.Description = gamedata.At(g.text.Treasure, p.X, p.Y)
	})

	exit := level.Room(level.Exit)
	exit.IsExit = true
	if IsBossLevel(levelNumber) {
		exit.HasBoss = true
		exit.Description = g.text.Boss
	} else {
		exit.Description = g.text.Exit
	}

	span.SetAttributes(
		attribute.Int("level.number", levelNumber),
		attribute.Int("level.size", size),
		attribute.Int("level.enemy_rooms", enemies),
		attribute.Int("level.treasure_rooms", treasures),
		attribute.Bool("level.boss", exit.HasBoss),
		attribute.Int64("level.generation_us", time.Since(startTime).Microseconds()),
	)

	return level
}

// place marks up to count rooms chosen uniformly without replacement from
// the cells not yet reserved, reserving each one it picks. It stops early
// if the pool runs dry and returns the number placed.
func (g *Generator) place(level *Level, reserved mapset.Set[Pos], count int, mark func(Pos, *Room)) int {
	pool := make([]Pos, 0, level.RoomCount())
	for _, p := range level.Positions() {
		if !reserved.Has(p) {
			pool = append(pool, p)
		}
	}

	placed := 0
	for ; placed < count && len(pool) > 0; placed++ {
		i := g.rng.Intn(len(pool))
		p := pool[i]
		pool = slices.Delete(pool, i, i+1)

		reserved.Put(p)
		mark(p, level.Room(p))
	}
	return placed
}
