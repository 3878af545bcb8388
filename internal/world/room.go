// Package world provides dungeon levels: a square grid of rooms and the
// generator that populates it.
package world

import "github.com/samdwyer/dungeondelve/internal/entity"

// Room is one cell of a level's grid.
type Room struct {
	Description       string
	HasEnemy          bool
	HasTreasure       bool
	HasBoss           bool
	IsExit            bool
	Visited           bool
	TreasureCollected bool
	Cleared           bool          // Set once the room's enemy or boss is dead
	Enemy             *entity.Enemy // Spawned on first entry
}

// Visit marks the room visited and reports whether this was the first visit.
func (r *Room) Visit() bool {
	first := !r.Visited
	r.Visited = true
	return first
}

// LiveEnemy returns the room's enemy if one has spawned and is still alive.
func (r *Room) LiveEnemy() *entity.Enemy {
	if r.Enemy != nil && r.Enemy.IsAlive() {
		return r.Enemy
	}
	return nil
}

// NeedsSpawn reports whether entering the room should create its enemy.
// Boss rooms spawn their guardian the same way.
func (r *Room) NeedsSpawn() bool {
	return (r.HasEnemy || r.HasBoss) && !r.Cleared && r.Enemy == nil
}

// ClearEnemy removes a defeated enemy from the room for good.
func (r *Room) ClearEnemy() {
	r.Enemy = nil
	r.HasEnemy = false
	r.Cleared = true
}

// HasUncollectedTreasure reports whether the room still holds treasure.
func (r *Room) HasUncollectedTreasure() bool {
	return r.HasTreasure && !r.TreasureCollected
}

// CollectTreasure marks the treasure taken. It returns false if there was
// nothing left to collect.
func (r *Room) CollectTreasure() bool {
	if !r.HasUncollectedTreasure() {
		return false
	}
	r.TreasureCollected = true
	return true
}
