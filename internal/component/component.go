// Package component defines the plain data records attached to entities.
// Components carry no behavior; systems read and write them.
package component

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/asciiquest/internal/ecs"
	"github.com/samdwyer/asciiquest/internal/world"
)

// Position is an entity's grid location.
type Position = world.Point

// Renderable describes how an entity is drawn. Lower RenderOrder draws last.
type Renderable struct {
	Glyph       rune
	FG          tcell.Color
	BG          tcell.Color
	RenderOrder int
}

// Player tags the entity controlled by the player.
type Player struct{}

// Monster tags hostile entities driven by the AI.
type Monster struct{}

// Name is a display name.
type Name struct {
	Name string
}

// BlocksTile makes the occupied tile impassable.
type BlocksTile struct{}

// Vision caches what an entity can see. VisibleTiles is only recomputed
// while Dirty is set.
type Vision struct {
	VisibleTiles []world.Point
	Range        int
	Dirty        bool
}

// CanSee reports whether p is in the cached visible set.
func (v Vision) CanSee(p world.Point) bool {
	for _, t := range v.VisibleTiles {
		if t == p {
			return true
		}
	}
	return false
}

// CombatStats are the fighting attributes of an entity.
type CombatStats struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
}

// Item tags an entity that can be picked up.
type Item struct{}

// Consumable items are destroyed after a successful use.
type Consumable struct{}

// ProvidesHealing restores HP on use.
type ProvidesHealing struct {
	Amount int
}

// InflictsDamage damages targets on use.
type InflictsDamage struct {
	Amount int
}

// AreaOfEffect spreads an item's effect over a radius around the target.
type AreaOfEffect struct {
	Radius int
}

// Confusion is both the item property (turns to inflict) and the status
// carried by a confused entity (turns remaining).
type Confusion struct {
	Turns int
}

// Ranged items need a target point chosen within Range.
type Ranged struct {
	Range int
}

// InBackpack marks an item as carried by Owner.
type InBackpack struct {
	Owner ecs.Entity
}

// WantsToMelee is a one-shot attack intent.
type WantsToMelee struct {
	Target ecs.Entity
}

// WantsToPickupItem is a one-shot pickup intent.
type WantsToPickupItem struct {
	CollectedBy ecs.Entity
	Item        ecs.Entity
}

// WantsToUseItem is a one-shot use intent. A nil Target means the user.
type WantsToUseItem struct {
	Item   ecs.Entity
	Target *world.Point
}

// WantsToDropItem is a one-shot drop intent.
type WantsToDropItem struct {
	Item ecs.Entity
}

// SufferDamage queues the damage landed on an entity this tick.
type SufferDamage struct {
	Amounts []int
}

// Total returns the sum of the queued amounts.
func (s SufferDamage) Total() int {
	total := 0
	for _, a := range s.Amounts {
		total += a
	}
	return total
}
