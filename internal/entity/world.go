// Package entity aggregates the component stores into a World and provides
// the spawn routines that populate it.
package entity

import (
	"github.com/samdwyer/asciiquest/internal/component"
	"github.com/samdwyer/asciiquest/internal/ecs"
)

// World is the entity registry plus one store per component type.
type World struct {
	*ecs.Registry

	Positions   *ecs.Store[component.Position]
	Renderables *ecs.Store[component.Renderable]
	Players     *ecs.Store[component.Player]
	Monsters    *ecs.Store[component.Monster]
	Names       *ecs.Store[component.Name]
	BlocksTiles *ecs.Store[component.BlocksTile]
	Visions     *ecs.Store[component.Vision]
	Stats       *ecs.Store[component.CombatStats]

	Items           *ecs.Store[component.Item]
	Consumables     *ecs.Store[component.Consumable]
	ProvidesHealing *ecs.Store[component.ProvidesHealing]
	InflictsDamage  *ecs.Store[component.InflictsDamage]
	AreaOfEffects   *ecs.Store[component.AreaOfEffect]
	Confusions      *ecs.Store[component.Confusion]
	Rangeds         *ecs.Store[component.Ranged]
	InBackpacks     *ecs.Store[component.InBackpack]

	WantsToMelee      *ecs.Store[component.WantsToMelee]
	WantsToPickupItem *ecs.Store[component.WantsToPickupItem]
	WantsToUseItem    *ecs.Store[component.WantsToUseItem]
	WantsToDropItem   *ecs.Store[component.WantsToDropItem]
	SufferDamage      *ecs.Store[component.SufferDamage]
}

// NewWorld creates an empty world with every store registered.
func NewWorld() *World {
	reg := ecs.NewRegistry()
	return &World{
		Registry: reg,

		Positions:   ecs.NewStore[component.Position](reg),
		Renderables: ecs.NewStore[component.Renderable](reg),
		Players:     ecs.NewStore[component.Player](reg),
		Monsters:    ecs.NewStore[component.Monster](reg),
		Names:       ecs.NewStore[component.Name](reg),
		BlocksTiles: ecs.NewStore[component.BlocksTile](reg),
		Visions:     ecs.NewStore[component.Vision](reg),
		Stats:       ecs.NewStore[component.CombatStats](reg),

		Items:           ecs.NewStore[component.Item](reg),
		Consumables:     ecs.NewStore[component.Consumable](reg),
		ProvidesHealing: ecs.NewStore[component.ProvidesHealing](reg),
		InflictsDamage:  ecs.NewStore[component.InflictsDamage](reg),
		AreaOfEffects:   ecs.NewStore[component.AreaOfEffect](reg),
		Confusions:      ecs.NewStore[component.Confusion](reg),
		Rangeds:         ecs.NewStore[component.Ranged](reg),
		InBackpacks:     ecs.NewStore[component.InBackpack](reg),

		WantsToMelee:      ecs.NewStore[component.WantsToMelee](reg),
		WantsToPickupItem: ecs.NewStore[component.WantsToPickupItem](reg),
		WantsToUseItem:    ecs.NewStore[component.WantsToUseItem](reg),
		WantsToDropItem:   ecs.NewStore[component.WantsToDropItem](reg),
		SufferDamage:      ecs.NewStore[component.SufferDamage](reg),
	}
}

// NameOf returns e's display name, or "something" if it has none.
func (w *World) NameOf(e ecs.Entity) string {
	if n, ok := w.Names.Get(e); ok {
		return n.Name
	}
	return "something"
}

// Backpack returns the items carried by owner, ordered by entity index.
func (w *World) Backpack(owner ecs.Entity) []ecs.Entity {
	var out []ecs.Entity
	for _, e := range w.InBackpacks.All() {
		if pack, _ := w.InBackpacks.Get(e); pack.Owner == owner {
			out = append(out, e)
		}
	}
	return out
}

// PlayerEntity returns the entity tagged Player, if any.
func (w *World) PlayerEntity() (ecs.Entity, bool) {
	all := w.Players.All()
	if len(all) == 0 {
		return ecs.Entity{}, false
	}
	return all[0], true
}
