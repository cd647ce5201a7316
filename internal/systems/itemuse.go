package systems

import (
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/asciiquest/internal/combat"
	"github.com/samdwyer/asciiquest/internal/component"
	"github.com/samdwyer/asciiquest/internal/ecs"
	"github.com/samdwyer/asciiquest/internal/entity"
	"github.com/samdwyer/asciiquest/internal/logger"
	"github.com/samdwyer/asciiquest/internal/world"
)

// ItemUse resolves WantsToUseItem intents. The item's effects land on the
// user when no target point is given, otherwise on every combat-capable
// entity on the target tile, or within the area radius around it. A
// consumable is destroyed once any effect has landed. The intent is always
// cleared.
type ItemUse struct{}

// Name implements System.
func (ItemUse) Name() string { return "item_use" }

// Run implements System.
func (ItemUse) Run(s *Session) {
	w := s.World
	for _, user := range w.WantsToUseItem.All() {
		intent, _ := w.WantsToUseItem.Get(user)

		pack, ok := w.InBackpacks.Get(intent.Item)
		if !ok || pack.Owner != user {
			s.Log.Add("%s does not carry that.", w.NameOf(user))
			continue
		}

		effects := EffectsOf(w, intent.Item)
		targets := useTargets(s, user, intent.Target, combat.Radius(effects))
		itemName := w.NameOf(intent.Item)

		applied := false
		for _, target := range targets {
			for _, effect := range effects {
				result := combat.Resolve(effect, combat.Use{
					User:     entityCombatant{w: w, e: user},
					Target:   entityCombatant{w: w, e: target},
					ItemName: itemName,
				})
				if !result.Applied {
					continue
				}
				applied = true
				s.Log.Add(result.Format, result.Args...)
			}
		}

		logger.Log.WithFields(logrus.Fields{
			"item":    itemName,
			"targets": len(targets),
			"applied": applied,
		}).Debug("item used")

		if applied && w.Consumables.Has(intent.Item) {
			w.Delete(intent.Item)
		}
	}
	w.WantsToUseItem.Clear()
}

// EffectsOf builds the effect list of item from its components.
func EffectsOf(w *entity.World, item ecs.Entity) []combat.Effect {
	var effects []combat.Effect
	if h, ok := w.ProvidesHealing.Get(item); ok {
		effects = append(effects, combat.Heal{Amount: h.Amount})
	}
	if d, ok := w.InflictsDamage.Get(item); ok {
		if aoe, ok := w.AreaOfEffects.Get(item); ok && aoe.Radius > 0 {
			effects = append(effects, combat.AreaDamage{Amount: d.Amount, Radius: aoe.Radius})
		} else {
			effects = append(effects, combat.Damage{Amount: d.Amount})
		}
	}
	if c, ok := w.Confusions.Get(item); ok {
		effects = append(effects, combat.Confuse{Turns: c.Turns})
	}
	return effects
}

// useTargets lists the entities an item use affects, each once, in the
// order they were found.
func useTargets(s *Session, user ecs.Entity, target *world.Point, radius int) []ecs.Entity {
	if target == nil {
		return []ecs.Entity{user}
	}

	tiles := []world.Point{*target}
	if radius > 0 {
		tiles = s.Map.FieldOfView(*target, radius)
	}

	seen := mapset.New[ecs.Entity]()
	var out []ecs.Entity
	for _, p := range tiles {
		if !s.Map.InBounds(p.X, p.Y) {
			continue
		}
		for _, e := range s.Map.TileContent[s.Map.Index(p.X, p.Y)] {
			if seen.Has(e) || !s.World.Stats.Has(e) {
				continue
			}
			seen.Put(e)
			out = append(out, e)
		}
	}
	return out
}

// entityCombatant adapts an entity with CombatStats to combat.Combatant.
type entityCombatant struct {
	w *entity.World
	e ecs.Entity
}

func (c entityCombatant) GetName() string { return c.w.NameOf(c.e) }

func (c entityCombatant) Heal(amount int) int {
	healed := 0
	c.w.Stats.Update(c.e, func(cs *component.CombatStats) {
		before := cs.HP
		cs.HP = min(cs.MaxHP, cs.HP+amount)
		healed = cs.HP - before
	})
	return healed
}

func (c entityCombatant) QueueDamage(amount int) { queueDamage(c.w, c.e, amount) }

func (c entityCombatant) Confuse(turns int) {
	c.w.Confusions.Set(c.e, component.Confusion{Turns: turns})
}
