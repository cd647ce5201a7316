package entity

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/asciiquest/internal/component"
	"github.com/samdwyer/asciiquest/internal/ecs"
	"github.com/samdwyer/asciiquest/internal/gamedata"
	"github.com/samdwyer/asciiquest/internal/logger"
	"github.com/samdwyer/asciiquest/internal/world"
)

// Render order ranks; lower draws on top.
const (
	RenderOrderPlayer  = 0
	RenderOrderMonster = 1
	RenderOrderItem    = 2
)

var floorBG = tcell.NewRGBColor(51, 0, 25)

// SpawnPlayer creates the player at pos.
func SpawnPlayer(w *World, def *gamedata.PlayerDef, pos world.Point) ecs.Entity {
	e := w.Create()
	w.Positions.Set(e, pos)
	w.Renderables.Set(e, component.Renderable{
		Glyph:       def.GlyphRune(),
		FG:          def.TCellColor(),
		BG:          floorBG,
		RenderOrder: RenderOrderPlayer,
	})
	w.Players.Set(e, component.Player{})
	w.Names.Set(e, component.Name{Name: def.Name})
	w.Visions.Set(e, component.Vision{Range: def.Vision, Dirty: true})
	w.Stats.Set(e, component.CombatStats{
		MaxHP:   def.HP,
		HP:      def.HP,
		Defense: def.Defense,
		Power:   def.Power,
	})
	return e
}

// SpawnMonster creates a monster of the given kind at pos.
func SpawnMonster(w *World, def *gamedata.MonsterDef, pos world.Point) ecs.Entity {
	e := w.Create()
	w.Positions.Set(e, pos)
	w.Renderables.Set(e, component.Renderable{
		Glyph:       def.GlyphRune(),
		FG:          def.TCellColor(),
		BG:          floorBG,
		RenderOrder: RenderOrderMonster,
	})
	w.Monsters.Set(e, component.Monster{})
	w.Names.Set(e, component.Name{Name: def.Name})
	w.Visions.Set(e, component.Vision{Range: def.Vision, Dirty: true})
	w.BlocksTiles.Set(e, component.BlocksTile{})
	w.Stats.Set(e, component.CombatStats{
		MaxHP:   def.HP,
		HP:      def.HP,
		Defense: def.Defense,
		Power:   def.Power,
	})
	return e
}

// SpawnItem creates an item lying on the floor at pos. Effect components
// are attached for each non-zero field of def.
func SpawnItem(w *World, def *gamedata.ItemDef, pos world.Point) ecs.Entity {
	e := w.Create()
	w.Positions.Set(e, pos)
	w.Renderables.Set(e, component.Renderable{
		Glyph:       def.GlyphRune(),
		FG:          def.TCellColor(),
		BG:          floorBG,
		RenderOrder: RenderOrderItem,
	})
	w.Names.Set(e, component.Name{Name: def.Name})
	w.Items.Set(e, component.Item{})

	if def.Consumable {
		w.Consumables.Set(e, component.Consumable{})
	}
	if def.Heal > 0 {
		w.ProvidesHealing.Set(e, component.ProvidesHealing{Amount: def.Heal})
	}
	if def.Damage > 0 {
		w.InflictsDamage.Set(e, component.InflictsDamage{Amount: def.Damage})
	}
	if def.Range > 0 {
		w.Rangeds.Set(e, component.Ranged{Range: def.Range})
	}
	if def.Radius > 0 {
		w.AreaOfEffects.Set(e, component.AreaOfEffect{Radius: def.Radius})
	}
	if def.Confusion > 0 {
		w.Confusions.Set(e, component.Confusion{Turns: def.Confusion})
	}
	return e
}

// SpawnRoom fills room with monsters and items rolled from the catalog for
// depth. Monsters never share a tile with each other, nor items with items.
func SpawnRoom(w *World, cat *gamedata.Catalog, room world.Room, depth int, rng *rand.Rand) {
	monsterPoints := pickPoints(room, cat.MonstersForRoom(rng, depth), rng)
	itemPoints := pickPoints(room, cat.ItemsForRoom(rng, depth), rng)

	spawned := 0
	for _, p := range monsterPoints {
		if def := cat.Monsters.Roll(rng, depth); def != nil {
			SpawnMonster(w, def, p)
			spawned++
		}
	}
	for _, p := range itemPoints {
		if def := cat.Items.Roll(rng, depth); def != nil {
			SpawnItem(w, def, p)
			spawned++
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"depth":    depth,
		"monsters": len(monsterPoints),
		"items":    len(itemPoints),
		"spawned":  spawned,
	}).Debug("room populated")
}

// pickPoints draws up to n distinct points inside room, in draw order.
func pickPoints(room world.Room, n int, rng *rand.Rand) []world.Point {
	if n > room.Area() {
		n = room.Area()
	}
	seen := mapset.New[world.Point]()
	out := make([]world.Point, 0, n)
	for len(out) < n {
		p := room.RandomPoint(rng)
		if seen.Has(p) {
			continue
		}
		seen.Put(p)
		out = append(out, p)
	}
	return out
}
