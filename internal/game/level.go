package game

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/asciiquest/internal/component"
	"github.com/samdwyer/asciiquest/internal/ecs"
	"github.com/samdwyer/asciiquest/internal/entity"
	"github.com/samdwyer/asciiquest/internal/logger"
	"github.com/samdwyer/asciiquest/internal/systems"
	"github.com/samdwyer/asciiquest/internal/telemetry"
	"github.com/samdwyer/asciiquest/internal/world"
)

// buildLevel generates a map at depth and populates every room but the
// first, where the player arrives.
func (g *Game) buildLevel(ctx context.Context, depth int) *world.Map {
	s := g.session
	m := g.generator.Generate(ctx, g.cfg.MapWidth, g.cfg.MapHeight, depth, s.RNG)
	for _, room := range m.Rooms[1:] {
		entity.SpawnRoom(s.World, g.catalog, room, depth, s.RNG)
	}
	return m
}

// gotoNextLevel replaces the level. Only the player and what it carries
// survive; the player arrives at the new start point with at least half
// its max HP.
func (g *Game) gotoNextLevel(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "level.transition")
	defer span.End()

	s := g.session
	w := s.World

	removed := 0
	for _, e := range w.Entities() {
		if g.keepOnLevelChange(e) {
			continue
		}
		if w.Delete(e) {
			removed++
		}
	}
	w.Sync()

	depth := s.Map.Depth + 1
	s.Map = g.buildLevel(ctx, depth)

	start := s.Map.StartPoint()
	w.Positions.Set(s.Player, start)
	s.PlayerPos = start
	systems.MarkDirty(w, s.Player)

	s.Log.Add("You descend to the next level, and take a moment to heal.")
	w.Stats.Update(s.Player, func(cs *component.CombatStats) {
		cs.HP = max(cs.HP, cs.MaxHP/2)
	})

	span.SetAttributes(
		attribute.Int("level.depth", depth),
		attribute.Int("level.rooms", len(s.Map.Rooms)),
		attribute.Int("entities.removed", removed),
	)
	logger.Log.WithFields(logrus.Fields{
		"depth":   depth,
		"removed": removed,
	}).Info("descended")
}

func (g *Game) keepOnLevelChange(e ecs.Entity) bool {
	s := g.session
	if e == s.Player {
		return true
	}
	pack, ok := s.World.InBackpacks.Get(e)
	return ok && pack.Owner == s.Player
}
