package systems

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/asciiquest/internal/logger"
	"github.com/samdwyer/asciiquest/internal/telemetry"
)

// System is one stage of the tick pipeline.
type System interface {
	Name() string
	Run(s *Session)
}

// Pipeline runs systems in a fixed order and then flushes deferred
// deletions. The order matters: indexing follows anything that moves and
// precedes melee; melee precedes damage so a whole tick of attacks is
// batched; intent consumers all run before the Sync.
type Pipeline struct {
	systems []System
}

// NewPipeline returns the standard pipeline: visibility, AI, indexing,
// melee, damage, pickup, use, drop, then sync.
func NewPipeline(strategy Strategy) *Pipeline {
	return &Pipeline{systems: []System{
		Visibility{},
		MonsterAI{Strategy: strategy},
		MapIndexing{},
		MeleeCombat{},
		Damage{},
		ItemCollection{},
		ItemUse{},
		ItemDrop{},
	}}
}

// Names lists the systems in run order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.systems))
	for i, sys := range p.systems {
		names[i] = sys.Name()
	}
	return names
}

// Run executes one pass of every system and syncs the world.
func (p *Pipeline) Run(ctx context.Context, s *Session) {
	tracer := telemetry.Tracer("systems")
	ctx, span := tracer.Start(ctx, "pipeline.run")
	defer span.End()

	for _, sys := range p.systems {
		_, sysSpan := tracer.Start(ctx, "system."+sys.Name())
		sys.Run(s)
		sysSpan.End()
	}

	removed := s.World.Sync()
	span.SetAttributes(
		attribute.String("phase", s.Phase.String()),
		attribute.Int("entities.removed", removed),
		attribute.Int("entities.alive", s.World.Count()),
	)
	logger.Log.WithField("phase", s.Phase).Debug("pipeline complete")
}
