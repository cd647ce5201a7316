package systems

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/asciiquest/internal/component"
	"github.com/samdwyer/asciiquest/internal/ecs"
	"github.com/samdwyer/asciiquest/internal/logger"
	"github.com/samdwyer/asciiquest/internal/world"
)

// Strategy decides what an aware monster does on its turn. Implementations
// express the decision as intents or position changes on the session.
type Strategy interface {
	Act(s *Session, monster ecs.Entity, pos world.Point)
}

// Strike attacks the player wherever it is. Melee resolution ignores
// distance, so a striking monster hits from anywhere it can see.
type Strike struct{}

// Act implements Strategy.
func (Strike) Act(s *Session, monster ecs.Entity, _ world.Point) {
	s.World.WantsToMelee.Set(monster, component.WantsToMelee{Target: s.Player})
}

// Approach attacks when adjacent and otherwise steps one tile toward the
// player, trying the diagonal first and then each axis.
type Approach struct{}

// Act implements Strategy.
func (Approach) Act(s *Session, monster ecs.Entity, pos world.Point) {
	if pos.Adjacent(s.PlayerPos) {
		s.World.WantsToMelee.Set(monster, component.WantsToMelee{Target: s.Player})
		return
	}

	dx, dy := sign(s.PlayerPos.X-pos.X), sign(s.PlayerPos.Y-pos.Y)
	for _, step := range [][2]int{{dx, dy}, {dx, 0}, {0, dy}} {
		if step == [2]int{0, 0} {
			continue
		}
		next := pos.Add(step[0], step[1])
		if s.Map.IsBlocked(next.X, next.Y) {
			continue
		}
		s.Map.Blocked[s.Map.Index(pos.X, pos.Y)] = false
		s.Map.Blocked[s.Map.Index(next.X, next.Y)] = true
		s.World.Positions.Set(monster, next)
		MarkDirty(s.World, monster)
		return
	}
}

// StrategyByName maps a configuration value to a Strategy.
func StrategyByName(name string) (Strategy, error) {
	switch name {
	case "", "approach":
		return Approach{}, nil
	case "strike":
		return Strike{}, nil
	default:
		return nil, fmt.Errorf("unknown AI strategy %q", name)
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// MonsterAI drives every non-player entity with Vision during the monster
// phase. A confused monster loses its turn while the status counts down;
// otherwise, if it can see the player, Strategy decides its action.
type MonsterAI struct {
	Strategy Strategy
}

// Name implements System.
func (MonsterAI) Name() string { return "monster_ai" }

// Run implements System.
func (ai MonsterAI) Run(s *Session) {
	if s.Phase != PhaseMonster {
		return
	}
	strategy := ai.Strategy
	if strategy == nil {
		strategy = Strike{}
	}

	w := s.World
	for _, e := range w.Query().With(w.Visions).With(w.Positions).Execute() {
		if w.Players.Has(e) {
			continue
		}
		if skipConfusedTurn(s, e) {
			continue
		}

		vis, _ := w.Visions.Get(e)
		if !vis.CanSee(s.PlayerPos) {
			continue
		}

		pos, _ := w.Positions.Get(e)
		logger.Log.WithFields(logrus.Fields{
			"monster": w.NameOf(e),
			"x":       pos.X,
			"y":       pos.Y,
		}).Debug("monster aware of player")
		strategy.Act(s, e, pos)
	}
}

// skipConfusedTurn counts down e's confusion and reports whether e loses
// this turn. The status is removed when it reaches zero.
func skipConfusedTurn(s *Session, e ecs.Entity) bool {
	w := s.World
	conf, ok := w.Confusions.Get(e)
	if !ok {
		return false
	}

	conf.Turns--
	if conf.Turns <= 0 {
		w.Confusions.Remove(e)
		s.Log.Add("%s is no longer confused.", w.NameOf(e))
	} else {
		w.Confusions.Set(e, conf)
		s.Log.Add("%s is confused.", w.NameOf(e))
	}
	return true
}
