package systems

import (
	"context"
	"testing"

	"github.com/samdwyer/asciiquest/internal/component"
	"github.com/samdwyer/asciiquest/internal/world"
)

func TestAIWaitsForMonsterPhase(t *testing.T) {
	s := newTestSession()
	p := addPlayer(s, world.Point{X: 3, Y: 3})
	m := addMonster(s, "Snake", world.Point{X: 5, Y: 3}, 8, 1, 3)
	Visibility{}.Run(s)

	s.Phase = PhasePlayer
	MonsterAI{Strategy: Strike{}}.Run(s)
	if s.World.WantsToMelee.Has(m) {
		t.Fatal("monsters must not act during the player phase")
	}

	s.Phase = PhaseMonster
	MonsterAI{Strategy: Strike{}}.Run(s)
	intent, ok := s.World.WantsToMelee.Get(m)
	if !ok || intent.Target != p {
		t.Errorf("aware monster intent = %+v, %v; want melee on player", intent, ok)
	}
}

func TestAIIgnoresUnseenPlayer(t *testing.T) {
	s := newTestSession()
	addPlayer(s, world.Point{X: 2, Y: 2})
	m := addMonster(s, "Snake", world.Point{X: 17, Y: 10}, 8, 1, 3)
	s.World.Visions.Update(m, func(v *component.Vision) { v.Range = 3 })
	Visibility{}.Run(s)

	s.Phase = PhaseMonster
	MonsterAI{Strategy: Strike{}}.Run(s)
	if s.World.WantsToMelee.Has(m) {
		t.Error("monster attacked a player it cannot see")
	}
}

func TestConfusedMonsterSkipsTurns(t *testing.T) {
	s := newTestSession()
	addPlayer(s, world.Point{X: 3, Y: 3})
	m := addMonster(s, "Snake", world.Point{X: 4, Y: 3}, 8, 1, 3)
	s.World.Confusions.Set(m, component.Confusion{Turns: 2})
	Visibility{}.Run(s)
	s.Phase = PhaseMonster

	MonsterAI{Strategy: Strike{}}.Run(s)
	if s.World.WantsToMelee.Has(m) {
		t.Fatal("confused monster acted")
	}
	if c, _ := s.World.Confusions.Get(m); c.Turns != 1 {
		t.Errorf("turns left = %d, want 1", c.Turns)
	}

	MonsterAI{Strategy: Strike{}}.Run(s)
	if s.World.Confusions.Has(m) {
		t.Error("confusion should wear off at zero")
	}
	if s.World.WantsToMelee.Has(m) {
		t.Error("the turn confusion wears off is still lost")
	}

	MonsterAI{Strategy: Strike{}}.Run(s)
	if !s.World.WantsToMelee.Has(m) {
		t.Error("monster should act once confusion is gone")
	}
}

func TestApproachStepsTowardPlayer(t *testing.T) {
	s := newTestSession()
	addPlayer(s, world.Point{X: 3, Y: 3})
	m := addMonster(s, "Snake", world.Point{X: 8, Y: 3}, 8, 1, 3)
	Visibility{}.Run(s)
	MapIndexing{}.Run(s)
	s.Phase = PhaseMonster

	MonsterAI{Strategy: Approach{}}.Run(s)

	pos, _ := s.World.Positions.Get(m)
	if pos != (world.Point{X: 7, Y: 3}) {
		t.Errorf("monster at %v, want (7,3)", pos)
	}
	if s.Map.IsBlocked(8, 3) || !s.Map.IsBlocked(7, 3) {
		t.Error("Blocked should follow the move")
	}
	if vis, _ := s.World.Visions.Get(m); !vis.Dirty {
		t.Error("moving must dirty the monster's Vision")
	}
	if s.World.WantsToMelee.Has(m) {
		t.Error("a distant monster moves instead of attacking")
	}
}

func TestApproachAttacksWhenAdjacent(t *testing.T) {
	s := newTestSession()
	p := addPlayer(s, world.Point{X: 3, Y: 3})
	m := addMonster(s, "Snake", world.Point{X: 4, Y: 4}, 8, 1, 3)
	Visibility{}.Run(s)
	s.Phase = PhaseMonster

	MonsterAI{Strategy: Approach{}}.Run(s)

	if intent, ok := s.World.WantsToMelee.Get(m); !ok || intent.Target != p {
		t.Error("adjacent monster should attack")
	}
}

func TestPipelineMonsterTurn(t *testing.T) {
	s := newTestSession()
	p := addPlayer(s, world.Point{X: 3, Y: 3})
	addMonster(s, "Snake", world.Point{X: 4, Y: 3}, 8, 1, 3)

	s.Phase = PhaseMonster
	NewPipeline(Approach{}).Run(context.Background(), s)

	// Snake power 3 against player defense 2.
	if got := hp(t, s, p); got != 29 {
		t.Errorf("player hp = %d, want 29", got)
	}
	if !logContains(s, "Snake hits Player for 1 hp.") {
		t.Errorf("missing hit message in %q", s.Log.Entries())
	}
}

func TestPipelineKillsAndSyncs(t *testing.T) {
	s := newTestSession()
	p := addPlayer(s, world.Point{X: 3, Y: 3})
	m := addMonster(s, "Snake", world.Point{X: 4, Y: 3}, 4, 1, 3)

	s.Phase = PhasePlayer
	s.World.WantsToMelee.Set(p, component.WantsToMelee{Target: m})
	NewPipeline(Approach{}).Run(context.Background(), s)

	if s.World.Alive(m) {
		t.Error("killed monster should be gone after the pipeline's sync")
	}
	if !logContains(s, "Snake is dead.") {
		t.Errorf("missing death message in %q", s.Log.Entries())
	}
}
