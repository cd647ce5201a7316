package systems

import (
	"testing"

	"github.com/samdwyer/asciiquest/internal/component"
	"github.com/samdwyer/asciiquest/internal/world"
)

func TestVisibilityUpdatesPlayerView(t *testing.T) {
	s := newTestSession()
	p := addPlayer(s, world.Point{X: 5, Y: 5})

	Visibility{}.Run(s)

	vis, _ := s.World.Visions.Get(p)
	if vis.Dirty {
		t.Error("Vision should be clean after recompute")
	}
	if !vis.CanSee(world.Point{X: 5, Y: 5}) || !vis.CanSee(world.Point{X: 8, Y: 5}) {
		t.Error("player should see its own tile and nearby floor")
	}
	idx := s.Map.Index(8, 5)
	if !s.Map.Visible[idx] || !s.Map.Revealed[idx] {
		t.Error("player view should mark tiles visible and revealed")
	}
}

func TestVisibilityResetsVisibleButKeepsRevealed(t *testing.T) {
	s := newTestSession()
	p := addPlayer(s, world.Point{X: 2, Y: 2})
	Visibility{}.Run(s)

	far := s.Map.Index(4, 2)
	if !s.Map.Visible[far] {
		t.Fatal("tile (4,2) should be visible from (2,2)")
	}

	s.World.Visions.Update(p, func(v *component.Vision) {
		v.Range = 0
		v.Dirty = true
	})
	Visibility{}.Run(s)

	if s.Map.Visible[far] {
		t.Error("tile should no longer be visible with range 0")
	}
	if !s.Map.Revealed[far] {
		t.Error("revealed must be permanent")
	}
}

func TestVisibilitySkipsCleanVision(t *testing.T) {
	s := newTestSession()
	p := addPlayer(s, world.Point{X: 5, Y: 5})

	sentinel := []world.Point{{X: 99, Y: 99}}
	s.World.Visions.Set(p, component.Vision{VisibleTiles: sentinel, Range: 8, Dirty: false})

	Visibility{}.Run(s)
	Visibility{}.Run(s)

	vis, _ := s.World.Visions.Get(p)
	if len(vis.VisibleTiles) != 1 || vis.VisibleTiles[0] != sentinel[0] {
		t.Errorf("clean Vision was recomputed: %v", vis.VisibleTiles)
	}
}

func TestMonsterViewIsPrivate(t *testing.T) {
	s := newTestSession()
	m := addMonster(s, "Snake", world.Point{X: 10, Y: 5}, 8, 1, 3)

	Visibility{}.Run(s)

	vis, _ := s.World.Visions.Get(m)
	if len(vis.VisibleTiles) == 0 {
		t.Fatal("monster should have a visible set")
	}
	for i, v := range s.Map.Visible {
		if v || s.Map.Revealed[i] {
			t.Fatalf("monster FOV leaked into the map at %v", s.Map.PointOf(i))
		}
	}
}

func TestMapIndexing(t *testing.T) {
	s := newTestSession()
	p := addPlayer(s, world.Point{X: 3, Y: 3})
	m := addMonster(s, "Snake", world.Point{X: 4, Y: 3}, 8, 1, 3)

	MapIndexing{}.Run(s)

	if s.Map.IsBlocked(3, 3) {
		t.Error("player does not block its tile")
	}
	if !s.Map.IsBlocked(4, 3) {
		t.Error("monster should block its tile")
	}
	if !s.Map.IsBlocked(0, 0) {
		t.Error("walls stay blocked")
	}
	if got := s.Map.TileContent[s.Map.Index(3, 3)]; len(got) != 1 || got[0] != p {
		t.Errorf("content at player tile = %v", got)
	}

	s.World.Positions.Set(m, world.Point{X: 6, Y: 6})
	MapIndexing{}.Run(s)
	if s.Map.IsBlocked(4, 3) || len(s.Map.TileContent[s.Map.Index(4, 3)]) != 0 {
		t.Error("stale occupancy survived re-indexing")
	}
}
