package game

import (
	"github.com/samdwyer/asciiquest/internal/component"
	"github.com/samdwyer/asciiquest/internal/systems"
	"github.com/samdwyer/asciiquest/internal/world"
)

// TryMovePlayer moves the player by (dx, dy). Stepping into an entity with
// combat stats attacks it instead; a blocked tile is a no-op.
func (g *Game) TryMovePlayer(dx, dy int) {
	s := g.session
	w := s.World

	pos, ok := w.Positions.Get(s.Player)
	if !ok {
		return
	}
	dest := pos.Add(dx, dy)
	if !s.Map.InBounds(dest.X, dest.Y) {
		return
	}

	for _, e := range s.Map.TileContent[s.Map.Index(dest.X, dest.Y)] {
		if e != s.Player && w.Stats.Has(e) {
			w.WantsToMelee.Set(s.Player, component.WantsToMelee{Target: e})
			return
		}
	}
	if s.Map.IsBlocked(dest.X, dest.Y) {
		return
	}

	w.Positions.Set(s.Player, dest)
	s.PlayerPos = dest
	systems.MarkDirty(w, s.Player)
}

// GetItem queues pickup of an item on the player's tile.
func (g *Game) GetItem() {
	s := g.session
	w := s.World
	for _, e := range w.Query().With(w.Items).With(w.Positions).Execute() {
		if pos, _ := w.Positions.Get(e); pos == s.PlayerPos {
			w.WantsToPickupItem.Set(s.Player, component.WantsToPickupItem{CollectedBy: s.Player, Item: e})
			return
		}
	}
	s.Log.Add("There is nothing here to pick up.")
}

// TryDescend requests the next level. It only succeeds on the exit tile.
func (g *Game) TryDescend() bool {
	s := g.session
	if s.PlayerPos != s.Map.Exit {
		s.Log.Add("There is no way down here.")
		return false
	}
	g.descendRequested = true
	return true
}

// InTargetRange reports whether p is a tile the player can see within rng.
func (g *Game) InTargetRange(p world.Point, rng int) bool {
	s := g.session
	if p.DistanceSq(s.PlayerPos) > rng*rng {
		return false
	}
	vis, ok := s.World.Visions.Get(s.Player)
	return ok && vis.CanSee(p)
}

// exitReached consumes a pending descend request if the player still
// stands on the exit.
func (g *Game) exitReached() bool {
	if !g.descendRequested {
		return false
	}
	g.descendRequested = false
	return g.session.PlayerPos == g.session.Map.Exit
}
