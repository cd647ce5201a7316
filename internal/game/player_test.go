package game

import (
	"testing"

	"github.com/samdwyer/asciiquest/internal/component"
	"github.com/samdwyer/asciiquest/internal/entity"
	"github.com/samdwyer/asciiquest/internal/gamedata"
	"github.com/samdwyer/asciiquest/internal/systems"
	"github.com/samdwyer/asciiquest/internal/world"
)

func TestMoveIntoMonsterAttacks(t *testing.T) {
	h := newHarness(t, 7)
	h.tick(t)
	s := h.g.Session()

	def := &gamedata.MonsterDef{Name: "Snake", Glyph: "s", HP: 8, Defense: 1, Power: 3, Vision: 8}
	dest := s.PlayerPos.Add(1, 0)
	m := entity.SpawnMonster(s.World, def, dest)
	systems.MapIndexing{}.Run(s)

	before := s.PlayerPos
	h.g.TryMovePlayer(1, 0)

	if intent, ok := s.World.WantsToMelee.Get(s.Player); !ok || intent.Target != m {
		t.Errorf("melee intent = %+v, %v; want target %v", intent, ok, m)
	}
	if s.PlayerPos != before {
		t.Error("attacking must not move the player")
	}
}

func TestMoveIntoWallIsNoop(t *testing.T) {
	h := newHarness(t, 7)
	h.tick(t)
	s := h.g.Session()

	wall := s.PlayerPos.Add(0, -1)
	s.Map.Tiles[s.Map.Index(wall.X, wall.Y)] = world.TileWall
	systems.MapIndexing{}.Run(s)

	before := s.PlayerPos
	h.g.TryMovePlayer(0, -1)
	if s.PlayerPos != before {
		t.Errorf("player walked into a wall: %v", s.PlayerPos)
	}
}

func TestMoveUpdatesPositionAndVision(t *testing.T) {
	h := newHarness(t, 7)
	h.tick(t)
	s := h.g.Session()

	dest := s.PlayerPos.Add(1, 0)
	s.Map.Tiles[s.Map.Index(dest.X, dest.Y)] = world.TileFloor
	systems.MapIndexing{}.Run(s)
	for _, e := range s.Map.TileContent[s.Map.Index(dest.X, dest.Y)] {
		s.World.Positions.Set(e, s.Map.Exit)
	}
	systems.MapIndexing{}.Run(s)

	h.g.TryMovePlayer(1, 0)

	if s.PlayerPos != dest {
		t.Fatalf("player at %v, want %v", s.PlayerPos, dest)
	}
	if pos, _ := s.World.Positions.Get(s.Player); pos != dest {
		t.Errorf("Position component = %v, want %v", pos, dest)
	}
	if vis, _ := s.World.Visions.Get(s.Player); !vis.Dirty {
		t.Error("moving must dirty the player's Vision")
	}
}

func TestPickupWithNothingHere(t *testing.T) {
	h := newHarness(t, 7)
	h.tick(t)

	h.g.GetItem()

	s := h.g.Session()
	if s.World.WantsToPickupItem.Has(s.Player) {
		t.Error("no pickup intent expected")
	}
	if !logContains(s, "There is nothing here to pick up.") {
		t.Errorf("missing message in %q", s.Log.Entries())
	}
}

func TestPickupThroughTurn(t *testing.T) {
	h := newHarness(t, 7)
	h.tick(t)
	s := h.g.Session()

	potion := entity.SpawnItem(s.World, gamedata.MustLoadCatalog().ItemByID("health_potion"), s.PlayerPos)
	h.input.cmds = []Command{{Kind: CmdPickup}}
	h.tick(t)
	h.tick(t)

	if pack, ok := s.World.InBackpacks.Get(potion); !ok || pack.Owner != s.Player {
		t.Error("potion should be in the player's backpack")
	}
	if s.World.Positions.Has(potion) {
		t.Error("picked-up potion keeps a Position")
	}
}

func TestDescendOffExitStaysPut(t *testing.T) {
	h := newHarness(t, 7)
	h.tick(t)
	s := h.g.Session()
	if s.Map.Exit == s.PlayerPos {
		t.Skip("level has a single room")
	}

	h.input.cmds = []Command{{Kind: CmdDescend}}
	h.tick(t)

	if h.g.State().State != StateAwaitingInput {
		t.Errorf("state = %s, want awaiting_input", h.g.State().State)
	}
	if !logContains(s, "There is no way down here.") {
		t.Error("missing message")
	}
}

func TestNextLevel(t *testing.T) {
	h := newHarness(t, 7)
	h.tick(t)
	s := h.g.Session()
	w := s.World
	oldMap := s.Map

	potion := h.carry(t, "health_potion")
	floorItem := entity.SpawnItem(w, gamedata.MustLoadCatalog().ItemByID("fireball_scroll"), oldMap.Exit)
	monster := entity.SpawnMonster(w, &gamedata.MonsterDef{Name: "Orc", Glyph: "o", HP: 16, Defense: 2, Power: 6, Vision: 8}, oldMap.Rooms[0].RandomPoint(s.RNG))

	w.Stats.Update(s.Player, func(cs *component.CombatStats) { cs.HP = 5 })
	w.Positions.Set(s.Player, oldMap.Exit)
	s.PlayerPos = oldMap.Exit

	h.input.cmds = []Command{{Kind: CmdDescend}}
	h.tick(t)
	if h.g.State().State != StatePlayerTurn {
		t.Fatalf("state = %s, want player_turn", h.g.State().State)
	}
	h.tick(t)
	if h.g.State().State != StateNextLevel {
		t.Fatalf("state = %s, want next_level", h.g.State().State)
	}
	h.tick(t)
	if h.g.State().State != StatePreRun {
		t.Fatalf("state = %s, want pre_run", h.g.State().State)
	}

	if s.Map == oldMap || s.Map.Depth != oldMap.Depth+1 {
		t.Errorf("depth = %d, want %d on a new map", s.Map.Depth, oldMap.Depth+1)
	}
	if !s.Map.Connected() {
		t.Error("new level is not connected")
	}
	if s.PlayerPos != s.Map.Rooms[0].CenterPoint() {
		t.Errorf("player at %v, want new first room center %v", s.PlayerPos, s.Map.Rooms[0].CenterPoint())
	}
	if pos, _ := w.Positions.Get(s.Player); pos != s.PlayerPos {
		t.Errorf("Position component %v out of sync with cache %v", pos, s.PlayerPos)
	}
	if w.Alive(monster) || w.Alive(floorItem) {
		t.Error("entities of the old level must be deleted")
	}
	if !w.Alive(s.Player) || !w.Alive(potion) {
		t.Error("player and backpack must survive")
	}
	stats, _ := w.Stats.Get(s.Player)
	if stats.HP != stats.MaxHP/2 {
		t.Errorf("hp = %d, want %d", stats.HP, stats.MaxHP/2)
	}
	if vis, _ := w.Visions.Get(s.Player); !vis.Dirty {
		t.Error("player Vision must be dirty on a new map")
	}

	h.tick(t)
	if h.g.State().State != StateAwaitingInput {
		t.Errorf("state = %s, want awaiting_input", h.g.State().State)
	}
}

func TestNextLevelKeepsHigherHP(t *testing.T) {
	h := newHarness(t, 11)
	h.tick(t)
	s := h.g.Session()
	s.World.Stats.Update(s.Player, func(cs *component.CombatStats) { cs.HP = 25 })

	h.g.gotoNextLevel(t.Context())

	if stats, _ := s.World.Stats.Get(s.Player); stats.HP != 25 {
		t.Errorf("hp = %d, want 25", stats.HP)
	}
}
