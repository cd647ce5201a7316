package entity

import (
	"math/rand"
	"testing"

	"github.com/samdwyer/asciiquest/internal/component"
	"github.com/samdwyer/asciiquest/internal/gamedata"
	"github.com/samdwyer/asciiquest/internal/world"
)

func TestSpawnPlayer(t *testing.T) {
	w := NewWorld()
	cat := gamedata.MustLoadCatalog()

	p := SpawnPlayer(w, &cat.Player, world.Point{X: 3, Y: 4})

	got, ok := w.PlayerEntity()
	if !ok || got != p {
		t.Fatalf("PlayerEntity() = %v, %v; want %v", got, ok, p)
	}
	stats, _ := w.Stats.Get(p)
	if stats.HP != 30 || stats.MaxHP != 30 || stats.Defense != 2 || stats.Power != 5 {
		t.Errorf("player stats = %+v", stats)
	}
	vis, _ := w.Visions.Get(p)
	if !vis.Dirty || vis.Range != 8 {
		t.Errorf("player vision = %+v, want dirty with range 8", vis)
	}
	if w.BlocksTiles.Has(p) {
		t.Error("player should not carry BlocksTile")
	}
}

func TestSpawnItemAttachesEffects(t *testing.T) {
	w := NewWorld()
	cat := gamedata.MustLoadCatalog()

	fireball := SpawnItem(w, cat.ItemByID("fireball_scroll"), world.Point{X: 1, Y: 1})
	if !w.Items.Has(fireball) || !w.Consumables.Has(fireball) {
		t.Error("fireball should be a consumable item")
	}
	if r, _ := w.Rangeds.Get(fireball); r.Range != 6 {
		t.Errorf("fireball range = %d, want 6", r.Range)
	}
	if a, _ := w.AreaOfEffects.Get(fireball); a.Radius != 3 {
		t.Errorf("fireball radius = %d, want 3", a.Radius)
	}
	if w.ProvidesHealing.Has(fireball) {
		t.Error("fireball should not heal")
	}

	potion := SpawnItem(w, cat.ItemByID("health_potion"), world.Point{X: 2, Y: 1})
	if h, _ := w.ProvidesHealing.Get(potion); h.Amount != 8 {
		t.Errorf("potion heals %d, want 8", h.Amount)
	}
	if w.Rangeds.Has(potion) {
		t.Error("potion should not be ranged")
	}
}

func TestSpawnRoomStaysInsideRoom(t *testing.T) {
	cat := gamedata.MustLoadCatalog()
	room := world.Room{X: 10, Y: 10, Width: 6, Height: 6}

	for seed := int64(1); seed <= 30; seed++ {
		w := NewWorld()
		SpawnRoom(w, cat, room, 5, rand.New(rand.NewSource(seed)))

		occupied := make(map[world.Point]bool)
		for _, e := range w.Query().With(w.Monsters).With(w.Positions).Execute() {
			pos, _ := w.Positions.Get(e)
			if !room.Contains(pos.X, pos.Y) {
				t.Fatalf("seed %d: monster at %v outside room", seed, pos)
			}
			if occupied[pos] {
				t.Fatalf("seed %d: two monsters on %v", seed, pos)
			}
			occupied[pos] = true
		}
	}
}

func TestBackpackAndNameOf(t *testing.T) {
	w := NewWorld()
	cat := gamedata.MustLoadCatalog()
	p := SpawnPlayer(w, &cat.Player, world.Point{X: 1, Y: 1})
	potion := SpawnItem(w, cat.ItemByID("health_potion"), world.Point{X: 1, Y: 1})

	if len(w.Backpack(p)) != 0 {
		t.Fatal("backpack should start empty")
	}
	w.Positions.Remove(potion)
	w.InBackpacks.Set(potion, component.InBackpack{Owner: p})

	if got := w.Backpack(p); len(got) != 1 || got[0] != potion {
		t.Errorf("Backpack() = %v, want [%v]", got, potion)
	}
	if w.NameOf(potion) != "Health Potion" {
		t.Errorf("NameOf(potion) = %q", w.NameOf(potion))
	}
	if w.NameOf(w.Create()) != "something" {
		t.Error("unnamed entity should be \"something\"")
	}
}
