package combat

import (
	"reflect"
	"testing"
)

// mockCombatant is a test implementation of the Combatant interface.
type mockCombatant struct {
	name      string
	hp, maxHP int
	queued    []int
	confused  int
}

func newMockCombatant(name string, hp, maxHP int) *mockCombatant {
	return &mockCombatant{name: name, hp: hp, maxHP: maxHP}
}

func (m *mockCombatant) GetName() string { return m.name }

func (m *mockCombatant) Heal(amount int) int {
	before := m.hp
	m.hp = min(m.maxHP, m.hp+amount)
	return m.hp - before
}

func (m *mockCombatant) QueueDamage(amount int) { m.queued = append(m.queued, amount) }
func (m *mockCombatant) Confuse(turns int)      { m.confused = turns }

func TestMeleeDamage(t *testing.T) {
	tests := []struct {
		power, defense, want int
	}{
		{5, 1, 4},
		{3, 1, 2},
		{5, 2, 3},
		{2, 2, 0},
		{1, 6, 0},
	}
	for _, tt := range tests {
		if got := MeleeDamage(tt.power, tt.defense); got != tt.want {
			t.Errorf("MeleeDamage(%d, %d) = %d, want %d", tt.power, tt.defense, got, tt.want)
		}
	}
}

func TestResolveHeal(t *testing.T) {
	player := newMockCombatant("Player", 10, 30)

	result := Resolve(Heal{Amount: 8}, Use{User: player, Target: player, ItemName: "Health Potion"})

	if !result.Applied {
		t.Fatal("Expected heal to apply")
	}
	if player.hp != 18 {
		t.Errorf("Expected HP 18, got %d", player.hp)
	}
	if result.Message() != "Player uses the Health Potion, healing 8 hp." {
		t.Errorf("unexpected message %q", result.Message())
	}
}

func TestResolveHealCapped(t *testing.T) {
	player := newMockCombatant("Player", 27, 30)

	result := Resolve(Heal{Amount: 8}, Use{User: player, Target: player, ItemName: "Health Potion"})

	if result.Amount != 3 {
		t.Errorf("Expected 3 healing (capped), got %d", result.Amount)
	}
	if player.hp != 30 {
		t.Errorf("Expected HP 30 (max), got %d", player.hp)
	}
}

func TestResolveDamageQueues(t *testing.T) {
	player := newMockCombatant("Player", 30, 30)
	snake := newMockCombatant("Snake", 8, 8)
	use := Use{User: player, Target: snake, ItemName: "Magic Missile Scroll"}

	Resolve(Damage{Amount: 8}, use)
	Resolve(AreaDamage{Amount: 20, Radius: 3}, use)

	if !reflect.DeepEqual(snake.queued, []int{8, 20}) {
		t.Errorf("queued = %v, want [8 20]", snake.queued)
	}
	if snake.hp != 8 {
		t.Errorf("damage must be queued, not applied; hp = %d", snake.hp)
	}
}

func TestResolveZeroDamageDoesNothing(t *testing.T) {
	snake := newMockCombatant("Snake", 8, 8)
	result := Resolve(Damage{}, Use{User: snake, Target: snake, ItemName: "dud"})

	if result.Applied || len(snake.queued) != 0 || result.Message() != "" {
		t.Errorf("zero damage should be a no-op, got %+v", result)
	}
}

func TestResolveConfuse(t *testing.T) {
	player := newMockCombatant("Player", 30, 30)
	snake := newMockCombatant("Snake", 8, 8)

	result := Resolve(Confuse{Turns: 4}, Use{User: player, Target: snake, ItemName: "Confusion Scroll"})

	if !result.Applied || snake.confused != 4 {
		t.Errorf("Expected 4 turns of confusion, got %d (applied=%v)", snake.confused, result.Applied)
	}
}

func TestRadius(t *testing.T) {
	if r := Radius([]Effect{Damage{Amount: 5}}); r != 0 {
		t.Errorf("Radius(single) = %d, want 0", r)
	}
	if r := Radius([]Effect{Confuse{Turns: 2}, AreaDamage{Amount: 20, Radius: 3}}); r != 3 {
		t.Errorf("Radius(area) = %d, want 3", r)
	}
}
