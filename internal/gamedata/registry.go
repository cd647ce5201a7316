package gamedata

import "math/rand"

// Table holds definitions of one kind and picks among them by weight,
// filtered by the level depth.
type Table[T any] struct {
	defs  []T
	terms func(*T) (weight, minDepth int)
}

// NewTable creates a table. terms reports each entry's spawn weight and
// minimum depth.
func NewTable[T any](defs []T, terms func(*T) (weight, minDepth int)) *Table[T] {
	return &Table[T]{defs: defs, terms: terms}
}

// Roll selects an entry eligible at depth using weighted probability.
// It returns nil when nothing is eligible.
func (t *Table[T]) Roll(rng *rand.Rand, depth int) *T {
	total := 0
	for i := range t.defs {
		if w, minDepth := t.terms(&t.defs[i]); depth >= minDepth && w > 0 {
			total += w
		}
	}
	if total == 0 {
		return nil
	}

	roll := rng.Intn(total)
	cumulative := 0
	for i := range t.defs {
		w, minDepth := t.terms(&t.defs[i])
		if depth < minDepth || w <= 0 {
			continue
		}
		cumulative += w
		if roll < cumulative {
			return &t.defs[i]
		}
	}
	return nil
}

// Get returns the first entry matching pred, or nil.
func (t *Table[T]) Get(pred func(*T) bool) *T {
	for i := range t.defs {
		if pred(&t.defs[i]) {
			return &t.defs[i]
		}
	}
	return nil
}

// All returns every entry.
func (t *Table[T]) All() []T {
	return t.defs
}

// Count returns the number of entries.
func (t *Table[T]) Count() int {
	return len(t.defs)
}

// MonsterByID looks up a monster definition.
func (c *Catalog) MonsterByID(id string) *MonsterDef {
	return c.Monsters.Get(func(m *MonsterDef) bool { return m.ID == id })
}

// ItemByID looks up an item definition.
func (c *Catalog) ItemByID(id string) *ItemDef {
	return c.Items.Get(func(i *ItemDef) bool { return i.ID == id })
}

// MonstersForRoom rolls how many monsters a room at depth receives:
// a d(max+2) roll, plus depth-1, minus 3, floored at zero.
func (c *Catalog) MonstersForRoom(rng *rand.Rand, depth int) int {
	return roomCount(rng, c.Spawn.MaxMonstersPerRoom, depth)
}

// ItemsForRoom is MonstersForRoom for items.
func (c *Catalog) ItemsForRoom(rng *rand.Rand, depth int) int {
	return roomCount(rng, c.Spawn.MaxItemsPerRoom, depth)
}

func roomCount(rng *rand.Rand, limit, depth int) int {
	if limit <= 0 {
		return 0
	}
	n := 1 + rng.Intn(limit+2) + (depth - 1) - 3
	if n < 0 {
		return 0
	}
	return n
}
