package ecs

import "sort"

// AnyStore is the type-erased view of a Store used for lifecycle work,
// so the Registry can purge an entity without knowing component types.
type AnyStore interface {
	// Has reports whether e currently holds this component.
	Has(e Entity) bool
	// Remove detaches the component from e, if present.
	Remove(e Entity)
	// Len returns the number of entities holding this component.
	Len() int
	// All returns a copy of the entities holding this component.
	All() []Entity
	// Clear drops every component in the store.
	Clear()
}

// Registry allocates entities and owns the deferred-deletion buffer.
// It is not safe for concurrent use; the simulation is single-threaded.
type Registry struct {
	generations []uint32 // current generation per index slot
	alive       []bool
	free        []uint32

	pending    []Entity
	pendingSet map[Entity]struct{}

	stores []AnyStore
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		generations: make([]uint32, 0, 64),
		alive:       make([]bool, 0, 64),
		pendingSet:  make(map[Entity]struct{}),
	}
}

// Create returns a fresh entity. Freed slots are reused with a bumped
// generation so older handles to the slot never match again.
func (r *Registry) Create() Entity {
	if n := len(r.free); n > 0 {
		idx := r.free[n-1]
		r.free = r.free[:n-1]
		r.alive[idx] = true
		return Entity{Index: idx, Generation: r.generations[idx]}
	}

	idx := uint32(len(r.generations))
	r.generations = append(r.generations, 1)
	r.alive = append(r.alive, true)
	return Entity{Index: idx, Generation: 1}
}

// Alive reports whether e refers to a live entity. Entities scheduled for
// deletion stay alive until the next Sync.
func (r *Registry) Alive(e Entity) bool {
	if e.IsZero() || int(e.Index) >= len(r.generations) {
		return false
	}
	return r.alive[e.Index] && r.generations[e.Index] == e.Generation
}

// Delete schedules e for removal at the next Sync. It returns true only the
// first time a live entity is scheduled.
func (r *Registry) Delete(e Entity) bool {
	if !r.Alive(e) {
		return false
	}
	if _, ok := r.pendingSet[e]; ok {
		return false
	}
	r.pendingSet[e] = struct{}{}
	r.pending = append(r.pending, e)
	return true
}

// PendingDelete reports whether e is scheduled for removal.
func (r *Registry) PendingDelete(e Entity) bool {
	_, ok := r.pendingSet[e]
	return ok
}

// Sync flushes deferred deletions: components are purged from every store,
// the slot generation is bumped and the index is returned to the free list.
// It returns the number of entities removed.
func (r *Registry) Sync() int {
	if len(r.pending) == 0 {
		return 0
	}

	removed := 0
	for _, e := range r.pending {
		if !r.Alive(e) {
			continue
		}
		for _, s := range r.stores {
			s.Remove(e)
		}
		r.alive[e.Index] = false
		r.generations[e.Index]++
		r.free = append(r.free, e.Index)
		removed++
	}

	r.pending = r.pending[:0]
	clear(r.pendingSet)
	return removed
}

// Entities returns every live entity ordered by index.
func (r *Registry) Entities() []Entity {
	out := make([]Entity, 0, len(r.alive))
	for i, ok := range r.alive {
		if ok {
			out = append(out, Entity{Index: uint32(i), Generation: r.generations[i]})
		}
	}
	return out
}

// Count returns the number of live entities, including pending deletions.
func (r *Registry) Count() int {
	n := 0
	for _, ok := range r.alive {
		if ok {
			n++
		}
	}
	return n
}

func (r *Registry) register(s AnyStore) {
	r.stores = append(r.stores, s)
}

// sortEntities orders entities by slot index.
func sortEntities(es []Entity) {
	sort.Slice(es, func(i, j int) bool { return es[i].Index < es[j].Index })
}
