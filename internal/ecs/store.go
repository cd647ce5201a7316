package ecs

import "fmt"

// Store is a sparse set holding one component type.
// Components are packed densely; sparse maps a slot index to its dense position.
type Store[T any] struct {
	reg    *Registry
	dense  []T
	owners []Entity
	sparse map[uint32]int
}

// NewStore creates a store for T and registers it for lifecycle purges.
func NewStore[T any](reg *Registry) *Store[T] {
	s := &Store[T]{
		reg:    reg,
		dense:  make([]T, 0, 16),
		owners: make([]Entity, 0, 16),
		sparse: make(map[uint32]int),
	}
	reg.register(s)
	return s
}

// Set attaches val to e, replacing any previous value.
// Attaching to an entity that is not alive is a programming error and panics.
func (s *Store[T]) Set(e Entity, val T) {
	if !s.reg.Alive(e) {
		panic(fmt.Sprintf("ecs: attach %T to dead entity %s", val, e))
	}
	if pos, ok := s.sparse[e.Index]; ok {
		s.dense[pos] = val
		s.owners[pos] = e
		return
	}
	s.sparse[e.Index] = len(s.dense)
	s.dense = append(s.dense, val)
	s.owners = append(s.owners, e)
}

// Get returns a copy of e's component. Stale handles report false.
func (s *Store[T]) Get(e Entity) (T, bool) {
	pos, ok := s.lookup(e)
	if !ok {
		var zero T
		return zero, false
	}
	return s.dense[pos], true
}

// Update runs fn with a pointer to e's component and reports whether it ran.
// The pointer is only valid inside fn; fn must not add or remove components
// of this store.
func (s *Store[T]) Update(e Entity, fn func(*T)) bool {
	pos, ok := s.lookup(e)
	if !ok {
		return false
	}
	fn(&s.dense[pos])
	return true
}

// Has reports whether e holds this component.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.lookup(e)
	return ok
}

// Remove detaches the component from e by swapping the last element into its slot.
func (s *Store[T]) Remove(e Entity) {
	pos, ok := s.lookup(e)
	if !ok {
		return
	}
	last := len(s.dense) - 1
	if pos != last {
		s.dense[pos] = s.dense[last]
		s.owners[pos] = s.owners[last]
		s.sparse[s.owners[pos].Index] = pos
	}
	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.owners = s.owners[:last]
	delete(s.sparse, e.Index)
}

// Len returns the number of components in the store.
func (s *Store[T]) Len() int {
	return len(s.dense)
}

// All returns the owning entities ordered by index.
func (s *Store[T]) All() []Entity {
	out := make([]Entity, len(s.owners))
	copy(out, s.owners)
	sortEntities(out)
	return out
}

// Clear removes every component from the store.
func (s *Store[T]) Clear() {
	clear(s.sparse)
	clear(s.dense)
	s.dense = s.dense[:0]
	s.owners = s.owners[:0]
}

func (s *Store[T]) lookup(e Entity) (int, bool) {
	pos, ok := s.sparse[e.Index]
	if !ok || s.owners[pos] != e {
		return 0, false
	}
	return pos, true
}
