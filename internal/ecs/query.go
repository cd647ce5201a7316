package ecs

import "sort"

// QueryBuilder finds entities holding every component in a set of stores.
type QueryBuilder struct {
	stores []AnyStore
}

// Query starts a component-intersection query.
//
//	for _, e := range reg.Query().With(w.Positions).With(w.Visions).Execute() {
//	    ...
//	}
func (r *Registry) Query() *QueryBuilder {
	return &QueryBuilder{stores: make([]AnyStore, 0, 4)}
}

// With adds a store to the intersection.
func (qb *QueryBuilder) With(store AnyStore) *QueryBuilder {
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns the matching entities ordered by index. The result is a
// snapshot, so callers may add or remove components while walking it.
func (qb *QueryBuilder) Execute() []Entity {
	if len(qb.stores) == 0 {
		return []Entity{}
	}

	stores := make([]AnyStore, len(qb.stores))
	copy(stores, qb.stores)
	sort.SliceStable(stores, func(i, j int) bool {
		return stores[i].Len() < stores[j].Len()
	})

	candidates := stores[0].All()
	for _, store := range stores[1:] {
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}
	return candidates
}
