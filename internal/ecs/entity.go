// Package ecs provides the entity/component store used by the simulation.
//
// Entities are generation-indexed handles. Components live in typed sparse
// stores registered against a Registry. Deleting an entity is deferred: the
// entity and its components remain readable until Registry.Sync is called,
// after which every handle to it is stale and reads report absence.
package ecs

import "fmt"

// Entity is an opaque handle. Index slots are recycled; Generation tells a
// live handle from a stale one that referred to an earlier occupant.
type Entity struct {
	Index      uint32
	Generation uint32
}

// IsZero reports whether e is the zero handle, which is never alive.
func (e Entity) IsZero() bool {
	return e.Generation == 0
}

// String returns a compact form such as "e12v3".
func (e Entity) String() string {
	return fmt.Sprintf("e%dv%d", e.Index, e.Generation)
}
