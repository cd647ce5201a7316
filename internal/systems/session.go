// Package systems implements the per-tick gameplay systems and the fixed
// pipeline that runs them.
//
// Systems talk to each other through one-shot intent components: an
// earlier system attaches WantsToMelee, WantsToUseItem and so on, a later
// system consumes and clears them within the same tick. Entity deletion is
// deferred until the pipeline's closing Sync.
package systems

import (
	"math/rand"

	"github.com/samdwyer/asciiquest/internal/component"
	"github.com/samdwyer/asciiquest/internal/ecs"
	"github.com/samdwyer/asciiquest/internal/entity"
	"github.com/samdwyer/asciiquest/internal/gamelog"
	"github.com/samdwyer/asciiquest/internal/world"
)

// Phase tells systems whose turn the current pipeline pass belongs to.
type Phase int

const (
	// PhaseSetup is the pass run before the first input of a level.
	PhaseSetup Phase = iota
	// PhasePlayer follows a player action.
	PhasePlayer
	// PhaseMonster is the monsters' reply.
	PhaseMonster
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhasePlayer:
		return "player"
	case PhaseMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// Session is the shared state every system receives. It is owned by the
// game loop and passed explicitly; systems hold no state of their own.
type Session struct {
	World *entity.World
	Map   *world.Map
	Log   *gamelog.Log
	RNG   *rand.Rand

	Player    ecs.Entity
	PlayerPos world.Point // cached copy of the player's Position
	Phase     Phase

	// PlayerDead is set once the player's death has been reported.
	PlayerDead bool
}

// queueDamage appends amount to e's SufferDamage, creating it if needed.
func queueDamage(w *entity.World, e ecs.Entity, amount int) {
	if w.SufferDamage.Update(e, func(sd *component.SufferDamage) {
		sd.Amounts = append(sd.Amounts, amount)
	}) {
		return
	}
	w.SufferDamage.Set(e, component.SufferDamage{Amounts: []int{amount}})
}

// MarkDirty flags e's Vision for recomputation. Anything that moves an
// entity or replaces the map must call it; dirtiness is never inferred.
func MarkDirty(w *entity.World, e ecs.Entity) {
	w.Visions.Update(e, func(v *component.Vision) { v.Dirty = true })
}
