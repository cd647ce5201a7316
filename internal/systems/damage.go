package systems

import (
	"github.com/samdwyer/asciiquest/internal/component"
	"github.com/samdwyer/asciiquest/internal/logger"
)

// Damage applies every queued SufferDamage and schedules the dead for
// deletion. HP is not clamped; it may go below zero.
type Damage struct{}

// Name implements System.
func (Damage) Name() string { return "damage" }

// Run implements System.
func (Damage) Run(s *Session) {
	w := s.World
	for _, e := range w.SufferDamage.All() {
		sd, _ := w.SufferDamage.Get(e)
		total := sd.Total()
		w.Stats.Update(e, func(cs *component.CombatStats) { cs.HP -= total })
	}
	w.SufferDamage.Clear()
	sweepDead(s)
}

// DeleteTheDead is the death sweep run once per tick outside the pipeline.
// Entities at hp <= 0 are deleted, except the player, whose death is only
// reported. Running it twice in a row changes nothing the second time.
func DeleteTheDead(s *Session) {
	sweepDead(s)
	if n := s.World.Sync(); n > 0 {
		logger.Log.WithField("removed", n).Debug("death sweep")
	}
}

// sweepDead schedules every non-player entity at hp <= 0 for deletion and
// logs each death once.
func sweepDead(s *Session) {
	w := s.World
	for _, e := range w.Stats.All() {
		stats, _ := w.Stats.Get(e)
		if stats.HP > 0 {
			continue
		}
		if w.Players.Has(e) {
			if !s.PlayerDead {
				s.PlayerDead = true
				s.Log.Add("You are dead.")
			}
			continue
		}
		if w.Delete(e) {
			s.Log.Add("%s is dead.", w.NameOf(e))
		}
	}
}
