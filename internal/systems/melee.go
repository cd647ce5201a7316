package systems

import "github.com/samdwyer/asciiquest/internal/combat"

// MeleeCombat turns WantsToMelee intents into queued damage. Attacks are
// batched: nothing is subtracted here, so two attackers on one target in
// the same tick both land.
type MeleeCombat struct{}

// Name implements System.
func (MeleeCombat) Name() string { return "melee_combat" }

// Run implements System.
func (MeleeCombat) Run(s *Session) {
	w := s.World
	for _, attacker := range w.WantsToMelee.All() {
		intent, _ := w.WantsToMelee.Get(attacker)

		atk, ok := w.Stats.Get(attacker)
		if !ok || atk.HP <= 0 {
			continue
		}
		def, ok := w.Stats.Get(intent.Target)
		if !ok || def.HP <= 0 {
			continue
		}

		damage := combat.MeleeDamage(atk.Power, def.Defense)
		if damage == 0 {
			s.Log.Add("%s is unable to hurt %s.", w.NameOf(attacker), w.NameOf(intent.Target))
			continue
		}
		queueDamage(w, intent.Target, damage)
		s.Log.Add("%s hits %s for %d hp.", w.NameOf(attacker), w.NameOf(intent.Target), damage)
	}
	w.WantsToMelee.Clear()
}
