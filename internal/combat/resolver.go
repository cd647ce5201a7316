// Package combat holds the melee damage rule and the item-effect resolver.
package combat

import "fmt"

// Combatant is anything an effect can land on. The systems package adapts
// entities with CombatStats to it.
type Combatant interface {
	GetName() string

	// Heal restores up to amount HP without exceeding max HP and returns
	// the HP actually restored.
	Heal(amount int) int
	// QueueDamage appends amount to the pending damage of this tick.
	QueueDamage(amount int)
	// Confuse sets the confusion status to turns.
	Confuse(turns int)
}

// Effect is one item effect. The set of variants is closed: Heal, Damage,
// AreaDamage and Confuse.
type Effect interface {
	isEffect()
}

// Heal restores HP.
type Heal struct{ Amount int }

// Damage hurts whatever stands on the target tile.
type Damage struct{ Amount int }

// AreaDamage hurts everything within Radius of the target point.
type AreaDamage struct{ Amount, Radius int }

// Confuse makes targets skip their next Turns turns.
type Confuse struct{ Turns int }

func (Heal) isEffect()       {}
func (Damage) isEffect()     {}
func (AreaDamage) isEffect() {}
func (Confuse) isEffect()    {}

// Radius returns the area radius of effects, or 0 when none spreads.
func Radius(effects []Effect) int {
	r := 0
	for _, e := range effects {
		if a, ok := e.(AreaDamage); ok && a.Radius > r {
			r = a.Radius
		}
	}
	return r
}

// Use describes one application of an item.
type Use struct {
	User     Combatant
	Target   Combatant
	ItemName string
}

// EffectResult is the outcome of resolving one effect on one target.
type EffectResult struct {
	Applied bool
	Amount  int // HP healed, damage queued or turns inflicted

	// Format and Args make up the log line; Format is empty when there
	// is nothing to report.
	Format string
	Args   []any
}

// Message renders the log line without translation.
func (r EffectResult) Message() string {
	if r.Format == "" {
		return ""
	}
	return fmt.Sprintf(r.Format, r.Args...)
}

// Resolve applies effect to u.Target.
func Resolve(effect Effect, u Use) EffectResult {
	switch e := effect.(type) {
	case Heal:
		healed := u.Target.Heal(e.Amount)
		return EffectResult{
			Applied: true,
			Amount:  healed,
			Format:  "%s uses the %s, healing %d hp.",
			Args:    []any{u.User.GetName(), u.ItemName, healed},
		}
	case Damage:
		return resolveDamage(e.Amount, u)
	case AreaDamage:
		return resolveDamage(e.Amount, u)
	case Confuse:
		if e.Turns <= 0 {
			return EffectResult{}
		}
		u.Target.Confuse(e.Turns)
		return EffectResult{
			Applied: true,
			Amount:  e.Turns,
			Format:  "%s uses %s on %s, confusing them.",
			Args:    []any{u.User.GetName(), u.ItemName, u.Target.GetName()},
		}
	default:
		panic(fmt.Sprintf("combat: unhandled effect %T", effect))
	}
}

func resolveDamage(amount int, u Use) EffectResult {
	if amount <= 0 {
		return EffectResult{}
	}
	u.Target.QueueDamage(amount)
	return EffectResult{
		Applied: true,
		Amount:  amount,
		Format:  "%s uses %s on %s, inflicting %d hp.",
		Args:    []any{u.User.GetName(), u.ItemName, u.Target.GetName(), amount},
	}
}

// MeleeDamage is the damage a blow of power deals against defense.
// It is never negative.
func MeleeDamage(power, defense int) int {
	return max(0, power-defense)
}
