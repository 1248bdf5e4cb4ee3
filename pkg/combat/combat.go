// Package combat resolves attacks between characters.
package combat

import (
	"github.com/jwebster45206/realmquest/pkg/actor"
	"github.com/jwebster45206/realmquest/pkg/dice"
)

// critMultiplierNum and critMultiplierDen encode the 1.5x critical
// multiplier in integer math, flooring the result.
const (
	critMultiplierNum = 3
	critMultiplierDen = 2
)

// Strike is a single resolved hit within an exchange.
type Strike struct {
	Attacker string
	Defender string
	Damage   int
	Critical bool
	// Special marks a boss's bonus damage rider.
	Special bool
	// Followup marks a boss's extra strike in the same exchange.
	Followup bool
}

// Exchange is everything the attacker did during one turn.
type Exchange struct {
	Strikes []Strike
}

// TotalDamage sums the damage across every strike in the exchange.
func (e Exchange) TotalDamage() int {
	total := 0
	for _, s := range e.Strikes {
		total += s.Damage
	}
	return total
}

// Resolve works out one attacker's turn against the defender and applies
// the damage. A plain character lands a single strike; a boss adds its
// bonus damage rider and may press a follow-up strike. Every hit stops
// once the defender is down, so health never leaves [0, MaxHealth].
func Resolve(roller *dice.Roller, attacker, defender *actor.Character) Exchange {
	var ex Exchange

	ex.Strikes = append(ex.Strikes, strike(roller, attacker, defender, false)...)

	if trait := attacker.Boss(); trait != nil && !defender.IsDefeated() &&
		roller.Chance(trait.FollowupChance) {
		ex.Strikes = append(ex.Strikes, strike(roller, attacker, defender, true)...)
	}

	return ex
}

// strike lands one hit, plus the boss damage rider when the attacker has
// one. The primary damage is attack power plus weapon bonus, multiplied by
// 1.5 (floored) on a critical.
func strike(roller *dice.Roller, attacker, defender *actor.Character, followup bool) []Strike {
	dmg := attacker.AttackDamage()
	crit := roller.Chance(attacker.CritChance())
	if crit {
		dmg = dmg * critMultiplierNum / critMultiplierDen
	}
	defender.ApplyDamage(dmg)

	strikes := []Strike{{
		Attacker: attacker.Name(),
		Defender: defender.Name(),
		Damage:   dmg,
		Critical: crit,
		Followup: followup,
	}}

	if trait := attacker.Boss(); trait != nil && trait.BonusDamage > 0 && !defender.IsDefeated() {
		defender.ApplyDamage(trait.BonusDamage)
		strikes = append(strikes, Strike{
			Attacker: attacker.Name(),
			Defender: defender.Name(),
			Damage:   trait.BonusDamage,
			Special:  true,
			Followup: followup,
		})
	}

	return strikes
}
