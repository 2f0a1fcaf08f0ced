package combat

const (
	repairSmallAmount = 2
	shieldBoostAmount = 2
)

// takeAction resolves one attack by actors[actorIdx] against the first living
// target whose detection flag is set. It reports false, with no log entry,
// when the actor is already dead or no target qualifies.
//
// targetFlags are the target side's own detection flags: a unit that sees no
// enemy cannot be fired on either. Established behavior; changing it would
// change engagement outcomes.
func takeAction(actors, targets []Combatant, targetFlags []bool, actorIdx int) (CombatLogEntry, bool) {
	if actorIdx < 0 || actorIdx >= len(actors) || !actors[actorIdx].Alive() {
		return CombatLogEntry{}, false
	}
	actor := &actors[actorIdx]
	for i := range targets {
		target := &targets[i]
		if !target.Alive() || !flagAt(targetFlags, i) {
			continue
		}
		raw := actor.Attack
		if raw < 0 {
			raw = 0
		}
		shieldDamage := 0
		if target.Shield > 0 {
			shieldDamage = raw
			if target.Shield < shieldDamage {
				shieldDamage = target.Shield
			}
			target.Shield -= shieldDamage
		}
		if remaining := raw - shieldDamage; remaining > 0 {
			target.HP -= remaining
		}
		note := "Hull hit"
		if shieldDamage > 0 {
			note = "Shields hit"
		}
		return CombatLogEntry{
			Attacker:          actor.ID,
			Target:            target.ID,
			Damage:            raw,
			ShieldDamage:      shieldDamage,
			TargetHPAfter:     target.HP,
			TargetShieldAfter: target.Shield,
			Note:              note,
		}, true
	}
	return CombatLogEntry{}, false
}

// applySpecials runs the unit's recurring module effects in list order,
// uncapped. It is not gated on the unit being alive: a unit killed earlier in
// the round still receives its self-effects in its own turn slot, which can
// bring its hull back above zero for the next round.
func applySpecials(c *Combatant) {
	for _, effect := range c.Specials {
		switch effect {
		case RepairSmall:
			c.HP += repairSmallAmount
		case ShieldBoost:
			c.Shield += shieldBoostAmount
		}
	}
}
