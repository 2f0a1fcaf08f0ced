package combat

// SimulateCombat resolves one full engagement between two fixed groups of
// units. Position slices are index-aligned with the combatant slices and stay
// fixed for the whole engagement; a missing position reads as the origin.
//
// Both combatant slices are mutated in place, so HP and Shield carry the
// final state when the call returns. The computation is synchronous and fully
// deterministic: identical inputs always produce the identical outcome and
// log. A maxRounds of zero is an immediate Draw, before any elimination
// check.
func SimulateCombat(attackers, defenders []Combatant, attackerPos, defenderPos []Point, maxRounds int) (CombatOutcome, *CombatLog) {
	log := &CombatLog{}
	attackerFlags := make([]bool, len(attackers))
	defenderFlags := make([]bool, len(defenders))

	for round := 0; round < maxRounds; round++ {
		if noneAlive(defenders) {
			return AttackerVictory, log
		}
		if noneAlive(attackers) {
			return DefenderVictory, log
		}

		updateDetection(attackers, defenders, attackerPos, defenderPos, attackerFlags, defenderFlags)
		takeRound(attackers, defenders, attackerFlags, defenderFlags, log)

		if noneAlive(defenders) {
			return AttackerVictory, log
		}
		if noneAlive(attackers) {
			return DefenderVictory, log
		}
	}

	return Draw, log
}

// takeRound plays out one round: every unit alive at the round's start gets a
// turn slot in initiative order. A unit whose own detection flag is down
// skips its slot entirely, taking no action and receiving no module effects.
func takeRound(attackers, defenders []Combatant, attackerFlags, defenderFlags []bool, log *CombatLog) {
	for _, slot := range buildTurnOrder(attackers, defenders) {
		if slot.attacker {
			if !flagAt(attackerFlags, slot.index) {
				continue
			}
			if entry, ok := takeAction(attackers, defenders, defenderFlags, slot.index); ok {
				log.Entries = append(log.Entries, entry)
			}
			applySpecials(&attackers[slot.index])
		} else {
			if !flagAt(defenderFlags, slot.index) {
				continue
			}
			if entry, ok := takeAction(defenders, attackers, attackerFlags, slot.index); ok {
				log.Entries = append(log.Entries, entry)
			}
			applySpecials(&defenders[slot.index])
		}
	}
}

func flagAt(flags []bool, i int) bool {
	return i >= 0 && i < len(flags) && flags[i]
}

func noneAlive(units []Combatant) bool {
	for i := range units {
		if units[i].Alive() {
			return false
		}
	}
	return true
}
