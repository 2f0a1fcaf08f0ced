package combat

import "sort"

// turnSlot addresses one combatant in a round's acting order.
type turnSlot struct {
	attacker   bool
	index      int
	initiative int
}

// buildTurnOrder lists every unit alive at the start of the round and sorts
// by descending initiative. Attackers are enumerated before defenders and the
// sort is stable, so equal-initiative ties resolve attacker first, then by
// storage order within a side. Units that die mid-round stay in the order and
// are rejected when their slot comes up.
func buildTurnOrder(attackers, defenders []Combatant) []turnSlot {
	order := make([]turnSlot, 0, len(attackers)+len(defenders))
	for i := range attackers {
		if attackers[i].Alive() {
			order = append(order, turnSlot{attacker: true, index: i, initiative: attackers[i].Initiative})
		}
	}
	for i := range defenders {
		if defenders[i].Alive() {
			order = append(order, turnSlot{index: i, initiative: defenders[i].Initiative})
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].initiative > order[j].initiative
	})
	return order
}
