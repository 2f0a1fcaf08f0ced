package combat

// updateDetection recomputes both sides' per-round detection flags in place.
// A unit's flag is true when it currently perceives at least one living enemy
// within its scanner radius. Flags are round-local scratch state, never part
// of the combatants themselves.
func updateDetection(attackers, defenders []Combatant, attackerPos, defenderPos []Point, attackerFlags, defenderFlags []bool) {
	for i := range attackerFlags {
		attackerFlags[i] = canDetect(attackers[i].ScannerRange, posAt(attackerPos, i), defenders, defenderPos)
	}
	for i := range defenderFlags {
		defenderFlags[i] = canDetect(defenders[i].ScannerRange, posAt(defenderPos, i), attackers, attackerPos)
	}
}

// canDetect reports whether any living enemy lies within scannerRange of the
// viewer. A negative scanner detects nothing; radius zero only matches an
// enemy sitting on the exact same cell.
func canDetect(scannerRange int, viewer Point, enemies []Combatant, enemyPos []Point) bool {
	if scannerRange < 0 {
		return false
	}
	limit := int64(scannerRange) * int64(scannerRange)
	for i := range enemies {
		if !enemies[i].Alive() {
			continue
		}
		if distanceSq(viewer, posAt(enemyPos, i)) <= limit {
			return true
		}
	}
	return false
}

// posAt defaults to the origin when a unit has no matching position entry.
func posAt(positions []Point, i int) Point {
	if i < 0 || i >= len(positions) {
		return Point{}
	}
	return positions[i]
}
