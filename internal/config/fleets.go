package config

import (
	"fmt"

	"fleetsim/internal/combat"
)

// ParseSpecial maps a special-module id from scenario data to its effect.
func ParseSpecial(name string) (combat.SpecialModule, error) {
	switch name {
	case "repair_small":
		return combat.RepairSmall, nil
	case "shield_boost":
		return combat.ShieldBoost, nil
	default:
		return 0, fmt.Errorf("unknown special module %q", name)
	}
}

// Combatant converts a ship definition into its runtime combat form.
func (s ShipDef) Combatant() (combat.Combatant, error) {
	var specials []combat.SpecialModule
	for _, name := range s.Specials {
		sp, err := ParseSpecial(name)
		if err != nil {
			return combat.Combatant{}, fmt.Errorf("ship %s: %w", s.ID, err)
		}
		specials = append(specials, sp)
	}
	return combat.Combatant{
		ID:           s.ID,
		HP:           s.HP,
		Shield:       s.Shield,
		Attack:       s.Attack,
		Initiative:   s.Initiative,
		Range:        s.Range,
		ScannerRange: s.ScannerRange,
		Specials:     specials,
	}, nil
}

// Fleets builds both sides' combatant and position slices, index-aligned the
// way the simulator expects them.
func (sc *ScenarioConfig) Fleets() (attackers, defenders []combat.Combatant, attackerPos, defenderPos []combat.Point, err error) {
	attackers, attackerPos, err = buildSide(sc.Attackers)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("attackers: %w", err)
	}
	defenders, defenderPos, err = buildSide(sc.Defenders)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("defenders: %w", err)
	}
	return attackers, defenders, attackerPos, defenderPos, nil
}

func buildSide(ships []ShipDef) ([]combat.Combatant, []combat.Point, error) {
	units := make([]combat.Combatant, 0, len(ships))
	positions := make([]combat.Point, 0, len(ships))
	for _, s := range ships {
		c, err := s.Combatant()
		if err != nil {
			return nil, nil, err
		}
		units = append(units, c)
		positions = append(positions, combat.Point{X: s.Pos.X, Y: s.Pos.Y})
	}
	return units, positions, nil
}
