package combat

import "fmt"

// SpecialModule identifies a recurring ship-module effect. Effects run once
// per round in the owner's own turn slot, after the owner has attempted to
// act.
type SpecialModule int

const (
	RepairSmall SpecialModule = iota
	ShieldBoost
)

// Combatant is one unit in an engagement. Only HP and Shield mutate during
// simulation; everything else is fixed for the engagement's duration.
type Combatant struct {
	ID           string
	HP           int
	Shield       int
	Attack       int
	Initiative   int
	Range        int // reserved for targeting by distance
	ScannerRange int
	Specials     []SpecialModule
}

// Alive is recomputed on every read; a unit whose hull is driven to zero
// mid-round is immediately gone for target selection and act eligibility.
func (c *Combatant) Alive() bool { return c.HP > 0 }

// CombatOutcome is the terminal result of an engagement.
type CombatOutcome int

const (
	AttackerVictory CombatOutcome = iota
	DefenderVictory
	Draw
)

func (o CombatOutcome) String() string {
	switch o {
	case AttackerVictory:
		return "attacker_victory"
	case DefenderVictory:
		return "defender_victory"
	default:
		return "draw"
	}
}

func (o CombatOutcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *CombatOutcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "attacker_victory":
		*o = AttackerVictory
	case "defender_victory":
		*o = DefenderVictory
	case "draw":
		*o = Draw
	default:
		return fmt.Errorf("unknown combat outcome %q", text)
	}
	return nil
}

// CombatLogEntry records one resolved attack. The hp and shield fields are
// the target's state after the hit landed.
type CombatLogEntry struct {
	Attacker          string `json:"attacker"`
	Target            string `json:"target"`
	Damage            int    `json:"damage"`
	ShieldDamage      int    `json:"shield_damage"`
	TargetHPAfter     int    `json:"target_hp_after"`
	TargetShieldAfter int    `json:"target_shield_after"`
	Note              string `json:"note"`
}

// CombatLog is the ordered record of every attack in an engagement: round
// order first, initiative order within a round.
type CombatLog struct {
	Entries []CombatLogEntry `json:"entries"`
}
