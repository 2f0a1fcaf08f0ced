package combat

import "encoding/json"

// Report is the host-facing summary of a finished engagement.
type Report struct {
	Outcome        CombatOutcome    `json:"outcome"`
	Actions        int              `json:"actions"`
	AttackersAlive int              `json:"attackers_alive"`
	DefendersAlive int              `json:"defenders_alive"`
	Log            []CombatLogEntry `json:"log,omitempty"`
}

// BuildReport summarizes an engagement from its outcome, the post-battle
// combatant state and the log. The full log is attached only when asked for.
func BuildReport(outcome CombatOutcome, attackers, defenders []Combatant, log *CombatLog, includeLog bool) Report {
	r := Report{
		Outcome:        outcome,
		Actions:        len(log.Entries),
		AttackersAlive: countAlive(attackers),
		DefendersAlive: countAlive(defenders),
	}
	if includeLog {
		r.Log = log.Entries
	}
	return r
}

func countAlive(units []Combatant) int {
	n := 0
	for i := range units {
		if units[i].Alive() {
			n++
		}
	}
	return n
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
