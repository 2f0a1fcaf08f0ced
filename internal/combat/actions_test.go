package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeActionDeadActorDoesNothing(t *testing.T) {
	actors := []Combatant{ship("a1", 0, 0, 5, 5, 1, 1)}
	targets := []Combatant{ship("d1", 5, 0, 1, 1, 1, 1)}

	_, ok := takeAction(actors, targets, []bool{true}, 0)
	assert.False(t, ok)
	assert.Equal(t, 5, targets[0].HP)
}

func TestTakeActionOutOfRangeIndexDoesNothing(t *testing.T) {
	actors := []Combatant{ship("a1", 5, 0, 5, 5, 1, 1)}
	targets := []Combatant{ship("d1", 5, 0, 1, 1, 1, 1)}

	_, ok := takeAction(actors, targets, []bool{true}, 3)
	assert.False(t, ok)
}

func TestTakeActionNoEligibleTarget(t *testing.T) {
	actors := []Combatant{ship("a1", 5, 0, 5, 5, 1, 1)}
	targets := []Combatant{
		ship("d1", 0, 0, 1, 1, 1, 1), // dead
		ship("d2", 5, 0, 1, 1, 1, 1), // alive but flag down
	}

	_, ok := takeAction(actors, targets, []bool{true, false}, 0)
	assert.False(t, ok)
}

func TestTakeActionPicksFirstEligibleTarget(t *testing.T) {
	actors := []Combatant{ship("a1", 5, 0, 5, 5, 1, 1)}
	targets := []Combatant{
		ship("d1", 5, 0, 1, 1, 1, 1),
		ship("d2", 5, 0, 1, 1, 1, 1),
	}

	entry, ok := takeAction(actors, targets, []bool{false, true}, 0)
	require.True(t, ok)
	assert.Equal(t, "d2", entry.Target)
	assert.Equal(t, 5, targets[0].HP)
	assert.Equal(t, 0, targets[1].HP)
}

func TestTakeActionNegativeAttackClampsToZero(t *testing.T) {
	actors := []Combatant{ship("a1", 5, 0, -4, 5, 1, 1)}
	targets := []Combatant{ship("d1", 5, 2, 1, 1, 1, 1)}

	entry, ok := takeAction(actors, targets, []bool{true}, 0)
	require.True(t, ok)
	assert.Equal(t, 0, entry.Damage)
	assert.Equal(t, 0, entry.ShieldDamage)
	assert.Equal(t, 5, targets[0].HP)
	assert.Equal(t, 2, targets[0].Shield)
	assert.Equal(t, "Hull hit", entry.Note)
}

func TestTakeActionNeverDrivesShieldNegative(t *testing.T) {
	actors := []Combatant{ship("a1", 5, 0, 9, 5, 1, 1)}
	targets := []Combatant{ship("d1", 5, 4, 1, 1, 1, 1)}

	entry, ok := takeAction(actors, targets, []bool{true}, 0)
	require.True(t, ok)
	assert.Equal(t, 4, entry.ShieldDamage)
	assert.Equal(t, 0, targets[0].Shield)
	assert.Equal(t, 0, targets[0].HP)
	assert.Equal(t, "Shields hit", entry.Note)
}

func TestApplySpecialsRunsInListOrderWithoutCaps(t *testing.T) {
	c := ship("d1", 3, 1, 0, 1, 1, 1)
	c.Specials = []SpecialModule{RepairSmall, ShieldBoost, RepairSmall}

	applySpecials(&c)
	assert.Equal(t, 7, c.HP)
	assert.Equal(t, 3, c.Shield)
}

func TestApplySpecialsRunsOnDeadUnits(t *testing.T) {
	c := ship("d1", -1, 0, 0, 1, 1, 1)
	c.Specials = []SpecialModule{RepairSmall}

	applySpecials(&c)
	assert.Equal(t, 1, c.HP)
	assert.True(t, c.Alive())
}
