package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetsim/internal/combat"
)

const scenarioYAML = `
name: test_clash
max_rounds: 10
attackers:
  - id: a1
    hp: 10
    shield: 4
    attack: 5
    initiative: 7
    range: 3
    scanner_range: 6
    specials: [repair_small, shield_boost]
    pos: { x: 1, y: 2 }
defenders:
  - id: d1
    hp: 8
    shield: 0
    attack: 2
    initiative: 3
    range: 3
    scanner_range: 5
    pos: { x: 4, y: 2 }
`

func writeScenario(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, "clash.yaml", scenarioYAML))
	require.NoError(t, err)

	assert.Equal(t, "test_clash", sc.Name)
	assert.Equal(t, 10, sc.MaxRounds)
	require.Len(t, sc.Attackers, 1)
	require.Len(t, sc.Defenders, 1)
	assert.Equal(t, []string{"repair_small", "shield_boost"}, sc.Attackers[0].Specials)
	assert.Equal(t, PointDef{X: 4, Y: 2}, sc.Defenders[0].Pos)
}

func TestLoadScenarioNameDefaultsToFileName(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, "ambush.yaml", "max_rounds: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, "ambush", sc.Name)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFleets(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, "clash.yaml", scenarioYAML))
	require.NoError(t, err)

	attackers, defenders, attackerPos, defenderPos, err := sc.Fleets()
	require.NoError(t, err)

	require.Len(t, attackers, 1)
	assert.Equal(t, combat.Combatant{
		ID:           "a1",
		HP:           10,
		Shield:       4,
		Attack:       5,
		Initiative:   7,
		Range:        3,
		ScannerRange: 6,
		Specials:     []combat.SpecialModule{combat.RepairSmall, combat.ShieldBoost},
	}, attackers[0])
	assert.Equal(t, []combat.Point{{X: 1, Y: 2}}, attackerPos)

	require.Len(t, defenders, 1)
	assert.Nil(t, defenders[0].Specials)
	assert.Equal(t, []combat.Point{{X: 4, Y: 2}}, defenderPos)
}

func TestFleetsRejectsUnknownSpecial(t *testing.T) {
	sc := &ScenarioConfig{
		Attackers: []ShipDef{{ID: "a1", HP: 1, Specials: []string{"cloak"}}},
	}
	_, _, _, _, err := sc.Fleets()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cloak")
	assert.Contains(t, err.Error(), "a1")
}

func TestListScenarios(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.yaml", "a.yml", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("max_rounds: 1\n"), 0644))
	}

	paths, err := ListScenarios(dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "a.yml", filepath.Base(paths[0]))
	assert.Equal(t, "b.yaml", filepath.Base(paths[1]))
}
