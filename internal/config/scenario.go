package config

// ScenarioConfig describes one engagement: two fleets, their spawn positions
// and the round cap. The same shape serves YAML scenario files and the
// service's JSON request body.
type ScenarioConfig struct {
	Name      string    `yaml:"name" json:"name,omitempty"`
	MaxRounds int       `yaml:"max_rounds" json:"max_rounds"`
	Attackers []ShipDef `yaml:"attackers" json:"attackers"`
	Defenders []ShipDef `yaml:"defenders" json:"defenders"`
	Note      string    `yaml:"note" json:"note,omitempty"`
}

// ShipDef is one unit's combat-relevant stats as supplied by the data layer.
type ShipDef struct {
	ID           string   `yaml:"id" json:"id"`
	HP           int      `yaml:"hp" json:"hp"`
	Shield       int      `yaml:"shield" json:"shield"`
	Attack       int      `yaml:"attack" json:"attack"`
	Initiative   int      `yaml:"initiative" json:"initiative"`
	Range        int      `yaml:"range" json:"range"`
	ScannerRange int      `yaml:"scanner_range" json:"scanner_range"`
	Specials     []string `yaml:"specials" json:"specials,omitempty"`
	Pos          PointDef `yaml:"pos" json:"pos"`
	Note         string   `yaml:"note" json:"note,omitempty"`
}

type PointDef struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}
