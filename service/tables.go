package services

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Heuristic tables are embedded so the binary stays self contained. They are
// parsed once at package init; a malformed table is a programming error.

//go:embed crowd_tables.yaml
var crowdTablesRaw []byte

//go:embed elderly_tables.yaml
var elderlyTablesRaw []byte

//go:embed child_tables.yaml
var childTablesRaw []byte

type venuePattern struct {
	Type     string   `yaml:"type"`
	Keywords []string `yaml:"keywords"`
}

type crowdTables struct {
	Patterns       []venuePattern   `yaml:"patterns"`
	Curves         map[string][]int `yaml:"curves"`
	DefaultCurve   []int            `yaml:"default_curve"`
	DayMultipliers []float64        `yaml:"day_multipliers"`
}

type elderlyTables struct {
	LowEffortTypes     []string `yaml:"low_effort_types"`
	HighEffortTypes    []string `yaml:"high_effort_types"`
	HighEffortKeywords []string `yaml:"high_effort_keywords"`
}

// KidSuggestion is a canned kid-friendly activity idea returned alongside
// child itinerary results.
type KidSuggestion struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Duration    string `yaml:"duration" json:"duration"`
	Category    string `yaml:"category" json:"category"`
}

type childTables struct {
	KidFriendlyTypes []string            `yaml:"kid_friendly_types"`
	SuperFunKeywords []string            `yaml:"super_fun_keywords"`
	BoringKeywords   []string            `yaml:"boring_keywords"`
	RiskyKeywords    []string            `yaml:"risky_keywords"`
	Patterns         []venuePattern      `yaml:"patterns"`
	Alternatives     map[string][]string `yaml:"alternatives"`
	Emojis           map[string]string   `yaml:"emojis"`
	KidSuggestions   []KidSuggestion     `yaml:"kid_suggestions"`
}

var (
	crowdTab   crowdTables
	elderlyTab elderlyTables
	childTab   childTables

	kidFriendlySet map[string]bool
)

func init() {
	mustParseTable("crowd_tables.yaml", crowdTablesRaw, &crowdTab)
	mustParseTable("elderly_tables.yaml", elderlyTablesRaw, &elderlyTab)
	mustParseTable("child_tables.yaml", childTablesRaw, &childTab)

	kidFriendlySet = make(map[string]bool, len(childTab.KidFriendlyTypes))
	for _, t := range childTab.KidFriendlyTypes {
		kidFriendlySet[t] = true
	}
}

func mustParseTable(name string, raw []byte, out interface{}) {
	if err := yaml.Unmarshal(raw, out); err != nil {
		panic(fmt.Sprintf("[Tables] Failed to parse embedded %s: %v", name, err))
	}
}
