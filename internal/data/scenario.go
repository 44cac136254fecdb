package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is the declarative content used to build the starting world.
// Tags are resolved when the world is bootstrapped; a definition that names
// an unknown tag is skipped there, not rejected here.
type Scenario struct {
	Seed          uint64            `yaml:"seed"`
	Cultures      []CultureDef      `yaml:"cultures"`
	Prototypes    []PrototypeDef    `yaml:"prototypes"`
	Sites         []SiteDef         `yaml:"sites"`
	Connections   [][]string        `yaml:"connections"`
	Factions      []FactionDef      `yaml:"factions"`
	LocationKinds []LocationKindDef `yaml:"location_kinds"`
	Locations     []LocationDef     `yaml:"locations"`
	Population    []PopulationDef   `yaml:"population"`
	Cards         []CardDef         `yaml:"cards"`
}

// CultureDef defines a culture and the names its people draw from.
type CultureDef struct {
	Tag           string   `yaml:"tag"`
	Name          string   `yaml:"name"`
	PersonalNames []string `yaml:"personal_names"`
}

// PrototypeDef defines a template for entities spawned at runtime.
type PrototypeDef struct {
	Tag         string   `yaml:"tag"`
	Name        string   `yaml:"name"`
	Kind        string   `yaml:"kind"`
	Sprite      string   `yaml:"sprite"`
	Size        float64  `yaml:"size"`
	Flags       []string `yaml:"flags"` // e.g. is_card
	HasLocation bool     `yaml:"has_location"`
	HasFaction  bool     `yaml:"has_faction"`
}

// SiteDef places a named node on the map.
type SiteDef struct {
	Tag string  `yaml:"tag"`
	X   float64 `yaml:"x"`
	Y   float64 `yaml:"y"`
}

// FactionDef defines a faction. A faction without a colour gets a random one.
type FactionDef struct {
	Tag    string    `yaml:"tag"`
	Name   string    `yaml:"name"`
	Parent string    `yaml:"parent"`
	Color  *ColorDef `yaml:"color"`
}

type ColorDef struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// LocationKindDef holds the presentation and default population of a kind of
// location.
type LocationKindDef struct {
	Tag    string  `yaml:"tag"`
	Label  string  `yaml:"label"`
	Sprite string  `yaml:"sprite"`
	Size   float64 `yaml:"size"`
	People int     `yaml:"people"`
}

// LocationDef binds a location entity to a site. The location takes the
// site's tag.
type LocationDef struct {
	Site    string `yaml:"site"`
	Name    string `yaml:"name"`
	Culture string `yaml:"culture"`
	Kind    string `yaml:"kind"`
	Faction string `yaml:"faction"`
	Capital bool   `yaml:"capital"`
}

// PopulationDef overrides how many people a location starts with.
type PopulationDef struct {
	Location string `yaml:"location"`
	Count    int    `yaml:"count"`
}

// CardDef places one prototype instance at a location.
type CardDef struct {
	Prototype string `yaml:"prototype"`
	Location  string `yaml:"location"`
}

// LoadScenario loads a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := ParseScenario(raw)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// ParseScenario decodes a scenario and checks its shape.
func ParseScenario(raw []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	for i, c := range sc.Connections {
		if len(c) != 2 {
			return nil, fmt.Errorf("connection %d: want 2 site tags, got %d", i, len(c))
		}
	}
	for _, p := range sc.Population {
		if p.Count < 0 {
			return nil, fmt.Errorf("population of %q: negative count %d", p.Location, p.Count)
		}
	}
	return &sc, nil
}

// PopulationOf returns the override for a location tag, if any.
func (sc *Scenario) PopulationOf(location string) (int, bool) {
	for _, p := range sc.Population {
		if p.Location == location {
			return p.Count, true
		}
	}
	return 0, false
}

// LocationKind returns the kind definition with the given tag.
func (sc *Scenario) LocationKind(tag string) (*LocationKindDef, bool) {
	for i := range sc.LocationKinds {
		if sc.LocationKinds[i].Tag == tag {
			return &sc.LocationKinds[i], true
		}
	}
	return nil, false
}
