package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// AircraftType identifies an aircraft model produced by the factory
type AircraftType string

const (
	AircraftTB2       AircraftType = "TB2"
	AircraftTB3       AircraftType = "TB3"
	AircraftAkinci    AircraftType = "AKINCI"
	AircraftKizilelma AircraftType = "KIZILELMA"
)

// TeamType is the specialisation of a team. Every team type except ASSEMBLY
// is also a part category.
type TeamType string

const (
	TeamTypeBody     TeamType = "BODY"
	TeamTypeWing     TeamType = "WING"
	TeamTypeTail     TeamType = "TAIL"
	TeamTypeAvionics TeamType = "AVIONICS"
	TeamTypeAssembly TeamType = "ASSEMBLY"
)

var aircraftTypes = []AircraftType{AircraftTB2, AircraftTB3, AircraftAkinci, AircraftKizilelma}

// canonical order used for every listing
var partCategories = []TeamType{TeamTypeBody, TeamTypeWing, TeamTypeTail, TeamTypeAvionics}

var teamTypeNames = map[TeamType]string{
	TeamTypeBody:     "Body",
	TeamTypeWing:     "Wing",
	TeamTypeTail:     "Tail",
	TeamTypeAvionics: "Avionics",
	TeamTypeAssembly: "Assembly",
}

// IsValid checks if the AircraftType is valid
func (a AircraftType) IsValid() bool {
	switch a {
	case AircraftTB2, AircraftTB3, AircraftAkinci, AircraftKizilelma:
		return true
	}
	return false
}

// IsValid checks if the TeamType is valid
func (t TeamType) IsValid() bool {
	_, ok := teamTypeNames[t]
	return ok
}

// IsPartCategory reports whether teams of this type produce parts
func (t TeamType) IsPartCategory() bool {
	return t.IsValid() && t != TeamTypeAssembly
}

// DisplayName returns the human readable name of the team type
func (t TeamType) DisplayName() string {
	return teamTypeNames[t]
}

// AircraftTypes returns all known aircraft types
func AircraftTypes() []AircraftType {
	out := make([]AircraftType, len(aircraftTypes))
	copy(out, aircraftTypes)
	return out
}

// PartCategories returns all part-producing team types
func PartCategories() []TeamType {
	out := make([]TeamType, len(partCategories))
	copy(out, partCategories)
	return out
}

// PartName composes the display name of the stock bucket for a category and aircraft type.
func PartName(aircraftType AircraftType, category TeamType) string {
	return fmt.Sprintf("%s %s", aircraftType, category.DisplayName())
}

// Catalog is the immutable bill of materials: aircraft type -> part category -> required count.
type Catalog struct {
	required map[AircraftType]map[TeamType]int
}

// defaultRequiredParts: one part of every category for every aircraft type
var defaultRequiredParts = map[AircraftType]map[TeamType]int{
	AircraftTB2:       {TeamTypeBody: 1, TeamTypeWing: 1, TeamTypeTail: 1, TeamTypeAvionics: 1},
	AircraftTB3:       {TeamTypeBody: 1, TeamTypeWing: 1, TeamTypeTail: 1, TeamTypeAvionics: 1},
	AircraftAkinci:    {TeamTypeBody: 1, TeamTypeWing: 1, TeamTypeTail: 1, TeamTypeAvionics: 1},
	AircraftKizilelma: {TeamTypeBody: 1, TeamTypeWing: 1, TeamTypeTail: 1, TeamTypeAvionics: 1},
}

// Default returns the built-in bill of materials
func Default() *Catalog {
	c, err := New(defaultRequiredParts)
	if err != nil {
		panic(err)
	}
	return c
}

// New validates the table and returns a catalog holding a private copy of it.
func New(table map[AircraftType]map[TeamType]int) (*Catalog, error) {
	required := make(map[AircraftType]map[TeamType]int, len(aircraftTypes))
	for _, aircraftType := range aircraftTypes {
		row, ok := table[aircraftType]
		if !ok {
			return nil, fmt.Errorf("catalog: missing aircraft type %s", aircraftType)
		}
		copied := make(map[TeamType]int, len(partCategories))
		for _, category := range partCategories {
			count, ok := row[category]
			if !ok {
				return nil, fmt.Errorf("catalog: %s has no entry for %s", aircraftType, category)
			}
			if count < 0 {
				return nil, fmt.Errorf("catalog: %s %s requires a negative count", aircraftType, category)
			}
			copied[category] = count
		}
		for category := range row {
			if !category.IsPartCategory() {
				return nil, fmt.Errorf("catalog: %s references non-part category %q", aircraftType, category)
			}
		}
		required[aircraftType] = copied
	}
	for aircraftType := range table {
		if !aircraftType.IsValid() {
			return nil, fmt.Errorf("catalog: unknown aircraft type %q", aircraftType)
		}
	}
	return &Catalog{required: required}, nil
}

type catalogFile struct {
	RequiredParts map[AircraftType]map[TeamType]int `yaml:"required_parts"`
}

// Load reads a YAML bill of materials. The file must define every aircraft type and category.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return New(file.RequiredParts)
}

func (c *Catalog) row(aircraftType AircraftType) map[TeamType]int {
	row, ok := c.required[aircraftType]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown aircraft type %q", aircraftType))
	}
	return row
}

// Supports reports whether the aircraft type's bill of materials needs parts of the category.
// A category with a required count of zero is not supported.
func (c *Catalog) Supports(aircraftType AircraftType, category TeamType) bool {
	row, ok := c.required[aircraftType]
	if !ok {
		return false
	}
	return row[category] > 0
}

// RequiredCount returns how many parts of a category an aircraft type needs.
// Unknown keys panic: callers validate enums before reaching the catalog.
func (c *Catalog) RequiredCount(aircraftType AircraftType, category TeamType) int {
	count, ok := c.row(aircraftType)[category]
	if !ok {
		panic(fmt.Sprintf("catalog: %s has no category %q", aircraftType, category))
	}
	return count
}

// CategoriesFor lists the categories required by an aircraft type in canonical order
func (c *Catalog) CategoriesFor(aircraftType AircraftType) []TeamType {
	row := c.row(aircraftType)
	out := make([]TeamType, 0, len(row))
	for _, category := range partCategories {
		if row[category] > 0 {
			out = append(out, category)
		}
	}
	return out
}

// MissingParts returns, for every category still short of its quota, how many parts are missing.
// An empty result means the aircraft is complete.
func (c *Catalog) MissingParts(aircraftType AircraftType, attached map[TeamType]int) map[TeamType]int {
	missing := make(map[TeamType]int)
	for category, required := range c.row(aircraftType) {
		if have := attached[category]; have < required {
			missing[category] = required - have
		}
	}
	return missing
}

// IsComplete reports whether the attached counts meet every quota of the aircraft type
func (c *Catalog) IsComplete(aircraftType AircraftType, attached map[TeamType]int) bool {
	return len(c.MissingParts(aircraftType, attached)) == 0
}

// SortedCategories returns the keys of a category map in canonical order
func SortedCategories(m map[TeamType]int) []TeamType {
	out := make([]TeamType, 0, len(m))
	for category := range m {
		out = append(out, category)
	}
	order := make(map[TeamType]int, len(partCategories))
	for i, category := range partCategories {
		order[category] = i
	}
	sort.Slice(out, func(i, j int) bool { return order[out[i]] < order[out[j]] })
	return out
}
