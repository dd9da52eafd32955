package config

import (
	"sort"
	"strings"

	"github.com/san-kum/twucrit/internal/twu"
)

// Fraction is a named sample petroleum fraction. Tb is in °R.
type Fraction struct {
	Description string  `yaml:"description"`
	Tb          float64 `yaml:"tb"`
	SG          float64 `yaml:"sg"`
}

func (f Fraction) Component() twu.Component {
	return twu.Component{BoilingTemperature: f.Tb, SpecificGravity: f.SG}
}

var Presets = map[string]map[string]Fraction{
	"paraffinic": {
		"naphtha":  {Description: "light straight-run naphtha", Tb: 600, SG: 0.70},
		"kerosene": {Description: "paraffinic kerosene cut", Tb: 900, SG: 0.78},
		"gas-oil":  {Description: "atmospheric gas oil", Tb: 1100, SG: 0.84},
	},
	"naphthenic": {
		"medium": {Description: "naphthenic middle distillate", Tb: 1000, SG: 0.85},
		"heavy":  {Description: "naphthenic lube base", Tb: 1200, SG: 0.90},
	},
	"aromatic": {
		"light":     {Description: "light reformate", Tb: 800, SG: 0.88},
		"reformate": {Description: "heavy aromatic reformate", Tb: 919.34, SG: 1.097},
	},
	"residue": {
		"vgo": {Description: "vacuum gas oil", Tb: 1400, SG: 0.95},
	},
}

func GetPreset(family, name string) *Fraction {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	f, ok := familyPresets[name]
	if !ok {
		return nil
	}
	return &f
}

// LookupPreset resolves "family/name".
func LookupPreset(ref string) *Fraction {
	family, name, ok := strings.Cut(ref, "/")
	if !ok {
		return nil
	}
	return GetPreset(family, name)
}

func ListPresets(family string) []string {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(familyPresets))
	for name := range familyPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ListFamilies() []string {
	families := make([]string, 0, len(Presets))
	for family := range Presets {
		families = append(families, family)
	}
	sort.Strings(families)
	return families
}
