package analysis

import (
	"fmt"

	"github.com/san-kum/twucrit/internal/twu"
)

// Property names one scalar output of an estimate.
type Property struct {
	Name  string
	Label string
	Unit  string
	Value func(twu.Result) float64
}

var Properties = []Property{
	{"tc", "Critical temperature", "°R", func(r twu.Result) float64 { return r.Corrected.CriticalTemperature }},
	{"vc", "Critical volume", "ft³/lbmol", func(r twu.Result) float64 { return r.Corrected.CriticalVolume }},
	{"pc", "Critical pressure", "psia", func(r twu.Result) float64 { return r.Corrected.CriticalPressure }},
	{"mw", "Molecular weight", "g/mol", func(r twu.Result) float64 { return r.Corrected.MolecularWeight }},
	{"omega", "Acentric factor", "", func(r twu.Result) float64 { return r.Characterization.AcentricFactor }},
}

func LookupProperty(name string) (Property, error) {
	for _, p := range Properties {
		if p.Name == name {
			return p, nil
		}
	}
	return Property{}, fmt.Errorf("unknown property: %s (available: %v)", name, PropertyNames())
}

// MustProperty is LookupProperty for names known at compile time.
func MustProperty(name string) Property {
	p, err := LookupProperty(name)
	if err != nil {
		panic(err)
	}
	return p
}

func PropertyNames() []string {
	names := make([]string, len(Properties))
	for i, p := range Properties {
		names[i] = p.Name
	}
	return names
}
