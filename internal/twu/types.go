package twu

import (
	"fmt"
	"math"
)

// Component is a petroleum fraction described by its normal boiling
// temperature (°R) and specific gravity (water = 1).
type Component struct {
	BoilingTemperature float64 `json:"tb" yaml:"tb"`
	SpecificGravity    float64 `json:"sg" yaml:"sg"`
}

// Validate checks that both properties are positive and finite. It does not
// check the correlation's fitted range.
func (c Component) Validate() error {
	if !positive(c.BoilingTemperature) {
		return fmt.Errorf("%w: boiling temperature %g", ErrInvalidInput, c.BoilingTemperature)
	}
	if !positive(c.SpecificGravity) {
		return fmt.Errorf("%w: specific gravity %g", ErrInvalidInput, c.SpecificGravity)
	}
	return nil
}

// AlkaneReference holds the properties of the normal alkane that shares the
// component's boiling temperature.
type AlkaneReference struct {
	BoilingTemperature  float64 `json:"tb"`
	CriticalTemperature float64 `json:"tc"`
	Alpha               float64 `json:"alpha"`
	CriticalVolume      float64 `json:"vc"`
	SpecificGravity     float64 `json:"sg"`
	CriticalPressure    float64 `json:"pc"`
	MolecularWeight     float64 `json:"mw"`
}

type CorrectionFactors struct {
	Temperature     float64 `json:"ft"`
	Volume          float64 `json:"fv"`
	Pressure        float64 `json:"fp"`
	MolecularWeight float64 `json:"fm"`
}

// CorrectedProperties are the alkane properties mapped onto the real
// component.
type CorrectedProperties struct {
	CriticalTemperature float64           `json:"tc"`
	CriticalVolume      float64           `json:"vc"`
	CriticalPressure    float64           `json:"pc"`
	MolecularWeight     float64           `json:"mw"`
	Factors             CorrectionFactors `json:"factors"`
}

type Characterization struct {
	WatsonK        float64 `json:"watson_k"`
	AcentricFactor float64 `json:"acentric_factor"`
}

type Result struct {
	Component        Component           `json:"component"`
	Alkane           AlkaneReference     `json:"alkane"`
	Corrected        CorrectedProperties `json:"corrected"`
	Characterization Characterization    `json:"characterization"`
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
