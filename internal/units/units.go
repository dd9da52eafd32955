// Package units converts between the field units the correlation works in
// (°R, ft³/lbmol, psia) and the units people usually have at hand.
package units

import (
	"fmt"
	"strings"
)

// Conversions
const (
	RankinePerKelvin = 1.8
	RankineOffsetF   = 459.67
	KelvinOffsetC    = 273.15

	CubicCmPerCubicFt = 28316.846592
	GramsPerPound     = 453.59237
	// ft³/lbmol to cm³/mol
	VolumeFieldToSI = CubicCmPerCubicFt / GramsPerPound

	BarPerPsi = 0.0689475729317831
	KPaPerPsi = 6.89475729317831
)

type Temperature string

const (
	Rankine    Temperature = "R"
	Kelvin     Temperature = "K"
	Celsius    Temperature = "C"
	Fahrenheit Temperature = "F"
)

// ParseTemperature accepts R, K, C or F in any case, with or without a
// leading degree sign.
func ParseTemperature(s string) (Temperature, error) {
	u := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), "°"))
	switch Temperature(u) {
	case Rankine, Kelvin, Celsius, Fahrenheit:
		return Temperature(u), nil
	case "":
		return Rankine, nil
	}
	return "", fmt.Errorf("unknown temperature unit: %q (use R, K, C or F)", s)
}

func (u Temperature) Symbol() string {
	if u == Kelvin {
		return "K"
	}
	return "°" + string(u)
}

// ToRankine converts v in unit u to °R.
func ToRankine(v float64, u Temperature) float64 {
	switch u {
	case Kelvin:
		return v * RankinePerKelvin
	case Celsius:
		return (v + KelvinOffsetC) * RankinePerKelvin
	case Fahrenheit:
		return v + RankineOffsetF
	default:
		return v
	}
}

// FromRankine converts v in °R to unit u.
func FromRankine(v float64, u Temperature) float64 {
	switch u {
	case Kelvin:
		return v / RankinePerKelvin
	case Celsius:
		return v/RankinePerKelvin - KelvinOffsetC
	case Fahrenheit:
		return v - RankineOffsetF
	default:
		return v
	}
}

func CubicFtPerLbmolToCm3PerMol(v float64) float64 { return v * VolumeFieldToSI }

func PsiaToBar(v float64) float64 { return v * BarPerPsi }

func PsiaToKPa(v float64) float64 { return v * KPaPerPsi }
