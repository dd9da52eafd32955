package twu

import (
	"fmt"
	"math"
)

// standardPressure is one atmosphere in psia.
const standardPressure = 14.695949

// WatsonK is the Watson characterization factor Tb^(1/3)/SG with Tb in °R.
// Paraffinic fractions sit near 12.5, aromatic ones near 10.
func WatsonK(tb, sg float64) float64 {
	return math.Cbrt(tb) / sg
}

// AcentricFactor estimates the acentric factor from the normal boiling point
// and critical point with the Lee-Kesler vapor pressure relation.
func AcentricFactor(tb, tc, pc float64) (float64, error) {
	if !positive(tc) || !positive(pc) {
		return 0, fmt.Errorf("%w: tc=%g pc=%g", ErrInvalidInput, tc, pc)
	}

	tbr := tb / tc
	pbr := standardPressure / pc
	tbr6 := math.Pow(tbr, 6)
	lnTbr := math.Log(tbr)

	num := math.Log(pbr) - 5.92714 + 6.09648/tbr + 1.28862*lnTbr - 0.169347*tbr6
	den := 15.2518 - 15.6875/tbr - 13.4721*lnTbr + 0.43577*tbr6
	w := num / den
	if !finite(w) {
		return 0, fmt.Errorf("%w: acentric factor undefined at Tbr=%g", ErrInvalidInput, tbr)
	}
	return w, nil
}

func Characterize(c Component, p CorrectedProperties) (Characterization, error) {
	w, err := AcentricFactor(c.BoilingTemperature, p.CriticalTemperature, p.CriticalPressure)
	if err != nil {
		return Characterization{}, stageErr(StageCharacterization, c, err)
	}
	return Characterization{
		WatsonK:        WatsonK(c.BoilingTemperature, c.SpecificGravity),
		AcentricFactor: w,
	}, nil
}
