package twu

import (
	"fmt"
	"math"
)

// TemperatureCorrectionFactor returns fT for a component of gravity sg whose
// alkane reference has gravity sgAlkane. It is exactly zero when the two
// gravities are equal.
func TemperatureCorrectionFactor(tb, sg, sgAlkane float64) float64 {
	d := math.Exp(5*(sgAlkane-sg)) - 1
	rt := math.Sqrt(tb)
	return d * (-0.362456/rt + (0.0398285-0.948125/rt)*d)
}

// VolumeCorrectionFactor returns fV. A component heavier than its alkane
// reference gets a negative fV and hence a smaller critical volume.
func VolumeCorrectionFactor(tb, sg, sgAlkane float64) float64 {
	d := math.Exp(4*(sgAlkane*sgAlkane-sg*sg)) - 1
	rt := math.Sqrt(tb)
	return d * (0.466590/rt + (-0.182421+3.01721/rt)*d)
}

func PressureCorrectionFactor(tb, sg, sgAlkane float64) float64 {
	d := math.Exp(0.5*(sgAlkane-sg)) - 1
	rt := math.Sqrt(tb)
	return d * ((2.53262 - 46.1955/rt - 0.00127885*tb) +
		(-11.4277+252.140/rt+0.00230535*tb)*d)
}

func MolecularWeightCorrectionFactor(tb, sg, sgAlkane float64) float64 {
	d := math.Exp(5*(sgAlkane-sg)) - 1
	rt := math.Sqrt(tb)
	x := math.Abs(0.0123420 - 0.328086/rt)
	return d * (x + (-0.0175691+0.193168/rt)*d)
}

// correctionRatio returns ((1+2f)/(1-2f))².
func correctionRatio(f float64) (float64, error) {
	den := 1 - 2*f
	if den == 0 {
		return 0, fmt.Errorf("%w: correction factor %g makes 1-2f zero", ErrSingularCorrection, f)
	}
	r := (1 + 2*f) / den
	if !finite(r) {
		return 0, fmt.Errorf("%w: correction factor %g", ErrInvalidInput, f)
	}
	return r * r, nil
}

// CorrectedCriticalTemperature maps the alkane critical temperature onto the
// component.
func CorrectedCriticalTemperature(tb, sg, sgAlkane, tcAlkane float64) (float64, error) {
	ratio, err := correctionRatio(TemperatureCorrectionFactor(tb, sg, sgAlkane))
	if err != nil {
		return 0, err
	}
	return tcAlkane * ratio, nil
}

// CorrectedCriticalVolume maps the alkane critical volume onto the component.
func CorrectedCriticalVolume(tb, sg, sgAlkane, vcAlkane float64) (float64, error) {
	ratio, err := correctionRatio(VolumeCorrectionFactor(tb, sg, sgAlkane))
	if err != nil {
		return 0, err
	}
	return vcAlkane * ratio, nil
}

// CorrectedCriticalPressure needs the corrected critical temperature and
// volume as well as their alkane values.
func CorrectedCriticalPressure(tb, sg, sgAlkane, pcAlkane, tcAlkane, tc, vcAlkane, vc float64) (float64, error) {
	if tcAlkane == 0 || vc == 0 {
		return 0, fmt.Errorf("%w: zero critical temperature or volume", ErrInvalidInput)
	}
	ratio, err := correctionRatio(PressureCorrectionFactor(tb, sg, sgAlkane))
	if err != nil {
		return 0, err
	}
	return pcAlkane * (tc / tcAlkane) * (vcAlkane / vc) * ratio, nil
}

// CorrectedMolecularWeight applies ln MW = ln MW° ((1+2fM)/(1-2fM))².
func CorrectedMolecularWeight(tb, sg, sgAlkane, mwAlkane float64) (float64, error) {
	ratio, err := correctionRatio(MolecularWeightCorrectionFactor(tb, sg, sgAlkane))
	if err != nil {
		return 0, err
	}
	mw := math.Pow(mwAlkane, ratio)
	if !positive(mw) {
		return 0, fmt.Errorf("%w: molecular weight %g", ErrInvalidInput, mw)
	}
	return mw, nil
}

// Correct applies all four gravity corrections to ref.
func Correct(c Component, ref AlkaneReference) (CorrectedProperties, error) {
	tb, sg, sgAlkane := c.BoilingTemperature, c.SpecificGravity, ref.SpecificGravity

	tc, err := CorrectedCriticalTemperature(tb, sg, sgAlkane, ref.CriticalTemperature)
	if err != nil {
		return CorrectedProperties{}, stageErr(StageCorrectedTemperature, c, err)
	}

	vc, err := CorrectedCriticalVolume(tb, sg, sgAlkane, ref.CriticalVolume)
	if err != nil {
		return CorrectedProperties{}, stageErr(StageCorrectedVolume, c, err)
	}

	pc, err := CorrectedCriticalPressure(tb, sg, sgAlkane,
		ref.CriticalPressure, ref.CriticalTemperature, tc, ref.CriticalVolume, vc)
	if err != nil {
		return CorrectedProperties{}, stageErr(StageCorrectedPressure, c, err)
	}

	mw, err := CorrectedMolecularWeight(tb, sg, sgAlkane, ref.MolecularWeight)
	if err != nil {
		return CorrectedProperties{}, stageErr(StageCorrectedMolecularWeight, c, err)
	}

	return CorrectedProperties{
		CriticalTemperature: tc,
		CriticalVolume:      vc,
		CriticalPressure:    pc,
		MolecularWeight:     mw,
		Factors: CorrectionFactors{
			Temperature:     TemperatureCorrectionFactor(tb, sg, sgAlkane),
			Volume:          VolumeCorrectionFactor(tb, sg, sgAlkane),
			Pressure:        PressureCorrectionFactor(tb, sg, sgAlkane),
			MolecularWeight: MolecularWeightCorrectionFactor(tb, sg, sgAlkane),
		},
	}, nil
}
