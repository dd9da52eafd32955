package twu

import (
	"fmt"
	"math"

	"github.com/san-kum/twucrit/internal/solver"
)

// AlkaneCriticalTemperature returns the critical temperature (°R) of the
// normal alkane boiling at tb (°R).
func AlkaneCriticalTemperature(tb float64) (float64, error) {
	if !positive(tb) {
		return 0, fmt.Errorf("%w: boiling temperature %g", ErrInvalidInput, tb)
	}

	tb2 := tb * tb
	tc := tb / (0.533272 +
		0.191017e-3*tb +
		0.779681e-7*tb2 -
		0.284376e-10*tb2*tb +
		0.959468e28/math.Pow(tb, 13))

	if !positive(tc) {
		return 0, fmt.Errorf("%w: critical temperature %g for tb=%g", ErrInvalidInput, tc, tb)
	}
	return tc, nil
}

// Alpha is the reduced-temperature complement 1 - Tb/Tc of the alkane.
func Alpha(tb, tc float64) float64 {
	return 1 - tb/tc
}

// AlkaneCriticalVolume returns the alkane critical volume (ft³/lbmol).
func AlkaneCriticalVolume(alpha float64) (float64, error) {
	x := 0.419869 -
		0.505839*alpha -
		1.56436*alpha*alpha*alpha -
		9481.70*math.Pow(alpha, 14)

	if x == 1 {
		return 0, fmt.Errorf("%w: critical volume base is zero at alpha=%g", ErrSingularCorrection, alpha)
	}

	vc := math.Pow(1-x, -8)
	if !positive(vc) {
		return 0, fmt.Errorf("%w: critical volume %g at alpha=%g", ErrInvalidInput, vc, alpha)
	}
	return vc, nil
}

// AlkaneSpecificGravity returns the specific gravity of the alkane.
func AlkaneSpecificGravity(alpha float64) float64 {
	return 0.843593 -
		0.128624*alpha -
		3.36159*alpha*alpha*alpha -
		13749.5*math.Pow(alpha, 12)
}

// AlkaneCriticalPressure returns the alkane critical pressure (psia).
// alpha must be non-negative.
func AlkaneCriticalPressure(alpha float64) (float64, error) {
	if !(alpha >= 0) || math.IsInf(alpha, 0) {
		return 0, fmt.Errorf("%w: alpha %g has no real square root", ErrInvalidInput, alpha)
	}

	s := 3.83354 +
		1.19629*math.Sqrt(alpha) +
		34.8888*alpha +
		36.1952*alpha*alpha +
		104.193*math.Pow(alpha, 4)
	return s * s, nil
}

// AlkaneBoilingTemperature is the alkane boiling point (°R) as a function
// of theta = ln(MW). AlkaneMolecularWeight inverts it.
func AlkaneBoilingTemperature(theta float64) float64 {
	exponent := 5.71419 +
		2.71579*theta -
		0.286590*theta*theta -
		39.8544/theta -
		0.122488/(theta*theta)
	return math.Exp(exponent) - 24.7522*theta + 35.3155*theta*theta
}

// InitialMolecularWeight is the explicit first guess for the alkane
// molecular weight. It is non-positive for tb >= 10.44/0.0052.
func InitialMolecularWeight(tb float64) float64 {
	return tb / (10.44 - 0.0052*tb)
}

// AlkaneMolecularWeight solves AlkaneBoilingTemperature(ln MW) = tb.
func AlkaneMolecularWeight(tb float64, s solver.Solver) (float64, error) {
	if !positive(tb) {
		return 0, fmt.Errorf("%w: boiling temperature %g", ErrInvalidInput, tb)
	}

	guess := InitialMolecularWeight(tb)
	theta0 := math.Log(guess)
	if !finite(theta0) {
		return 0, fmt.Errorf("%w: initial molecular weight guess %g", ErrInvalidInput, guess)
	}

	res, err := s.Solve(AlkaneBoilingTemperature, tb, theta0)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrConvergence, err)
	}

	mw := math.Exp(res.X)
	if !positive(mw) {
		return 0, fmt.Errorf("%w: theta %g overflows", ErrConvergence, res.X)
	}
	return mw, nil
}

// NewAlkaneReference computes every alkane property for tb in dependency
// order: Tc, alpha, then Vc, SG, Pc; MW depends on tb alone.
func NewAlkaneReference(tb float64, s solver.Solver) (AlkaneReference, error) {
	c := Component{BoilingTemperature: tb}

	tc, err := AlkaneCriticalTemperature(tb)
	if err != nil {
		return AlkaneReference{}, stageErr(StageAlkaneTemperature, c, err)
	}
	alpha := Alpha(tb, tc)

	vc, err := AlkaneCriticalVolume(alpha)
	if err != nil {
		return AlkaneReference{}, stageErr(StageAlkaneVolume, c, err)
	}

	sg := AlkaneSpecificGravity(alpha)

	pc, err := AlkaneCriticalPressure(alpha)
	if err != nil {
		return AlkaneReference{}, stageErr(StageAlkanePressure, c, err)
	}

	mw, err := AlkaneMolecularWeight(tb, s)
	if err != nil {
		return AlkaneReference{}, stageErr(StageAlkaneMolecularWeight, c, err)
	}

	return AlkaneReference{
		BoilingTemperature:  tb,
		CriticalTemperature: tc,
		Alpha:               alpha,
		CriticalVolume:      vc,
		SpecificGravity:     sg,
		CriticalPressure:    pc,
		MolecularWeight:     mw,
	}, nil
}
