// Package twu estimates critical properties of petroleum fractions with the
// Twu (1984) correlation.
//
// An estimate runs as an ordered pipeline of pure functions:
//
//   - [NewAlkaneReference]: properties of the normal alkane that boils at Tb
//   - [Correct]: specific-gravity corrections onto the real fraction
//   - [Characterize]: Watson K and acentric factor of the result
//
// [Estimator] wires the three together around a [solver.Solver], which is
// used only to back out the alkane molecular weight.
//
// # Units
//
// Boiling and critical temperatures are in degrees Rankine, critical volume
// in ft³/lbmol, critical pressure in psia and molecular weight in lb/lbmol.
// The correlation constants are fitted in these units; conversion is left to
// the caller.
//
// # Example
//
//	res, err := twu.Estimate(twu.Component{BoilingTemperature: 919.34, SpecificGravity: 1.097})
//	if errors.Is(err, twu.ErrSingularCorrection) {
//	    // outside the correlation's domain
//	}
//	fmt.Println(res.Corrected.CriticalTemperature)
//
// All types are plain values. An [Estimator] holds no mutable state and can
// be shared between goroutines as long as its solver can.
package twu
