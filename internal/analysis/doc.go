// Package analysis explores how the Twu estimates respond to their inputs.
//
//   - [Sweep]: estimates over an evenly spaced boiling-temperature grid
//   - [SweepGravity]: the same over a specific-gravity grid
//   - [Sensitivity]: partial derivatives and elasticities of each property
//   - [MatchGravity]: the specific gravity that reproduces a measured property
//   - [Properties]: the named scalar outputs the other functions report on
//
// # Sweeps
//
// A point that fails to estimate is kept with its error so the grid stays
// aligned:
//
//	points, err := analysis.Sweep(ctx, est, 0.85, 600, 1400, 50)
//	xs, ys := analysis.Series(points, analysis.MustProperty("tc"))
package analysis
