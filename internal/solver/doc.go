// Package solver finds x such that f(x) = y for scalar functions of one
// variable.
//
// The package knows nothing about what f computes. It provides:
//
//   - [Solver]: the narrow interface used by callers
//   - [Newton]: Newton iteration with a finite-difference derivative
//   - [Secant]: derivative-free secant iteration
//   - [Registry]: lookup of solvers by name
//
// # Example
//
//	s := solver.NewNewton(solver.DefaultOptions())
//	res, err := s.Solve(math.Exp, 10, 1)
//	if errors.Is(err, solver.ErrMaxIterations) {
//	    // retry with another initial guess
//	}
//
// # Failure modes
//
// A solver never returns a silently wrong answer. Every failure is a
// [*ConvergenceError] that wraps one of [ErrMaxIterations],
// [ErrZeroDerivative] or [ErrNonFinite].
package solver
