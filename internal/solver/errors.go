package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrMaxIterations indicates the iteration cap was reached before the
	// step and residual fell below tolerance.
	ErrMaxIterations = errors.New("solver: iteration limit reached")

	// ErrZeroDerivative indicates the local slope estimate is numerically zero.
	ErrZeroDerivative = errors.New("solver: derivative vanished")

	// ErrNonFinite indicates an iterate, residual or slope became NaN or Inf.
	ErrNonFinite = errors.New("solver: non-finite value (NaN or Inf detected)")

	// ErrBadOptions indicates a non-positive tolerance or iteration limit.
	ErrBadOptions = errors.New("solver: tolerance and iteration limit must be positive")
)

// ConvergenceError carries the state of the iteration at the point it failed.
type ConvergenceError struct {
	Method     string
	Iterations int
	X          float64
	Residual   float64
	Wrapped    error
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: %v (iteration %d, x=%g, residual=%g)",
		e.Method, e.Wrapped, e.Iterations, e.X, e.Residual)
}

func (e *ConvergenceError) Unwrap() error {
	return e.Wrapped
}
