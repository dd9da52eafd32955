package solver

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Func is a continuous scalar function of one variable.
type Func func(x float64) float64

// Solver finds x with f(x) = target starting from x0.
type Solver interface {
	Name() string
	Solve(f Func, target, x0 float64) (Result, error)
}

type Result struct {
	X          float64
	Residual   float64
	Iterations int
}

// Options control termination. Tolerances are relative: a step is small
// when |dx| <= Tolerance*max(1, |x|) and a residual is small when
// |f(x)-target| <= ResidualTolerance*max(1, |target|).
type Options struct {
	Tolerance         float64
	ResidualTolerance float64
	MaxIterations     int
	// Step is the finite-difference step (Newton) or the relative offset of
	// the second starting point (Secant). Zero selects the default.
	Step float64
	Log  logrus.FieldLogger
}

func DefaultOptions() Options {
	return Options{
		Tolerance:         1e-12,
		ResidualTolerance: 1e-9,
		MaxIterations:     50,
	}
}

func (o Options) validate() error {
	if o.Tolerance <= 0 || o.ResidualTolerance <= 0 || o.MaxIterations <= 0 {
		return fmt.Errorf("%w (tolerance=%g, residual=%g, max=%d)",
			ErrBadOptions, o.Tolerance, o.ResidualTolerance, o.MaxIterations)
	}
	if o.Step < 0 || math.IsNaN(o.Step) || math.IsInf(o.Step, 0) {
		return fmt.Errorf("%w (step=%g)", ErrBadOptions, o.Step)
	}
	return nil
}

func (o Options) converged(step, x, residual, target float64) bool {
	return math.Abs(step) <= o.Tolerance*math.Max(1, math.Abs(x)) &&
		math.Abs(residual) <= o.ResidualTolerance*math.Max(1, math.Abs(target))
}

func (o Options) trace(method string, i int, x, residual float64) {
	if o.Log == nil {
		return
	}
	o.Log.WithFields(logrus.Fields{
		"method":    method,
		"iteration": i,
		"x":         x,
		"residual":  residual,
	}).Debug("solver step")
}

// Solve runs Newton's method on f(x) = target using tol for both the step and
// residual tests.
func Solve(f Func, target, x0, tol float64, maxIterations int) (float64, error) {
	s := NewNewton(Options{
		Tolerance:         tol,
		ResidualTolerance: tol,
		MaxIterations:     maxIterations,
	})
	res, err := s.Solve(f, target, x0)
	if err != nil {
		return 0, err
	}
	return res.X, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
