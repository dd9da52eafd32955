package solver

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// Newton iterates x_{n+1} = x_n - (f(x_n) - y)/f'(x_n) with f' estimated by
// finite differences.
type Newton struct {
	name    string
	opts    Options
	formula fd.Formula
	// forward differences reuse the residual already evaluated at x_n
	reuseOrigin bool
}

// NewNewton uses central differences.
func NewNewton(opts Options) *Newton {
	return &Newton{name: "newton", opts: opts, formula: fd.Central}
}

// NewNewtonForward uses forward differences, one function evaluation per
// iteration cheaper than [NewNewton] at the cost of a less accurate slope.
func NewNewtonForward(opts Options) *Newton {
	return &Newton{name: "newton-forward", opts: opts, formula: fd.Forward, reuseOrigin: true}
}

func (n *Newton) Name() string { return n.name }

func (n *Newton) Solve(f Func, target, x0 float64) (Result, error) {
	if err := n.opts.validate(); err != nil {
		return Result{}, err
	}

	g := func(x float64) float64 { return f(x) - target }

	x := x0
	if !finite(x) {
		return Result{}, n.fail(0, x, math.NaN(), ErrNonFinite)
	}
	r := g(x)
	if !finite(r) {
		return Result{}, n.fail(0, x, r, ErrNonFinite)
	}
	if r == 0 {
		return Result{X: x}, nil
	}

	settings := fd.Settings{Formula: n.formula, Step: n.opts.Step}

	for i := 1; i <= n.opts.MaxIterations; i++ {
		if n.reuseOrigin {
			settings.OriginKnown = true
			settings.OriginValue = r
		}
		d := fd.Derivative(g, x, &settings)
		if !finite(d) {
			return Result{}, n.fail(i, x, r, ErrNonFinite)
		}

		step := r / d
		if d == 0 || math.IsInf(step, 0) {
			return Result{}, n.fail(i, x, r, ErrZeroDerivative)
		}

		x -= step
		r = g(x)
		n.opts.trace(n.name, i, x, r)

		if !finite(x, r) {
			return Result{}, n.fail(i, x, r, ErrNonFinite)
		}
		if n.opts.converged(step, x, r, target) {
			return Result{X: x, Residual: r, Iterations: i}, nil
		}
	}

	return Result{}, n.fail(n.opts.MaxIterations, x, r, ErrMaxIterations)
}

func (n *Newton) fail(i int, x, r float64, cause error) error {
	return &ConvergenceError{Method: n.name, Iterations: i, X: x, Residual: r, Wrapped: cause}
}
