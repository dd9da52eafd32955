package solver

import "math"

const defaultSecantOffset = 1e-4

// Secant replaces the derivative with the slope through the last two
// iterates. The second starting point is x0*(1+Step), or x0+Step when x0 is
// zero.
type Secant struct {
	opts Options
}

func NewSecant(opts Options) *Secant {
	return &Secant{opts: opts}
}

func (s *Secant) Name() string { return "secant" }

func (s *Secant) Solve(f Func, target, x0 float64) (Result, error) {
	if err := s.opts.validate(); err != nil {
		return Result{}, err
	}

	g := func(x float64) float64 { return f(x) - target }

	offset := s.opts.Step
	if offset == 0 {
		offset = defaultSecantOffset
	}

	xPrev := x0
	x := x0 * (1 + offset)
	if x0 == 0 {
		x = offset
	}
	rPrev, r := g(xPrev), g(x)
	if !finite(xPrev, x, rPrev, r) {
		return Result{}, s.fail(0, x, r, ErrNonFinite)
	}
	if rPrev == 0 {
		return Result{X: xPrev}, nil
	}

	for i := 1; i <= s.opts.MaxIterations; i++ {
		slope := r - rPrev
		if slope == 0 {
			return Result{}, s.fail(i, x, r, ErrZeroDerivative)
		}
		step := r * (x - xPrev) / slope
		if math.IsInf(step, 0) {
			return Result{}, s.fail(i, x, r, ErrZeroDerivative)
		}

		xPrev, rPrev = x, r
		x -= step
		r = g(x)
		s.opts.trace("secant", i, x, r)

		if !finite(x, r) {
			return Result{}, s.fail(i, x, r, ErrNonFinite)
		}
		if s.opts.converged(step, x, r, target) {
			return Result{X: x, Residual: r, Iterations: i}, nil
		}
	}

	return Result{}, s.fail(s.opts.MaxIterations, x, r, ErrMaxIterations)
}

func (s *Secant) fail(i int, x, r float64, cause error) error {
	return &ConvergenceError{Method: "secant", Iterations: i, X: x, Residual: r, Wrapped: cause}
}
