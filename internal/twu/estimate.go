package twu

import (
	"errors"

	"github.com/san-kum/twucrit/internal/solver"
)

// Estimator runs the full pipeline with a fixed root finder.
type Estimator struct {
	solver solver.Solver
}

type Option func(*Estimator)

// WithSolver replaces the default central-difference Newton solver.
func WithSolver(s solver.Solver) Option {
	return func(e *Estimator) {
		if s != nil {
			e.solver = s
		}
	}
}

func NewEstimator(opts ...Option) *Estimator {
	e := &Estimator{solver: solver.NewNewton(solver.DefaultOptions())}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Estimator) Solver() solver.Solver { return e.solver }

func (e *Estimator) Alkane(tb float64) (AlkaneReference, error) {
	return NewAlkaneReference(tb, e.solver)
}

// Estimate computes the alkane reference, the corrected properties and the
// characterization of c. It returns the first stage error and no partial
// result.
func (e *Estimator) Estimate(c Component) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, stageErr(StageInput, c, err)
	}

	ref, err := e.Alkane(c.BoilingTemperature)
	if err != nil {
		var se *StageError
		if errors.As(err, &se) {
			se.Component = c
		}
		return Result{}, err
	}

	corrected, err := Correct(c, ref)
	if err != nil {
		return Result{}, err
	}

	ch, err := Characterize(c, corrected)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Component:        c,
		Alkane:           ref,
		Corrected:        corrected,
		Characterization: ch,
	}, nil
}

// Estimate runs a one-off [Estimator] built from opts.
func Estimate(c Component, opts ...Option) (Result, error) {
	return NewEstimator(opts...).Estimate(c)
}
