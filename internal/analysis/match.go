package analysis

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/twucrit/internal/optim"
	"github.com/san-kum/twucrit/internal/solver"
	"github.com/san-kum/twucrit/internal/twu"
	"gonum.org/v1/gonum/floats"
)

// ErrNoMatch means no specific gravity at or above the alkane's reproduces
// the target.
var ErrNoMatch = errors.New("analysis: no matching specific gravity")

const (
	maxGravity  = 1.3
	matchPoints = 41
)

type Match struct {
	Component  twu.Component `json:"component"`
	Result     twu.Result    `json:"result"`
	Target     float64       `json:"target"`
	Iterations int           `json:"iterations"`
}

// MatchGravity finds the specific gravity at which a fraction boiling at tb
// has property p equal to target, for example a measured molecular weight.
// The search covers [SG°, 1.3], SG° being the alkane gravity at tb. A
// coarse grid picks the starting point and the secant method refines it.
func MatchGravity(ctx context.Context, est *twu.Estimator, tb float64, p Property, target float64) (Match, error) {
	ref, err := est.Alkane(tb)
	if err != nil {
		return Match{}, err
	}
	lo := ref.SpecificGravity
	if !(lo < maxGravity) {
		return Match{}, fmt.Errorf("%w: alkane gravity %g at tb=%g", ErrNoMatch, lo, tb)
	}

	value := func(sg float64) (float64, error) {
		res, err := est.Estimate(twu.Component{BoilingTemperature: tb, SpecificGravity: sg})
		if err != nil {
			return math.NaN(), err
		}
		return p.Value(res), nil
	}

	grid := optim.NewGridSearch([]string{"sg"}, [][]float64{floats.Span(make([]float64, matchPoints), lo, maxGravity)})
	start, _, err := grid.Search(ctx, func(params map[string]float64) (float64, error) {
		v, err := value(params["sg"])
		return math.Abs(v - target), err
	})
	if err != nil {
		return Match{}, fmt.Errorf("%w: %w", ErrNoMatch, err)
	}

	s := solver.NewSecant(solver.Options{
		Tolerance:         1e-10,
		ResidualTolerance: 1e-9,
		MaxIterations:     50,
	})
	res, err := s.Solve(func(sg float64) float64 {
		v, _ := value(sg)
		return v
	}, target, start["sg"])
	if err != nil {
		return Match{}, fmt.Errorf("%w: %w", ErrNoMatch, err)
	}
	if res.X < lo || res.X > maxGravity {
		return Match{}, fmt.Errorf("%w: solution sg=%g outside [%g, %g]", ErrNoMatch, res.X, lo, maxGravity)
	}

	c := twu.Component{BoilingTemperature: tb, SpecificGravity: res.X}
	final, err := est.Estimate(c)
	if err != nil {
		return Match{}, err
	}
	return Match{Component: c, Result: final, Target: target, Iterations: res.Iterations}, nil
}
