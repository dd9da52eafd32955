package analysis

import (
	"context"
	"fmt"

	"github.com/san-kum/twucrit/internal/twu"
	"gonum.org/v1/gonum/floats"
)

// SweepPoint is one grid point. Err is set instead of Result when the
// estimate failed.
type SweepPoint struct {
	Component twu.Component
	Result    twu.Result
	Err       error
}

// Sweep estimates components of gravity sg over n boiling temperatures
// spanning [tbMin, tbMax].
func Sweep(ctx context.Context, est *twu.Estimator, sg, tbMin, tbMax float64, n int) ([]SweepPoint, error) {
	return sweep(ctx, est, tbMin, tbMax, n, func(x float64) twu.Component {
		return twu.Component{BoilingTemperature: x, SpecificGravity: sg}
	})
}

// SweepGravity holds tb fixed and spans [sgMin, sgMax].
func SweepGravity(ctx context.Context, est *twu.Estimator, tb, sgMin, sgMax float64, n int) ([]SweepPoint, error) {
	return sweep(ctx, est, sgMin, sgMax, n, func(x float64) twu.Component {
		return twu.Component{BoilingTemperature: tb, SpecificGravity: x}
	})
}

func sweep(ctx context.Context, est *twu.Estimator, lo, hi float64, n int, at func(float64) twu.Component) ([]SweepPoint, error) {
	if n < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 points, got %d", n)
	}
	if !(lo < hi) {
		return nil, fmt.Errorf("sweep range [%g, %g] is empty", lo, hi)
	}

	grid := floats.Span(make([]float64, n), lo, hi)
	points := make([]SweepPoint, n)
	for i, x := range grid {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c := at(x)
		res, err := est.Estimate(c)
		points[i] = SweepPoint{Component: c, Result: res, Err: err}
	}
	return points, nil
}

// Series extracts the swept coordinate and p for every successful point.
func Series(points []SweepPoint, p Property) (xs, ys []float64) {
	if len(points) == 0 {
		return nil, nil
	}
	byGravity := points[0].Component.BoilingTemperature == points[len(points)-1].Component.BoilingTemperature

	for _, pt := range points {
		if pt.Err != nil {
			continue
		}
		x := pt.Component.BoilingTemperature
		if byGravity {
			x = pt.Component.SpecificGravity
		}
		xs = append(xs, x)
		ys = append(ys, p.Value(pt.Result))
	}
	return xs, ys
}

// Failures counts the points that did not estimate.
func Failures(points []SweepPoint) int {
	n := 0
	for _, pt := range points {
		if pt.Err != nil {
			n++
		}
	}
	return n
}
