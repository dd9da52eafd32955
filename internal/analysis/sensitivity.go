package analysis

import (
	"math"

	"github.com/san-kum/twucrit/internal/twu"
	"gonum.org/v1/gonum/diff/fd"
)

const (
	// relative finite-difference steps
	tbStep = 1e-4
	sgStep = 1e-5
)

// PropertySensitivity holds the partial derivatives of one property at a
// component, and the matching elasticities d ln P / d ln x.
type PropertySensitivity struct {
	Property     string  `json:"property"`
	Value        float64 `json:"value"`
	DTb          float64 `json:"d_tb"`
	DSG          float64 `json:"d_sg"`
	ElasticityTb float64 `json:"elasticity_tb"`
	ElasticitySG float64 `json:"elasticity_sg"`
}

// Sensitivity differentiates every entry of [Properties] with respect to
// the boiling temperature and the specific gravity by central differences.
// It fails if c or any perturbed component fails to estimate.
func Sensitivity(est *twu.Estimator, c twu.Component) ([]PropertySensitivity, error) {
	base, err := est.Estimate(c)
	if err != nil {
		return nil, err
	}

	var firstErr error
	value := func(p Property, comp twu.Component) float64 {
		res, err := est.Estimate(comp)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return math.NaN()
		}
		return p.Value(res)
	}

	tb, sg := c.BoilingTemperature, c.SpecificGravity
	out := make([]PropertySensitivity, 0, len(Properties))
	for _, p := range Properties {
		v := p.Value(base)

		dTb := fd.Derivative(func(x float64) float64 {
			return value(p, twu.Component{BoilingTemperature: x, SpecificGravity: sg})
		}, tb, &fd.Settings{Formula: fd.Central, Step: tbStep * tb})

		dSG := fd.Derivative(func(x float64) float64 {
			return value(p, twu.Component{BoilingTemperature: tb, SpecificGravity: x})
		}, sg, &fd.Settings{Formula: fd.Central, Step: sgStep * sg})

		if firstErr != nil {
			return nil, firstErr
		}

		out = append(out, PropertySensitivity{
			Property:     p.Name,
			Value:        v,
			DTb:          dTb,
			DSG:          dSG,
			ElasticityTb: elasticity(dTb, tb, v),
			ElasticitySG: elasticity(dSG, sg, v),
		})
	}
	return out, nil
}

func elasticity(d, x, v float64) float64 {
	if v == 0 {
		return math.NaN()
	}
	return d * x / v
}
