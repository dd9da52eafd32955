package metrics

import (
	"math"

	"github.com/san-kum/twucrit/internal/batch"
	"github.com/san-kum/twucrit/internal/twu"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Extractor func(twu.Result) float64

var (
	CriticalTemperature Extractor = func(r twu.Result) float64 { return r.Corrected.CriticalTemperature }
	CriticalPressure    Extractor = func(r twu.Result) float64 { return r.Corrected.CriticalPressure }
	MolecularWeight     Extractor = func(r twu.Result) float64 { return r.Corrected.MolecularWeight }
	AcentricFactor      Extractor = func(r twu.Result) float64 { return r.Characterization.AcentricFactor }
)

type Kind int

const (
	Mean Kind = iota
	StdDev
	Min
	Max
)

// Statistic reduces one property of the successful outcomes.
type Statistic struct {
	name   string
	kind   Kind
	get    Extractor
	values []float64
}

func NewStatistic(name string, kind Kind, get Extractor) *Statistic {
	return &Statistic{name: name, kind: kind, get: get}
}

func (s *Statistic) Name() string { return s.name }

func (s *Statistic) Observe(o batch.Outcome) {
	if o.Failed() {
		return
	}
	s.values = append(s.values, s.get(o.Result))
}

func (s *Statistic) Value() float64 {
	switch {
	case len(s.values) == 0:
		return math.NaN()
	case s.kind == StdDev && len(s.values) < 2:
		return math.NaN()
	}

	switch s.kind {
	case StdDev:
		return stat.StdDev(s.values, nil)
	case Min:
		return floats.Min(s.values)
	case Max:
		return floats.Max(s.values)
	default:
		return stat.Mean(s.values, nil)
	}
}

func (s *Statistic) Reset() {
	s.values = s.values[:0]
}
