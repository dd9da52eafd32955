package metrics

import (
	"math"

	"github.com/san-kum/twucrit/internal/batch"
)

// Metric accumulates one summary value over batch outcomes.
type Metric interface {
	Name() string
	Observe(o batch.Outcome)
	// Value is NaN until enough outcomes have been observed.
	Value() float64
	Reset()
}

// Summarize feeds every outcome to each metric and returns the defined
// values by name.
func Summarize(outcomes []batch.Outcome, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for _, o := range outcomes {
			m.Observe(o)
		}
		if v := m.Value(); !math.IsNaN(v) {
			out[m.Name()] = v
		}
	}
	return out
}

// Default is the metric set stored with every saved run.
func Default() []Metric {
	ms := []Metric{NewFailureRate()}
	for _, p := range []struct {
		name string
		get  Extractor
	}{
		{"tc", CriticalTemperature},
		{"pc", CriticalPressure},
		{"mw", MolecularWeight},
		{"omega", AcentricFactor},
	} {
		ms = append(ms,
			NewStatistic("mean_"+p.name, Mean, p.get),
			NewStatistic("std_"+p.name, StdDev, p.get),
		)
	}
	return ms
}
