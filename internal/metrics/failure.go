package metrics

import (
	"math"

	"github.com/san-kum/twucrit/internal/batch"
)

type FailureRate struct {
	name     string
	failures int
	samples  int
}

func NewFailureRate() *FailureRate {
	return &FailureRate{name: "failure_rate"}
}

func (f *FailureRate) Name() string { return f.name }

func (f *FailureRate) Observe(o batch.Outcome) {
	f.samples++
	if o.Failed() {
		f.failures++
	}
}

func (f *FailureRate) Value() float64 {
	if f.samples == 0 {
		return math.NaN()
	}
	return float64(f.failures) / float64(f.samples)
}

func (f *FailureRate) Reset() {
	f.failures = 0
	f.samples = 0
}
