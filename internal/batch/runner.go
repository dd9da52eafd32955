package batch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/san-kum/twucrit/internal/twu"
	"github.com/sirupsen/logrus"
)

// Item is one named fraction. Tb is in °R.
type Item struct {
	Name string  `yaml:"name" json:"name"`
	Tb   float64 `yaml:"tb" json:"tb"`
	SG   float64 `yaml:"sg" json:"sg"`
}

func (it Item) Component() twu.Component {
	return twu.Component{BoilingTemperature: it.Tb, SpecificGravity: it.SG}
}

type Outcome struct {
	Item   Item
	Result twu.Result
	Err    error
}

func (o Outcome) Failed() bool { return o.Err != nil }

type Runner struct {
	Estimator *twu.Estimator
	Workers   int
	Log       logrus.FieldLogger
}

func NewRunner(est *twu.Estimator, workers int) *Runner {
	return &Runner{Estimator: est, Workers: workers, Log: logrus.StandardLogger()}
}

// Run estimates every item. Items not started before ctx is done get
// ctx.Err() as their error.
func (r *Runner) Run(ctx context.Context, items []Item) []Outcome {
	start := time.Now()
	out := make([]Outcome, len(items))

	parallelFor(len(items), r.Workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = Outcome{Item: items[i]}
			if err := ctx.Err(); err != nil {
				out[i].Err = err
				continue
			}
			out[i].Result, out[i].Err = r.Estimator.Estimate(items[i].Component())
			if out[i].Err != nil {
				r.logFailure(items[i], out[i].Err)
			}
		}
	})

	failed := 0
	for _, o := range out {
		if o.Failed() {
			failed++
		}
	}
	r.log().WithFields(logrus.Fields{
		"items":   len(items),
		"failed":  failed,
		"workers": r.Workers,
		"elapsed": time.Since(start),
	}).Info("batch finished")

	return out
}

func (r *Runner) logFailure(it Item, err error) {
	fields := logrus.Fields{
		"name": it.Name,
		"tb":   it.Tb,
		"sg":   it.SG,
	}
	var se *twu.StageError
	if errors.As(err, &se) {
		fields["stage"] = se.Stage
	}
	r.log().WithFields(fields).WithError(err).Warn("estimate failed")
}

func (r *Runner) log() logrus.FieldLogger {
	if r.Log == nil {
		return logrus.StandardLogger()
	}
	return r.Log
}

// parallelFor splits [0, n) into at most workers contiguous chunks.
func parallelFor(n, workers int, fn func(start, end int)) {
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
