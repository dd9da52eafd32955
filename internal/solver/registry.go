package solver

import (
	"fmt"
	"sort"
)

type Registry struct {
	solvers map[string]func(Options) Solver
}

func NewRegistry() *Registry {
	r := &Registry{
		solvers: make(map[string]func(Options) Solver),
	}

	r.solvers["newton"] = func(o Options) Solver { return NewNewton(o) }
	r.solvers["newton-forward"] = func(o Options) Solver { return NewNewtonForward(o) }
	r.solvers["secant"] = func(o Options) Solver { return NewSecant(o) }

	return r
}

func (r *Registry) Get(name string, opts Options) (Solver, error) {
	fn, ok := r.solvers[name]
	if !ok {
		return nil, fmt.Errorf("unknown solver: %s (available: %v)", name, r.List())
	}
	return fn(opts), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.solvers))
	for name := range r.solvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
