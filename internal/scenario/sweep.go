package scenario

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/physlab/internal/render"
)

// SweepRun is one point of a parameter sweep.
type SweepRun struct {
	Value  float64
	Result *Result
	Scene  *render.Scene
}

// Sweep runs the named scenario once per value of param, each run in its
// own goroutine against its own scene. Scenarios share no state, so the
// runs are independent.
func Sweep(ctx context.Context, reg *Registry, name string, fixed map[string]float64, param string, values []float64, cfg RunConfig) ([]SweepRun, error) {
	// Every scenario is built before any run starts, so a bad value
	// fails the sweep without leaving runs behind.
	scenarios := make([]Scenario, len(values))
	for i, v := range values {
		params := make(map[string]float64, len(fixed)+1)
		for k, pv := range fixed {
			params[k] = pv
		}
		params[param] = v

		s, err := reg.Get(name, params)
		if err != nil {
			return nil, fmt.Errorf("%s=%g: %w", param, v, err)
		}
		scenarios[i] = s
	}

	runs := make([]SweepRun, len(values))
	errs := make([]error, len(values))

	var wg sync.WaitGroup
	for i, s := range scenarios {
		wg.Add(1)
		go func(idx int, s Scenario, v float64) {
			defer wg.Done()
			scene := render.NewScene(fmt.Sprintf("%s %s=%g", name, param, v))
			res, err := Run(ctx, s, scene, cfg)
			runs[idx] = SweepRun{Value: v, Result: res, Scene: scene}
			errs[idx] = err
		}(i, s, values[i])
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s=%g: %w", param, values[i], err)
		}
	}
	return runs, nil
}
