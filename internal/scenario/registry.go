package scenario

import (
	"fmt"
	"sort"
)

type Registry struct {
	scenarios map[string]func() Scenario
}

func NewRegistry() *Registry {
	r := &Registry{scenarios: make(map[string]func() Scenario)}

	r.Register("projectile", func() Scenario { return NewProjectile() })
	r.Register("circular", func() Scenario { return NewCircular() })
	r.Register("satellite", func() Scenario { return NewSatellite() })
	r.Register("binary", func() Scenario { return NewBinary() })
	r.Register("shm", func() Scenario { return NewSHM() })
	r.Register("spring_energy", func() Scenario { return NewSpringEnergy() })
	r.Register("inclined_plane", func() Scenario { return NewIncline() })
	r.Register("buoyancy", func() Scenario { return NewBuoyancy() })
	r.Register("inelastic", func() Scenario { return NewInelastic() })
	r.Register("length_contraction", func() Scenario { return NewLengthContraction() })
	r.Register("relativistic_momentum", func() Scenario { return NewRelativisticMomentum() })
	r.Register("one_d", func() Scenario { return NewOneD() })
	r.Register("launcher", func() Scenario { return NewLauncher() })

	return r
}

func (r *Registry) Register(name string, fn func() Scenario) {
	r.scenarios[name] = fn
}

// Get builds a fresh scenario and applies params on top of its defaults.
func (r *Registry) Get(name string, params map[string]float64) (Scenario, error) {
	fn, ok := r.scenarios[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScenario, name)
	}
	s := fn()

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := s.SetParam(k, params[k]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (r *Registry) Has(name string) bool {
	_, ok := r.scenarios[name]
	return ok
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.scenarios))
	for name := range r.scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
