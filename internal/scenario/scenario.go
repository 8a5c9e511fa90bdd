// Package scenario holds the teaching simulations that drive the physutil
// helpers: each scenario owns its bodies, advances them with an explicit
// Euler step and feeds motion maps, axes, timers and graphs as it goes.
package scenario

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/physlab/internal/render"
)

var (
	ErrUnknownScenario = errors.New("scenario: unknown scenario")
	ErrUnknownParam    = errors.New("scenario: unknown parameter")
	ErrInvalidParam    = errors.New("scenario: invalid parameter value")
	ErrNotSetup        = errors.New("scenario: Step called before Setup")
)

// Stat is one line of a scenario's final report.
type Stat struct {
	Name  string
	Value string
}

type Scenario interface {
	Name() string
	Description() string

	// DefaultDt is the time step the scenario was tuned for.
	DefaultDt() float64

	// Setup creates every primitive the scenario draws. dt is the step size
	// Step will be called with.
	Setup(r render.Renderer, dt float64) error
	Step(dt float64) error
	Done() bool
	Time() float64
	Summary() []Stat

	Params() map[string]float64
	ParamList() []Param
	SetParam(name string, v float64) error
}

// Param is a tunable physical constant or initial condition.
type Param struct {
	Name  string
	Value float64
	Usage string
}

// base carries the bookkeeping every scenario shares.
type base struct {
	name   string
	desc   string
	dt     float64
	t      float64
	params []Param
	ready  bool
}

func (b *base) Name() string        { return b.name }
func (b *base) Description() string { return b.desc }
func (b *base) DefaultDt() float64  { return b.dt }
func (b *base) Time() float64       { return b.t }

func (b *base) Params() map[string]float64 {
	out := make(map[string]float64, len(b.params))
	for _, p := range b.params {
		out[p.Name] = p.Value
	}
	return out
}

func (b *base) ParamList() []Param {
	out := make([]Param, len(b.params))
	copy(out, b.params)
	return out
}

func (b *base) SetParam(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s=%v", ErrInvalidParam, name, v)
	}
	for i := range b.params {
		if b.params[i].Name == name {
			b.params[i].Value = v
			return nil
		}
	}
	return fmt.Errorf("%w: %q for %s (known: %v)", ErrUnknownParam, name, b.name, b.paramNames())
}

func (b *base) p(name string) float64 {
	for _, p := range b.params {
		if p.Name == name {
			return p.Value
		}
	}
	panic("scenario: undeclared parameter " + name)
}

func (b *base) paramNames() []string {
	names := make([]string, len(b.params))
	for i, p := range b.params {
		names[i] = p.Name
	}
	sort.Strings(names)
	return names
}

// begin resets time and marks the scenario ready to step.
func (b *base) begin() {
	b.t = 0
	b.ready = true
}

func (b *base) checkReady() error {
	if !b.ready {
		return fmt.Errorf("%w: %s", ErrNotSetup, b.name)
	}
	return nil
}

func stat(name, format string, args ...any) Stat {
	return Stat{Name: name, Value: fmt.Sprintf(format, args...)}
}
