package scenario

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/san-kum/physlab/internal/logging"
	"github.com/san-kum/physlab/internal/render"
)

type RunConfig struct {
	// Dt defaults to the scenario's DefaultDt when zero.
	Dt float64

	// MaxTime stops the run early; zero leaves it to the scenario.
	MaxTime float64

	// Rate throttles to at most Rate steps per second; zero runs flat out.
	Rate float64

	// MaxSteps guards against a scenario that never finishes; zero means
	// no limit.
	MaxSteps int
}

type StopReason string

const (
	StopDone     StopReason = "done"
	StopMaxTime  StopReason = "max_time"
	StopMaxSteps StopReason = "max_steps"
)

type Result struct {
	Scenario string
	Steps    int
	Time     float64
	Reason   StopReason
	Elapsed  time.Duration
	Summary  []Stat
}

// StepError records the step on which a scenario failed.
type StepError struct {
	Scenario string
	Step     int
	Time     float64
	Err      error
}

func (e StepError) Error() string {
	return fmt.Sprintf("%s: step %d at t=%.6g: %v", e.Scenario, e.Step, e.Time, e.Err)
}

func (e StepError) Unwrap() error { return e.Err }

// validate rejects negative and NaN limits; the comparisons are written so
// that NaN fails them.
func (c RunConfig) validate() error {
	if !(c.Dt >= 0) || math.IsInf(c.Dt, 1) {
		return fmt.Errorf("dt must be positive and finite, got %f", c.Dt)
	}
	if !(c.MaxTime >= 0) {
		return fmt.Errorf("max time must not be negative, got %f", c.MaxTime)
	}
	if !(c.Rate >= 0) {
		return fmt.Errorf("rate must not be negative, got %f", c.Rate)
	}
	return nil
}

// tickInterval is the pause between throttled steps, never below 1ns.
func (c RunConfig) tickInterval() time.Duration {
	return max(time.Duration(float64(time.Second)/c.Rate), time.Nanosecond)
}

// Run sets s up against r and steps it until it reports Done, the time or
// step limit is reached, ctx is cancelled or a step fails. The first failing
// step ends the run.
func Run(ctx context.Context, s Scenario, r render.Renderer, cfg RunConfig) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	dt := cfg.Dt
	if dt == 0 {
		dt = s.DefaultDt()
	}
	log := logging.Component("runner")

	if err := s.Setup(r, dt); err != nil {
		return nil, fmt.Errorf("setting up %s: %w", s.Name(), err)
	}

	var tick <-chan time.Time
	if cfg.Rate > 0 {
		ticker := time.NewTicker(cfg.tickInterval())
		defer ticker.Stop()
		tick = ticker.C
	}

	start := time.Now()
	res := &Result{Scenario: s.Name()}
	log.Debug().Str("scenario", s.Name()).Float64("dt", dt).Msg("run started")

	for {
		if s.Done() {
			res.Reason = StopDone
			break
		}
		if cfg.MaxTime > 0 && s.Time() >= cfg.MaxTime {
			res.Reason = StopMaxTime
			break
		}
		if cfg.MaxSteps > 0 && res.Steps >= cfg.MaxSteps {
			res.Reason = StopMaxSteps
			break
		}

		select {
		case <-ctx.Done():
			res.Time = s.Time()
			res.Elapsed = time.Since(start)
			return res, ctx.Err()
		default:
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				res.Time = s.Time()
				res.Elapsed = time.Since(start)
				return res, ctx.Err()
			case <-tick:
			}
		}

		if err := s.Step(dt); err != nil {
			res.Time = s.Time()
			res.Elapsed = time.Since(start)
			return res, StepError{Scenario: s.Name(), Step: res.Steps, Time: s.Time(), Err: err}
		}
		res.Steps++
	}

	res.Time = s.Time()
	res.Elapsed = time.Since(start)
	res.Summary = s.Summary()
	log.Debug().
		Str("scenario", s.Name()).
		Int("steps", res.Steps).
		Str("reason", string(res.Reason)).
		Dur("elapsed", res.Elapsed).
		Msg("run finished")
	return res, nil
}
