package physutil

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/physlab/internal/logging"
	"github.com/san-kum/physlab/internal/vec"
)

var (
	// ErrInvalidArgument indicates an operand of the wrong shape or a
	// non-finite value reaching vector/scalar arithmetic.
	ErrInvalidArgument = errors.New("physutil: invalid argument")

	// ErrArgumentCount indicates a Plot call whose dependent value count
	// differs from the number of series.
	ErrArgumentCount = errors.New("physutil: dependent value count does not match number of plots")
)

const (
	wrongShapeHint = "check that you are not passing a variable of the wrong type (a scalar as a vector, or vice versa)"
	countHint      = "pass exactly one dependent value per plot configured at construction"
)

// ArgumentError wraps a failure with the component and operation that
// raised it.
type ArgumentError struct {
	Component string
	Op        string
	Wrapped   error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Component, e.Op, e.Wrapped)
}

func (e *ArgumentError) Unwrap() error {
	return e.Wrapped
}

// fail logs the diagnostic for err and returns it wrapped.
func fail(component, op string, err error) error {
	hint := wrongShapeHint
	if errors.Is(err, ErrArgumentCount) {
		hint = countHint
	}
	log := logging.Component(component)
	log.Error().
		Err(err).
		Str("op", op).
		Str("hint", hint).
		Msg("bad argument")
	return &ArgumentError{Component: component, Op: op, Wrapped: err}
}

func invalid(component, op, format string, args ...any) error {
	return fail(component, op, fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...))
}

func checkScalar(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s is not a finite number (%v)", ErrInvalidArgument, name, v)
	}
	return nil
}

func checkVector(name string, v vec.Vector3) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidArgument, name, err)
	}
	return nil
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
