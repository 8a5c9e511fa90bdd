package physutil

import (
	"fmt"
	"math"

	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/vec"
)

type TimerOptions struct {
	Scientific bool
	Color      render.Color
}

// Timer is an on-screen stopwatch label.
type Timer struct {
	label      render.Label
	scientific bool
}

const timerComponent = "timer"

// NewTimer places a stopwatch label at (x, y) showing zero.
func NewTimer(r render.Renderer, x, y float64, opts TimerOptions) (*Timer, error) {
	if r == nil {
		return nil, invalid(timerComponent, "new", "renderer is required")
	}
	if err := firstErr(checkScalar("x", x), checkScalar("y", y)); err != nil {
		return nil, fail(timerComponent, "new", err)
	}
	if opts.Color == "" {
		opts.Color = render.White
	}

	t := &Timer{scientific: opts.Scientific}
	t.label = r.NewLabel(render.LabelSpec{
		Pos:   vec.V(x, y, 0),
		Text:  t.format(0),
		Color: opts.Color,
	})
	return t, nil
}

// Update overwrites the displayed text with t formatted in the current mode.
func (t *Timer) Update(secs float64) error {
	if err := checkScalar("t", secs); err != nil {
		return fail(timerComponent, "update", err)
	}
	t.label.SetText(t.format(secs))
	return nil
}

// SetScientific switches mode. The text changes on the next Update.
func (t *Timer) SetScientific(on bool) { t.scientific = on }

func (t *Timer) Scientific() bool    { return t.scientific }
func (t *Timer) Text() string        { return t.label.Text() }
func (t *Timer) Label() render.Label { return t.label }

func (t *Timer) format(secs float64) string {
	if t.scientific {
		return FormatScientific(secs)
	}
	return FormatClock(secs)
}

// FormatScientific renders t with four fractional digits of mantissa,
// e.g. 3923.65 -> "3.9237E+03".
func FormatScientific(t float64) string {
	return fmt.Sprintf("%.4E", t)
}

// FormatClock renders t as HH:MM:SS.ff. Hundredths that round up to 100
// carry into the seconds, and from there into minutes and hours.
func FormatClock(t float64) string {
	hours := int(math.Floor(t / 3600))
	mins := int(mod(math.Floor(t/60), 60))
	secs := int(math.Floor(mod(t, 60)))
	frac := int(math.Round(100 * mod(t, 1)))

	if frac == 100 {
		frac = 0
		secs++
	}
	if secs == 60 {
		secs = 0
		mins++
	}
	if mins == 60 {
		mins = 0
		hours++
	}
	return fmt.Sprintf("%02d:%02d:%02d.%02d", hours, mins, secs, frac)
}

// mod is the floored modulus, so the result has the sign of m.
func mod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
