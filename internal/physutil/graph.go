package physutil

import (
	"fmt"

	"github.com/san-kum/physlab/internal/render"
)

// GraphColors is the series colour rotation; series i gets GraphColors[i%8].
var GraphColors = [8]render.Color{
	render.Red, render.Green, render.Blue, render.Yellow,
	render.Orange, render.Cyan, render.Magenta, render.White,
}

type GraphOptions struct {
	Title  string
	XTitle string
	YTitle string
	Width  int
	Height int
}

func DefaultGraphOptions() GraphOptions {
	return GraphOptions{Width: 475, Height: 350}
}

// Graph plots N series against one shared independent variable on a single
// display.
type Graph struct {
	display render.Display
	series  []render.Series
}

const graphComponent = "graph"

// NewGraph opens one display with numPlots coloured series.
func NewGraph(r render.Renderer, numPlots int, opts GraphOptions) (*Graph, error) {
	if r == nil {
		return nil, invalid(graphComponent, "new", "renderer is required")
	}
	if numPlots < 1 {
		return nil, invalid(graphComponent, "new", "numPlots must be at least 1, got %d", numPlots)
	}
	def := DefaultGraphOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}

	g := &Graph{
		display: r.NewDisplay(render.DisplaySpec{
			Title:  opts.Title,
			XTitle: opts.XTitle,
			YTitle: opts.YTitle,
			Width:  opts.Width,
			Height: opts.Height,
		}),
		series: make([]render.Series, numPlots),
	}
	for i := range g.series {
		g.series[i] = g.display.NewSeries(GraphColors[i%len(GraphColors)])
	}
	return g, nil
}

// Plot appends (independent, dependents[i]) to series i. The call is
// rejected as a whole if the count is wrong or any value is not finite.
func (g *Graph) Plot(independent float64, dependents ...float64) error {
	if len(dependents) != len(g.series) {
		return fail(graphComponent, "plot",
			fmt.Errorf("%w: got %d values for %d plots", ErrArgumentCount, len(dependents), len(g.series)))
	}
	if err := checkScalar("independent", independent); err != nil {
		return fail(graphComponent, "plot", err)
	}
	for i, v := range dependents {
		if err := checkScalar(fmt.Sprintf("dependent[%d]", i), v); err != nil {
			return fail(graphComponent, "plot", err)
		}
	}

	for i, v := range dependents {
		g.series[i].Plot(independent, v)
	}
	return nil
}

func (g *Graph) NumPlots() int           { return len(g.series) }
func (g *Graph) Display() render.Display { return g.display }

func (g *Graph) Series() []render.Series {
	out := make([]render.Series, len(g.series))
	copy(out, g.series)
	return out
}
