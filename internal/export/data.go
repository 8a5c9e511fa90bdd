package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/scenario"
)

type RunData struct {
	Scenario string             `json:"scenario"`
	Dt       float64            `json:"dt"`
	Steps    int                `json:"steps"`
	Time     float64            `json:"time"`
	Reason   string             `json:"reason"`
	Params   map[string]float64 `json:"params"`
	Summary  map[string]string  `json:"summary"`
	Graphs   []GraphData        `json:"graphs"`
}

type GraphData struct {
	Title  string       `json:"title"`
	XTitle string       `json:"x_title,omitempty"`
	YTitle string       `json:"y_title,omitempty"`
	Series []SeriesData `json:"series"`
}

type SeriesData struct {
	Color  string       `json:"color"`
	Points [][2]float64 `json:"points"`
}

// NewRunData collects a finished run and every graph in its scene.
func NewRunData(s scenario.Scenario, dt float64, res *scenario.Result, scene *render.Scene) RunData {
	data := RunData{
		Scenario: s.Name(),
		Dt:       dt,
		Steps:    res.Steps,
		Time:     res.Time,
		Reason:   string(res.Reason),
		Params:   s.Params(),
		Summary:  make(map[string]string, len(res.Summary)),
	}
	for _, st := range res.Summary {
		data.Summary[st.Name] = st.Value
	}
	for _, d := range scene.Displays() {
		spec := d.Spec()
		g := GraphData{Title: spec.Title, XTitle: spec.XTitle, YTitle: spec.YTitle}
		for _, ser := range d.Series() {
			pts := ser.Points()
			sd := SeriesData{Color: string(ser.Color()), Points: make([][2]float64, len(pts))}
			for i, p := range pts {
				sd.Points[i] = [2]float64{p.X, p.Y}
			}
			g.Series = append(g.Series, sd)
		}
		data.Graphs = append(data.Graphs, g)
	}
	return data
}

func WriteJSON(w io.Writer, data RunData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteCSV writes one row per plotted point of d: series index, x, y.
func WriteCSV(w io.Writer, d render.Display) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"series", "x", "y"}); err != nil {
		return err
	}
	for i, s := range d.Series() {
		idx := strconv.Itoa(i)
		for _, p := range s.Points() {
			row := []string{
				idx,
				strconv.FormatFloat(p.X, 'g', -1, 64),
				strconv.FormatFloat(p.Y, 'g', -1, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
