package physutil

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/vec"
)

func TestAxis_Defaults(t *testing.T) {
	scene := render.NewScene("")
	obj := &body{size: vec.V(10, 1, 1)}

	a, err := NewAxis(scene, obj, 5, AxisOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if a.StartPos() != vec.V(-5, -4, 0) {
		t.Errorf("default start: got %v", a.StartPos())
	}
	if a.Length() != 10 {
		t.Errorf("default length: got %v", a.Length())
	}
	if a.Direction() != vec.UnitX {
		t.Errorf("default direction: got %v", a.Direction())
	}
	if a.LabelShift() != vec.V(0, -0.5, 0) {
		t.Errorf("default label shift: got %v", a.LabelShift())
	}
	if !a.Built() {
		t.Error("axis should be built after construction")
	}

	ticks, labels := a.Ticks(), a.Labels()
	if len(ticks) != 5 || len(labels) != 5 {
		t.Fatalf("expected 5 ticks and 5 labels, got %d and %d", len(ticks), len(labels))
	}
	if len(scene.Points()) != 5 || len(scene.Labels()) != 5 || len(scene.Curves()) != 1 {
		t.Errorf("scene has %d points, %d labels, %d curves", len(scene.Points()), len(scene.Labels()), len(scene.Curves()))
	}

	wantText := []string{"-5.00", "-2.50", "0.00", "2.50", "5.00"}
	for i, l := range labels {
		if l.Text() != wantText[i] {
			t.Errorf("label %d: expected %q, got %q", i, wantText[i], l.Text())
		}
		if l.Pos() != ticks[i].Pos().Add(a.LabelShift()) {
			t.Errorf("label %d not shifted from its tick", i)
		}
		if l.Height() != 8 || l.Color() != render.White {
			t.Errorf("label %d: height %v colour %s", i, l.Height(), l.Color())
		}
	}
	for i, p := range ticks {
		if p.Size() != 6 || p.Color() != render.Yellow {
			t.Errorf("tick %d: size %v colour %s", i, p.Size(), p.Color())
		}
	}

	end := a.StartPos().Add(a.Direction().Scale(a.Length()))
	if ticks[4].Pos() != end {
		t.Errorf("last tick: expected %v, got %v", end, ticks[4].Pos())
	}
	line := a.Line().Points()
	if len(line) != 2 || line[0] != a.StartPos() || line[1] != end {
		t.Errorf("line: got %v", line)
	}
}

func TestAxis_KindY(t *testing.T) {
	start := vec.V(0, 0, 0)
	a, err := NewAxis(render.NewScene(""), &body{size: vec.V(4, 1, 1)}, 3, AxisOptions{
		Kind:      AxisY,
		Direction: vec.UnitX,
		StartPos:  &start,
		Length:    2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if a.Direction() != vec.UnitY {
		t.Errorf("y axis must point along +y, got %v", a.Direction())
	}
	want := []string{"0.00", "1.00", "2.00"}
	for i, l := range a.Labels() {
		if l.Text() != want[i] {
			t.Errorf("label %d: expected %q, got %q", i, want[i], l.Text())
		}
	}
}

func TestAxis_LabelOrientation(t *testing.T) {
	tests := []struct {
		o    LabelOrientation
		want vec.Vector3
	}{
		{LabelDown, vec.V(0, -1, 0)},
		{LabelUp, vec.V(0, 1, 0)},
		{LabelLeft, vec.V(-2, 0, 0)},
		{LabelRight, vec.V(2, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.o.String(), func(t *testing.T) {
			a, err := NewAxis(render.NewScene(""), &body{size: vec.V(20, 1, 1)}, 2, AxisOptions{Orientation: tt.o})
			if err != nil {
				t.Fatal(err)
			}
			if a.LabelShift() != tt.want {
				t.Errorf("expected %v, got %v", tt.want, a.LabelShift())
			}
		})
	}
}

func TestAxis_UpdateTranslates(t *testing.T) {
	obj := &body{size: vec.V(8, 1, 1)}
	a, err := NewAxis(render.NewScene(""), obj, 5, AxisOptions{})
	if err != nil {
		t.Fatal(err)
	}

	ticks0 := positions(a.Ticks())
	labels0 := labelPositions(a.Labels())
	line0 := a.Line().Points()

	d := vec.V(1.5, -2, 0.25)
	obj.pos = obj.pos.Add(d)
	if err := a.Update(); err != nil {
		t.Fatal(err)
	}

	for i, p := range a.Ticks() {
		if p.Pos() != ticks0[i].Add(d) {
			t.Errorf("tick %d: expected %v, got %v", i, ticks0[i].Add(d), p.Pos())
		}
	}
	for i, l := range a.Labels() {
		if l.Pos() != labels0[i].Add(d) {
			t.Errorf("label %d: expected %v, got %v", i, labels0[i].Add(d), l.Pos())
		}
	}
	for i, p := range a.Line().Points() {
		if p != line0[i].Add(d) {
			t.Errorf("line point %d: expected %v, got %v", i, line0[i].Add(d), p)
		}
	}
	if a.LastPos() != obj.pos {
		t.Errorf("last position not recorded: %v", a.LastPos())
	}

	ticks1 := positions(a.Ticks())
	if err := a.Update(); err != nil {
		t.Fatal(err)
	}
	for i, p := range a.Ticks() {
		if p.Pos() != ticks1[i] {
			t.Errorf("second update moved tick %d", i)
		}
	}
}

func TestAxis_ReorientInPlace(t *testing.T) {
	scene := render.NewScene("")
	a, err := NewAxis(scene, &body{size: vec.V(10, 1, 1)}, 3, AxisOptions{})
	if err != nil {
		t.Fatal(err)
	}
	before := scene.Len()

	start := vec.V(0, 0, 0)
	up := LabelUp
	err = a.Reorient(ReorientOptions{
		StartPos:    &start,
		Length:      4,
		Labels:      []string{"a", "b", "c"},
		Orientation: &up,
	})
	if err != nil {
		t.Fatal(err)
	}

	if scene.Len() != before {
		t.Errorf("reorient must not create primitives: %d -> %d", before, scene.Len())
	}
	ticks := a.Ticks()
	if ticks[1].Pos() != vec.V(2, 0, 0) || ticks[2].Pos() != vec.V(4, 0, 0) {
		t.Errorf("ticks not moved: %v %v", ticks[1].Pos(), ticks[2].Pos())
	}
	if a.LabelShift() != vec.V(0, 0.2, 0) {
		t.Errorf("label shift: got %v", a.LabelShift())
	}
	if got := a.Labels()[2]; got.Text() != "c" || got.Pos() != vec.V(4, 0.2, 0) {
		t.Errorf("label 2: %q at %v", got.Text(), got.Pos())
	}
	if line := a.Line().Points(); line[1] != vec.V(4, 0, 0) {
		t.Errorf("line end: got %v", line[1])
	}
}

func TestAxis_ReorientKeepsShiftWithoutOrientation(t *testing.T) {
	a, _ := NewAxis(render.NewScene(""), &body{size: vec.V(10, 1, 1)}, 2, AxisOptions{})
	shift := a.LabelShift()
	if err := a.Reorient(ReorientOptions{Length: 20}); err != nil {
		t.Fatal(err)
	}
	if a.LabelShift() != shift {
		t.Errorf("label shift changed without orientation: %v -> %v", shift, a.LabelShift())
	}
}

func TestAxis_InvalidArguments(t *testing.T) {
	scene := render.NewScene("")
	obj := &body{size: vec.V(10, 1, 1)}

	if _, err := NewAxis(scene, obj, 1, AxisOptions{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("numLabels 1: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewAxis(scene, obj, 3, AxisOptions{Labels: []string{"a"}}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("label count mismatch: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewAxis(scene, obj, 3, AxisOptions{Length: math.NaN()}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NaN length: expected ErrInvalidArgument, got %v", err)
	}

	a, _ := NewAxis(scene, obj, 3, AxisOptions{})
	start := a.StartPos()
	bad := vec.V(math.Inf(-1), 0, 0)
	if err := a.Reorient(ReorientOptions{StartPos: &bad}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("infinite start: expected ErrInvalidArgument, got %v", err)
	}
	if a.StartPos() != start {
		t.Error("failed reorient changed the axis")
	}

	obj.pos = vec.V(math.NaN(), 0, 0)
	if err := a.Update(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NaN position: expected ErrInvalidArgument, got %v", err)
	}
}

func TestParseLabelOrientation(t *testing.T) {
	for _, o := range []LabelOrientation{LabelDown, LabelUp, LabelLeft, LabelRight} {
		got, err := ParseLabelOrientation(o.String())
		if err != nil || got != o {
			t.Errorf("%s: got %v, %v", o, got, err)
		}
	}
	if _, err := ParseLabelOrientation("diagonal"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func positions(pts []render.Point) []vec.Vector3 {
	out := make([]vec.Vector3, len(pts))
	for i, p := range pts {
		out[i] = p.Pos()
	}
	return out
}

func labelPositions(ls []render.Label) []vec.Vector3 {
	out := make([]vec.Vector3, len(ls))
	for i, l := range ls {
		out[i] = l.Pos()
	}
	return out
}
