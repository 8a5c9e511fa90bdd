package physutil_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/physlab/internal/physutil"
	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/vec"
)

type cart struct {
	pos vec.Vector3
}

func (c *cart) Pos() vec.Vector3  { return c.pos }
func (c *cart) Size() vec.Vector3 { return vec.V(4, 0.5, 1) }

var _ = Describe("MotionMap", func() {
	var (
		scene *render.Scene
		obj   *cart
	)

	BeforeEach(func() {
		scene = render.NewScene("motion map")
		obj = &cart{}
	})

	It("drops one marker per crossed interval while the object moves", func() {
		mm, err := physutil.NewMotionMap(scene, obj, 2, 4, physutil.DefaultMotionMapOptions())
		Expect(err).NotTo(HaveOccurred())

		vel := vec.V(3, 0, 0)
		dt := 0.01
		for t := dt; t < 2; t += dt {
			obj.pos = obj.pos.Add(vel.Scale(dt))
			Expect(mm.UpdateQuantity(t, vel)).To(Succeed())
		}

		Expect(mm.Markers()).To(Equal(4))
		Expect(scene.Arrows()).To(HaveLen(4))
		Expect(scene.Labels()).To(HaveLen(4))
		Expect(scene.Labels()[3].Text()).To(Equal("4"))

		xs := []float64{}
		for _, a := range scene.Arrows() {
			xs = append(xs, a.Pos().X)
		}
		for i := 1; i < len(xs); i++ {
			Expect(xs[i]).To(BeNumerically(">", xs[i-1]))
		}
	})

	It("does not fire at a threshold that MotionMapN fires at", func() {
		horizon, err := physutil.NewMotionMap(scene, obj, 1, 4, physutil.DefaultMotionMapOptions())
		Expect(err).NotTo(HaveOccurred())
		step, err := physutil.NewMotionMapN(scene, obj, 0.125, 2, physutil.DefaultMotionMapOptions())
		Expect(err).NotTo(HaveOccurred())

		Expect(horizon.Update(0)).To(Succeed())
		Expect(step.Update(0)).To(Succeed())

		Expect(horizon.Markers()).To(BeZero())
		Expect(step.Markers()).To(Equal(1))
	})

	It("rejects a non-finite time and leaves the scene untouched", func() {
		mm, err := physutil.NewMotionMap(scene, obj, 1, 4, physutil.DefaultMotionMapOptions())
		Expect(err).NotTo(HaveOccurred())

		err = mm.Update(math.Inf(1))
		Expect(err).To(MatchError(physutil.ErrInvalidArgument))
		Expect(scene.Len()).To(BeZero())
	})
})

var _ = Describe("Axis", func() {
	var (
		scene *render.Scene
		obj   *cart
		axis  *physutil.Axis
	)

	BeforeEach(func() {
		scene = render.NewScene("axis")
		obj = &cart{pos: vec.V(2, 1, 0)}
		var err error
		axis, err = physutil.NewAxis(scene, obj, 5, physutil.AxisOptions{})
		Expect(err).NotTo(HaveOccurred())
	})

	It("builds one tick and one label per requested label", func() {
		Expect(axis.Ticks()).To(HaveLen(5))
		Expect(axis.Labels()).To(HaveLen(5))

		last := axis.Ticks()[4].Pos()
		Expect(last).To(Equal(axis.StartPos().Add(axis.Direction().Scale(axis.Length()))))
	})

	It("follows the tracked object by exactly its displacement", func() {
		before := make([]vec.Vector3, 0, 5)
		for _, p := range axis.Ticks() {
			before = append(before, p.Pos())
		}

		d := vec.V(-0.5, 0.75, 0)
		obj.pos = obj.pos.Add(d)
		Expect(axis.Update()).To(Succeed())

		for i, p := range axis.Ticks() {
			Expect(p.Pos()).To(Equal(before[i].Add(d)))
		}
		Expect(axis.LastPos()).To(Equal(obj.pos))

		moved := axis.Line().Points()
		Expect(axis.Update()).To(Succeed())
		Expect(axis.Line().Points()).To(Equal(moved))
	})

	It("reorients without adding primitives", func() {
		n := scene.Len()
		dir := vec.UnitY
		Expect(axis.Reorient(physutil.ReorientOptions{Direction: &dir})).To(Succeed())
		Expect(scene.Len()).To(Equal(n))
		Expect(axis.Ticks()[4].Pos()).To(Equal(axis.StartPos().Add(dir.Scale(axis.Length()))))
	})
})

var _ = Describe("Timer", func() {
	It("shows clock and scientific time", func() {
		scene := render.NewScene("timer")
		timer, err := physutil.NewTimer(scene, 0, 0, physutil.TimerOptions{})
		Expect(err).NotTo(HaveOccurred())

		Expect(timer.Update(3923.65)).To(Succeed())
		Expect(timer.Text()).To(Equal("01:05:23.65"))

		Expect(timer.Update(2.999)).To(Succeed())
		Expect(timer.Text()).To(Equal("00:00:03.00"))

		timer.SetScientific(true)
		Expect(timer.Update(3923.65)).To(Succeed())
		Expect(timer.Text()).To(Equal("3.9237E+03"))
	})
})

var _ = Describe("Graph", func() {
	var g *physutil.Graph

	BeforeEach(func() {
		var err error
		g, err = physutil.NewGraph(render.NewScene("graph"), 5, physutil.DefaultGraphOptions())
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects the wrong number of dependent values", func() {
		err := g.Plot(1, 2, 3)
		Expect(err).To(MatchError(physutil.ErrArgumentCount))

		var argErr *physutil.ArgumentError
		Expect(err).To(BeAssignableToTypeOf(argErr))
	})

	It("appends one point to each series", func() {
		Expect(g.Plot(0.25, 10, 20, 30, 40, 50)).To(Succeed())

		series := g.Series()
		Expect(series).To(HaveLen(5))
		Expect(series[0].Points()).To(Equal([]render.XY{{X: 0.25, Y: 10}}))
		for _, s := range series {
			Expect(s.Points()).To(HaveLen(1))
		}
	})
})
