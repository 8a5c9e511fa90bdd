package scenario_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/scenario"
)

var _ = Describe("Run", func() {
	var (
		reg   *scenario.Registry
		scene *render.Scene
	)

	BeforeEach(func() {
		reg = scenario.NewRegistry()
		scene = render.NewScene("run")
	})

	It("runs the projectile until the ball lands", func() {
		s, err := reg.Get("projectile", nil)
		Expect(err).NotTo(HaveOccurred())

		res, err := scenario.Run(context.Background(), s, scene, scenario.RunConfig{})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Reason).To(Equal(scenario.StopDone))
		Expect(res.Time).To(BeNumerically("~", 8.163, 0.01))
		Expect(scene.Displays()).To(HaveLen(1))
		Expect(scene.Displays()[0].Series()).To(HaveLen(2))
	})

	It("throttles to the requested rate", func() {
		s, err := reg.Get("shm", map[string]float64{"duration": 0.02})
		Expect(err).NotTo(HaveOccurred())

		start := time.Now()
		res, err := scenario.Run(context.Background(), s, scene, scenario.RunConfig{Dt: 0.001, Rate: 1000})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Steps).To(BeNumerically(">=", 20))
		Expect(time.Since(start)).To(BeNumerically(">=", 15*time.Millisecond))
	})

	It("stops when the context is cancelled mid-run", func() {
		s, err := reg.Get("one_d", map[string]float64{"v0": 0})
		Expect(err).NotTo(HaveOccurred())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()

		res, err := scenario.Run(ctx, s, scene, scenario.RunConfig{Rate: 500})
		Expect(err).To(MatchError(context.DeadlineExceeded))
		Expect(res.Steps).To(BeNumerically("<", 100))
	})

	It("rejects unknown scenarios", func() {
		_, err := reg.Get("pendulum", nil)
		Expect(err).To(MatchError(scenario.ErrUnknownScenario))
	})
})

var _ = Describe("Sweep", func() {
	It("runs every value on its own scene", func() {
		values := []float64{0.5, 1, 2}
		runs, err := scenario.Sweep(context.Background(), scenario.NewRegistry(), "shm",
			map[string]float64{"duration": 0.5}, "k", values, scenario.RunConfig{})
		Expect(err).NotTo(HaveOccurred())
		Expect(runs).To(HaveLen(3))

		for i, run := range runs {
			Expect(run.Value).To(Equal(values[i]))
			Expect(run.Result.Reason).To(Equal(scenario.StopDone))
			Expect(run.Scene.Displays()).To(HaveLen(2))
		}
	})
})
