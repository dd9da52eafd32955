package twu_test

import (
	"math"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/twucrit/internal/solver"
	"github.com/san-kum/twucrit/internal/twu"
)

var _ = Describe("Estimator", func() {
	var est *twu.Estimator

	BeforeEach(func() {
		est = twu.NewEstimator()
	})

	Context("heavy aromatic fraction at Tb=919.34 °R, SG=1.097", func() {
		var res twu.Result

		BeforeEach(func() {
			var err error
			res, err = est.Estimate(twu.Component{BoilingTemperature: 919.34, SpecificGravity: 1.097})
			Expect(err).NotTo(HaveOccurred())
		})

		It("computes the alkane reference", func() {
			Expect(res.Alkane.CriticalTemperature).To(BeNumerically("~", 1221.4177, 1e-3))
			Expect(res.Alkane.SpecificGravity).To(BeNumerically("~", 0.760210, 1e-6))
			Expect(res.Alkane.MolecularWeight).To(BeNumerically("~", 185.4778, 1e-3))
		})

		It("corrects toward a heavier, more compact molecule", func() {
			Expect(res.Corrected.CriticalTemperature).To(BeNumerically("~", 1381.7322, 1e-3))
			Expect(res.Corrected.CriticalVolume).To(BeNumerically("~", 6.365661, 1e-5))
			Expect(res.Corrected.CriticalPressure).To(BeNumerically("~", 555.6093, 1e-2))
			Expect(res.Corrected.MolecularWeight).To(BeNumerically("~", 130.7244, 1e-3))
		})

		It("keeps the corrected/alkane ratios within [0.5, 2]", func() {
			for _, r := range []float64{
				res.Corrected.CriticalTemperature / res.Alkane.CriticalTemperature,
				res.Corrected.CriticalVolume / res.Alkane.CriticalVolume,
			} {
				Expect(r).To(BeNumerically(">=", 0.5))
				Expect(r).To(BeNumerically("<=", 2))
			}
		})

		It("characterizes the fraction", func() {
			Expect(res.Characterization.WatsonK).To(BeNumerically("~", 8.8638, 1e-4))
			Expect(res.Characterization.AcentricFactor).To(BeNumerically("~", 0.3346, 1e-3))
		})

		It("echoes the input component", func() {
			Expect(res.Component).To(Equal(twu.Component{BoilingTemperature: 919.34, SpecificGravity: 1.097}))
		})
	})

	DescribeTable("rejects invalid input",
		func(tb, sg float64, stage string) {
			_, err := est.Estimate(twu.Component{BoilingTemperature: tb, SpecificGravity: sg})
			Expect(err).To(MatchError(twu.ErrInvalidInput))

			var se *twu.StageError
			Expect(err).To(BeAssignableToTypeOf(se))
			se = err.(*twu.StageError)
			Expect(se.Stage).To(Equal(stage))
			Expect(se.Component.BoilingTemperature).To(Equal(tb))
		},
		Entry("zero boiling point", 0.0, 0.8, twu.StageInput),
		Entry("negative boiling point", -10.0, 0.8, twu.StageInput),
		Entry("infinite boiling point", math.Inf(1), 0.8, twu.StageInput),
		Entry("zero gravity", 919.34, 0.0, twu.StageInput),
		Entry("negative gravity", 919.34, -1.0, twu.StageInput),
		Entry("very light boiling point", 100.0, 0.8, twu.StageAlkanePressure),
	)

	It("rejects NaN input", func() {
		_, err := est.Estimate(twu.Component{BoilingTemperature: math.NaN(), SpecificGravity: 0.8})
		Expect(err).To(MatchError(twu.ErrInvalidInput))
	})

	It("gives the same answer with every registered solver", func() {
		c := twu.Component{BoilingTemperature: 1000, SpecificGravity: 0.85}
		registry := solver.NewRegistry()

		for _, name := range registry.List() {
			s, err := registry.Get(name, solver.DefaultOptions())
			Expect(err).NotTo(HaveOccurred())

			res, err := twu.Estimate(c, twu.WithSolver(s))
			Expect(err).NotTo(HaveOccurred(), name)
			Expect(res.Alkane.MolecularWeight).To(BeNumerically("~", 221.6673, 1e-3), name)
			Expect(res.Corrected.MolecularWeight).To(BeNumerically("~", 205.8547, 1e-3), name)
		}
	})

	It("ignores a nil solver option", func() {
		e := twu.NewEstimator(twu.WithSolver(nil))
		Expect(e.Solver()).NotTo(BeNil())
		Expect(e.Solver().Name()).To(Equal("newton"))
	})

	It("is safe for concurrent use", func() {
		tbs := []float64{600, 800, 919.34, 1000, 1200}
		want := make([]twu.Result, len(tbs))
		for i, tb := range tbs {
			var err error
			want[i], err = est.Estimate(twu.Component{BoilingTemperature: tb, SpecificGravity: 0.85})
			Expect(err).NotTo(HaveOccurred())
		}

		got := make([]twu.Result, len(tbs))
		var wg sync.WaitGroup
		for i, tb := range tbs {
			wg.Add(1)
			go func(i int, tb float64) {
				defer wg.Done()
				got[i], _ = est.Estimate(twu.Component{BoilingTemperature: tb, SpecificGravity: 0.85})
			}(i, tb)
		}
		wg.Wait()

		Expect(got).To(Equal(want))
	})
})
