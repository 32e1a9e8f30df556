package experiment

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/decaylab/internal/decay"
)

func TestExperimentSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Experiment Suite")
}

var _ = Describe("Compare", func() {
	p := decay.Params{I: 1, A: 2, T: 4, Dt: 0.4}

	It("keys every swept theta and preserves sweep order", func() {
		ds, err := Compare(p, []float64{1, 0, 0.5})
		Expect(err).NotTo(HaveOccurred())

		Expect(ds.Thetas).To(Equal([]float64{1, 0, 0.5}))
		Expect(ds.Runs).To(HaveLen(3))
		Expect(ds.Runs).To(HaveKey(0.0))
		Expect(ds.Runs).To(HaveKey(0.5))
		Expect(ds.Runs).To(HaveKey(1.0))
	})

	It("attaches an L2 diagnostic to every run", func() {
		ds, err := Compare(p, []float64{0, 0.5, 1})
		Expect(err).NotTo(HaveOccurred())

		for _, theta := range ds.Thetas {
			run := ds.Runs[theta]
			Expect(run.L2).To(BeNumerically(">", 0), "theta=%g", theta)
			l2, err := decay.L2Norm(run.Result.U, run.Result.T, p.I, p.A, run.Result.Dt)
			Expect(err).NotTo(HaveOccurred())
			Expect(run.L2).To(Equal(l2))
		}
	})

	It("uses identical parameters for every theta", func() {
		ds, err := Compare(p, []float64{0, 1})
		Expect(err).NotTo(HaveOccurred())

		a := ds.Runs[0.0].Result
		b := ds.Runs[1.0].Result
		Expect(a.Dt).To(Equal(b.Dt))
		Expect(a.Nt).To(Equal(b.Nt))
		Expect(a.TActual).To(Equal(b.TActual))
	})

	It("aborts the sweep on an out-of-range theta", func() {
		ds, err := Compare(p, []float64{0, 2})
		Expect(err).To(MatchError(decay.ErrInvalidParameter))
		Expect(ds).To(BeNil())
	})
})
