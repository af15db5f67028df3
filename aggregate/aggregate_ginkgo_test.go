package aggregate

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/opengm/gmrts/kernels"
)

func TestAggregateSpec(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "aggregate gate logic")
}

func uniformResults(n int, pv float64) []kernels.Result {
	rs := make([]kernels.Result, n)
	for i := range rs {
		rs[i] = kernels.Result{PV: pv, QV: (float64(i) + 0.5) / float64(n)}
	}
	return rs
}

var _ = Describe("the aggregator's two independent gates", func() {
	tester := kernels.Tester{Tag: kernels.Frequency}

	var aggregate1 func([]kernels.Result) Report
	BeforeEach(func() {
		aggregate1 = func(rs []kernels.Result) Report {
			return Aggregate([]kernels.Tester{tester}, map[kernels.Tester][]kernels.Result{tester: rs})
		}
	})

	Context("when every sample passes and q-values are uniform", func() {
		It("clears both the proportion gate and the uniformity gate", func() {
			rep := aggregate1(uniformResults(1000, 0.5))
			Expect(rep.Pass).To(BeTrue())
			Expect(rep.Failing).To(BeEmpty())
			Expect(rep.Tests[0].PPassGate).To(BeTrue())
			Expect(rep.Tests[0].QGatePass).To(BeTrue())
		})
	})

	Context("when too few samples clear the p-value threshold", func() {
		It("fails the proportion gate even though q-values stay uniform", func() {
			rs := uniformResults(1000, 0.5)
			for i := 0; i < 200; i++ {
				rs[i].PV = 0.0
			}
			rep := aggregate1(rs)
			Expect(rep.Tests[0].PPassGate).To(BeFalse())
			Expect(rep.Pass).To(BeFalse())
			Expect(rep.Failing).To(ContainElement(tester))
		})
	})

	Context("when q-values all collapse into one bin", func() {
		It("fails the uniformity gate even though every sample passes", func() {
			rs := make([]kernels.Result, 1000)
			for i := range rs {
				rs[i] = kernels.Result{PV: 0.5, QV: 0.95}
			}
			rep := aggregate1(rs)
			Expect(rep.Tests[0].PPassGate).To(BeTrue())
			Expect(rep.Tests[0].QGatePass).To(BeFalse())
			Expect(rep.Pass).To(BeFalse())
		})
	})

	Context("with an empty sample set", func() {
		It("reports zero counts without dividing by zero", func() {
			rep := aggregate1(nil)
			Expect(rep.Tests[0].SampleCount).To(Equal(0))
			Expect(rep.Tests[0].PassCount).To(Equal(0))
		})
	})
})
