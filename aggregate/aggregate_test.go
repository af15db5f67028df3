package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opengm/gmrts/kernels"
)

func TestWaterlineExact(t *testing.T) {
	assert.Equal(t, 981, Waterline(0.01, 1000))
}

func TestAggregateUniformQValuesPassGate(t *testing.T) {
	tester := kernels.Tester{Tag: kernels.Frequency}
	var rs []kernels.Result
	for i := 0; i < 1000; i++ {
		q := (float64(i) + 0.5) / 1000
		rs = append(rs, kernels.Result{PV: 0.5, QV: q})
	}
	rep := Aggregate([]kernels.Tester{tester}, map[kernels.Tester][]kernels.Result{tester: rs})
	assert.True(t, rep.Pass)
	assert.Empty(t, rep.Failing)
}

func TestAggregateLowPassCountFailsPGate(t *testing.T) {
	tester := kernels.Tester{Tag: kernels.Frequency}
	var rs []kernels.Result
	for i := 0; i < 1000; i++ {
		pv := 0.5
		if i < 100 {
			pv = 0.0
		}
		rs = append(rs, kernels.Result{PV: pv, QV: (float64(i) + 0.5) / 1000})
	}
	rep := Aggregate([]kernels.Tester{tester}, map[kernels.Tester][]kernels.Result{tester: rs})
	assert.False(t, rep.Pass)
	assert.Contains(t, rep.Failing, tester)
}
