package exec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opengm/gmrts/bitsample"
	"github.com/opengm/gmrts/kernels"
)

func makeSamples(n int) []*bitsample.Sample {
	bits := "1100100100001111110110101010001000100001011010001100001000110100110001001100011001100010100010111000"
	out := make([]*bitsample.Sample, n)
	for i := range out {
		out[i] = bitsample.NewFromBitString(bits)
	}
	return out
}

func TestParallelMatchesSequential(t *testing.T) {
	samples := makeSamples(5)
	testers := []kernels.Tester{{Tag: kernels.Frequency}, {Tag: kernels.Runs}}

	got, err := Parallel(context.Background(), samples, testers)
	assert.NoError(t, err)
	assert.Len(t, got, 5)

	for i, s := range samples {
		want := RunAll(s, testers)
		assert.Equal(t, want, got[i])
	}
}

func TestStreamingProducesAllResults(t *testing.T) {
	samples := makeSamples(7)
	testers := []kernels.Tester{{Tag: kernels.Frequency}}

	idx := 0
	next := func() (*bitsample.Sample, bool, error) {
		if idx >= len(samples) {
			return nil, false, nil
		}
		s := samples[idx]
		idx++
		return s, true, nil
	}

	out := Streaming(context.Background(), 3, next, testers)
	count := 0
	for r := range out {
		assert.NoError(t, r.Err)
		count++
	}
	assert.Equal(t, len(samples), count)
}
