// Package exec runs the fifteen kernels across a corpus of samples in
// two modes: an in-memory parallel mode for corpora that fit in
// memory, and a bounded-memory streaming mode for corpora that don't.
// Both are adapted from the teacher's own concurrency idiom --
// traverse.Parallel's "fan every index out across hardware
// parallelism" shape for the in-memory mode, sync/workerpool's bounded
// job-queue shape for the streaming mode. The in-memory mode is
// reimplemented over golang.org/x/sync/errgroup for cancellation-aware
// fan-out instead of the teacher's hand-rolled
// atomic-counter-and-panic-recovery; the streaming mode runs over plain
// channels.
package exec

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/opengm/gmrts/bitsample"
	"github.com/opengm/gmrts/kernels"
)

// SampleResults maps every Tester applied to one Sample to its Result.
type SampleResults map[kernels.Tester]kernels.Result

// RunAll evaluates every tester against a sample. Tests run
// sequentially within a sample because the sample's pattern and
// longest-run caches assume a single writer; parallelism lives across
// samples, not within one.
func RunAll(s *bitsample.Sample, testers []kernels.Tester) SampleResults {
	out := make(SampleResults, len(testers))
	for _, t := range testers {
		out[t] = kernels.Run(s, t)
	}
	return out
}

// Parallel evaluates every tester against every sample, with
// parallelism across samples bounded to the host's available CPUs.
// It returns one SampleResults per input sample, in input order. The
// first op error (there currently are none, since kernel evaluation
// cannot fail) would cancel remaining work via ctx; the context is
// accepted so callers can cancel early.
func Parallel(ctx context.Context, samples []*bitsample.Sample, testers []kernels.Tester) ([]SampleResults, error) {
	results := make([]SampleResults, len(samples))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, s := range samples {
		i, s := i, s
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = RunAll(s, testers)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
