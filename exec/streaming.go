package exec

import (
	"context"

	"github.com/opengm/gmrts/bitsample"
	"github.com/opengm/gmrts/kernels"
)

// StreamResult pairs a sample's index in the input sequence with its
// results, so an unordered result channel can still be attributed
// back to the sample that produced it.
type StreamResult struct {
	Index   int
	Results SampleResults
	Err     error
}

// Streaming reads samples one at a time from next (returning
// (nil, false, nil) at end of input), hands each to a bounded job
// queue of capacity workers, and drains it with a fixed pool of
// worker goroutines. Peak memory stays at O(workers * sample size)
// regardless of corpus size, since at most `workers` samples are ever
// live at once. Cancelling ctx stops new jobs from being read; jobs
// already queued still complete.
func Streaming(ctx context.Context, workers int, next func() (*bitsample.Sample, bool, error), testers []kernels.Tester) <-chan StreamResult {
	type job struct {
		index int
		s     *bitsample.Sample
	}

	jobs := make(chan job, workers)
	out := make(chan StreamResult, workers)

	go func() {
		defer close(jobs)
		index := 0
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			s, ok, err := next()
			if err != nil {
				out <- StreamResult{Index: index, Err: err}
				return
			}
			if !ok {
				return
			}
			select {
			case jobs <- job{index: index, s: s}:
			case <-ctx.Done():
				return
			}
			index++
		}
	}()

	done := make(chan struct{}, workers)
	for w := 0; w < workers; w++ {
		go func() {
			for j := range jobs {
				out <- StreamResult{Index: j.index, Results: RunAll(j.s, testers)}
			}
			done <- struct{}{}
		}()
	}

	go func() {
		for w := 0; w < workers; w++ {
			<-done
		}
		close(out)
	}()

	return out
}
