package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/opengm/gmrts/aggregate"
	"github.com/opengm/gmrts/bitsample"
	"github.com/opengm/gmrts/exec"
	"github.com/opengm/gmrts/internal/cache"
	"github.com/opengm/gmrts/internal/config"
	"github.com/opengm/gmrts/internal/corpus"
	"github.com/opengm/gmrts/internal/log"
	"github.com/opengm/gmrts/kernels"
)

// runOptions collects the run subcommand's flags after merging a
// config file (if any) with the flags the user actually set.
type runOptions struct {
	configPath string
	mode       string
	workers    int
	cachePath  string
	jsonPath   string
	glob       string
	alpha      float64
}

func newRunCommand() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run <corpus-dir>",
		Short: "evaluate a corpus of samples against the fifteen statistical tests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMain(cmd, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "path to an INI config file")
	flags.StringVar(&opts.mode, "mode", "", "execution mode: parallel or streaming (default parallel)")
	flags.IntVar(&opts.workers, "workers", 0, "streaming worker count (default GOMAXPROCS)")
	flags.StringVar(&opts.cachePath, "cache", "", "result cache directory (disabled if empty)")
	flags.StringVar(&opts.jsonPath, "json", "", "write the full report as JSON to this path")
	flags.StringVar(&opts.glob, "glob", "", "only evaluate corpus files matching this glob")
	flags.Float64Var(&opts.alpha, "alpha", 0, "significance level (default 0.01)")
	return cmd
}

func runMain(cmd *cobra.Command, dir string, opts *runOptions) error {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return err
		}
	}
	if opts.mode != "" {
		cfg.Mode = opts.mode
	}
	if opts.workers != 0 {
		cfg.Workers = opts.workers
	}
	if opts.cachePath != "" {
		cfg.Cache = opts.cachePath
	}
	if opts.alpha != 0 {
		cfg.Alpha = opts.alpha
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	entries, err := corpus.List(dir, opts.glob)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("gmrts: no corpus files found in %s", dir)
	}
	log.Printf("gmrts: found %d corpus files in %s", len(entries), dir)

	var c *cache.Cache
	if cfg.Cache != "" {
		c, err = cache.Open(cfg.Cache)
		if err != nil {
			return err
		}
	}

	start := time.Now()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	samples := make([]*bitsample.Sample, len(entries))
	for i, e := range entries {
		s, err := corpus.Load(e.Path)
		if err != nil {
			return err
		}
		samples[i] = s
	}
	bits := samples[0].Len()
	testers := kernels.ExpandTesters(bits)

	results := make([]exec.SampleResults, len(samples))
	toCompute := make([]int, 0, len(samples))
	if c != nil {
		for i, s := range samples {
			if cached, ok, err := c.Get(s.Digest()); err == nil && ok {
				results[i] = cached
				continue
			}
			toCompute = append(toCompute, i)
		}
	} else {
		for i := range samples {
			toCompute = append(toCompute, i)
		}
	}

	if len(toCompute) > 0 {
		pending := make([]*bitsample.Sample, len(toCompute))
		for j, i := range toCompute {
			pending[j] = samples[i]
		}

		var computed []exec.SampleResults
		switch cfg.Mode {
		case "streaming":
			computed, err = streamCompute(ctx, cfg.Workers, pending, testers)
		default:
			computed, err = exec.Parallel(ctx, pending, testers)
		}
		if err != nil {
			return err
		}
		for j, i := range toCompute {
			results[i] = computed[j]
			if c != nil {
				_ = c.Put(samples[i].Digest(), computed[j])
			}
		}
	}

	byTester := make(map[kernels.Tester][]kernels.Result, len(testers))
	for _, sr := range results {
		for _, t := range testers {
			byTester[t] = append(byTester[t], sr[t])
		}
	}

	rep := aggregate.Aggregate(aggregate.SortedTesters(testers), byTester)
	elapsed := time.Since(start).Seconds()

	printReport(os.Stdout, rep, len(entries), bits, aggregate.Waterline(cfg.Alpha, len(entries)), aggregate.UniformityAlpha, elapsed)

	if opts.jsonPath != "" {
		if err := writeJSONReport(opts.jsonPath, rep); err != nil {
			return err
		}
	}

	// A FAIL verdict is a normal, successfully-reported outcome, not an
	// error: printReport above already communicated it structurally, so
	// the process exits 0 regardless of rep.Pass. Only I/O/config
	// failures above return a non-nil error.
	return nil
}

// streamCompute drives exec.Streaming over an in-memory slice, used
// when the caller asked for streaming mode even though corpus.Load
// already materialised every sample; a true bounded-memory run would
// instead pass a next func that reads lazily from corpus entries, left
// as a follow-on since the cache-lookup split above needs every
// digest up front regardless.
func streamCompute(ctx context.Context, workers int, samples []*bitsample.Sample, testers []kernels.Tester) ([]exec.SampleResults, error) {
	cursor := 0
	next := func() (*bitsample.Sample, bool, error) {
		if cursor >= len(samples) {
			return nil, false, nil
		}
		s := samples[cursor]
		cursor++
		return s, true, nil
	}

	out := make([]exec.SampleResults, len(samples))
	for sr := range exec.Streaming(ctx, workers, next, testers) {
		if sr.Err != nil {
			return nil, sr.Err
		}
		out[sr.Index] = sr.Results
	}
	return out, nil
}

func writeJSONReport(path string, rep aggregate.Report) error {
	b, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
