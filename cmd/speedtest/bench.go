// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package main

import (
	"context"
	"fmt"
	"time"

	"cryptobase/config"
	"cryptobase/defErr"
	"cryptobase/ffi"
	"cryptobase/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type benchResult struct {
	Algorithm string
	Bytes     int64
	Elapsed   time.Duration
}

// MiB per second.
func (r benchResult) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Bytes) / (1 << 20) / r.Elapsed.Seconds()
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure update_final throughput per algorithm",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := benchConfig(cmd)
		if err := cfg.Validate(); err != nil {
			return err
		}
		d, _ := cfg.SpeedDuration()

		results, err := runBench(cmd.Context(), ffi.Default, cfg.SpeedTest.Algorithms, cfg.SpeedTest.BufferSize, d)
		if err != nil {
			return err
		}
		data := pterm.TableData{{"algorithm", "buffer", "MiB/s"}}
		for _, r := range results {
			data = append(data, []string{r.Algorithm, fmt.Sprint(cfg.SpeedTest.BufferSize), fmt.Sprintf("%.1f", r.Throughput())})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	addBenchFlags(benchCmd)
}

func addBenchFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("algorithms", nil, "algorithms to measure")
	cmd.Flags().Int("size", 0, "input buffer size in bytes")
	cmd.Flags().String("duration", "", "time spent per algorithm")
}

// benchConfig overlays the flags that were set on a copy of the global
// configuration.
func benchConfig(cmd *cobra.Command) *config.DigestConfig {
	cfg := *config.Global()
	flags := cmd.Flags()
	if flags.Changed("algorithms") {
		cfg.SpeedTest.Algorithms, _ = flags.GetStringSlice("algorithms")
	}
	if flags.Changed("size") {
		cfg.SpeedTest.BufferSize, _ = flags.GetInt("size")
	}
	if flags.Changed("duration") {
		cfg.SpeedTest.Duration, _ = flags.GetString("duration")
	}
	return &cfg
}

func runBench(ctx context.Context, table *ffi.Table, algorithms []string, bufSize int, d time.Duration) ([]benchResult, error) {
	res := make([]benchResult, 0, len(algorithms))
	for _, name := range algorithms {
		e, ok := table.Lookup(name)
		if !ok {
			return nil, defErr.DescribeThenConcat(`digest `+name, defErr.ErrUnsupportedDigest)
		}
		r, err := benchOne(ctx, e, bufSize, d)
		if err != nil {
			return nil, err
		}
		logging.L().Info("bench done",
			zap.String("algorithm", r.Algorithm),
			zap.Int64("bytes", r.Bytes),
			zap.Duration("elapsed", r.Elapsed),
		)
		res = append(res, r)
	}
	return res, nil
}

func benchOne(ctx context.Context, e *ffi.Exports, bufSize int, d time.Duration) (benchResult, error) {
	buf := make([]byte, bufSize)
	out := make([]byte, e.Size())
	h := e.New()
	defer e.Dispose(h)

	var n int64
	start := time.Now()
	for deadline := start.Add(d); time.Now().Before(deadline); {
		if err := ctx.Err(); err != nil {
			return benchResult{}, err
		}
		if st := e.UpdateFinalBytes(h, buf, out); st != ffi.StatusOK {
			return benchResult{}, fmt.Errorf("%s: update_final: %s", e.Name(), st)
		}
		n += int64(len(buf))
	}
	return benchResult{Algorithm: e.Name(), Bytes: n, Elapsed: time.Since(start)}, nil
}
