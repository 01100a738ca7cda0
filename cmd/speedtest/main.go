// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>

// Command speedtest measures digest throughput through the boundary surface
// and computes file digests.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cryptobase/config"
	"cryptobase/ffi"
	"cryptobase/logging"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath  string
	metricsAddr string
)

var rootCmd = &cobra.Command{
	Use:           "speedtest",
	Short:         "Digest throughput and file hashing",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			if _, err := config.LoadDigestYAML(configPath); err != nil {
				return err
			}
		}
		if err := ffi.Configure(config.Global()); err != nil {
			return err
		}
		if metricsAddr != "" {
			serveMetrics(metricsAddr)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
	rootCmd.AddCommand(benchCmd, sumCmd, cpuCmd)
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(ffi.Default.Gatherer(), promhttp.HandlerOpts{}))
	go func() {
		err := http.ListenAndServe(addr, mux)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.L().Error("metrics server stopped", zap.String("addr", addr), zap.Error(err))
		}
	}()
	logging.L().Info("serving metrics", zap.String("addr", addr))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	_ = logging.L().Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "speedtest:", err)
		os.Exit(1)
	}
}
