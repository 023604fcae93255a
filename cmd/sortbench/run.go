package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/amp-labs/amp-containers/bench"
	"github.com/amp-labs/amp-containers/cli"
	"github.com/amp-labs/amp-containers/corpus"
	"github.com/amp-labs/amp-containers/envutil"
	"github.com/amp-labs/amp-containers/logger"
	"github.com/amp-labs/amp-containers/shutdown"
	"github.com/amp-labs/amp-containers/sorting"
	"github.com/amp-labs/amp-containers/telemetry"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

var (
	errRunFailed = errors.New("one or more runs failed verification")
	errCanceled  = errors.New("canceled by user")
)

type runFlags struct {
	configPath    string
	envFile       string
	strategies    []string
	size          int
	seed          uint64
	kind          string
	order         string
	caseSensitive bool
	input         string
	charset       string
	workers       int
	repeat        int
	interactive   bool
	metricsAddr   string
	environment   string
}

func newRunCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sort a dataset with each selected strategy and verify the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, &flags)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&flags.configPath, "config", "", "YAML or TOML config file")
	fs.StringVar(&flags.envFile, "env-file", "", "file of SORTBENCH_* and other variables to load first")
	fs.StringSliceVar(&flags.strategies, "strategy", nil, "strategies to run (comb, heap, shell)")
	fs.IntVar(&flags.size, "size", 0, "number of elements")
	fs.Uint64Var(&flags.seed, "seed", 0, "seed for generated datasets")
	fs.StringVar(&flags.kind, "kind", "", "dataset kind: int or text")
	fs.StringVar(&flags.order, "order", "", "text order: bytes, fold or natural")
	fs.BoolVar(&flags.caseSensitive, "case-sensitive", false, "compare bytes without folding ASCII case")
	fs.StringVar(&flags.input, "input", "", "word corpus path or http(s) URL")
	fs.StringVar(&flags.charset, "charset", "", "charset of the input corpus (detected when empty)")
	fs.IntVar(&flags.workers, "workers", 0, "concurrent runs")
	fs.IntVar(&flags.repeat, "repeat", 0, "runs per strategy")
	fs.BoolVar(&flags.interactive, "interactive", false, "pick strategies and size interactively")
	fs.StringVar(&flags.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	fs.StringVar(&flags.environment, "environment", "local", "deployment environment reported to telemetry")

	return cmd
}

func runBench(cmd *cobra.Command, flags *runFlags) error {
	ctx := logger.WithSubsystem(cmd.Context(), appName)

	if flags.envFile != "" {
		var err error

		ctx, err = envutil.WithEnvFile(ctx, flags.envFile)
		if err != nil {
			return err
		}
	}

	otelConfig, err := telemetry.LoadConfigFromEnv(ctx, flags.environment)
	if err != nil {
		return err
	}

	handle, err := telemetry.Setup(ctx, otelConfig)
	if err != nil {
		return err
	}

	shutdown.BeforeShutdown(ctx, func(ctx context.Context) {
		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		if err := handle.Shutdown(shutdownCtx); err != nil {
			logger.Get(ctx).Error("telemetry shutdown failed", "error", err)
		}
	})

	logger.ConfigureLogging(ctx, appName, logger.WithExtraHandler(handle.LogHandler()))

	cfg, err := bench.LoadConfig(ctx, flags.configPath)
	if err != nil {
		return err
	}

	if err := applyFlags(cmd, flags, cfg); err != nil {
		return err
	}

	if flags.metricsAddr != "" {
		if err := serveMetrics(ctx, flags.metricsAddr); err != nil {
			return err
		}
	}

	opts := []bench.Option{bench.WithTracer(handle.Tracer(appName))}

	if flags.charset != "" {
		opts = append(opts, bench.WithCorpusOptions(corpus.WithCharset(flags.charset)))
	}

	report, err := bench.Run(ctx, cfg, opts...)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprint(cmd.OutOrStdout(), renderReport(ctx, report)); err != nil {
		return err
	}

	if !report.Passed() {
		return errRunFailed
	}

	return nil
}

// applyFlags overrides cfg with the flags that were set on the command line,
// then asks for anything the interactive mode should pick.
func applyFlags(cmd *cobra.Command, flags *runFlags, cfg *bench.Config) error {
	fs := cmd.Flags()

	if fs.Changed("strategy") {
		cfg.Strategies = flags.strategies
	}

	if fs.Changed("size") {
		cfg.Size = flags.size
	}

	if fs.Changed("seed") {
		cfg.Seed = flags.seed
	}

	if fs.Changed("kind") {
		cfg.Kind = bench.Kind(flags.kind)
	}

	if fs.Changed("order") {
		cfg.Order = bench.Order(flags.order)
	}

	if fs.Changed("case-sensitive") {
		cfg.CaseSensitive = flags.caseSensitive
	}

	if fs.Changed("input") {
		cfg.Input = flags.input
		if !fs.Changed("kind") {
			cfg.Kind = bench.KindText
		}
	}

	if fs.Changed("workers") {
		cfg.Workers = flags.workers
	}

	if fs.Changed("repeat") {
		cfg.Repeat = flags.repeat
	}

	if flags.interactive {
		strategies, err := cli.SelectStrategies("Strategies to run", sorting.Names())
		if err != nil {
			return err
		}

		size, err := cli.PromptPositiveInt("Dataset size", max(cfg.Size, 1))
		if err != nil {
			return err
		}

		cfg.Strategies = strategies
		cfg.Size = size

		if cfg.Input == "" {
			kind, err := cli.SelectOne("Dataset kind", []string{string(bench.KindInt), string(bench.KindText)})
			if err != nil {
				return err
			}

			cfg.Kind = bench.Kind(kind)
		}

		proceed, err := cli.PromptConfirm(fmt.Sprintf("Run %s over %d elements", strings.Join(cfg.Strategies, ", "), cfg.Size))
		if err != nil {
			return err
		}

		if !proceed {
			return errCanceled
		}
	}

	return cfg.Validate()
}

// serveMetrics exposes /metrics until shutdown.
func serveMetrics(ctx context.Context, addr string) error {
	listener, err := (&net.ListenConfig{}).Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Get(ctx).Error("metrics server stopped", "error", err)
		}
	}()

	shutdown.BeforeShutdown(ctx, func(ctx context.Context) {
		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Get(ctx).Error("stopping metrics server", "error", err)
		}
	})

	logger.Get(ctx).Info("serving metrics", "addr", listener.Addr().String())

	return nil
}
