// Package telemetry wires OpenTelemetry tracing and log export.
//
// Setup returns a Handle that owns every provider it created; nothing is
// installed globally. Shutting the handle down flushes and stops the
// exporters.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/amp-labs/amp-containers/envutil"
	commonerrors "github.com/amp-labs/amp-containers/errors"
	"github.com/amp-labs/amp-containers/logger"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	defaultServiceVersion = "1.0.0"
	defaultTimeout        = 5 * time.Second
	clusterCollector      = "http://opentelemetry-collector.opentelemetry.svc.cluster.local:4318"
)

// Config holds the OpenTelemetry configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Endpoint       string
	LogsEndpoint   string
	Enabled        bool
	LogsEnabled    bool
	Timeout        time.Duration
}

// LoadConfigFromEnv loads the configuration from OTEL_* variables. Under
// Kubernetes the endpoint defaults to the in-cluster collector.
func LoadConfigFromEnv(ctx context.Context, runningEnv string) (*Config, error) {
	enabled := envutil.Bool(ctx, "OTEL_ENABLED", envutil.Default(false)).ValueOrElse(false)

	defaultEndpoint := ""
	if _, ok := os.LookupEnv("KUBERNETES_SERVICE_HOST"); ok {
		defaultEndpoint = clusterCollector
	}

	svcName, err := envutil.String(ctx, "OTEL_SERVICE_NAME",
		envutil.Default(logger.GetSubsystem(ctx))).Value()
	if err != nil {
		return nil, err
	}

	svcVersion, err := envutil.String(ctx, "OTEL_SERVICE_VERSION",
		envutil.Default(defaultServiceVersion)).Value()
	if err != nil {
		return nil, err
	}

	endpoint, err := envutil.String(ctx, "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT",
		envutil.Default(defaultEndpoint)).Value()
	if err != nil {
		return nil, err
	}

	logsEnabled, err := envutil.Bool(ctx, "OTEL_LOGS_ENABLED", envutil.Default(false)).Value()
	if err != nil {
		return nil, err
	}

	logsEndpoint, err := envutil.String(ctx, "OTEL_EXPORTER_OTLP_LOGS_ENDPOINT",
		envutil.Default(endpoint)).Value()
	if err != nil {
		return nil, err
	}

	timeout, err := envutil.Duration(ctx, "OTEL_EXPORTER_OTLP_TRACES_TIMEOUT",
		envutil.Default(defaultTimeout)).Value()
	if err != nil {
		return nil, err
	}

	return &Config{
		ServiceName:    svcName,
		ServiceVersion: svcVersion,
		Environment:    runningEnv,
		Endpoint:       endpoint,
		LogsEndpoint:   logsEndpoint,
		Enabled:        enabled,
		LogsEnabled:    logsEnabled,
		Timeout:        timeout,
	}, nil
}

type setupOptions struct {
	spanExporter sdktrace.SpanExporter
	logExporter  sdklog.Exporter
}

// Option customizes Setup.
type Option func(*setupOptions)

// WithSpanExporter replaces the OTLP trace exporter, e.g. with an in-memory
// one. The endpoint is then not required.
func WithSpanExporter(exp sdktrace.SpanExporter) Option {
	return func(o *setupOptions) {
		o.spanExporter = exp
	}
}

// WithLogExporter replaces the OTLP log exporter.
func WithLogExporter(exp sdklog.Exporter) Option {
	return func(o *setupOptions) {
		o.logExporter = exp
	}
}

// Handle owns the providers created by Setup.
type Handle struct {
	tracerProvider *sdktrace.TracerProvider
	loggerProvider *sdklog.LoggerProvider
	logHandler     slog.Handler
	serviceName    string
}

// Setup creates the tracer and logger providers described by config. A
// disabled or endpoint-less config yields a handle with no-op tracing and no
// log handler.
func Setup(ctx context.Context, config *Config, opts ...Option) (*Handle, error) {
	var options setupOptions
	for _, opt := range opts {
		opt(&options)
	}

	handle := &Handle{serviceName: config.ServiceName}

	if !config.Enabled {
		logger.Get(ctx).Info("OpenTelemetry is disabled")

		return handle, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(config.ServiceName),
			semconv.ServiceVersionKey.String(config.ServiceVersion),
			semconv.DeploymentEnvironmentKey.String(config.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if err := handle.setupTraces(ctx, config, res, options.spanExporter); err != nil {
		return nil, err
	}

	if config.LogsEnabled {
		if err := handle.setupLogs(ctx, config, res, options.logExporter); err != nil {
			_ = handle.Shutdown(ctx)

			return nil, err
		}
	}

	logger.Get(ctx).Info("OpenTelemetry initialized",
		"service", config.ServiceName,
		"version", config.ServiceVersion,
		"environment", config.Environment,
		"traces", handle.tracerProvider != nil,
		"logs", handle.loggerProvider != nil)

	return handle, nil
}

func (h *Handle) setupTraces(
	ctx context.Context, config *Config, res *resource.Resource, exporter sdktrace.SpanExporter,
) error {
	if exporter == nil {
		if config.Endpoint == "" {
			logger.Get(ctx).Warn("OpenTelemetry endpoint not configured, tracing will be disabled")

			return nil
		}

		exp, err := otlptracehttp.New(ctx,
			otlptracehttp.WithEndpointURL(config.Endpoint),
			otlptracehttp.WithTimeout(config.Timeout),
		)
		if err != nil {
			return fmt.Errorf("failed to create OTLP trace exporter: %w", err)
		}

		exporter = exp
	}

	h.tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	return nil
}

func (h *Handle) setupLogs(ctx context.Context, config *Config, res *resource.Resource, exporter sdklog.Exporter) error {
	if exporter == nil {
		if config.LogsEndpoint == "" {
			logger.Get(ctx).Warn("OpenTelemetry logs endpoint not configured, log export will be disabled")

			return nil
		}

		exp, err := otlploghttp.New(ctx,
			otlploghttp.WithEndpointURL(config.LogsEndpoint),
			otlploghttp.WithTimeout(config.Timeout),
		)
		if err != nil {
			return fmt.Errorf("failed to create OTLP log exporter: %w", err)
		}

		exporter = exp
	}

	h.loggerProvider = sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)

	h.logHandler = otelslog.NewHandler(config.ServiceName, otelslog.WithLoggerProvider(h.loggerProvider))

	return nil
}

// TracerProvider returns the handle's provider, or a no-op one when tracing
// is off.
func (h *Handle) TracerProvider() trace.TracerProvider {
	if h == nil || h.tracerProvider == nil {
		return noop.NewTracerProvider()
	}

	return h.tracerProvider
}

// Tracer is shorthand for TracerProvider().Tracer(name).
func (h *Handle) Tracer(name string) trace.Tracer {
	return h.TracerProvider().Tracer(name)
}

// LogHandler returns the slog bridge to the OTLP log exporter, or nil when
// log export is off. It is meant for logger.WithExtraHandler.
func (h *Handle) LogHandler() slog.Handler {
	if h == nil || h.logHandler == nil {
		return nil
	}

	return h.logHandler
}

// Flush exports everything buffered so far without stopping the providers.
func (h *Handle) Flush(ctx context.Context) error {
	if h == nil {
		return nil
	}

	errs := &commonerrors.Collection{}

	if h.tracerProvider != nil {
		errs.Add(h.tracerProvider.ForceFlush(ctx))
	}

	if h.loggerProvider != nil {
		errs.Add(h.loggerProvider.ForceFlush(ctx))
	}

	return errs.GetError()
}

// Shutdown flushes and stops every provider. It is safe to call more than
// once.
func (h *Handle) Shutdown(ctx context.Context) error {
	if h == nil {
		return nil
	}

	errs := &commonerrors.Collection{}

	if h.tracerProvider != nil {
		errs.Add(h.tracerProvider.Shutdown(ctx))
		h.tracerProvider = nil
	}

	if h.loggerProvider != nil {
		errs.Add(h.loggerProvider.Shutdown(ctx))
		h.loggerProvider = nil
		h.logHandler = nil
	}

	return errs.GetError()
}
