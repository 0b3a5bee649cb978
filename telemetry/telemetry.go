// Package telemetry ships the spans emitted by batch sorts to an OTLP/HTTP
// collector. Nothing is installed unless OTEL_ENABLED is true and a traces
// endpoint is set; until then the global provider stays the otel no-op one.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/amp-labs/amp-sort/envutil"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const (
	EnvEnabled        = "OTEL_ENABLED"
	EnvServiceName    = "OTEL_SERVICE_NAME"
	EnvServiceVersion = "OTEL_SERVICE_VERSION"
	EnvEnvironment    = "DEPLOYMENT_ENVIRONMENT"
	EnvEndpoint       = "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"
	EnvTimeout        = "OTEL_EXPORTER_OTLP_TRACES_TIMEOUT"
	EnvSampleRatio    = "OTEL_TRACES_SAMPLER_ARG"
)

const (
	defaultServiceName    = "amp-sort"
	defaultServiceVersion = "1.0.0"
	defaultEnvironment    = "local"
	defaultTimeout        = 5 * time.Second
)

// Config says where spans go and how many of them are kept.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Endpoint       string
	Enabled        bool
	Timeout        time.Duration

	// SampleRatio is the share of root spans exported, from 0 to 1.
	// Child spans follow their parent's decision.
	SampleRatio float64
}

// Exporting reports whether Initialize will install a provider.
func (c *Config) Exporting() bool {
	return c.Enabled && c.Endpoint != ""
}

// Shutdown flushes buffered spans and stops the exporter.
type Shutdown func(ctx context.Context) error

func noop(context.Context) error { return nil }

func read[T any](errs *errors.Collection, rdr envutil.Reader[T]) T {
	val, err := rdr.Value()
	errs.Add(err)

	return val
}

// LoadConfig reads the OTEL_* variables and DEPLOYMENT_ENVIRONMENT. The
// service name falls back to the logging subsystem. Every bad variable is
// reported, not just the first.
func LoadConfig(ctx context.Context) (*Config, error) {
	serviceName := logger.GetSubsystem(ctx)
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	var errs errors.Collection

	cfg := &Config{
		Enabled:        read(&errs, envutil.Bool(ctx, EnvEnabled, envutil.Default(false))),
		ServiceName:    read(&errs, envutil.String(ctx, EnvServiceName, envutil.Default(serviceName))),
		ServiceVersion: read(&errs, envutil.String(ctx, EnvServiceVersion, envutil.Default(defaultServiceVersion))),
		Environment:    read(&errs, envutil.String(ctx, EnvEnvironment, envutil.Default(defaultEnvironment))),
		Endpoint:       read(&errs, envutil.String(ctx, EnvEndpoint, envutil.Default(""))),
		Timeout:        read(&errs, envutil.Duration(ctx, EnvTimeout, envutil.Default(defaultTimeout))),
		SampleRatio: read(&errs, envutil.Float64(ctx, EnvSampleRatio,
			envutil.Default(1.0),
			envutil.Validate(func(r float64) error {
				if r < 0 || r > 1 {
					return errors.InvalidArgumentf("sample ratio %g is outside [0, 1]", r)
				}

				return nil
			}))),
	}

	if errs.HasError() {
		return nil, errs.GetError()
	}

	return cfg, nil
}

// NewProvider builds a tracer provider that batches sampled spans into
// exporter, tagged with the service name, version and environment.
func NewProvider(ctx context.Context, cfg *Config, exporter sdktrace.SpanExporter) (*sdktrace.TracerProvider, error) {
	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceNameKey.String(cfg.ServiceName),
		semconv.ServiceVersionKey.String(cfg.ServiceVersion),
		semconv.DeploymentEnvironmentKey.String(cfg.Environment),
	))
	if err != nil {
		return nil, fmt.Errorf("describing service %s: %w", cfg.ServiceName, err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	), nil
}

// Initialize points the global tracer provider at the OTLP endpoint and
// propagates W3C trace context and baggage. The Shutdown it returns must be
// called before exit or buffered spans are lost; it is a no-op when nothing
// was installed.
func Initialize(ctx context.Context, cfg *Config) (Shutdown, error) {
	log := logger.Get(ctx)

	if !cfg.Exporting() {
		if cfg.Enabled {
			log.Warn("tracing enabled without " + EnvEndpoint + ", spans will be dropped")
		}

		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Endpoint),
		otlptracehttp.WithTimeout(cfg.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("OTLP exporter for %s: %w", cfg.Endpoint, err)
	}

	provider, err := NewProvider(ctx, cfg, exporter)
	if err != nil {
		return nil, err
	}

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Info("exporting traces",
		"service", cfg.ServiceName,
		"endpoint", cfg.Endpoint,
		"sample_ratio", cfg.SampleRatio,
	)

	return provider.Shutdown, nil
}
