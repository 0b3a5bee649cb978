package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/amp-labs/amp-sort/envutil"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithEnvOverride(t.Context(), EnvEnabled, "false")
	ctx = envutil.WithEnvOverride(ctx, EnvServiceVersion, "1.0.0")
	ctx = envutil.WithEnvOverride(ctx, EnvEnvironment, "local")
	ctx = envutil.WithEnvOverride(ctx, EnvEndpoint, "")
	ctx = envutil.WithEnvOverride(ctx, EnvTimeout, "5s")
	ctx = envutil.WithEnvOverride(ctx, EnvSampleRatio, "1")
	ctx = logger.WithSubsystem(ctx, "sortctl")

	config, err := LoadConfig(ctx)
	require.NoError(t, err)

	assert.False(t, config.Enabled)
	assert.False(t, config.Exporting())
	assert.Equal(t, "sortctl", config.ServiceName)
	assert.Equal(t, defaultServiceVersion, config.ServiceVersion)
	assert.Equal(t, defaultEnvironment, config.Environment)
	assert.Empty(t, config.Endpoint)
	assert.Equal(t, defaultTimeout, config.Timeout)
	assert.InDelta(t, 1.0, config.SampleRatio, 1e-9)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithEnvOverride(t.Context(), EnvEnabled, "true")
	ctx = envutil.WithEnvOverride(ctx, EnvServiceName, "sorter-bench")
	ctx = envutil.WithEnvOverride(ctx, EnvEndpoint, "http://collector:4318")
	ctx = envutil.WithEnvOverride(ctx, EnvTimeout, "250ms")
	ctx = envutil.WithEnvOverride(ctx, EnvSampleRatio, "0.1")

	config, err := LoadConfig(ctx)
	require.NoError(t, err)

	assert.True(t, config.Exporting())
	assert.Equal(t, "sorter-bench", config.ServiceName)
	assert.Equal(t, "http://collector:4318", config.Endpoint)
	assert.Equal(t, 250*time.Millisecond, config.Timeout)
	assert.InDelta(t, 0.1, config.SampleRatio, 1e-9)

	t.Run("bad values are all reported", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), EnvEnabled, "maybe")
		ctx = envutil.WithEnvOverride(ctx, EnvTimeout, "soon")
		ctx = envutil.WithEnvOverride(ctx, EnvSampleRatio, "2")

		_, err := LoadConfig(ctx)
		require.ErrorIs(t, err, envutil.ErrBadEnvVar)
		require.ErrorIs(t, err, errors.ErrInvalidArgument)
		assert.Contains(t, err.Error(), EnvEnabled)
		assert.Contains(t, err.Error(), EnvTimeout)
		assert.Contains(t, err.Error(), EnvSampleRatio)
	})
}

func TestNewProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ratio float64
		spans int
	}{
		{name: "every span", ratio: 1, spans: 1},
		{name: "no spans", ratio: 0, spans: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			exporter := tracetest.NewInMemoryExporter()
			cfg := &Config{ServiceName: "sortctl", ServiceVersion: "2.0.0", Environment: "test", SampleRatio: tt.ratio}

			provider, err := NewProvider(t.Context(), cfg, exporter)
			require.NoError(t, err)

			_, span := provider.Tracer("test").Start(t.Context(), "batch.SortAll")
			span.End()

			require.NoError(t, provider.ForceFlush(t.Context()))

			spans := exporter.GetSpans()
			require.Len(t, spans, tt.spans)

			if tt.spans > 0 {
				assert.Contains(t, spans[0].Resource.Attributes(), semconv.ServiceNameKey.String("sortctl"))
				assert.Contains(t, spans[0].Resource.Attributes(), semconv.DeploymentEnvironmentKey.String("test"))
			}

			require.NoError(t, provider.Shutdown(context.Background())) //nolint:usetesting
		})
	}
}

func TestInitializeWithoutExport(t *testing.T) {
	t.Parallel()

	ctx := logger.WithMuted(t.Context(), true)

	tests := []struct {
		name   string
		config Config
	}{
		{name: "disabled", config: Config{Endpoint: "http://collector:4318"}},
		{name: "no endpoint", config: Config{Enabled: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			shutdown, err := Initialize(ctx, &tt.config)
			require.NoError(t, err)
			require.NotNil(t, shutdown)
			assert.NoError(t, shutdown(context.Background())) //nolint:usetesting
		})
	}
}
