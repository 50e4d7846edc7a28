package infrastructure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOTelConfig(t *testing.T) {
	cfg := DefaultOTelConfig()
	assert.Equal(t, ServiceName, cfg.ServiceName)
	assert.Equal(t, "none", cfg.TraceExporter)
	assert.Equal(t, 1.0, cfg.SampleRatio)
}

func TestInitializeOTel_NoExporter(t *testing.T) {
	providers, err := InitializeOTel(&OTelConfig{
		ServiceName:    ServiceName,
		ServiceVersion: ServiceVersion,
		Environment:    "test",
		TraceExporter:  "none",
		SampleRatio:    1.0,
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, providers)
	require.NotNil(t, providers.Tracer)

	_, span := providers.Tracer.Start(context.Background(), "test-span")
	span.End()

	assert.NoError(t, providers.Shutdown(context.Background()))
}

func TestInitializeOTel_NilConfigUsesDefaults(t *testing.T) {
	providers, err := InitializeOTel(nil, nil)
	require.NoError(t, err)
	require.NotNil(t, providers.TracerProvider)
	assert.NoError(t, providers.Shutdown(context.Background()))
}

func TestInitializeOTel_StdoutExporter(t *testing.T) {
	providers, err := InitializeOTel(&OTelConfig{
		ServiceName:    ServiceName,
		ServiceVersion: ServiceVersion,
		Environment:    "test",
		TraceExporter:  "stdout",
		SampleRatio:    0.5,
	}, nil)
	require.NoError(t, err)

	_, span := providers.Tracer.Start(context.Background(), "sampled-span")
	span.End()

	assert.NoError(t, providers.Shutdown(context.Background()))
}
