package infrastructure

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTraceID_Unique(t *testing.T) {
	a := GenerateTraceID()
	b := GenerateTraceID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestWithTraceID_RoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "trace-42")
	assert.Equal(t, "trace-42", GetTraceID(ctx))
}

func TestGetTraceID_Missing(t *testing.T) {
	assert.Equal(t, "", GetTraceID(context.Background()))
}

func TestEnsureTraceID(t *testing.T) {
	ctx := EnsureTraceID(context.Background())
	assert.NotEmpty(t, GetTraceID(ctx))

	// An existing trace ID is preserved.
	ctx = WithTraceID(context.Background(), "keep-me")
	assert.Equal(t, "keep-me", GetTraceID(EnsureTraceID(ctx)))
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	WithComponent(logger, "pipeline").Info("stage complete")

	assert.Contains(t, buf.String(), `"component":"pipeline"`)
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	WithError(logger, errors.New("disk full")).Error("export failed")

	assert.Contains(t, buf.String(), `"error":"disk full"`)
}

func TestWithError_NilError(t *testing.T) {
	logger := slog.Default()
	assert.Same(t, logger, WithError(logger, nil))
}
