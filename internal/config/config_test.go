package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "both", cfg.Logging.Output)
	assert.Equal(t, 0.01, cfg.Pipeline.Tolerance)
	assert.Equal(t, "none", cfg.Pipeline.TraceExporter)
	assert.Equal(t, "data", cfg.Paths.DataDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CAFESALES_LOGGING_LEVEL", "debug")
	t.Setenv("CAFESALES_PIPELINE_TOLERANCE", "0.05")
	t.Setenv("CAFESALES_PIPELINE_TRACE_EXPORTER", "stdout")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 0.05, cfg.Pipeline.Tolerance)
	assert.Equal(t, "stdout", cfg.Pipeline.TraceExporter)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad log level", key: "CAFESALES_LOGGING_LEVEL", value: "verbose"},
		{name: "bad trace exporter", key: "CAFESALES_PIPELINE_TRACE_EXPORTER", value: "jaeger"},
		{name: "negative tolerance", key: "CAFESALES_PIPELINE_TOLERANCE", value: "-0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate_NormalizesFormat(t *testing.T) {
	cfg := &Config{
		Logging:  LoggingConfig{Level: "info", Format: "text", Output: "console"},
		Paths:    PathsConfig{DataDir: "data", ReportsDir: "data/reports", LogsDir: "logs"},
		Pipeline: PipelineConfig{Tolerance: 0.01, TraceExporter: "none"},
	}

	require.NoError(t, cfg.validate())
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestNewPaths(t *testing.T) {
	base := t.TempDir()
	paths := NewPaths(base)

	assert.Equal(t, base, paths.ExecutableDir)
	assert.Equal(t, filepath.Join(base, "data"), paths.DataDir)
	assert.Equal(t, filepath.Join(base, "data", "reports"), paths.ReportsDir)
	assert.Equal(t, filepath.Join(base, "data", "reports", "cleaned_cafe_sales.csv"), paths.CleanedCSV)
	assert.Equal(t, filepath.Join(base, "logs", "run.log"), paths.GetLogPath("run.log"))
}

func TestPaths_EnsureDirectories(t *testing.T) {
	paths := NewPaths(t.TempDir())

	require.NoError(t, paths.EnsureDirectories())

	for _, dir := range []string{paths.DataDir, paths.ReportsDir, paths.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// second call is a no-op
	require.NoError(t, paths.EnsureDirectories())
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.csv")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "absent.csv")))
}

func TestLoadFrom_YAMLFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(
		"logging:\n  level: warn\npipeline:\n  tolerance: 0.5\n"), 0o644))

	cfg, err := LoadFrom(configPath)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 0.5, cfg.Pipeline.Tolerance)
	// Unset file entries keep their env defaults.
	assert.Equal(t, "both", cfg.Logging.Output)
}

func TestLoadFrom_EnvBeatsFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("logging:\n  level: warn\n"), 0o644))
	t.Setenv("CAFESALES_LOGGING_LEVEL", "error")

	cfg, err := LoadFrom(configPath)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestPaths_Apply(t *testing.T) {
	base := t.TempDir()
	paths := NewPaths(base)

	abs := filepath.Join(t.TempDir(), "elsewhere")
	paths.Apply(PathsConfig{
		DataDir:    "custom-data",
		ReportsDir: abs,
	})

	assert.Equal(t, filepath.Join(base, "custom-data"), paths.DataDir)
	assert.Equal(t, abs, paths.ReportsDir)
	assert.Equal(t, filepath.Join(base, "logs"), paths.LogsDir, "unset entries keep defaults")
	assert.Equal(t, filepath.Join(abs, "cleaned_cafe_sales.csv"), paths.CleanedCSV)
}

func TestPaths_SetReportsDir(t *testing.T) {
	paths := NewPaths(t.TempDir())

	override := filepath.Join(t.TempDir(), "out")
	paths.SetReportsDir(override)

	assert.Equal(t, override, paths.ReportsDir)
	assert.Equal(t, filepath.Join(override, "cleaned_cafe_sales.csv"), paths.CleanedCSV)

	// A relative override is anchored to the working directory.
	paths.SetReportsDir("relative-out")
	assert.True(t, filepath.IsAbs(paths.ReportsDir))
	assert.Equal(t, "relative-out", filepath.Base(paths.ReportsDir))
	assert.Equal(t, filepath.Join(paths.ReportsDir, "cleaned_cafe_sales.csv"), paths.CleanedCSV)
}
