// Command processor cleans a raw café point-of-sale export and writes the
// cleaned dataset, aggregate tables and a run summary.
//
// Usage:
//
//	processor -in data/dirty_cafe_sales.csv [-out DIR] [-config FILE]
//
// The run is all-or-nothing: a fatal condition (missing required column, no
// valid transaction date in the whole input) aborts before any output file
// is opened.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"cafesales/internal/config"
	"cafesales/internal/dataprocessing"
	"cafesales/internal/exporter"
	"cafesales/internal/importer"
	"cafesales/internal/infrastructure"
	"cafesales/internal/report"
	"cafesales/internal/validation"
)

func main() {
	inFile := flag.String("in", "", "input sales export (.csv or .xlsx)")
	outDir := flag.String("out", "", "output directory for cleaned data and reports (defaults to data/reports relative to executable)")
	configFile := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	if err := run(*inFile, *outDir, *configFile); err != nil {
		infrastructure.WithError(slog.Default(), err).Error("Processing failed")
		os.Exit(1)
	}
}

func run(inFile, outDir, configFile string) error {
	if inFile == "" {
		return fmt.Errorf("missing required -in flag")
	}

	paths, err := config.GetPaths()
	if err != nil {
		return fmt.Errorf("failed to initialize paths: %w", err)
	}

	cfg, err := config.LoadFrom(configFile)
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging:  infrastructure.DefaultConfig(),
			Pipeline: config.PipelineConfig{Tolerance: dataprocessing.DefaultTolerance, TraceExporter: "none"},
		}
	}
	paths.Apply(cfg.Paths)

	// The -out flag beats both config and defaults.
	if outDir != "" {
		paths.SetReportsDir(outDir)
	}
	outDir = paths.ReportsDir

	if cfg.Logging.FilePath == "" || cfg.Logging.FilePath == "logs/cafesales.log" {
		cfg.Logging.FilePath = paths.GetLogPath("cafesales.log")
	}

	if err := paths.EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to create required directories: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	otelCfg := infrastructure.DefaultOTelConfig()
	otelCfg.TraceExporter = cfg.Pipeline.TraceExporter
	providers, err := infrastructure.InitializeOTel(otelCfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	ctx := infrastructure.EnsureTraceID(context.Background())
	defer providers.Shutdown(ctx)

	logger.InfoContext(ctx, "Starting café sales processing",
		slog.String("input_file", inFile),
		slog.String("output_dir", outDir),
		slog.Float64("tolerance", cfg.Pipeline.Tolerance))

	fileValidator := validation.NewFileValidator(infrastructure.WithComponent(logger, "validation"))
	if err := fileValidator.ValidateInputFile(inFile); err != nil {
		return fmt.Errorf("failed to load input: %w", err)
	}
	if err := fileValidator.ValidateOutputDirectory(outDir); err != nil {
		return err
	}

	table, err := importer.New(infrastructure.WithComponent(logger, "importer")).Load(ctx, inFile)
	if err != nil {
		return fmt.Errorf("failed to load input: %w", err)
	}

	pipeline := dataprocessing.NewPipeline(infrastructure.WithComponent(logger, "pipeline"), dataprocessing.PipelineConfig{
		Tolerance: cfg.Pipeline.Tolerance,
	})
	result, err := pipeline.Run(ctx, table)
	if err != nil {
		return fmt.Errorf("cleaning pipeline failed: %w", err)
	}

	analytics := dataprocessing.NewAnalyzer(infrastructure.WithComponent(logger, "analyzer")).Analyze(ctx, result.Records)

	// Output starts only after every fallible transform has succeeded.
	salesExporter := exporter.NewSalesExporter(paths)
	if err := salesExporter.ExportCleaned(result.Records, paths.CleanedCSV); err != nil {
		return err
	}
	if err := exporter.NewAggregatesExporter(paths).ExportAll(analytics); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Processing complete",
		slog.Int("rows_in", result.Stats.RowsIn),
		slog.Int("rows_out", result.Stats.RowsOut),
		slog.String("cleaned_csv", paths.CleanedCSV))

	return report.Write(os.Stdout, report.Summary{
		SourceFile: inFile,
		Stats:      result.Stats,
		Analytics:  analytics,
	})
}
