package dataprocessing

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"cafesales/pkg/contracts/domain"
)

// tracerName identifies this package's spans.
const tracerName = "cafesales/dataprocessing"

// PipelineConfig holds configuration options for the cleaning pipeline.
type PipelineConfig struct {
	// Tolerance is the absolute tolerance for total reconciliation.
	Tolerance float64
}

// DefaultPipelineConfig returns the standard pipeline configuration.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{Tolerance: DefaultTolerance}
}

// RunStats reports what the pipeline did to the working table. Per-row
// drops are intended outcomes, not failures; the counts exist for
// diagnostics.
type RunStats struct {
	RowsIn            int `json:"rows_in"`
	RowsOut           int `json:"rows_out"`
	TotalsReconciled  int `json:"totals_reconciled"`
	DatesImputed      int `json:"dates_imputed"`
	DuplicatesRemoved int `json:"duplicates_removed"`
	InvalidDropped    int `json:"invalid_dropped"`
}

// Result is the pipeline output: the cleaned, validated working table and
// the stats of the run.
type Result struct {
	Records []domain.SaleRecord
	Stats   RunStats
}

// Pipeline runs the cleaning stages in their fixed order over one working
// table. The table is threaded explicitly stage to stage with a single
// writer at any point.
type Pipeline struct {
	logger    *slog.Logger
	tracer    trace.Tracer
	tolerance float64
}

// NewPipeline creates a cleaning pipeline with the given configuration.
func NewPipeline(logger *slog.Logger, config PipelineConfig) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if config.Tolerance <= 0 {
		config.Tolerance = DefaultTolerance
	}
	return &Pipeline{
		logger:    logger,
		tracer:    otel.Tracer(tracerName),
		tolerance: config.Tolerance,
	}
}

// Run executes the full cleaning pipeline over the table. It returns an
// error only for fatal preconditions (missing required column, no valid
// date anywhere, empty input); every other defect is resolved in place and
// accounted for in the returned stats.
func (p *Pipeline) Run(ctx context.Context, table *domain.RawTable) (*Result, error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.Run",
		trace.WithAttributes(
			attribute.String("source_file", table.SourceFile),
			attribute.Int("rows_in", table.RowCount()),
		))
	defer span.End()

	stats := RunStats{RowsIn: table.RowCount()}

	p.logger.InfoContext(ctx, "starting cleaning pipeline",
		slog.String("source_file", table.SourceFile),
		slog.Int("rows_in", stats.RowsIn))

	if table.RowCount() == 0 {
		return nil, NewStageError("normalize", ErrEmptyInput)
	}

	if err := p.runStage(ctx, "normalize", func() error {
		return NormalizeHeaders(table)
	}); err != nil {
		return nil, NewStageError("normalize", err)
	}

	var records []domain.SaleRecord
	p.runStage(ctx, "coerce", func() error {
		records = CoerceRows(table.Rows)
		return nil
	})

	if err := p.runStage(ctx, "impute_dates", func() error {
		imputed, err := ImputeDates(records)
		stats.DatesImputed = imputed
		return err
	}); err != nil {
		return nil, NewStageError("impute_dates", err)
	}

	p.runStage(ctx, "reconcile", func() error {
		stats.TotalsReconciled = ReconcileTotals(records, p.tolerance)
		return nil
	})

	p.runStage(ctx, "dedup_validate", func() error {
		var removed, dropped int
		records, removed = Deduplicate(records)
		records, dropped = FilterInvalid(records)
		stats.DuplicatesRemoved = removed
		stats.InvalidDropped = dropped
		return nil
	})

	stats.RowsOut = len(records)
	span.SetAttributes(attribute.Int("rows_out", stats.RowsOut))

	p.logger.InfoContext(ctx, "cleaning pipeline complete",
		slog.Int("rows_out", stats.RowsOut),
		slog.Int("totals_reconciled", stats.TotalsReconciled),
		slog.Int("dates_imputed", stats.DatesImputed),
		slog.Int("duplicates_removed", stats.DuplicatesRemoved),
		slog.Int("invalid_dropped", stats.InvalidDropped))

	return &Result{Records: records, Stats: stats}, nil
}

// runStage wraps a stage in its own span and logs failures.
func (p *Pipeline) runStage(ctx context.Context, name string, fn func() error) error {
	_, span := p.tracer.Start(ctx, "pipeline."+name)
	defer span.End()

	if err := fn(); err != nil {
		span.RecordError(err)
		p.logger.ErrorContext(ctx, "pipeline stage failed",
			slog.String("stage", name),
			slog.String("error", err.Error()))
		return err
	}
	return nil
}
