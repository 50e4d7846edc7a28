// Package dataprocessing provides the record-level cleaning pipeline for
// café point-of-sale exports. It consolidates column normalization, sentinel
// resolution, type coercion, total reconciliation, deduplication, domain
// validation and summary analytics into a cohesive package that handles the
// complete data lifecycle from raw tabular input to derived aggregates.
//
// # Architecture
//
// The pipeline is a fixed sequence of stages, each consuming the complete
// output of the previous one:
//
//	RawTable → Normalizer → Sentinel Resolver → Coercer → Reconciler → Dedup/Validator → SaleRecords → Analyzer
//
// Usage:
//
//	pipeline := dataprocessing.NewPipeline(logger, dataprocessing.DefaultPipelineConfig())
//	result, err := pipeline.Run(ctx, table)
//	if err != nil {
//	    // fatal precondition: missing column or no parseable date anywhere
//	}
//	report := dataprocessing.NewAnalyzer(logger).Analyze(ctx, result.Records)
//
// # Error Handling
//
// Per-cell defects (sentinel markers, unparseable numbers or dates, missing
// categorical values) are resolved locally by substitution and never surface
// as errors. Per-row defects (duplicate identifiers, non-positive quantity,
// negative money) are resolved by dropping the row; drop counts are reported
// in RunStats. Only two conditions abort the run: a required column missing
// after normalization, and an input with no parseable date anywhere (the
// median used for imputation is undefined).
//
// # Testing
//
// The package includes tests for every stage contract. Use table-driven
// tests when adding new functionality.
package dataprocessing
