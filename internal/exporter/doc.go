// Package exporter provides CSV export functionality for the cleaned café
// sales dataset and its derived aggregate tables.
//
// This package contains three main components:
//
// CSVWriter: Core CSV writing functionality with support for headers,
// streaming, and UTF-8 BOM for Excel compatibility.
//
// SalesExporter: Writes the cleaned transaction table in canonical column
// order, either buffered or streaming.
//
// AggregatesExporter: Writes one CSV per aggregate table (monthly and
// weekday revenue, per-item tables, revenue trend, correlation matrix).
//
// Example usage:
//
//	salesExporter := exporter.NewSalesExporter(paths)
//	err := salesExporter.ExportCleaned(records, "cleaned_cafe_sales.csv")
//
//	aggExporter := exporter.NewAggregatesExporter(paths)
//	err = aggExporter.ExportAll(report)
package exporter
