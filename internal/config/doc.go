// Package config provides centralized configuration management for the café
// sales processor. It handles loading configuration from multiple sources,
// validation, and a type-safe API for accessing configuration values.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML configuration file (config.yaml or configs/config.yaml)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern CAFESALES_* for namespacing:
//
//	CAFESALES_LOGGING_LEVEL=info
//	CAFESALES_LOGGING_OUTPUT=both
//	CAFESALES_PIPELINE_TOLERANCE=0.01
//	CAFESALES_PIPELINE_TRACE_EXPORTER=stdout
//
// # Path Management
//
// The package provides centralized path management through the Paths type,
// which resolves all file system paths relative to the executable location:
//
//	paths, err := config.GetPaths()
//	cleaned := paths.CleanedCSV
//	monthly := paths.GetReportPath("monthly_revenue.csv")
//
// # Validation
//
// Configuration is validated at load time with go-playground/validator
// struct tags; invalid values fail Load rather than surfacing later in the
// run.
package config
