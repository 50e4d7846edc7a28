package exporter

import (
	"fmt"
)

// formatFloat formats a monetary value for CSV output with exactly 2 decimal
// places so values like 13.4 appear as 13.40.
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatCoefficient formats a correlation coefficient with 4 decimal places.
func formatCoefficient(f float64) string {
	return fmt.Sprintf("%.4f", f)
}

// formatInt formats an int64 value for CSV output
func formatInt(i int64) string {
	return fmt.Sprintf("%d", i)
}
