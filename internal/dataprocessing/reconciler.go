package dataprocessing

import (
	"math"

	"cafesales/pkg/contracts/domain"
)

// DefaultTolerance is the absolute tolerance for total reconciliation. It is
// deliberately absolute, not relative: very large and very small totals use
// the same threshold.
const DefaultTolerance = 0.01

// ReconcileTotals overwrites TotalSpent with Quantity*UnitPrice wherever the
// recorded total is zero or disagrees with the expected value by more than
// the tolerance. Totals already within tolerance are left untouched.
// Returns the number of overwritten rows.
//
// This must run after coercion (quantity and unit price are numeric) and
// before validation: a zero-totaled row may become valid once reconciled.
func ReconcileTotals(records []domain.SaleRecord, tolerance float64) int {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	overwritten := 0
	for i := range records {
		expected := records[i].ExpectedTotal()
		if records[i].TotalSpent == 0 || math.Abs(records[i].TotalSpent-expected) > tolerance {
			records[i].TotalSpent = expected
			overwritten++
		}
	}
	return overwritten
}
