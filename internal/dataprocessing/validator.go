package dataprocessing

import (
	"cafesales/pkg/contracts/domain"
)

// Deduplicate removes rows sharing a transaction identifier, keeping the
// first occurrence in original row order. First-wins is a policy choice: it
// decides which duplicate's other fields survive, on the assumption that
// input order reflects recency. Returns the surviving rows and the number
// of duplicates removed.
func Deduplicate(records []domain.SaleRecord) ([]domain.SaleRecord, int) {
	seen := make(map[string]bool, len(records))
	kept := make([]domain.SaleRecord, 0, len(records))

	for _, r := range records {
		if seen[r.TransactionID] {
			continue
		}
		seen[r.TransactionID] = true
		kept = append(kept, r)
	}
	return kept, len(records) - len(kept)
}

// FilterInvalid retains only rows satisfying the domain invariants:
// quantity > 0, unit price >= 0, total spent >= 0. Zero price and zero
// total are valid; zero quantity is not. Discarding is the intended
// outcome, not a failure. The survivors keep their relative order, which
// re-indexes them contiguously by construction. Returns the surviving rows
// and the number dropped.
func FilterInvalid(records []domain.SaleRecord) ([]domain.SaleRecord, int) {
	kept := make([]domain.SaleRecord, 0, len(records))
	for _, r := range records {
		if r.Quantity > 0 && r.UnitPrice >= 0 && r.TotalSpent >= 0 {
			kept = append(kept, r)
		}
	}
	return kept, len(records) - len(kept)
}
