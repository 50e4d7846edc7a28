package dataprocessing

import (
	"fmt"
	"strings"

	"cafesales/pkg/contracts/domain"
)

// RequiredColumns lists the canonical column identifiers the pipeline needs.
// The two money columns are matched by prefix so decorated headers from the
// upstream export ("Price Per Unit ($)", "Total Spent ($)") still resolve.
var RequiredColumns = []string{
	ColTransactionID,
	ColItem,
	ColQuantity,
	ColUnitPrice,
	ColTotalSpent,
	ColPaymentMethod,
	ColLocation,
	ColTransactionDate,
}

// Canonical column identifiers of the cleaned schema.
const (
	ColTransactionID   = "transaction_id"
	ColItem            = "item"
	ColQuantity        = "quantity"
	ColUnitPrice       = "price_per_unit"
	ColTotalSpent      = "total_spent"
	ColPaymentMethod   = "payment_method"
	ColLocation        = "location"
	ColTransactionDate = "transaction_date"
)

// CanonicalColumn converts a raw column identifier to its canonical form:
// surrounding whitespace trimmed, internal whitespace runs collapsed to a
// single underscore, lowercased. Pure and total; never fails.
func CanonicalColumn(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), "_"))
}

// NormalizeHeaders rewrites the table headers and row keys to the canonical
// schema, then verifies every required column is present. Missing columns
// are fatal: there is no meaningful default for a whole absent field.
func NormalizeHeaders(table *domain.RawTable) error {
	mapping := make(map[string]string, len(table.Headers))
	normalized := make([]string, len(table.Headers))

	for i, header := range table.Headers {
		canonical := canonicalOrAlias(CanonicalColumn(header))
		mapping[header] = canonical
		normalized[i] = canonical
	}
	table.Headers = normalized

	for i, row := range table.Rows {
		renamed := make(map[string]string, len(row))
		for key, value := range row {
			if canonical, ok := mapping[key]; ok {
				renamed[canonical] = value
			} else {
				renamed[canonicalOrAlias(CanonicalColumn(key))] = value
			}
		}
		table.Rows[i] = renamed
	}

	present := make(map[string]bool, len(normalized))
	for _, header := range normalized {
		present[header] = true
	}
	for _, required := range RequiredColumns {
		if !present[required] {
			return fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}
	return nil
}

// canonicalOrAlias maps decorated money headers onto their canonical names.
// "price_per_unit_($)" and "total_spent_($)" are what the upstream export
// actually emits.
func canonicalOrAlias(canonical string) string {
	switch {
	case strings.HasPrefix(canonical, ColUnitPrice):
		return ColUnitPrice
	case strings.HasPrefix(canonical, ColTotalSpent):
		return ColTotalSpent
	default:
		return canonical
	}
}
