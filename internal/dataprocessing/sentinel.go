package dataprocessing

import (
	"strings"
)

// FieldKind classifies a column for sentinel resolution and coercion.
type FieldKind int

const (
	// FieldNumeric covers quantity, unit price and total spent.
	FieldNumeric FieldKind = iota
	// FieldCategory covers item, payment method and location.
	FieldCategory
	// FieldIdentifier covers the transaction id.
	FieldIdentifier
	// FieldDate covers the transaction date.
	FieldDate
)

// UnknownCategory is the substitute for unresolved categorical cells.
const UnknownCategory = "Unknown"

// sentinels are the markers the upstream system writes for unavailable or
// erroneous cells. They are distinct from a structurally missing cell, which
// only categorical resolution treats as a sentinel.
var sentinels = map[string]bool{
	"ERROR":   true,
	"UNKNOWN": true,
}

// KindOfColumn returns the FieldKind for a canonical column identifier.
func KindOfColumn(column string) FieldKind {
	switch column {
	case ColQuantity, ColUnitPrice, ColTotalSpent:
		return FieldNumeric
	case ColItem, ColPaymentMethod, ColLocation:
		return FieldCategory
	case ColTransactionDate:
		return FieldDate
	default:
		return FieldIdentifier
	}
}

// Resolve maps sentinel markers to a type-appropriate default. It is a total
// function over raw cell values: numeric sentinels become "0" so coercion
// succeeds, categorical sentinels and missing cells become "Unknown", and
// everything else passes through untouched. A numeric-looking string that is
// neither a sentinel nor a valid number is left for the coercer's fallback.
func Resolve(raw string, kind FieldKind) string {
	trimmed := strings.TrimSpace(raw)

	switch kind {
	case FieldNumeric:
		if sentinels[trimmed] {
			return "0"
		}
	case FieldCategory:
		if trimmed == "" || sentinels[trimmed] {
			return UnknownCategory
		}
	}
	return trimmed
}
