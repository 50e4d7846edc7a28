package dataprocessing

import (
	"math"
	"sort"
	"strconv"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cafesales/pkg/contracts/domain"
)

// dateFormats are tried in order when parsing transaction dates.
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"2006/01/02",
}

// CoerceRows converts sentinel-resolved raw rows into typed SaleRecords.
// Parse failures are swallowed and replaced with a defined default (zero for
// numerics, the zero time for dates) rather than rejecting the row. This is
// a deliberate best-effort policy: downstream stages treat zero and
// "Unknown" as legitimate values, not as missing markers. Dates left at the
// zero time are finalized by ImputeDates.
func CoerceRows(rows []map[string]string) []domain.SaleRecord {
	title := cases.Title(language.English)
	records := make([]domain.SaleRecord, 0, len(rows))

	for _, row := range rows {
		records = append(records, domain.SaleRecord{
			TransactionID:   Resolve(row[ColTransactionID], FieldIdentifier),
			Item:            title.String(Resolve(row[ColItem], FieldCategory)),
			Quantity:        coerceInt(Resolve(row[ColQuantity], FieldNumeric)),
			UnitPrice:       coerceFloat(Resolve(row[ColUnitPrice], FieldNumeric)),
			TotalSpent:      coerceFloat(Resolve(row[ColTotalSpent], FieldNumeric)),
			PaymentMethod:   title.String(Resolve(row[ColPaymentMethod], FieldCategory)),
			Location:        title.String(Resolve(row[ColLocation], FieldCategory)),
			TransactionDate: coerceDate(Resolve(row[ColTransactionDate], FieldDate)),
		})
	}
	return records
}

// ImputeDates substitutes the median of all valid dates for every record
// whose date is still the zero-time placeholder. It requires a full pass
// over the dataset before any date can be finalized, so it runs as a
// separate batch step after CoerceRows. Returns the number of imputed rows.
// Imputing an already-imputed dataset is a no-op.
//
// An input with no valid date anywhere is fatal: the median is undefined
// and there is no meaningful default to substitute.
func ImputeDates(records []domain.SaleRecord) (int, error) {
	valid := make([]time.Time, 0, len(records))
	for _, r := range records {
		if !r.TransactionDate.IsZero() {
			valid = append(valid, r.TransactionDate)
		}
	}
	if len(valid) == 0 {
		return 0, ErrNoValidDates
	}

	median := medianTime(valid)
	imputed := 0
	for i := range records {
		if records[i].TransactionDate.IsZero() {
			records[i].TransactionDate = median
			imputed++
		}
	}
	return imputed, nil
}

// coerceInt parses a quantity. Quantities are whole numbers; a decimal
// string like "3.0" still coerces via its float form. Values outside the
// int64 range fall back to zero like any other unusable cell.
func coerceInt(raw string) int64 {
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && isFiniteAmount(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f)
	}
	return 0
}

// coerceFloat parses a monetary amount. "NaN" and "Inf" satisfy
// strconv.ParseFloat but are as unusable as garbage text, so they take the
// same zero fallback; the reconciler then repairs zeroed totals from
// quantity and unit price.
func coerceFloat(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !isFiniteAmount(v) {
		return 0
	}
	return v
}

func isFiniteAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// coerceDate tries the known formats in order; failure yields the zero time
// placeholder for ImputeDates to resolve.
func coerceDate(raw string) time.Time {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// medianTime returns the median of the given instants: the middle element
// for an odd count, the midpoint of the two middle elements for an even
// count.
func medianTime(dates []time.Time) time.Time {
	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	lo, hi := sorted[mid-1], sorted[mid]
	return lo.Add(hi.Sub(lo) / 2)
}
