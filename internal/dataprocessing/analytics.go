package dataprocessing

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"cafesales/pkg/contracts/domain"
)

// weekdayOrder is the fixed presentation order for weekday aggregates.
var weekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// Analyzer derives the summary aggregate tables from a validated dataset.
// All derivations are pure: recomputing them on an unchanged table yields
// identical results.
type Analyzer struct {
	logger *slog.Logger
	tracer trace.Tracer
}

// NewAnalyzer creates an analyzer for the validated dataset.
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

// Analyze computes every aggregate table from the validated records.
func (a *Analyzer) Analyze(ctx context.Context, records []domain.SaleRecord) *AnalyticsReport {
	ctx, span := a.tracer.Start(ctx, "analyzer.Analyze",
		trace.WithAttributes(attribute.Int("record_count", len(records))))
	defer span.End()

	report := &AnalyticsReport{
		MonthlyRevenue: monthlyRevenue(records),
		WeekdayRevenue: weekdayRevenue(records),
		ItemRevenue:    itemRevenue(records),
		ItemQuantity:   itemQuantity(records),
		RevenueTrend:   revenueTrend(records),
		Correlation:    Correlate(records),
	}

	a.logger.InfoContext(ctx, "aggregates computed",
		slog.Int("record_count", len(records)),
		slog.Int("items", len(report.ItemRevenue)),
		slog.Int("periods", len(report.RevenueTrend)))

	return report
}

// monthlyRevenue groups by calendar month number. All twelve months are
// present so the table maps directly onto a Jan-Dec axis; months without
// transactions carry zero.
func monthlyRevenue(records []domain.SaleRecord) []MonthRevenue {
	sums := make(map[int]float64, 12)
	for _, r := range records {
		sums[r.Month()] += r.TotalSpent
	}

	table := make([]MonthRevenue, 0, 12)
	for month := 1; month <= 12; month++ {
		table = append(table, MonthRevenue{Month: month, Revenue: sums[month]})
	}
	return table
}

// weekdayRevenue groups by weekday, reindexed into fixed Monday-to-Sunday
// order. A weekday with no transactions contributes a zero entry rather
// than being omitted.
func weekdayRevenue(records []domain.SaleRecord) []WeekdayRevenue {
	sums := make(map[string]float64, 7)
	for _, r := range records {
		sums[r.Weekday()] += r.TotalSpent
	}

	table := make([]WeekdayRevenue, 0, 7)
	for _, day := range weekdayOrder {
		table = append(table, WeekdayRevenue{Weekday: day.String(), Revenue: sums[day.String()]})
	}
	return table
}

// itemRevenue sums revenue per item, descending. Ties break on item name so
// the ordering is deterministic.
func itemRevenue(records []domain.SaleRecord) []ItemRevenue {
	sums := make(map[string]float64)
	for _, r := range records {
		sums[r.Item] += r.TotalSpent
	}

	table := make([]ItemRevenue, 0, len(sums))
	for item, revenue := range sums {
		table = append(table, ItemRevenue{Item: item, Revenue: revenue})
	}
	sort.Slice(table, func(i, j int) bool {
		if table[i].Revenue != table[j].Revenue {
			return table[i].Revenue > table[j].Revenue
		}
		return table[i].Item < table[j].Item
	})
	return table
}

// itemQuantity sums quantity per item, descending, as a view independent of
// itemRevenue.
func itemQuantity(records []domain.SaleRecord) []ItemQuantity {
	sums := make(map[string]int64)
	for _, r := range records {
		sums[r.Item] += r.Quantity
	}

	table := make([]ItemQuantity, 0, len(sums))
	for item, quantity := range sums {
		table = append(table, ItemQuantity{Item: item, Quantity: quantity})
	}
	sort.Slice(table, func(i, j int) bool {
		if table[i].Quantity != table[j].Quantity {
			return table[i].Quantity > table[j].Quantity
		}
		return table[i].Item < table[j].Item
	})
	return table
}

// revenueTrend groups by year-month period in chronological order. Only
// periods with transactions appear; the series is a time axis, not a fixed
// calendar.
func revenueTrend(records []domain.SaleRecord) []PeriodRevenue {
	sums := make(map[string]float64)
	for _, r := range records {
		sums[r.Period()] += r.TotalSpent
	}

	table := make([]PeriodRevenue, 0, len(sums))
	for period, revenue := range sums {
		table = append(table, PeriodRevenue{Period: period, Revenue: revenue})
	}
	sort.Slice(table, func(i, j int) bool { return table[i].Period < table[j].Period })
	return table
}

// Correlate computes the pairwise Pearson correlation matrix over quantity,
// unit price and total spent. The diagonal is always 1; a field with zero
// variance correlates 0 with everything else.
func Correlate(records []domain.SaleRecord) CorrelationMatrix {
	series := [3][]float64{
		make([]float64, len(records)),
		make([]float64, len(records)),
		make([]float64, len(records)),
	}
	for i, r := range records {
		series[0][i] = float64(r.Quantity)
		series[1][i] = r.UnitPrice
		series[2][i] = r.TotalSpent
	}

	matrix := CorrelationMatrix{Fields: CorrelationFields}
	for i := 0; i < 3; i++ {
		matrix.Values[i][i] = 1
		for j := i + 1; j < 3; j++ {
			r := pearson(series[i], series[j])
			matrix.Values[i][j] = r
			matrix.Values[j][i] = r
		}
	}
	return matrix
}

// pearson returns the sample Pearson correlation coefficient of two series
// of equal length, or 0 when either series has no variance.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	if n == 0 {
		return 0
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
