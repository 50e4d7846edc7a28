// Package report renders a human-readable summary of a cleaning run:
// row counts, what was dropped and why, top sellers, peak periods and the
// correlation matrix.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"cafesales/internal/dataprocessing"
)

// topN limits the item tables in the summary to the best sellers.
const topN = 5

// Summary bundles everything the run report renders.
type Summary struct {
	SourceFile string
	Stats      dataprocessing.RunStats
	Analytics  *dataprocessing.AnalyticsReport
}

// Write renders the summary to w. The layout mirrors what an operator
// wants to scan after a run: counts first, then the derived tables.
func Write(w io.Writer, s Summary) error {
	fmt.Fprintf(w, "Café sales cleaning run\n")
	fmt.Fprintf(w, "=======================\n\n")
	if s.SourceFile != "" {
		fmt.Fprintf(w, "Source: %s\n\n", s.SourceFile)
	}

	writeStats(w, s.Stats)

	if s.Analytics != nil {
		writeAnalytics(w, s.Analytics)
	}
	return nil
}

func writeStats(w io.Writer, stats dataprocessing.RunStats) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Rows read\t%d\n", stats.RowsIn)
	fmt.Fprintf(tw, "Rows kept\t%d\n", stats.RowsOut)
	fmt.Fprintf(tw, "Duplicates removed\t%d\n", stats.DuplicatesRemoved)
	fmt.Fprintf(tw, "Invalid rows dropped\t%d\n", stats.InvalidDropped)
	fmt.Fprintf(tw, "Totals reconciled\t%d\n", stats.TotalsReconciled)
	fmt.Fprintf(tw, "Dates imputed\t%d\n", stats.DatesImputed)
	tw.Flush()
	fmt.Fprintln(w)
}

func writeAnalytics(w io.Writer, a *dataprocessing.AnalyticsReport) {
	if item, ok := peakItemRevenue(a.ItemRevenue); ok {
		fmt.Fprintf(w, "Top earner: %s (%.2f)\n", item.Item, item.Revenue)
	}
	if month, ok := peakMonth(a.MonthlyRevenue); ok {
		fmt.Fprintf(w, "Peak month: %d (%.2f)\n", month.Month, month.Revenue)
	}
	if day, ok := peakWeekday(a.WeekdayRevenue); ok {
		fmt.Fprintf(w, "Peak weekday: %s (%.2f)\n", day.Weekday, day.Revenue)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Top items by revenue\n")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, row := range a.ItemRevenue {
		if i >= topN {
			break
		}
		fmt.Fprintf(tw, "  %s\t%.2f\n", row.Item, row.Revenue)
	}
	tw.Flush()
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Top items by quantity\n")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, row := range a.ItemQuantity {
		if i >= topN {
			break
		}
		fmt.Fprintf(tw, "  %s\t%d\n", row.Item, row.Quantity)
	}
	tw.Flush()
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Correlation (quantity / unit price / total)\n")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, field := range a.Correlation.Fields {
		fmt.Fprintf(tw, "  %s\t%.4f\t%.4f\t%.4f\n", field,
			a.Correlation.Values[i][0],
			a.Correlation.Values[i][1],
			a.Correlation.Values[i][2])
	}
	tw.Flush()
}

// peakItemRevenue relies on the item table's revenue-descending order.
func peakItemRevenue(rows []dataprocessing.ItemRevenue) (dataprocessing.ItemRevenue, bool) {
	if len(rows) == 0 {
		return dataprocessing.ItemRevenue{}, false
	}
	return rows[0], true
}

func peakMonth(rows []dataprocessing.MonthRevenue) (dataprocessing.MonthRevenue, bool) {
	var best dataprocessing.MonthRevenue
	found := false
	for _, row := range rows {
		if row.Revenue <= 0 {
			continue
		}
		if !found || row.Revenue > best.Revenue {
			best = row
			found = true
		}
	}
	return best, found
}

func peakWeekday(rows []dataprocessing.WeekdayRevenue) (dataprocessing.WeekdayRevenue, bool) {
	var best dataprocessing.WeekdayRevenue
	found := false
	for _, row := range rows {
		if row.Revenue <= 0 {
			continue
		}
		if !found || row.Revenue > best.Revenue {
			best = row
			found = true
		}
	}
	return best, found
}
