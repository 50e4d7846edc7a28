package exporter

import (
	"fmt"

	"cafesales/internal/config"
	"cafesales/internal/dataprocessing"
)

// Aggregate table file names, written into the reports directory.
const (
	MonthlyRevenueFile    = "monthly_revenue.csv"
	WeekdayRevenueFile    = "weekday_revenue.csv"
	ItemRevenueFile       = "item_revenue.csv"
	ItemQuantityFile      = "item_quantity.csv"
	RevenueTrendFile      = "revenue_trend.csv"
	CorrelationMatrixFile = "correlation_matrix.csv"
)

// AggregatesExporter writes the derived aggregate tables of a run.
type AggregatesExporter struct {
	csvWriter *CSVWriter
}

// NewAggregatesExporter creates an aggregate-table exporter
func NewAggregatesExporter(paths *config.Paths) *AggregatesExporter {
	return &AggregatesExporter{
		csvWriter: NewCSVWriter(paths),
	}
}

// ExportAll writes every aggregate table of the report into the reports
// directory, one CSV per table.
func (e *AggregatesExporter) ExportAll(report *dataprocessing.AnalyticsReport) error {
	if err := e.exportMonthlyRevenue(report.MonthlyRevenue); err != nil {
		return err
	}
	if err := e.exportWeekdayRevenue(report.WeekdayRevenue); err != nil {
		return err
	}
	if err := e.exportItemRevenue(report.ItemRevenue); err != nil {
		return err
	}
	if err := e.exportItemQuantity(report.ItemQuantity); err != nil {
		return err
	}
	if err := e.exportRevenueTrend(report.RevenueTrend); err != nil {
		return err
	}
	return e.exportCorrelation(report.Correlation)
}

func (e *AggregatesExporter) exportMonthlyRevenue(rows []dataprocessing.MonthRevenue) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{formatInt(int64(row.Month)), formatFloat(row.Revenue)})
	}
	return e.write(MonthlyRevenueFile, []string{"month", "revenue"}, records)
}

func (e *AggregatesExporter) exportWeekdayRevenue(rows []dataprocessing.WeekdayRevenue) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{row.Weekday, formatFloat(row.Revenue)})
	}
	return e.write(WeekdayRevenueFile, []string{"weekday", "revenue"}, records)
}

func (e *AggregatesExporter) exportItemRevenue(rows []dataprocessing.ItemRevenue) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{row.Item, formatFloat(row.Revenue)})
	}
	return e.write(ItemRevenueFile, []string{"item", "revenue"}, records)
}

func (e *AggregatesExporter) exportItemQuantity(rows []dataprocessing.ItemQuantity) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{row.Item, formatInt(row.Quantity)})
	}
	return e.write(ItemQuantityFile, []string{"item", "quantity"}, records)
}

func (e *AggregatesExporter) exportRevenueTrend(rows []dataprocessing.PeriodRevenue) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{row.Period, formatFloat(row.Revenue)})
	}
	return e.write(RevenueTrendFile, []string{"period", "revenue"}, records)
}

// exportCorrelation renders the matrix with field names on both axes, the
// same shape pandas prints for a correlation frame.
func (e *AggregatesExporter) exportCorrelation(matrix dataprocessing.CorrelationMatrix) error {
	headers := append([]string{"field"}, matrix.Fields[:]...)

	records := make([][]string, 0, len(matrix.Fields))
	for i, field := range matrix.Fields {
		row := []string{field}
		for j := range matrix.Fields {
			row = append(row, formatCoefficient(matrix.Values[i][j]))
		}
		records = append(records, row)
	}
	return e.write(CorrelationMatrixFile, headers, records)
}

func (e *AggregatesExporter) write(fileName string, headers []string, records [][]string) error {
	if err := e.csvWriter.WriteSimpleCSV(fileName, headers, records); err != nil {
		return fmt.Errorf("failed to write %s: %w", fileName, err)
	}
	return nil
}
