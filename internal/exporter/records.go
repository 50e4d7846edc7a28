package exporter

import (
	"fmt"

	"cafesales/internal/config"
	"cafesales/pkg/contracts/domain"
)

// SalesExporter writes the cleaned transaction table to disk.
type SalesExporter struct {
	csvWriter *CSVWriter
}

// NewSalesExporter creates a cleaned-table exporter
func NewSalesExporter(paths *config.Paths) *SalesExporter {
	return &SalesExporter{
		csvWriter: NewCSVWriter(paths),
	}
}

// ExportCleaned writes the cleaned records to filePath in canonical column
// order. Records are written in pipeline order, which preserves the order of
// the source file.
func (e *SalesExporter) ExportCleaned(records []domain.SaleRecord, filePath string) error {
	csvRecords := make([][]string, 0, len(records))
	for _, record := range records {
		csvRecords = append(csvRecords, recordToCSVRow(record))
	}

	if err := e.csvWriter.WriteSimpleCSV(filePath, domain.CanonicalColumns, csvRecords); err != nil {
		return fmt.Errorf("failed to write cleaned sales: %w", err)
	}
	return nil
}

// ExportCleanedStreaming writes the cleaned records through a stream writer.
// Used for large exports where buffering every row first is wasteful.
func (e *SalesExporter) ExportCleanedStreaming(records []domain.SaleRecord, filePath string) error {
	stream, err := e.csvWriter.CreateStreamWriter(filePath, domain.CanonicalColumns)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	for _, record := range records {
		if err := stream.WriteRecord(recordToCSVRow(record)); err != nil {
			stream.Close()
			return fmt.Errorf("failed to write record %s: %w", record.TransactionID, err)
		}
	}

	if err := stream.Close(); err != nil {
		return fmt.Errorf("failed to close stream: %w", err)
	}
	return nil
}

// recordToCSVRow converts a sale record to a CSV row in canonical column order
func recordToCSVRow(record domain.SaleRecord) []string {
	return []string{
		record.TransactionID,
		record.Item,
		formatInt(record.Quantity),
		formatFloat(record.UnitPrice),
		formatFloat(record.TotalSpent),
		record.PaymentMethod,
		record.Location,
		record.TransactionDate.Format("2006-01-02"),
	}
}
