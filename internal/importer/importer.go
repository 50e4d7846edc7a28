package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"cafesales/pkg/contracts/domain"
)

// ErrUnsupportedFormat indicates the input file extension maps to no reader.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ErrEmptyFile indicates the input contained no rows at all.
var ErrEmptyFile = errors.New("input file is empty")

// Importer loads raw sales exports from disk.
type Importer struct {
	logger *slog.Logger
}

// New creates an Importer. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{logger: logger}
}

// Load reads the file at path into a RawTable, dispatching on extension.
// Supported extensions are .csv and .xlsx.
func (i *Importer) Load(ctx context.Context, path string) (*domain.RawTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		table *domain.RawTable
		err   error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		table, err = i.loadCSV(path)
	case ".xlsx":
		table, err = i.loadExcel(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	i.logger.InfoContext(ctx, "input loaded",
		slog.String("file", filepath.Base(path)),
		slog.Int("rows", table.RowCount()),
		slog.Int("columns", len(table.Headers)))

	return table, nil
}

// tableFromRows builds a RawTable from a header row plus data rows.
// Rows shorter than the header are padded with empty strings, matching
// what spreadsheet tools emit for trailing blank cells.
func tableFromRows(rows [][]string, sourceFile string) (*domain.RawTable, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	table := &domain.RawTable{
		Headers:    headers,
		Rows:       make([]map[string]string, 0, len(rows)-1),
		SourceFile: sourceFile,
	}

	for _, row := range rows[1:] {
		cells := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				cells[h] = row[i]
			} else {
				cells[h] = ""
			}
		}
		table.Rows = append(table.Rows, cells)
	}

	return table, nil
}
