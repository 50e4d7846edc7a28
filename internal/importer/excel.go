package importer

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"cafesales/pkg/contracts/domain"
)

func (i *Importer) loadExcel(path string) (*domain.RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}

	// Sales exports carry a single data sheet; pick the first one that
	// has a populated header row.
	var rows [][]string
	for _, name := range sheets {
		sheetRows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		if len(sheetRows) > 0 && hasContent(sheetRows[0]) {
			rows = sheetRows
			break
		}
	}

	return tableFromRows(rows, path)
}

func hasContent(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return true
		}
	}
	return false
}
