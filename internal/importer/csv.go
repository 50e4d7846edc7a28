package importer

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"cafesales/pkg/contracts/domain"
)

// utf8BOM is the byte order mark some spreadsheet tools prepend to CSV
// exports. It must be stripped or it ends up glued to the first header.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func (i *Importer) loadCSV(path string) (*domain.RawTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open CSV file: %w", err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	if err := skipBOM(reader); err != nil {
		return nil, fmt.Errorf("read CSV file: %w", err)
	}

	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1 // tolerate ragged rows; tableFromRows pads them

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV records: %w", err)
	}

	return tableFromRows(rows, path)
}

func skipBOM(r *bufio.Reader) error {
	prefix, err := r.Peek(len(utf8BOM))
	if err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	if string(prefix) == string(utf8BOM) {
		if _, err := r.Discard(len(utf8BOM)); err != nil {
			return err
		}
	}
	return nil
}
