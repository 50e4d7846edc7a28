package domain

// RawTable is the working table as read from the input file, before any
// cleaning stage has run. Rows are keyed by column identifier; keys are the
// raw header strings until the normalizer has rewritten them to the
// canonical schema.
type RawTable struct {
	Headers    []string
	Rows       []map[string]string
	SourceFile string
}

// RowCount returns the number of data rows in the table.
func (t *RawTable) RowCount() int {
	return len(t.Rows)
}
