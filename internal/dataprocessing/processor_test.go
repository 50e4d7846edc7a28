package dataprocessing

import (
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafesales/internal/shared/testutil"
	"cafesales/pkg/contracts/domain"
)

var rawHeaders = []string{
	"Transaction ID", "Item", "Quantity", "Price Per Unit ($)",
	"Total Spent ($)", "Payment Method", "Location", "Transaction Date",
}

func rawRow(id, item, qty, price, total, payment, location, date string) map[string]string {
	return map[string]string{
		"Transaction ID":     id,
		"Item":               item,
		"Quantity":           qty,
		"Price Per Unit ($)": price,
		"Total Spent ($)":    total,
		"Payment Method":     payment,
		"Location":           location,
		"Transaction Date":   date,
	}
}

func TestNewPipeline(t *testing.T) {
	tests := []struct {
		name          string
		logger        *slog.Logger
		config        PipelineConfig
		wantTolerance float64
	}{
		{
			name:          "default config",
			logger:        slog.Default(),
			config:        DefaultPipelineConfig(),
			wantTolerance: DefaultTolerance,
		},
		{
			name:          "custom tolerance",
			logger:        slog.Default(),
			config:        PipelineConfig{Tolerance: 0.05},
			wantTolerance: 0.05,
		},
		{
			name:          "zero tolerance falls back to default",
			logger:        nil,
			config:        PipelineConfig{},
			wantTolerance: DefaultTolerance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline := NewPipeline(tt.logger, tt.config)

			require.NotNil(t, pipeline)
			assert.Equal(t, tt.wantTolerance, pipeline.tolerance)
			assert.NotNil(t, pipeline.logger)
		})
	}
}

// TestPipeline_Run_EndToEnd exercises the full stage sequence: row 3
// duplicates row 1's identifier, row 4 has a negative quantity, and row 2
// carries a sentinel total that must be recomputed from quantity and price.
func TestPipeline_Run_EndToEnd(t *testing.T) {
	table := &domain.RawTable{
		Headers:    rawHeaders,
		SourceFile: "cafe_sales.csv",
		Rows: []map[string]string{
			rawRow("TXN_001", "Coffee", "2", "2.0", "4.0", "Cash", "Takeaway", "2023-04-01"),
			rawRow("TXN_002", "Sandwich", "2", "3.0", "ERROR", "Credit Card", "Takeaway", "2023-04-02"),
			rawRow("TXN_001", "Cake", "1", "4.0", "4.0", "Cash", "Takeaway", "2023-04-03"),
			rawRow("TXN_004", "Tea", "-2", "1.5", "0", "Cash", "Takeaway", "2023-04-04"),
			rawRow("TXN_005", "Juice", "3", "2.5", "7.5", "Cash", "Takeaway", "2023-04-05"),
		},
	}

	logger, logs := testutil.NewTestLogger(t)
	pipeline := NewPipeline(logger, DefaultPipelineConfig())
	result, err := pipeline.Run(context.Background(), table)
	require.NoError(t, err)

	testutil.AssertLogContains(t, logs, slog.LevelInfo, "cleaning pipeline complete")
	testutil.AssertNoErrors(t, logs)

	require.Len(t, result.Records, 3)
	assert.Equal(t, RunStats{
		RowsIn:            5,
		RowsOut:           3,
		TotalsReconciled:  2, // sentinel total and zero total both recomputed
		DatesImputed:      0,
		DuplicatesRemoved: 1,
		InvalidDropped:    1,
	}, result.Stats)

	// first-wins dedup: the Coffee row survives, not the Cake duplicate
	assert.Equal(t, "TXN_001", result.Records[0].TransactionID)
	assert.Equal(t, "Coffee", result.Records[0].Item)

	// sentinel total reconciled to quantity * unit price
	assert.Equal(t, "TXN_002", result.Records[1].TransactionID)
	assert.Equal(t, 6.0, result.Records[1].TotalSpent)

	assert.Equal(t, "TXN_005", result.Records[2].TransactionID)

	// every surviving row satisfies the reconciliation invariant
	for _, r := range result.Records {
		assert.LessOrEqual(t, math.Abs(r.TotalSpent-r.ExpectedTotal()), DefaultTolerance)
	}

	// correlation over the survivors is symmetric with a unit diagonal
	matrix := Correlate(result.Records)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, matrix.Values[i][i])
		for j := 0; j < 3; j++ {
			assert.Equal(t, matrix.Values[i][j], matrix.Values[j][i])
		}
	}
}

// TestPipeline_Run_RepairsNaNTotals covers literal "NaN" in a numeric cell:
// it parses under strconv but must take the same zero fallback as garbage
// text, so the reconciler recomputes the total and the row is retained
// instead of being dropped by the validity filter.
func TestPipeline_Run_RepairsNaNTotals(t *testing.T) {
	table := &domain.RawTable{
		Headers: rawHeaders,
		Rows: []map[string]string{
			rawRow("TXN_001", "Coffee", "2", "2.0", "4.0", "Cash", "Takeaway", "2023-04-01"),
			rawRow("TXN_002", "Sandwich", "2", "3.0", "NaN", "Cash", "Takeaway", "2023-04-02"),
			rawRow("TXN_003", "Tea", "3", "1.5", "nan", "Cash", "Takeaway", "2023-04-03"),
		},
	}

	result, err := NewPipeline(nil, DefaultPipelineConfig()).Run(context.Background(), table)
	require.NoError(t, err)

	require.Len(t, result.Records, 3)
	assert.Equal(t, 2, result.Stats.TotalsReconciled)
	assert.Zero(t, result.Stats.InvalidDropped)
	assert.Equal(t, 6.0, result.Records[1].TotalSpent)
	assert.Equal(t, 4.5, result.Records[2].TotalSpent)
	for _, r := range result.Records {
		assert.False(t, math.IsNaN(r.TotalSpent))
	}
}

func TestPipeline_Run_ImputesMissingDates(t *testing.T) {
	table := &domain.RawTable{
		Headers: rawHeaders,
		Rows: []map[string]string{
			rawRow("TXN_001", "Coffee", "1", "2.0", "2.0", "Cash", "Takeaway", "2023-04-01"),
			rawRow("TXN_002", "Tea", "1", "1.5", "1.5", "Cash", "Takeaway", "UNKNOWN"),
			rawRow("TXN_003", "Cake", "1", "4.0", "4.0", "Cash", "Takeaway", "2023-04-09"),
		},
	}

	result, err := NewPipeline(nil, DefaultPipelineConfig()).Run(context.Background(), table)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.DatesImputed)
	for _, r := range result.Records {
		assert.False(t, r.TransactionDate.IsZero())
	}
	// median of 2023-04-01 and 2023-04-09 is 2023-04-05
	assert.Equal(t, "2023-04-05", result.Records[1].TransactionDate.Format("2006-01-02"))
}

func TestPipeline_Run_FatalConditions(t *testing.T) {
	tests := []struct {
		name    string
		table   *domain.RawTable
		wantErr error
	}{
		{
			name: "missing required column",
			table: &domain.RawTable{
				Headers: []string{"Transaction ID", "Item"},
				Rows:    []map[string]string{{"Transaction ID": "TXN_001", "Item": "Coffee"}},
			},
			wantErr: ErrMissingColumn,
		},
		{
			name: "no valid date anywhere",
			table: &domain.RawTable{
				Headers: rawHeaders,
				Rows: []map[string]string{
					rawRow("TXN_001", "Coffee", "1", "2.0", "2.0", "Cash", "Takeaway", "ERROR"),
					rawRow("TXN_002", "Tea", "1", "1.5", "1.5", "Cash", "Takeaway", ""),
				},
			},
			wantErr: ErrNoValidDates,
		},
		{
			name:    "empty input",
			table:   &domain.RawTable{Headers: rawHeaders},
			wantErr: ErrEmptyInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewPipeline(slog.Default(), DefaultPipelineConfig()).Run(context.Background(), tt.table)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)

			var stageErr *StageError
			require.ErrorAs(t, err, &stageErr)
			assert.NotEmpty(t, stageErr.Stage)
		})
	}
}
