package dataprocessing

// Aggregate tables are ordered mappings (slices, not Go maps) so their
// rendering order is explicit and recomputation is deterministic. They hold
// no state of their own and are fully derived from the validated table.

// MonthRevenue is one row of the monthly revenue table.
type MonthRevenue struct {
	Month   int     `json:"month"` // calendar month number, 1-12
	Revenue float64 `json:"revenue"`
}

// WeekdayRevenue is one row of the weekday revenue table. The table always
// carries the fixed Monday-to-Sunday sequence; a weekday with no
// transactions contributes a zero entry rather than being omitted.
type WeekdayRevenue struct {
	Weekday string  `json:"weekday"`
	Revenue float64 `json:"revenue"`
}

// ItemRevenue is one row of the per-item revenue table, ordered by revenue
// descending.
type ItemRevenue struct {
	Item    string  `json:"item"`
	Revenue float64 `json:"revenue"`
}

// ItemQuantity is one row of the per-item quantity table, ordered by
// quantity descending.
type ItemQuantity struct {
	Item     string `json:"item"`
	Quantity int64  `json:"quantity"`
}

// PeriodRevenue is one row of the monthly revenue time series, keyed by
// year-month period ("2023-04") in chronological order.
type PeriodRevenue struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
}

// CorrelationFields names the numeric fields of the correlation matrix, in
// matrix order.
var CorrelationFields = [3]string{ColQuantity, ColUnitPrice, ColTotalSpent}

// CorrelationMatrix is the pairwise Pearson correlation over the three
// numeric fields. Symmetric with a unit diagonal.
type CorrelationMatrix struct {
	Fields [3]string     `json:"fields"`
	Values [3][3]float64 `json:"values"`
}

// AnalyticsReport bundles every derived aggregate of one run.
type AnalyticsReport struct {
	MonthlyRevenue []MonthRevenue    `json:"monthly_revenue"`
	WeekdayRevenue []WeekdayRevenue  `json:"weekday_revenue"`
	ItemRevenue    []ItemRevenue     `json:"item_revenue"`
	ItemQuantity   []ItemQuantity    `json:"item_quantity"`
	RevenueTrend   []PeriodRevenue   `json:"revenue_trend"`
	Correlation    CorrelationMatrix `json:"correlation"`
}
