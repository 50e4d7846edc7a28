package domain

import (
	"time"
)

// SaleRecord represents a single point-of-sale transaction after cleaning.
// Invariants (post-pipeline): TransactionID is unique, Quantity > 0,
// UnitPrice >= 0, TotalSpent >= 0 and within 0.01 of Quantity*UnitPrice,
// categorical fields are title-cased and never empty, TransactionDate is
// never the zero time.
type SaleRecord struct {
	TransactionID   string    `json:"transaction_id" csv:"TransactionID" validate:"required"`
	Item            string    `json:"item" csv:"Item" validate:"required"`
	Quantity        int64     `json:"quantity" csv:"Quantity" validate:"gt=0"`
	UnitPrice       float64   `json:"unit_price" csv:"UnitPrice" validate:"gte=0"`
	TotalSpent      float64   `json:"total_spent" csv:"TotalSpent" validate:"gte=0"`
	PaymentMethod   string    `json:"payment_method" csv:"PaymentMethod" validate:"required"`
	Location        string    `json:"location" csv:"Location" validate:"required"`
	TransactionDate time.Time `json:"transaction_date" csv:"TransactionDate"`
}

// ExpectedTotal returns the authoritative monetary total derived from
// quantity and unit price. TotalSpent is reconciled against this value.
func (r SaleRecord) ExpectedTotal() float64 {
	return float64(r.Quantity) * r.UnitPrice
}

// Month returns the calendar month number (1-12) of the transaction date.
func (r SaleRecord) Month() int {
	return int(r.TransactionDate.Month())
}

// Weekday returns the weekday name of the transaction date.
func (r SaleRecord) Weekday() string {
	return r.TransactionDate.Weekday().String()
}

// Period returns the year-month period of the transaction date, e.g. "2023-04".
func (r SaleRecord) Period() string {
	return r.TransactionDate.Format("2006-01")
}

// CanonicalColumns is the fixed column order of the cleaned dataset.
var CanonicalColumns = []string{
	"transaction_id",
	"item",
	"quantity",
	"price_per_unit",
	"total_spent",
	"payment_method",
	"location",
	"transaction_date",
}
