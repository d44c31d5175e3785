package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is derived from the amount collected at sale time.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "PAID"
	PaymentPartial PaymentStatus = "PARTIAL"
	PaymentUnpaid  PaymentStatus = "UNPAID"
)

// SaleRecord is the immutable financial fact of one sale. Cost and profit are
// fixed at recording time and never recomputed retroactively.
type SaleRecord struct {
	SaleID      string          `json:"saleID"` // Primary Key (UUID)
	ProductCode string          `json:"productCode"`
	SaleDate    time.Time       `json:"saleDate"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalCost   decimal.Decimal `json:"totalCost"` // Sum of consumed-batch line costs
	TotalSale   decimal.Decimal `json:"totalSale"` // Quantity * UnitPrice
	Profit      decimal.Decimal `json:"profit"`    // TotalSale - TotalCost
	AmountPaid  decimal.Decimal `json:"amountPaid"`
	Status      PaymentStatus   `json:"paymentStatus"`
	Customer    string          `json:"customer"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	DebtID      *string         `json:"debtID,omitempty"` // Set when the sale was underpaid
	CostLines   []CostingLine   `json:"costLines"`        // Audit trail of consumed batches
	AuditFields
}
