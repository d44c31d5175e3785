package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BatchEntryType distinguishes how a batch entered inventory. It decides
// which journal category the receipt posts to, not FIFO eligibility.
type BatchEntryType string

const (
	EntryPurchase       BatchEntryType = "PURCHASE"
	EntryOpeningBalance BatchEntryType = "OPENING_BALANCE"
)

// InventoryBatch is a discrete receipt of stock at a specific unit cost and
// date. Remaining quantity only ever decreases, by sale consumption.
type InventoryBatch struct {
	BatchID     string          `json:"batchID"`     // Primary Key (UUID)
	ProductCode string          `json:"productCode"` // FK -> Product.Code (Not Null)
	Sequence    int64           `json:"sequence"`    // Monotonic creation order; FIFO tie-break for equal arrival dates
	ArrivalDate time.Time       `json:"arrivalDate"`
	Quantity    decimal.Decimal `json:"quantity"`  // Original quantity, immutable
	UnitPrice   decimal.Decimal `json:"unitPrice"` // Purchase cost per unit
	Remaining   decimal.Decimal `json:"remaining"` // 0 <= Remaining <= Quantity
	EntryType   BatchEntryType  `json:"entryType"`
	Supplier    string          `json:"supplier,omitempty"`
	ExpiryDate  *time.Time      `json:"expiryDate,omitempty"`
	AuditFields
}

// Eligible reports whether the batch can still supply FIFO consumption.
func (b InventoryBatch) Eligible() bool {
	return b.Remaining.IsPositive()
}
