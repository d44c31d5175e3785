package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AllocatePaymentRequest defines the JSON body for splitting one payment
// across multiple debts proportionally to their remaining balances.
type AllocatePaymentRequest struct {
	DebtIDs     []string        `json:"debtIDs" binding:"required,min=1"`
	TotalAmount decimal.Decimal `json:"totalAmount" binding:"required"`
	PaymentDate time.Time       `json:"paymentDate" binding:"required"`
	Method      string          `json:"method" binding:"required"`
	Reference   string          `json:"reference,omitempty"`
}

// ManualAllocationEntry is one caller-chosen settlement amount for a debt.
type ManualAllocationEntry struct {
	DebtID string          `json:"debtID" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// AllocateManualRequest defines the JSON body for splitting one payment
// across multiple debts with caller-supplied per-debt amounts. The amounts
// must sum to TotalAmount and each stay within its debt's remaining balance.
type AllocateManualRequest struct {
	Entries     []ManualAllocationEntry `json:"entries" binding:"required,min=1,dive"`
	TotalAmount decimal.Decimal         `json:"totalAmount" binding:"required"`
	PaymentDate time.Time               `json:"paymentDate" binding:"required"`
	Method      string                  `json:"method" binding:"required"`
	Reference   string                  `json:"reference,omitempty"`
}

// SettlementResponse reports the outcome of one per-debt settlement.
type SettlementResponse struct {
	DebtID           string          `json:"debtID"`
	PaymentID        string          `json:"paymentID"`
	Amount           decimal.Decimal `json:"amount"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
	Status           string          `json:"status"`
}

// AllocationResponse reports a completed multi-debt payment. Unallocated is
// the part of the payment that clamping left unassigned; it is returned to
// the caller, never silently dropped.
type AllocationResponse struct {
	Settlements []SettlementResponse `json:"settlements"`
	Allocated   decimal.Decimal      `json:"allocated"`
	Unallocated decimal.Decimal      `json:"unallocated"`
}
