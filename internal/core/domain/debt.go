package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtKind separates debts created by underpaid sales from standalone
// payables and receivables entered directly.
type DebtKind string

const (
	DebtSale       DebtKind = "SALE"
	DebtPayable    DebtKind = "PAYABLE"
	DebtReceivable DebtKind = "RECEIVABLE"
)

// DebtStatus is the stored lifecycle state of a debt. Overdue is never
// stored; it is derived from the due date and remaining balance on read.
type DebtStatus string

const (
	DebtUnpaid    DebtStatus = "UNPAID"
	DebtPaid      DebtStatus = "PAID"
	DebtActive    DebtStatus = "ACTIVE" // General payables/receivables start here
	DebtCancelled DebtStatus = "CANCELLED"
)

// Debt tracks an outstanding balance owed by or to a counterparty.
type Debt struct {
	DebtID       string   `json:"debtID"` // Primary Key (UUID)
	Kind         DebtKind `json:"kind"`
	SaleID       *string  `json:"saleID,omitempty"` // Set for sale debts
	Counterparty string   `json:"counterparty"`
	// TotalAmount is the full obligation: the sale total for sale debts,
	// the original amount for general debts.
	TotalAmount decimal.Decimal `json:"totalAmount"`
	// AmountPaid is what was collected at sale time; zero for general debts.
	AmountPaid decimal.Decimal `json:"amountPaid"`
	// PaymentReceived accumulates post-sale settlements.
	PaymentReceived decimal.Decimal `json:"paymentReceived"`
	Status          DebtStatus      `json:"status"`
	DueDate         *time.Time      `json:"dueDate,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	AuditFields
}

// RemainingBalance is always derived, never stored, so it cannot drift from
// the amounts that define it. It never goes negative: payments are rejected
// before they could push it below zero.
func (d Debt) RemainingBalance() decimal.Decimal {
	return d.TotalAmount.Sub(d.AmountPaid).Sub(d.PaymentReceived)
}

// Settled reports whether nothing is left to collect.
func (d Debt) Settled() bool {
	return !d.RemainingBalance().IsPositive()
}

// IsOverdue derives the overdue flag from stored state and the given clock
// reading. Day-level comparison; a debt due today is not yet overdue, and a
// settled debt is never overdue regardless of date.
func (d Debt) IsOverdue(now time.Time) bool {
	if d.DueDate == nil {
		return false
	}
	if d.Settled() {
		return false
	}
	return DateOnly(*d.DueDate).Before(DateOnly(now))
}
