package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalCategory classifies what kind of money movement an entry records.
type JournalCategory string

const (
	CategorySales          JournalCategory = "SALES"
	CategoryPurchases      JournalCategory = "PURCHASES"
	CategoryOpeningBalance JournalCategory = "OPENING_BALANCE"
	CategoryDebtPayment    JournalCategory = "DEBT_PAYMENT"
	CategoryPayablePayment JournalCategory = "PAYABLE_PAYMENT"
	CategoryManual         JournalCategory = "MANUAL"
)

// JournalEntry is one immutable record in the append-only journal.
// Corrections are new entries, never edits.
type JournalEntry struct {
	EntryID string `json:"entryID"` // Primary Key (UUID)
	// Sequence is the append order. The running balance is defined over
	// Sequence, not EntryDate: EntryDate is descriptive and sortable for
	// display but backdated entries do not rewrite history.
	Sequence    int64           `json:"sequence"`
	EntryDate   time.Time       `json:"entryDate"`
	Category    JournalCategory `json:"category"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	// Balance = previous.Balance + Credit - Debit, rounded at append time.
	Balance   decimal.Decimal `json:"balance"`
	Reference string          `json:"reference,omitempty"` // Originating sale/debt/payment ID
	AuditFields
}
