package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one settlement applied to a debt. Payments are append-only:
// deleting one marks it reversed and undoes its effect on the owning debt,
// the record itself is kept for the audit trail.
type Payment struct {
	PaymentID   string          `json:"paymentID"` // Primary Key (UUID)
	DebtID      string          `json:"debtID"`    // FK -> Debt.DebtID (Not Null)
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Method      string          `json:"method"` // e.g. "cash", "transfer"
	Reference   string          `json:"reference,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Reversed    bool            `json:"reversed"`
	AuditFields
}
