package repositories

import (
	"context"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// DebtFilter narrows ListDebts results. Zero values mean "no filter".
type DebtFilter struct {
	Kind          domain.DebtKind
	Counterparty  string
	OnlyUnsettled bool
}

// DebtReader defines read operations for debts.
type DebtReader interface {
	// FindDebtByID retrieves a debt by its unique identifier.
	FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error)

	// FindDebtsByIDs retrieves multiple debts keyed by ID. Missing IDs are
	// simply absent from the result map.
	FindDebtsByIDs(ctx context.Context, debtIDs []string) (map[string]domain.Debt, error)

	// ListDebts retrieves debts matching the filter, oldest first.
	ListDebts(ctx context.Context, filter DebtFilter) ([]domain.Debt, error)
}

// DebtWriter defines write operations for debts.
type DebtWriter interface {
	// SaveDebt persists a new debt record.
	SaveDebt(ctx context.Context, debt domain.Debt) error

	// UpdateDebt persists the mutated balance fields and status of a debt.
	UpdateDebt(ctx context.Context, debt domain.Debt) error
}

// PaymentReader defines read operations for payments.
type PaymentReader interface {
	// FindPaymentByID retrieves a payment by its unique identifier.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByDebt retrieves all payments applied to a debt in
	// application order, reversed ones included.
	ListPaymentsByDebt(ctx context.Context, debtID string) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payments.
type PaymentWriter interface {
	// SavePayment persists a new payment record.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// MarkPaymentReversed flags a payment as reversed. The record is kept;
	// payments are append-only.
	MarkPaymentReversed(ctx context.Context, paymentID string) error
}

// DebtRepositoryFacade combines all debt and payment repository interfaces.
type DebtRepositoryFacade interface {
	DebtReader
	DebtWriter
	PaymentReader
	PaymentWriter
}
