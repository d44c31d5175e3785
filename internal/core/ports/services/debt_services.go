package services

import (
	"context"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/dto"
)

// DebtSvcFacade defines debt tracking and settlement.
type DebtSvcFacade interface {
	// CreateGeneralDebt records a standalone payable or receivable.
	CreateGeneralDebt(ctx context.Context, req dto.CreateGeneralDebtRequest) (*domain.Debt, error)

	// CancelGeneralDebt marks an unsettled general debt cancelled. Sale
	// debts cannot be cancelled.
	CancelGeneralDebt(ctx context.Context, debtID string) (*domain.Debt, error)

	// GetDebtByID retrieves a debt.
	GetDebtByID(ctx context.Context, debtID string) (*domain.Debt, error)

	// ListDebts retrieves debts matching the filter, oldest first.
	ListDebts(ctx context.Context, params dto.ListDebtsParams) ([]domain.Debt, error)

	// ApplyPayment settles part of a debt. The amount must be positive and
	// no larger than the remaining balance. One journal entry is appended
	// per applied payment.
	ApplyPayment(ctx context.Context, debtID string, req dto.ApplyPaymentRequest) (*domain.Payment, error)

	// ReversePayment undoes a payment's effect on its debt exactly and
	// appends a correcting journal entry. The payment record is kept,
	// marked reversed.
	ReversePayment(ctx context.Context, paymentID string) (*domain.Debt, error)

	// ListPayments retrieves a debt's payments in application order.
	ListPayments(ctx context.Context, debtID string) ([]domain.Payment, error)
}
