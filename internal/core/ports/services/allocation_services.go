package services

import (
	"context"

	"github.com/shopledger/shop_ledger_app/internal/dto"
)

// AllocationSvcFacade defines multi-debt payment allocation. Every settled
// debt gets its own payment record and journal entry so each debt's ledger
// trail stays independently auditable.
type AllocationSvcFacade interface {
	// Allocate splits one payment across the given debts in proportion to
	// their remaining balances. All debts must be unsettled and belong to
	// the same counterparty, and the total must not exceed their combined
	// remaining balance.
	Allocate(ctx context.Context, req dto.AllocatePaymentRequest) (*dto.AllocationResponse, error)

	// AllocateManual splits one payment using caller-supplied per-debt
	// amounts, which must sum to the payment total and each stay within its
	// debt's remaining balance.
	AllocateManual(ctx context.Context, req dto.AllocateManualRequest) (*dto.AllocationResponse, error)
}
