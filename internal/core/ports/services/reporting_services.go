package services

import (
	"context"

	"github.com/shopledger/shop_ledger_app/internal/dto"
)

// ReportingSvcFacade defines read-only dashboard aggregation.
type ReportingSvcFacade interface {
	// Summary computes inventory value, outstanding balances, recognized
	// profit and the current journal balance from a consistent read.
	Summary(ctx context.Context) (*dto.SummaryResponse, error)
}
