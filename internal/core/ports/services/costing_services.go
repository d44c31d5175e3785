package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// CostingSvcFacade defines FIFO costing. Costing is pure: it returns a plan
// describing which batches a sale would consume and never mutates state.
type CostingSvcFacade interface {
	// Cost walks the product's eligible batches oldest-first and builds the
	// consumption plan for the requested quantity. When available stock is
	// short the plan carries the uncovered demand in Shortfall; deciding
	// whether that is an error belongs to the caller.
	Cost(ctx context.Context, productCode string, quantity decimal.Decimal) (*domain.CostingPlan, error)
}
