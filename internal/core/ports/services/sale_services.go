package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/dto"
)

// SaleSvcFacade defines sale recording and retrieval.
type SaleSvcFacade interface {
	// RecordSale runs the full sale transaction: FIFO costing, batch
	// depletion, profit computation, journal posting and conditional debt
	// creation. The operation is atomic; on any failure no state changes.
	RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*domain.SaleRecord, error)

	// GetSaleByID retrieves a sale record.
	GetSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error)

	// ListSales retrieves a paginated list of sales, newest first.
	ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error)

	// PreviewCost returns the costing plan a sale of the given quantity
	// would commit, without committing anything.
	PreviewCost(ctx context.Context, productCode string, quantity decimal.Decimal) (*domain.CostingPlan, error)
}
