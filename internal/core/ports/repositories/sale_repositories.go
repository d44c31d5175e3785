package repositories

import (
	"context"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// SaleReader defines read operations for sale records.
type SaleReader interface {
	// FindSaleByID retrieves a sale by its unique identifier.
	FindSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error)

	// ListSales retrieves a paginated list of sales, newest first, using
	// token-based pagination. Returns the sales, a token for the next page,
	// and an error.
	ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.SaleRecord, *string, error)
}

// SaleWriter defines write operations for sale records.
type SaleWriter interface {
	// SaveSale persists a new, immutable sale record.
	SaveSale(ctx context.Context, sale domain.SaleRecord) error
}

// SaleRepositoryFacade combines all sale repository interfaces.
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
