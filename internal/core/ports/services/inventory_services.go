package services

import (
	"context"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/dto"
)

// InventorySvcFacade defines the product catalog and batch store operations.
type InventorySvcFacade interface {
	// CreateProduct adds a product to the catalog, enforcing code uniqueness.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)

	// UpdateProduct changes a product's descriptive fields, re-checking code
	// uniqueness when the code changes.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error)

	// GetProductByCode retrieves a product by its unique code.
	GetProductByCode(ctx context.Context, code string) (*domain.Product, error)

	// ListProducts retrieves the full catalog ordered by code.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// RecordStockIn creates an inventory batch from a stock receipt and
	// posts the receipt to the journal under the category matching its
	// entry type.
	RecordStockIn(ctx context.Context, req dto.StockInRequest) (*domain.InventoryBatch, error)

	// ListBatches retrieves all batches of a product in FIFO order.
	ListBatches(ctx context.Context, productCode string) ([]domain.InventoryBatch, error)

	// ListEligibleBatches retrieves the product's batches still holding
	// stock, in FIFO consumption order.
	ListEligibleBatches(ctx context.Context, productCode string) ([]domain.InventoryBatch, error)
}
