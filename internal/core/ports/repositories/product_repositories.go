package repositories

import (
	"context"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// ProductReader defines read operations for the product catalog.
type ProductReader interface {
	// FindProductByID retrieves a product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductByCode retrieves a product by its globally unique code.
	FindProductByCode(ctx context.Context, code string) (*domain.Product, error)

	// ListProducts retrieves all products ordered by code.
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriter defines write operations for the product catalog.
type ProductWriter interface {
	// SaveProduct persists a new product. Fails with ErrDuplicateProductCode
	// if the code is already taken.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct persists changes to an existing product, re-checking
	// code uniqueness if the code changed.
	UpdateProduct(ctx context.Context, product domain.Product) error
}

// ProductRepositoryFacade combines all product repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
