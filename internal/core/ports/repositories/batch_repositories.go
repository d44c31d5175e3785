package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// BatchReader defines read operations for inventory batches.
type BatchReader interface {
	// FindBatchByID retrieves a batch by its unique identifier.
	FindBatchByID(ctx context.Context, batchID string) (*domain.InventoryBatch, error)

	// ListEligibleBatches retrieves the batches of a product with remaining
	// quantity, ordered ascending by arrival date with creation sequence as
	// the tie-break. This ordering is the FIFO consumption order.
	ListEligibleBatches(ctx context.Context, productCode string) ([]domain.InventoryBatch, error)

	// ListBatchesByProduct retrieves all batches of a product, consumed or
	// not, in FIFO order.
	ListBatchesByProduct(ctx context.Context, productCode string) ([]domain.InventoryBatch, error)
}

// BatchWriter defines write operations for inventory batches.
type BatchWriter interface {
	// SaveBatch persists a new batch, assigning its creation sequence.
	SaveBatch(ctx context.Context, batch *domain.InventoryBatch) error

	// ApplyConsumption decrements a batch's remaining quantity. Fails with
	// ErrInvalidConsumption when quantity is not positive or exceeds the
	// batch's remaining quantity.
	ApplyConsumption(ctx context.Context, batchID string, quantity decimal.Decimal) error
}

// BatchRepositoryFacade combines all batch repository interfaces.
type BatchRepositoryFacade interface {
	BatchReader
	BatchWriter
}
