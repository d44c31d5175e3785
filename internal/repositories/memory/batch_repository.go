package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
)

// BatchRepository is the inventory batch view over a Store. It owns all
// remaining-quantity mutation; nothing else touches batch state.
type BatchRepository struct {
	store *Store
}

func newBatchRepository(store *Store) *BatchRepository {
	return &BatchRepository{store: store}
}

var _ portsrepo.BatchRepositoryFacade = (*BatchRepository)(nil)

func (r *BatchRepository) FindBatchByID(ctx context.Context, batchID string) (*domain.InventoryBatch, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	b, ok := r.store.batches[batchID]
	if !ok {
		return nil, fmt.Errorf("batch %s: %w", batchID, apperrors.ErrNotFound)
	}
	return &b, nil
}

// batchesByProductLocked collects a product's batches in FIFO order:
// ascending arrival date, creation sequence as the tie-break. Caller must
// hold at least the read lock.
func (r *BatchRepository) batchesByProductLocked(productCode string) []domain.InventoryBatch {
	batches := make([]domain.InventoryBatch, 0)
	for _, b := range r.store.batches {
		if b.ProductCode == productCode {
			batches = append(batches, b)
		}
	}
	sort.Slice(batches, func(i, j int) bool {
		if !batches[i].ArrivalDate.Equal(batches[j].ArrivalDate) {
			return batches[i].ArrivalDate.Before(batches[j].ArrivalDate)
		}
		return batches[i].Sequence < batches[j].Sequence
	})
	return batches
}

func (r *BatchRepository) ListEligibleBatches(ctx context.Context, productCode string) ([]domain.InventoryBatch, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	all := r.batchesByProductLocked(productCode)
	eligible := make([]domain.InventoryBatch, 0, len(all))
	for _, b := range all {
		if b.Eligible() {
			eligible = append(eligible, b)
		}
	}
	return eligible, nil
}

func (r *BatchRepository) ListBatchesByProduct(ctx context.Context, productCode string) ([]domain.InventoryBatch, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.batchesByProductLocked(productCode), nil
}

func (r *BatchRepository) SaveBatch(ctx context.Context, batch *domain.InventoryBatch) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.batchSeq++
	batch.Sequence = r.store.batchSeq
	r.store.batches[batch.BatchID] = *batch
	return nil
}

func (r *BatchRepository) ApplyConsumption(ctx context.Context, batchID string, quantity decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	b, ok := r.store.batches[batchID]
	if !ok {
		return fmt.Errorf("batch %s: %w", batchID, apperrors.ErrNotFound)
	}
	if !quantity.IsPositive() {
		return fmt.Errorf("quantity %s is not positive: %w", quantity, apperrors.ErrInvalidConsumption)
	}
	if quantity.GreaterThan(b.Remaining) {
		return fmt.Errorf("quantity %s exceeds remaining %s in batch %s: %w",
			quantity, b.Remaining, batchID, apperrors.ErrInvalidConsumption)
	}
	b.Remaining = b.Remaining.Sub(quantity)
	r.store.batches[batchID] = b
	return nil
}
