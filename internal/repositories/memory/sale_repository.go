package memory

import (
	"context"
	"fmt"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	"github.com/shopledger/shop_ledger_app/internal/utils/pagination"
)

// SaleRepository is the sale record view over a Store. Sales are immutable
// financial facts; there is no update path.
type SaleRepository struct {
	store *Store
}

func newSaleRepository(store *Store) *SaleRepository {
	return &SaleRepository{store: store}
}

var _ portsrepo.SaleRepositoryFacade = (*SaleRepository)(nil)

func (r *SaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	idx, ok := r.store.saleIndex[saleID]
	if !ok {
		return nil, fmt.Errorf("sale %s: %w", saleID, apperrors.ErrNotFound)
	}
	sale := r.store.sales[idx]
	return &sale, nil
}

// ListSales pages newest-first over append order. The token encodes the
// position of the last sale returned.
func (r *SaleRepository) ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.SaleRecord, *string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	start := len(r.store.sales) - 1
	if nextToken != nil {
		pos, err := pagination.DecodeSequenceToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
		}
		start = int(pos) - 1
	}

	sales := make([]domain.SaleRecord, 0, limit)
	i := start
	for ; i >= 0 && len(sales) < limit; i-- {
		sales = append(sales, r.store.sales[i])
	}

	var token *string
	if i >= 0 {
		t := pagination.EncodeSequenceToken(int64(i + 1))
		token = &t
	}
	return sales, token, nil
}

func (r *SaleRepository) SaveSale(ctx context.Context, sale domain.SaleRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.saleIndex[sale.SaleID]; exists {
		return fmt.Errorf("sale %s already recorded: %w", sale.SaleID, apperrors.ErrValidation)
	}
	r.store.saleIndex[sale.SaleID] = len(r.store.sales)
	r.store.sales = append(r.store.sales, sale)
	return nil
}
