package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
)

// ProductRepository is the product catalog view over a Store.
type ProductRepository struct {
	store *Store
}

func newProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

var _ portsrepo.ProductRepositoryFacade = (*ProductRepository)(nil)

func (r *ProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.products[productID]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", productID, apperrors.ErrNotFound)
	}
	return &p, nil
}

func (r *ProductRepository) FindProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.productCodes[code]
	if !ok {
		return nil, fmt.Errorf("product code %q: %w", code, apperrors.ErrNotFound)
	}
	p := r.store.products[id]
	return &p, nil
}

func (r *ProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	products := make([]domain.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Code < products[j].Code })
	return products, nil
}

func (r *ProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, taken := r.store.productCodes[product.Code]; taken {
		return fmt.Errorf("code %q: %w", product.Code, apperrors.ErrDuplicateProductCode)
	}
	r.store.products[product.ProductID] = product
	r.store.productCodes[product.Code] = product.ProductID
	return nil
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.products[product.ProductID]
	if !ok {
		return fmt.Errorf("product %s: %w", product.ProductID, apperrors.ErrNotFound)
	}
	if product.Code != existing.Code {
		if _, taken := r.store.productCodes[product.Code]; taken {
			return fmt.Errorf("code %q: %w", product.Code, apperrors.ErrDuplicateProductCode)
		}
		delete(r.store.productCodes, existing.Code)
		r.store.productCodes[product.Code] = product.ProductID
	}
	r.store.products[product.ProductID] = product
	return nil
}
