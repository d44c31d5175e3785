package memory

import (
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider builds all repository views over one shared store.
func NewRepositoryProvider(store *Store) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		Product:  newProductRepository(store),
		Batch:    newBatchRepository(store),
		Sale:     newSaleRepository(store),
		Debt:     newDebtRepository(store),
		Journal:  newJournalRepository(store),
		Snapshot: store,
	}
}
