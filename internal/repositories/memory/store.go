package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
)

// Store holds the complete engine state in memory. All repository views in
// this package share one Store and one lock: readers take the read lock and
// never observe a torn write, writers are serialized. The engine's
// higher-level atomicity (a sale's costing, depletion, journal posting and
// debt creation appearing as one operation) is provided by the service
// layer's operation gate, not here.
type Store struct {
	mu sync.RWMutex

	products     map[string]domain.Product // by ProductID
	productCodes map[string]string         // Code -> ProductID

	batches  map[string]domain.InventoryBatch
	batchSeq int64

	sales     []domain.SaleRecord // append order
	saleIndex map[string]int      // SaleID -> position in sales

	debts     map[string]domain.Debt
	debtOrder []string // append order, for deterministic listing

	payments     map[string]domain.Payment
	paymentOrder []string

	journal    []domain.JournalEntry // append order; Sequence is 1-based
	journalSeq int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	s := &Store{}
	s.reset()
	return s
}

// reset reinitializes all state. Caller must hold the write lock (or have
// exclusive access, as in NewStore).
func (s *Store) reset() {
	s.products = make(map[string]domain.Product)
	s.productCodes = make(map[string]string)
	s.batches = make(map[string]domain.InventoryBatch)
	s.batchSeq = 0
	s.sales = nil
	s.saleIndex = make(map[string]int)
	s.debts = make(map[string]domain.Debt)
	s.debtOrder = nil
	s.payments = make(map[string]domain.Payment)
	s.paymentOrder = nil
	s.journal = nil
	s.journalSeq = 0
}

var _ portsrepo.SnapshotStore = (*Store)(nil)

// ExportSnapshot returns a deep copy of the complete engine state in
// deterministic order.
func (s *Store) ExportSnapshot(ctx context.Context) (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := domain.Snapshot{
		BatchSequence:   s.batchSeq,
		JournalSequence: s.journalSeq,
	}

	snap.Products = make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		snap.Products = append(snap.Products, p)
	}
	sort.Slice(snap.Products, func(i, j int) bool {
		return snap.Products[i].Code < snap.Products[j].Code
	})

	snap.Batches = make([]domain.InventoryBatch, 0, len(s.batches))
	for _, b := range s.batches {
		snap.Batches = append(snap.Batches, b)
	}
	sort.Slice(snap.Batches, func(i, j int) bool {
		return snap.Batches[i].Sequence < snap.Batches[j].Sequence
	})

	snap.Sales = append([]domain.SaleRecord(nil), s.sales...)

	snap.Debts = make([]domain.Debt, 0, len(s.debtOrder))
	for _, id := range s.debtOrder {
		snap.Debts = append(snap.Debts, s.debts[id])
	}

	snap.Payments = make([]domain.Payment, 0, len(s.paymentOrder))
	for _, id := range s.paymentOrder {
		snap.Payments = append(snap.Payments, s.payments[id])
	}

	snap.Journal = append([]domain.JournalEntry(nil), s.journal...)

	return snap, nil
}

// ImportSnapshot replaces the engine state with the given snapshot.
func (s *Store) ImportSnapshot(ctx context.Context, snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	s.batchSeq = snap.BatchSequence
	s.journalSeq = snap.JournalSequence

	for _, p := range snap.Products {
		s.products[p.ProductID] = p
		s.productCodes[p.Code] = p.ProductID
	}
	for _, b := range snap.Batches {
		s.batches[b.BatchID] = b
	}
	for i, sale := range snap.Sales {
		s.sales = append(s.sales, sale)
		s.saleIndex[sale.SaleID] = i
	}
	for _, d := range snap.Debts {
		s.debts[d.DebtID] = d
		s.debtOrder = append(s.debtOrder, d.DebtID)
	}
	for _, p := range snap.Payments {
		s.payments[p.PaymentID] = p
		s.paymentOrder = append(s.paymentOrder, p.PaymentID)
	}
	s.journal = append([]domain.JournalEntry(nil), snap.Journal...)

	return nil
}
