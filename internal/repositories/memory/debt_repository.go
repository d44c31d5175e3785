package memory

import (
	"context"
	"fmt"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
)

// DebtRepository is the debt and payment view over a Store. It owns debt
// balance mutation; settlement requests arrive only through the debt service.
type DebtRepository struct {
	store *Store
}

func newDebtRepository(store *Store) *DebtRepository {
	return &DebtRepository{store: store}
}

var _ portsrepo.DebtRepositoryFacade = (*DebtRepository)(nil)

func (r *DebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	d, ok := r.store.debts[debtID]
	if !ok {
		return nil, fmt.Errorf("debt %s: %w", debtID, apperrors.ErrNotFound)
	}
	return &d, nil
}

func (r *DebtRepository) FindDebtsByIDs(ctx context.Context, debtIDs []string) (map[string]domain.Debt, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	found := make(map[string]domain.Debt, len(debtIDs))
	for _, id := range debtIDs {
		if d, ok := r.store.debts[id]; ok {
			found[id] = d
		}
	}
	return found, nil
}

func (r *DebtRepository) ListDebts(ctx context.Context, filter portsrepo.DebtFilter) ([]domain.Debt, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	debts := make([]domain.Debt, 0)
	for _, id := range r.store.debtOrder {
		d := r.store.debts[id]
		if filter.Kind != "" && d.Kind != filter.Kind {
			continue
		}
		if filter.Counterparty != "" && d.Counterparty != filter.Counterparty {
			continue
		}
		if filter.OnlyUnsettled && (d.Settled() || d.Status == domain.DebtCancelled) {
			continue
		}
		debts = append(debts, d)
	}
	return debts, nil
}

func (r *DebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.debts[debt.DebtID]; exists {
		return fmt.Errorf("debt %s already recorded: %w", debt.DebtID, apperrors.ErrValidation)
	}
	r.store.debts[debt.DebtID] = debt
	r.store.debtOrder = append(r.store.debtOrder, debt.DebtID)
	return nil
}

func (r *DebtRepository) UpdateDebt(ctx context.Context, debt domain.Debt) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.debts[debt.DebtID]; !ok {
		return fmt.Errorf("debt %s: %w", debt.DebtID, apperrors.ErrNotFound)
	}
	r.store.debts[debt.DebtID] = debt
	return nil
}

func (r *DebtRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.payments[paymentID]
	if !ok {
		return nil, fmt.Errorf("payment %s: %w", paymentID, apperrors.ErrNotFound)
	}
	return &p, nil
}

func (r *DebtRepository) ListPaymentsByDebt(ctx context.Context, debtID string) ([]domain.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	payments := make([]domain.Payment, 0)
	for _, id := range r.store.paymentOrder {
		if p := r.store.payments[id]; p.DebtID == debtID {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

func (r *DebtRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.payments[payment.PaymentID]; exists {
		return fmt.Errorf("payment %s already recorded: %w", payment.PaymentID, apperrors.ErrValidation)
	}
	r.store.payments[payment.PaymentID] = payment
	r.store.paymentOrder = append(r.store.paymentOrder, payment.PaymentID)
	return nil
}

func (r *DebtRepository) MarkPaymentReversed(ctx context.Context, paymentID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.payments[paymentID]
	if !ok {
		return fmt.Errorf("payment %s: %w", paymentID, apperrors.ErrNotFound)
	}
	p.Reversed = true
	r.store.payments[paymentID] = p
	return nil
}
