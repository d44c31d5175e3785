package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/middleware"
	"github.com/shopledger/shop_ledger_app/internal/utils/accounting"
)

// allocationService splits one payment across several debts. It never touches
// balances itself; each per-debt settlement goes through the debt service's
// single payment path, so allocation produces the same records and journal
// entries as the equivalent sequence of individual payments.
type allocationService struct {
	gate     *opGate
	debtRepo portsrepo.DebtRepositoryFacade
	debtSvc  *debtService
}

func newAllocationService(gate *opGate, debtRepo portsrepo.DebtRepositoryFacade, debtSvc *debtService) *allocationService {
	return &allocationService{gate: gate, debtRepo: debtRepo, debtSvc: debtSvc}
}

var _ portssvc.AllocationSvcFacade = (*allocationService)(nil)

// loadTargets fetches the debts in request order and validates that the set
// is allocatable: no duplicates, all present, all unsettled, all owed by the
// same counterparty.
func (s *allocationService) loadTargets(ctx context.Context, debtIDs []string) ([]domain.Debt, error) {
	seen := make(map[string]struct{}, len(debtIDs))
	for _, id := range debtIDs {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: debt %s listed more than once", apperrors.ErrValidation, id)
		}
		seen[id] = struct{}{}
	}

	byID, err := s.debtRepo.FindDebtsByIDs(ctx, debtIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load debts: %w", err)
	}

	debts := make([]domain.Debt, 0, len(debtIDs))
	counterparty := ""
	for _, id := range debtIDs {
		debt, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: debt %s", apperrors.ErrNotFound, id)
		}
		if debt.Status == domain.DebtCancelled {
			return nil, fmt.Errorf("%w: debt %s is cancelled", apperrors.ErrValidation, id)
		}
		if debt.Settled() {
			return nil, fmt.Errorf("%w: debt %s is already settled", apperrors.ErrValidation, id)
		}
		if counterparty == "" {
			counterparty = debt.Counterparty
		} else if debt.Counterparty != counterparty {
			return nil, fmt.Errorf("%w: debt %s belongs to %q, expected %q",
				apperrors.ErrCrossCustomerAllocation, id, debt.Counterparty, counterparty)
		}
		debts = append(debts, debt)
	}
	return debts, nil
}

// settle applies the planned per-debt amounts through the debt service's
// payment path. Amounts are validated before the first application, so the
// loop cannot fail partway on caller input.
func (s *allocationService) settle(ctx context.Context, debts []domain.Debt, amounts []decimal.Decimal, req allocationMeta) ([]dto.SettlementResponse, decimal.Decimal, error) {
	settlements := make([]dto.SettlementResponse, 0, len(debts))
	allocated := decimal.Zero
	for i, debt := range debts {
		amount := amounts[i]
		if amount.IsZero() {
			continue
		}
		payment, updated, err := s.debtSvc.applyPayment(ctx, debt.DebtID, amount, req.paymentDate, req.method, req.reference,
			fmt.Sprintf("Allocated from payment of %s", req.total))
		if err != nil {
			return nil, decimal.Zero, err
		}
		settlements = append(settlements, dto.SettlementResponse{
			DebtID:           updated.DebtID,
			PaymentID:        payment.PaymentID,
			Amount:           amount,
			RemainingBalance: updated.RemainingBalance(),
			Status:           string(updated.Status),
		})
		allocated = allocated.Add(amount)
	}
	return settlements, allocated, nil
}

type allocationMeta struct {
	total       decimal.Decimal
	paymentDate time.Time
	method      string
	reference   string
}

// Allocate splits the payment across the debts in proportion to their
// remaining balances, clamping each share to its balance. Any part that
// clamping leaves unassigned is surfaced as Unallocated.
func (s *allocationService) Allocate(ctx context.Context, req dto.AllocatePaymentRequest) (*dto.AllocationResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	total := accounting.RoundMoney(req.TotalAmount)
	if !total.IsPositive() {
		return nil, fmt.Errorf("%w: allocation total must be positive", apperrors.ErrValidation)
	}

	var response *dto.AllocationResponse
	err := s.gate.run(func() error {
		debts, err := s.loadTargets(ctx, req.DebtIDs)
		if err != nil {
			return err
		}

		balances := make([]decimal.Decimal, len(debts))
		combined := decimal.Zero
		for i, d := range debts {
			balances[i] = d.RemainingBalance()
			combined = combined.Add(balances[i])
		}
		if total.GreaterThan(combined) {
			return fmt.Errorf("%w: %s exceeds combined remaining balance %s",
				apperrors.ErrOverallocation, total, combined)
		}

		shares := accounting.ProportionalShares(total, balances)
		settlements, allocated, err := s.settle(ctx, debts, shares, allocationMeta{
			total:       total,
			paymentDate: req.PaymentDate,
			method:      req.Method,
			reference:   req.Reference,
		})
		if err != nil {
			return err
		}

		response = &dto.AllocationResponse{
			Settlements: settlements,
			Allocated:   allocated,
			Unallocated: total.Sub(allocated),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Payment allocated",
		slog.Int("debts", len(response.Settlements)),
		slog.String("allocated", response.Allocated.String()),
		slog.String("unallocated", response.Unallocated.String()))
	return response, nil
}

// AllocateManual splits the payment using caller-chosen per-debt amounts.
// The amounts must sum to the payment total and each stay within its debt's
// remaining balance, so a manual allocation never leaves anything unassigned.
func (s *allocationService) AllocateManual(ctx context.Context, req dto.AllocateManualRequest) (*dto.AllocationResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	total := accounting.RoundMoney(req.TotalAmount)
	if !total.IsPositive() {
		return nil, fmt.Errorf("%w: allocation total must be positive", apperrors.ErrValidation)
	}

	debtIDs := make([]string, len(req.Entries))
	amounts := make([]decimal.Decimal, len(req.Entries))
	sum := decimal.Zero
	for i, entry := range req.Entries {
		amount := accounting.RoundMoney(entry.Amount)
		if !amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount for debt %s must be positive", apperrors.ErrValidation, entry.DebtID)
		}
		debtIDs[i] = entry.DebtID
		amounts[i] = amount
		sum = sum.Add(amount)
	}
	if !sum.Equal(total) {
		return nil, fmt.Errorf("%w: entry amounts sum to %s, expected %s", apperrors.ErrValidation, sum, total)
	}

	var response *dto.AllocationResponse
	err := s.gate.run(func() error {
		debts, err := s.loadTargets(ctx, debtIDs)
		if err != nil {
			return err
		}
		for i, d := range debts {
			if amounts[i].GreaterThan(d.RemainingBalance()) {
				return fmt.Errorf("%w: %s exceeds remaining balance %s of debt %s",
					apperrors.ErrOverallocation, amounts[i], d.RemainingBalance(), d.DebtID)
			}
		}

		settlements, allocated, err := s.settle(ctx, debts, amounts, allocationMeta{
			total:       total,
			paymentDate: req.PaymentDate,
			method:      req.Method,
			reference:   req.Reference,
		})
		if err != nil {
			return err
		}

		response = &dto.AllocationResponse{
			Settlements: settlements,
			Allocated:   allocated,
			Unallocated: total.Sub(allocated),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Payment allocated manually",
		slog.Int("debts", len(response.Settlements)),
		slog.String("allocated", response.Allocated.String()))
	return response, nil
}
