package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/middleware"
	"github.com/shopledger/shop_ledger_app/internal/utils/accounting"
)

// debtService owns debt balance mutation. Settlements arrive either through
// ApplyPayment directly or through the allocator, which calls the same
// internal path once per debt.
type debtService struct {
	gate       *opGate
	debtRepo   portsrepo.DebtRepositoryFacade
	journalSvc *journalService
}

func newDebtService(gate *opGate, debtRepo portsrepo.DebtRepositoryFacade, journalSvc *journalService) *debtService {
	return &debtService{gate: gate, debtRepo: debtRepo, journalSvc: journalSvc}
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

// createSaleDebt records the uncollected part of an underpaid sale. Called
// by the sale processor inside its own gated transaction; the sale's journal
// entry already carries the revenue, so no extra entry is posted here.
func (s *debtService) createSaleDebt(ctx context.Context, sale *domain.SaleRecord, now time.Time) (*domain.Debt, error) {
	debt := domain.Debt{
		DebtID:          uuid.NewString(),
		Kind:            domain.DebtSale,
		SaleID:          &sale.SaleID,
		Counterparty:    sale.Customer,
		TotalAmount:     sale.TotalSale,
		AmountPaid:      sale.AmountPaid,
		PaymentReceived: decimal.Zero,
		Status:          domain.DebtUnpaid,
		DueDate:         sale.DueDate,
		AuditFields:     domain.NewAuditFields(now),
	}
	if err := s.debtRepo.SaveDebt(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to save sale debt: %w", err)
	}
	return &debt, nil
}

// CreateGeneralDebt records a standalone payable or receivable. No journal
// entry is posted at creation: recording an obligation moves no money, its
// settlements do.
func (s *debtService) CreateGeneralDebt(ctx context.Context, req dto.CreateGeneralDebtRequest) (*domain.Debt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount := accounting.RoundMoney(req.Amount)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: debt amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	debt := domain.Debt{
		DebtID:          uuid.NewString(),
		Kind:            domain.DebtKind(req.Kind),
		Counterparty:    req.Counterparty,
		TotalAmount:     amount,
		AmountPaid:      decimal.Zero,
		PaymentReceived: decimal.Zero,
		Status:          domain.DebtActive,
		DueDate:         req.DueDate,
		Notes:           req.Notes,
		AuditFields:     domain.NewAuditFields(now),
	}

	err := s.gate.run(func() error {
		return s.debtRepo.SaveDebt(ctx, debt)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("General debt created",
		slog.String("debt_id", debt.DebtID),
		slog.String("kind", string(debt.Kind)),
		slog.String("amount", amount.String()))
	return &debt, nil
}

// CancelGeneralDebt marks an unsettled general debt cancelled. Sale debts
// are financial facts tied to a recorded sale and cannot be cancelled.
func (s *debtService) CancelGeneralDebt(ctx context.Context, debtID string) (*domain.Debt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var cancelled *domain.Debt
	err := s.gate.run(func() error {
		debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
		if err != nil {
			return err
		}
		if debt.Kind == domain.DebtSale {
			return fmt.Errorf("%w: sale debts cannot be cancelled", apperrors.ErrValidation)
		}
		if debt.Status == domain.DebtCancelled {
			return fmt.Errorf("%w: debt is already cancelled", apperrors.ErrValidation)
		}
		if debt.Settled() {
			return fmt.Errorf("%w: settled debts cannot be cancelled", apperrors.ErrValidation)
		}

		debt.Status = domain.DebtCancelled
		debt.LastUpdatedAt = time.Now().UTC()
		if err := s.debtRepo.UpdateDebt(ctx, *debt); err != nil {
			return err
		}
		cancelled = debt
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("General debt cancelled", slog.String("debt_id", debtID))
	return cancelled, nil
}

func (s *debtService) GetDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	return s.debtRepo.FindDebtByID(ctx, debtID)
}

func (s *debtService) ListDebts(ctx context.Context, params dto.ListDebtsParams) ([]domain.Debt, error) {
	filter := portsrepo.DebtFilter{
		Kind:          domain.DebtKind(params.Kind),
		Counterparty:  params.Counterparty,
		OnlyUnsettled: params.OnlyUnsettled,
	}
	debts, err := s.debtRepo.ListDebts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	if params.OnlyOverdue {
		now := time.Now().UTC()
		overdue := debts[:0]
		for _, d := range debts {
			if d.IsOverdue(now) {
				overdue = append(overdue, d)
			}
		}
		debts = overdue
	}
	return debts, nil
}

// applyPayment is the single settlement path, shared by ApplyPayment and the
// allocator. Caller must hold the operation gate. The amount must already be
// rounded to currency precision.
func (s *debtService) applyPayment(ctx context.Context, debtID string, amount decimal.Decimal, paymentDate time.Time, method, reference, notes string) (*domain.Payment, *domain.Debt, error) {
	if !amount.IsPositive() {
		return nil, nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return nil, nil, err
	}
	if debt.Status == domain.DebtCancelled {
		return nil, nil, fmt.Errorf("%w: debt %s is cancelled", apperrors.ErrValidation, debtID)
	}
	if amount.GreaterThan(debt.RemainingBalance()) {
		return nil, nil, fmt.Errorf("%w: %s exceeds remaining balance %s of debt %s",
			apperrors.ErrOverpayment, amount, debt.RemainingBalance(), debtID)
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		DebtID:      debtID,
		Amount:      amount,
		PaymentDate: paymentDate,
		Method:      method,
		Reference:   reference,
		Notes:       notes,
		AuditFields: domain.NewAuditFields(now),
	}
	if err := s.debtRepo.SavePayment(ctx, payment); err != nil {
		return nil, nil, fmt.Errorf("failed to save payment: %w", err)
	}

	debt.PaymentReceived = debt.PaymentReceived.Add(amount)
	if debt.Settled() {
		debt.Status = domain.DebtPaid
	}
	debt.LastUpdatedAt = now
	if err := s.debtRepo.UpdateDebt(ctx, *debt); err != nil {
		return nil, nil, fmt.Errorf("failed to update debt: %w", err)
	}

	description := fmt.Sprintf("Payment on debt from %s", debt.Counterparty)
	if debt.Kind == domain.DebtPayable {
		description = fmt.Sprintf("Payment on debt to %s", debt.Counterparty)
		_, err = s.journalSvc.append(ctx, paymentDate, domain.CategoryPayablePayment, description, amount, decimal.Zero, payment.PaymentID)
	} else {
		_, err = s.journalSvc.append(ctx, paymentDate, domain.CategoryDebtPayment, description, decimal.Zero, amount, payment.PaymentID)
	}
	if err != nil {
		return nil, nil, err
	}

	return &payment, debt, nil
}

// ApplyPayment settles part of a single debt.
func (s *debtService) ApplyPayment(ctx context.Context, debtID string, req dto.ApplyPaymentRequest) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount := accounting.RoundMoney(req.Amount)

	var payment *domain.Payment
	err := s.gate.run(func() error {
		var applyErr error
		payment, _, applyErr = s.applyPayment(ctx, debtID, amount, req.PaymentDate, req.Method, req.Reference, req.Notes)
		return applyErr
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Payment applied",
		slog.String("payment_id", payment.PaymentID),
		slog.String("debt_id", debtID),
		slog.String("amount", amount.String()))
	return payment, nil
}

// ReversePayment undoes a payment's effect on its debt exactly and appends a
// correcting journal entry. The payment record stays, marked reversed.
func (s *debtService) ReversePayment(ctx context.Context, paymentID string) (*domain.Debt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var reversed *domain.Debt
	err := s.gate.run(func() error {
		payment, err := s.debtRepo.FindPaymentByID(ctx, paymentID)
		if err != nil {
			return err
		}
		if payment.Reversed {
			return fmt.Errorf("%w: payment %s is already reversed", apperrors.ErrValidation, paymentID)
		}

		debt, err := s.debtRepo.FindDebtByID(ctx, payment.DebtID)
		if err != nil {
			return err
		}

		debt.PaymentReceived = debt.PaymentReceived.Sub(payment.Amount)
		if debt.PaymentReceived.IsNegative() {
			// Would push the remaining balance above the debt's total.
			return fmt.Errorf("%w: reversal of %s exceeds cumulative payments on debt %s",
				apperrors.ErrValidation, payment.Amount, debt.DebtID)
		}
		if !debt.Settled() && debt.Status == domain.DebtPaid {
			if debt.Kind == domain.DebtSale {
				debt.Status = domain.DebtUnpaid
			} else {
				debt.Status = domain.DebtActive
			}
		}
		debt.LastUpdatedAt = time.Now().UTC()

		if err := s.debtRepo.MarkPaymentReversed(ctx, paymentID); err != nil {
			return err
		}
		if err := s.debtRepo.UpdateDebt(ctx, *debt); err != nil {
			return fmt.Errorf("failed to update debt: %w", err)
		}

		description := fmt.Sprintf("Reversal of payment %s", paymentID)
		if debt.Kind == domain.DebtPayable {
			_, err = s.journalSvc.append(ctx, time.Now().UTC(), domain.CategoryPayablePayment, description, decimal.Zero, payment.Amount, paymentID)
		} else {
			_, err = s.journalSvc.append(ctx, time.Now().UTC(), domain.CategoryDebtPayment, description, payment.Amount, decimal.Zero, paymentID)
		}
		if err != nil {
			return err
		}
		reversed = debt
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Payment reversed", slog.String("payment_id", paymentID), slog.String("debt_id", reversed.DebtID))
	return reversed, nil
}

func (s *debtService) ListPayments(ctx context.Context, debtID string) ([]domain.Payment, error) {
	if _, err := s.debtRepo.FindDebtByID(ctx, debtID); err != nil {
		return nil, err
	}
	return s.debtRepo.ListPaymentsByDebt(ctx, debtID)
}
