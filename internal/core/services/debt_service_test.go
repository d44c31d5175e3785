package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/dto"
)

func TestApplyPaymentSettlesDebt(t *testing.T) {
	container, _ := newTestEngine(t)
	debt := createReceivable(t, container, "Ko Ko", "100", nil)

	payDebt(t, container, debt.DebtID, "60")

	updated, err := container.Debt.GetDebtByID(context.Background(), debt.DebtID)
	require.NoError(t, err)
	assertDecimal(t, "40", updated.RemainingBalance())
	assert.Equal(t, domain.DebtActive, updated.Status)

	payDebt(t, container, debt.DebtID, "40")

	updated, err = container.Debt.GetDebtByID(context.Background(), debt.DebtID)
	require.NoError(t, err)
	assertDecimal(t, "0", updated.RemainingBalance())
	assert.True(t, updated.Settled())
	assert.Equal(t, domain.DebtPaid, updated.Status)
}

func TestApplyPaymentRejectsOverpaymentUnchanged(t *testing.T) {
	container, _ := newTestEngine(t)
	debt := createReceivable(t, container, "Ko Ko", "100", nil)
	payDebt(t, container, debt.DebtID, "70")

	_, err := container.Debt.ApplyPayment(context.Background(), debt.DebtID, dto.ApplyPaymentRequest{
		Amount:      dec(t, "50"),
		PaymentDate: date(2025, time.April, 2),
		Method:      "cash",
	})
	require.ErrorIs(t, err, apperrors.ErrOverpayment)

	unchanged, err := container.Debt.GetDebtByID(context.Background(), debt.DebtID)
	require.NoError(t, err)
	assertDecimal(t, "30", unchanged.RemainingBalance())
	assert.Equal(t, domain.DebtActive, unchanged.Status)

	payments, err := container.Debt.ListPayments(context.Background(), debt.DebtID)
	require.NoError(t, err)
	assert.Len(t, payments, 1, "the rejected payment must not be recorded")
}

func TestApplyPaymentValidation(t *testing.T) {
	container, _ := newTestEngine(t)
	debt := createReceivable(t, container, "Ko Ko", "50", nil)

	_, err := container.Debt.ApplyPayment(context.Background(), debt.DebtID, dto.ApplyPaymentRequest{
		Amount:      dec(t, "0"),
		PaymentDate: date(2025, time.April, 1),
		Method:      "cash",
	})
	require.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = container.Debt.ApplyPayment(context.Background(), "missing", dto.ApplyPaymentRequest{
		Amount:      dec(t, "10"),
		PaymentDate: date(2025, time.April, 1),
		Method:      "cash",
	})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestReversePaymentRestoresBalanceExactly(t *testing.T) {
	container, _ := newTestEngine(t)
	debt := createReceivable(t, container, "Ko Ko", "100", nil)
	payment := payDebt(t, container, debt.DebtID, "100")

	settled, err := container.Debt.GetDebtByID(context.Background(), debt.DebtID)
	require.NoError(t, err)
	require.Equal(t, domain.DebtPaid, settled.Status)

	reversed, err := container.Debt.ReversePayment(context.Background(), payment.PaymentID)
	require.NoError(t, err)
	assertDecimal(t, "100", reversed.RemainingBalance())
	assert.Equal(t, domain.DebtActive, reversed.Status)

	// The payment record survives, marked reversed.
	payments, err := container.Debt.ListPayments(context.Background(), debt.DebtID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.True(t, payments[0].Reversed)

	// Reversing twice is rejected and changes nothing.
	_, err = container.Debt.ReversePayment(context.Background(), payment.PaymentID)
	require.ErrorIs(t, err, apperrors.ErrValidation)

	unchanged, err := container.Debt.GetDebtByID(context.Background(), debt.DebtID)
	require.NoError(t, err)
	assertDecimal(t, "100", unchanged.RemainingBalance())
}

func TestReversePaymentReopensSaleDebtAsUnpaid(t *testing.T) {
	container, _ := newTestEngine(t)
	createProduct(t, container, "RICE")
	stockIn(t, container, "RICE", date(2025, time.January, 1), "10", "5")
	sale := recordSale(t, container, "RICE", "4", "10", "0")
	require.NotNil(t, sale.DebtID)

	payment := payDebt(t, container, *sale.DebtID, "40")
	paid, err := container.Debt.GetDebtByID(context.Background(), *sale.DebtID)
	require.NoError(t, err)
	require.Equal(t, domain.DebtPaid, paid.Status)

	reversed, err := container.Debt.ReversePayment(context.Background(), payment.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, domain.DebtUnpaid, reversed.Status)
}

func TestReversePaymentAppendsCorrectingJournalEntry(t *testing.T) {
	container, _ := newTestEngine(t)
	debt := createReceivable(t, container, "Ko Ko", "80", nil)
	payment := payDebt(t, container, debt.DebtID, "80")

	_, err := container.Debt.ReversePayment(context.Background(), payment.PaymentID)
	require.NoError(t, err)

	totals, err := container.Journal.Totals(context.Background())
	require.NoError(t, err)
	// Payment credit 80, reversal debit 80: corrections are new entries.
	assert.Equal(t, 2, totals.EntryCount)
	assertDecimal(t, "80", totals.TotalCredits)
	assertDecimal(t, "80", totals.TotalDebits)
	assertDecimal(t, "0", totals.Balance)
}

func TestCancelGeneralDebtRules(t *testing.T) {
	container, _ := newTestEngine(t)

	debt := createReceivable(t, container, "Ko Ko", "100", nil)
	cancelled, err := container.Debt.CancelGeneralDebt(context.Background(), debt.DebtID)
	require.NoError(t, err)
	assert.Equal(t, domain.DebtCancelled, cancelled.Status)

	// Cancelled debts accept no payments.
	_, err = container.Debt.ApplyPayment(context.Background(), debt.DebtID, dto.ApplyPaymentRequest{
		Amount:      dec(t, "10"),
		PaymentDate: date(2025, time.April, 1),
		Method:      "cash",
	})
	require.ErrorIs(t, err, apperrors.ErrValidation)

	// Settled debts cannot be cancelled.
	settled := createReceivable(t, container, "Ko Ko", "50", nil)
	payDebt(t, container, settled.DebtID, "50")
	_, err = container.Debt.CancelGeneralDebt(context.Background(), settled.DebtID)
	require.ErrorIs(t, err, apperrors.ErrValidation)

	// Sale debts are financial facts and cannot be cancelled.
	createProduct(t, container, "RICE")
	stockIn(t, container, "RICE", date(2025, time.January, 1), "10", "5")
	sale := recordSale(t, container, "RICE", "2", "10", "0")
	require.NotNil(t, sale.DebtID)
	_, err = container.Debt.CancelGeneralDebt(context.Background(), *sale.DebtID)
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestListDebtsDerivesOverdueAtReadTime(t *testing.T) {
	container, _ := newTestEngine(t)

	past := date(2025, time.January, 1)
	future := time.Now().UTC().AddDate(1, 0, 0)

	overdue := createReceivable(t, container, "Ko Ko", "100", &past)
	createReceivable(t, container, "Ko Ko", "100", &future)
	noDue := createReceivable(t, container, "Ko Ko", "100", nil)

	// A settled debt is never overdue, no matter its due date.
	settledPast := createReceivable(t, container, "Ko Ko", "40", &past)
	payDebt(t, container, settledPast.DebtID, "40")

	debts, err := container.Debt.ListDebts(context.Background(), dto.ListDebtsParams{OnlyOverdue: true})
	require.NoError(t, err)
	require.Len(t, debts, 1)
	assert.Equal(t, overdue.DebtID, debts[0].DebtID)

	all, err := container.Debt.ListDebts(context.Background(), dto.ListDebtsParams{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	unsettled, err := container.Debt.ListDebts(context.Background(), dto.ListDebtsParams{OnlyUnsettled: true})
	require.NoError(t, err)
	assert.Len(t, unsettled, 3)
	for _, d := range unsettled {
		assert.NotEqual(t, settledPast.DebtID, d.DebtID)
	}
	_ = noDue
}

func TestCreateGeneralDebtPostsNoJournalEntry(t *testing.T) {
	container, _ := newTestEngine(t)
	createReceivable(t, container, "Ko Ko", "100", nil)

	totals, err := container.Journal.Totals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, totals.EntryCount, "recording an obligation moves no money")
}

func TestPayablePaymentDebitsJournal(t *testing.T) {
	container, _ := newTestEngine(t)
	debt, err := container.Debt.CreateGeneralDebt(context.Background(), dto.CreateGeneralDebtRequest{
		Kind:         string(domain.DebtPayable),
		Counterparty: "Supplier Co",
		Amount:       dec(t, "200"),
	})
	require.NoError(t, err)

	payDebt(t, container, debt.DebtID, "120")

	totals, err := container.Journal.Totals(context.Background())
	require.NoError(t, err)
	assertDecimal(t, "120", totals.TotalDebits)
	assertDecimal(t, "0", totals.TotalCredits)
	assertDecimal(t, "-120", totals.Balance)
}
