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

func TestAllocateSplitsProportionally(t *testing.T) {
	container, _ := newTestEngine(t)
	d1 := createReceivable(t, container, "Ko Ko", "500", nil)
	d2 := createReceivable(t, container, "Ko Ko", "300", nil)
	d3 := createReceivable(t, container, "Ko Ko", "200", nil)

	resp, err := container.Allocation.Allocate(context.Background(), dto.AllocatePaymentRequest{
		DebtIDs:     []string{d1.DebtID, d2.DebtID, d3.DebtID},
		TotalAmount: dec(t, "600"),
		PaymentDate: date(2025, time.April, 1),
		Method:      "transfer",
	})
	require.NoError(t, err)

	require.Len(t, resp.Settlements, 3)
	assertDecimal(t, "300", resp.Settlements[0].Amount)
	assertDecimal(t, "180", resp.Settlements[1].Amount)
	assertDecimal(t, "120", resp.Settlements[2].Amount)
	assertDecimal(t, "600", resp.Allocated)
	assertDecimal(t, "0", resp.Unallocated)

	// Each settlement produced its own payment record and journal entry.
	for _, s := range resp.Settlements {
		payments, err := container.Debt.ListPayments(context.Background(), s.DebtID)
		require.NoError(t, err)
		require.Len(t, payments, 1)
		assert.Equal(t, s.PaymentID, payments[0].PaymentID)
	}
	totals, err := container.Journal.Totals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, totals.EntryCount)
	assertDecimal(t, "600", totals.TotalCredits)

	remaining := []string{"200", "120", "80"}
	for i, id := range []string{d1.DebtID, d2.DebtID, d3.DebtID} {
		debt, err := container.Debt.GetDebtByID(context.Background(), id)
		require.NoError(t, err)
		assertDecimal(t, remaining[i], debt.RemainingBalance())
	}
}

func TestAllocateSettlesAllDebtsExactly(t *testing.T) {
	container, _ := newTestEngine(t)
	d1 := createReceivable(t, container, "Ko Ko", "500", nil)
	d2 := createReceivable(t, container, "Ko Ko", "300", nil)

	resp, err := container.Allocation.Allocate(context.Background(), dto.AllocatePaymentRequest{
		DebtIDs:     []string{d1.DebtID, d2.DebtID},
		TotalAmount: dec(t, "800"),
		PaymentDate: date(2025, time.April, 1),
		Method:      "cash",
	})
	require.NoError(t, err)
	assertDecimal(t, "0", resp.Unallocated)

	for _, id := range []string{d1.DebtID, d2.DebtID} {
		debt, err := container.Debt.GetDebtByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, domain.DebtPaid, debt.Status)
	}
}

func TestAllocateRoundingRemainderGoesToLastDebt(t *testing.T) {
	container, _ := newTestEngine(t)
	d1 := createReceivable(t, container, "Ko Ko", "100", nil)
	d2 := createReceivable(t, container, "Ko Ko", "100", nil)
	d3 := createReceivable(t, container, "Ko Ko", "100", nil)

	resp, err := container.Allocation.Allocate(context.Background(), dto.AllocatePaymentRequest{
		DebtIDs:     []string{d1.DebtID, d2.DebtID, d3.DebtID},
		TotalAmount: dec(t, "100"),
		PaymentDate: date(2025, time.April, 1),
		Method:      "cash",
	})
	require.NoError(t, err)

	// 100/3 rounds to 33.33 twice; the last share absorbs the remainder so
	// the pieces sum to the payment exactly.
	assertDecimal(t, "33.33", resp.Settlements[0].Amount)
	assertDecimal(t, "33.33", resp.Settlements[1].Amount)
	assertDecimal(t, "33.34", resp.Settlements[2].Amount)
	assertDecimal(t, "100", resp.Allocated)
	assertDecimal(t, "0", resp.Unallocated)
}

func TestAllocateRejectsCrossCounterpartySets(t *testing.T) {
	container, _ := newTestEngine(t)
	d1 := createReceivable(t, container, "Ko Ko", "100", nil)
	d2 := createReceivable(t, container, "Mya Mya", "100", nil)

	_, err := container.Allocation.Allocate(context.Background(), dto.AllocatePaymentRequest{
		DebtIDs:     []string{d1.DebtID, d2.DebtID},
		TotalAmount: dec(t, "50"),
		PaymentDate: date(2025, time.April, 1),
		Method:      "cash",
	})
	require.ErrorIs(t, err, apperrors.ErrCrossCustomerAllocation)

	// Nothing was applied to either debt.
	for _, id := range []string{d1.DebtID, d2.DebtID} {
		debt, err := container.Debt.GetDebtByID(context.Background(), id)
		require.NoError(t, err)
		assertDecimal(t, "100", debt.RemainingBalance())
	}
}

func TestAllocateRejectsOverallocation(t *testing.T) {
	container, _ := newTestEngine(t)
	d1 := createReceivable(t, container, "Ko Ko", "100", nil)
	d2 := createReceivable(t, container, "Ko Ko", "50", nil)

	_, err := container.Allocation.Allocate(context.Background(), dto.AllocatePaymentRequest{
		DebtIDs:     []string{d1.DebtID, d2.DebtID},
		TotalAmount: dec(t, "151"),
		PaymentDate: date(2025, time.April, 1),
		Method:      "cash",
	})
	require.ErrorIs(t, err, apperrors.ErrOverallocation)
}

func TestAllocateRejectsDuplicateSettledAndMissingDebts(t *testing.T) {
	container, _ := newTestEngine(t)
	d1 := createReceivable(t, container, "Ko Ko", "100", nil)

	_, err := container.Allocation.Allocate(context.Background(), dto.AllocatePaymentRequest{
		DebtIDs:     []string{d1.DebtID, d1.DebtID},
		TotalAmount: dec(t, "50"),
		PaymentDate: date(2025, time.April, 1),
		Method:      "cash",
	})
	require.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = container.Allocation.Allocate(context.Background(), dto.AllocatePaymentRequest{
		DebtIDs:     []string{d1.DebtID, "missing"},
		TotalAmount: dec(t, "50"),
		PaymentDate: date(2025, time.April, 1),
		Method:      "cash",
	})
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	settled := createReceivable(t, container, "Ko Ko", "40", nil)
	payDebt(t, container, settled.DebtID, "40")
	_, err = container.Allocation.Allocate(context.Background(), dto.AllocatePaymentRequest{
		DebtIDs:     []string{d1.DebtID, settled.DebtID},
		TotalAmount: dec(t, "50"),
		PaymentDate: date(2025, time.April, 1),
		Method:      "cash",
	})
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAllocateManualUsesCallerAmounts(t *testing.T) {
	container, _ := newTestEngine(t)
	d1 := createReceivable(t, container, "Ko Ko", "500", nil)
	d2 := createReceivable(t, container, "Ko Ko", "300", nil)

	resp, err := container.Allocation.AllocateManual(context.Background(), dto.AllocateManualRequest{
		Entries: []dto.ManualAllocationEntry{
			{DebtID: d1.DebtID, Amount: dec(t, "450")},
			{DebtID: d2.DebtID, Amount: dec(t, "150")},
		},
		TotalAmount: dec(t, "600"),
		PaymentDate: date(2025, time.April, 1),
		Method:      "cash",
	})
	require.NoError(t, err)
	assertDecimal(t, "600", resp.Allocated)
	assertDecimal(t, "0", resp.Unallocated)

	debt1, err := container.Debt.GetDebtByID(context.Background(), d1.DebtID)
	require.NoError(t, err)
	assertDecimal(t, "50", debt1.RemainingBalance())
	debt2, err := container.Debt.GetDebtByID(context.Background(), d2.DebtID)
	require.NoError(t, err)
	assertDecimal(t, "150", debt2.RemainingBalance())
}

func TestAllocateManualValidation(t *testing.T) {
	container, _ := newTestEngine(t)
	d1 := createReceivable(t, container, "Ko Ko", "100", nil)
	d2 := createReceivable(t, container, "Ko Ko", "100", nil)

	// Amounts must sum to the payment total.
	_, err := container.Allocation.AllocateManual(context.Background(), dto.AllocateManualRequest{
		Entries: []dto.ManualAllocationEntry{
			{DebtID: d1.DebtID, Amount: dec(t, "30")},
			{DebtID: d2.DebtID, Amount: dec(t, "30")},
		},
		TotalAmount: dec(t, "100"),
		PaymentDate: date(2025, time.April, 1),
		Method:      "cash",
	})
	require.ErrorIs(t, err, apperrors.ErrValidation)

	// Each amount must stay within its debt's remaining balance.
	_, err = container.Allocation.AllocateManual(context.Background(), dto.AllocateManualRequest{
		Entries: []dto.ManualAllocationEntry{
			{DebtID: d1.DebtID, Amount: dec(t, "120")},
			{DebtID: d2.DebtID, Amount: dec(t, "30")},
		},
		TotalAmount: dec(t, "150"),
		PaymentDate: date(2025, time.April, 1),
		Method:      "cash",
	})
	require.ErrorIs(t, err, apperrors.ErrOverallocation)
}
