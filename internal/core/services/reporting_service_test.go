package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/dto"
)

func TestSummaryOnEmptyEngine(t *testing.T) {
	container, _ := newTestEngine(t)

	summary, err := container.Reporting.Summary(context.Background())
	require.NoError(t, err)

	assertDecimal(t, "0", summary.InventoryValue)
	assertDecimal(t, "0", summary.ReceivablesOutstanding)
	assertDecimal(t, "0", summary.PayablesOutstanding)
	assertDecimal(t, "0", summary.TotalProfit)
	assertDecimal(t, "0", summary.JournalBalance)
	assert.Equal(t, 0, summary.OverdueDebtCount)
}

func TestSummaryAggregatesEngineState(t *testing.T) {
	container, _ := newTestEngine(t)
	ctx := context.Background()

	createProduct(t, container, "RICE")
	stockIn(t, container, "RICE", date(2025, time.January, 1), "10", "5")
	stockIn(t, container, "RICE", date(2025, time.January, 2), "10", "6")

	// Sells 12 at 10: cost 10*5 + 2*6 = 62, revenue 120, profit 58.
	// 50 paid up front leaves a 70 sale debt.
	recordSale(t, container, "RICE", "12", "10", "50")

	pastDue := date(2025, time.January, 1)
	createReceivable(t, container, "U Ba", "200", &pastDue)

	payable, err := container.Debt.CreateGeneralDebt(ctx, dto.CreateGeneralDebtRequest{
		Kind:         string(domain.DebtPayable),
		Counterparty: "Wholesaler",
		Amount:       dec(t, "150"),
	})
	require.NoError(t, err)
	payDebt(t, container, payable.DebtID, "50")

	summary, err := container.Reporting.Summary(ctx)
	require.NoError(t, err)

	// 8 units left from the second batch at 6.
	assertDecimal(t, "48", summary.InventoryValue)
	assertDecimal(t, "270", summary.ReceivablesOutstanding)
	assertDecimal(t, "100", summary.PayablesOutstanding)
	assertDecimal(t, "58", summary.TotalProfit)
	// Journal saw the 120 sale credit and the 50 payable payment debit.
	assertDecimal(t, "70", summary.JournalBalance)
	assert.Equal(t, 1, summary.OverdueDebtCount)
}

func TestSummarySkipsCancelledAndSettledDebts(t *testing.T) {
	container, _ := newTestEngine(t)
	ctx := context.Background()

	pastDue := date(2025, time.February, 1)
	cancelled := createReceivable(t, container, "U Ba", "300", &pastDue)
	_, err := container.Debt.CancelGeneralDebt(ctx, cancelled.DebtID)
	require.NoError(t, err)

	settled := createReceivable(t, container, "Daw Mya", "80", &pastDue)
	payDebt(t, container, settled.DebtID, "80")

	summary, err := container.Reporting.Summary(ctx)
	require.NoError(t, err)

	assertDecimal(t, "0", summary.ReceivablesOutstanding)
	// A settled debt is never overdue, a cancelled one is ignored entirely.
	assert.Equal(t, 0, summary.OverdueDebtCount)
}
