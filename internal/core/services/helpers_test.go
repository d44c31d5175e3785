package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/core/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/repositories/memory"
)

// newTestEngine builds a full service container over a fresh in-memory store,
// without snapshot persistence.
func newTestEngine(t *testing.T) (*portssvc.ServiceContainer, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	repos := memory.NewRepositoryProvider(store)
	return services.NewServiceContainer(repos, nil), store
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// assertDecimal compares by numeric value, not representation, so "60" and
// "60.00" are the same amount.
func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	require.True(t, dec(t, expected).Equal(actual),
		"expected %s, got %s", expected, actual.String())
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func createProduct(t *testing.T, container *portssvc.ServiceContainer, code string) *domain.Product {
	t.Helper()
	product, err := container.Inventory.CreateProduct(context.Background(), dto.CreateProductRequest{
		Code: code,
		Name: "Test " + code,
		Unit: "pcs",
	})
	require.NoError(t, err)
	return product
}

func stockIn(t *testing.T, container *portssvc.ServiceContainer, code string, arrival time.Time, quantity, unitPrice string) *domain.InventoryBatch {
	t.Helper()
	batch, err := container.Inventory.RecordStockIn(context.Background(), dto.StockInRequest{
		ProductCode: code,
		ArrivalDate: arrival,
		Quantity:    dec(t, quantity),
		UnitPrice:   dec(t, unitPrice),
	})
	require.NoError(t, err)
	return batch
}

func recordSale(t *testing.T, container *portssvc.ServiceContainer, code string, quantity, unitPrice, amountPaid string, opts ...func(*dto.RecordSaleRequest)) *domain.SaleRecord {
	t.Helper()
	req := dto.RecordSaleRequest{
		ProductCode: code,
		SaleDate:    date(2025, time.March, 10),
		Quantity:    dec(t, quantity),
		UnitPrice:   dec(t, unitPrice),
		AmountPaid:  dec(t, amountPaid),
		Customer:    "Aye Aye",
	}
	for _, opt := range opts {
		opt(&req)
	}
	sale, err := container.Sale.RecordSale(context.Background(), req)
	require.NoError(t, err)
	return sale
}

func createReceivable(t *testing.T, container *portssvc.ServiceContainer, counterparty, amount string, dueDate *time.Time) *domain.Debt {
	t.Helper()
	debt, err := container.Debt.CreateGeneralDebt(context.Background(), dto.CreateGeneralDebtRequest{
		Kind:         string(domain.DebtReceivable),
		Counterparty: counterparty,
		Amount:       dec(t, amount),
		DueDate:      dueDate,
	})
	require.NoError(t, err)
	return debt
}

func payDebt(t *testing.T, container *portssvc.ServiceContainer, debtID, amount string) *domain.Payment {
	t.Helper()
	payment, err := container.Debt.ApplyPayment(context.Background(), debtID, dto.ApplyPaymentRequest{
		Amount:      dec(t, amount),
		PaymentDate: date(2025, time.April, 1),
		Method:      "cash",
	})
	require.NoError(t, err)
	return payment
}
