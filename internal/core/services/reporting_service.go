package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/utils/accounting"
)

// reportingService aggregates dashboard figures from one snapshot export, so
// every number in a summary comes from the same consistent state.
type reportingService struct {
	store portsrepo.SnapshotStore
}

func newReportingService(store portsrepo.SnapshotStore) *reportingService {
	return &reportingService{store: store}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	snapshot, err := s.store.ExportSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read state: %w", err)
	}
	now := time.Now().UTC()

	inventoryValue := decimal.Zero
	for _, b := range snapshot.Batches {
		inventoryValue = inventoryValue.Add(b.Remaining.Mul(b.UnitPrice))
	}

	totalProfit := decimal.Zero
	for _, sale := range snapshot.Sales {
		totalProfit = totalProfit.Add(sale.Profit)
	}

	receivables := decimal.Zero
	payables := decimal.Zero
	overdueCount := 0
	for _, d := range snapshot.Debts {
		if d.Status == domain.DebtCancelled {
			continue
		}
		if d.IsOverdue(now) {
			overdueCount++
		}
		if d.Settled() {
			continue
		}
		if d.Kind == domain.DebtPayable {
			payables = payables.Add(d.RemainingBalance())
		} else {
			receivables = receivables.Add(d.RemainingBalance())
		}
	}

	journalBalance := decimal.Zero
	if n := len(snapshot.Journal); n > 0 {
		journalBalance = snapshot.Journal[n-1].Balance
	}

	return &dto.SummaryResponse{
		InventoryValue:         accounting.RoundMoney(inventoryValue),
		ReceivablesOutstanding: receivables,
		PayablesOutstanding:    payables,
		TotalProfit:            totalProfit,
		OverdueDebtCount:       overdueCount,
		JournalBalance:         journalBalance,
	}, nil
}
