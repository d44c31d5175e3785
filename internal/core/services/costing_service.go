package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/utils/accounting"
)

// costingService computes FIFO costing plans. It reads batch state and
// mutates nothing; committing a plan is the sale processor's job.
type costingService struct {
	productRepo portsrepo.ProductReader
	batchRepo   portsrepo.BatchReader
}

func newCostingService(productRepo portsrepo.ProductReader, batchRepo portsrepo.BatchReader) *costingService {
	return &costingService{productRepo: productRepo, batchRepo: batchRepo}
}

var _ portssvc.CostingSvcFacade = (*costingService)(nil)

// Cost walks the product's eligible batches oldest-first, taking from each
// the lesser of the open demand and the batch's remaining quantity. When the
// batches run out first, the uncovered demand is reported as Shortfall; the
// caller decides whether a partial fill is acceptable.
func (s *costingService) Cost(ctx context.Context, productCode string, quantity decimal.Decimal) (*domain.CostingPlan, error) {
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if _, err := s.productRepo.FindProductByCode(ctx, productCode); err != nil {
		return nil, err
	}

	batches, err := s.batchRepo.ListEligibleBatches(ctx, productCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible batches: %w", err)
	}

	plan := domain.CostingPlan{
		ProductCode: productCode,
		Requested:   quantity,
		TotalCost:   decimal.Zero,
		UsedBatches: make([]domain.CostingLine, 0, len(batches)),
	}

	demand := quantity
	for _, batch := range batches {
		if !demand.IsPositive() {
			break
		}
		take := decimal.Min(demand, batch.Remaining)
		lineCost := accounting.RoundMoney(take.Mul(batch.UnitPrice))
		plan.UsedBatches = append(plan.UsedBatches, domain.CostingLine{
			BatchID:      batch.BatchID,
			QuantityUsed: take,
			UnitPrice:    batch.UnitPrice,
			LineCost:     lineCost,
		})
		plan.TotalCost = plan.TotalCost.Add(lineCost)
		demand = demand.Sub(take)
	}
	plan.Shortfall = demand

	return &plan, nil
}
