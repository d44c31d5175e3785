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

// saleService orchestrates the sale transaction: costing, batch depletion,
// profit, journal posting and conditional debt creation.
type saleService struct {
	gate        *opGate
	productRepo portsrepo.ProductRepositoryFacade
	batchRepo   portsrepo.BatchRepositoryFacade
	saleRepo    portsrepo.SaleRepositoryFacade
	costingSvc  *costingService
	debtSvc     *debtService
	journalSvc  *journalService
}

func newSaleService(
	gate *opGate,
	productRepo portsrepo.ProductRepositoryFacade,
	batchRepo portsrepo.BatchRepositoryFacade,
	saleRepo portsrepo.SaleRepositoryFacade,
	costingSvc *costingService,
	debtSvc *debtService,
	journalSvc *journalService,
) *saleService {
	return &saleService{
		gate:        gate,
		productRepo: productRepo,
		batchRepo:   batchRepo,
		saleRepo:    saleRepo,
		costingSvc:  costingSvc,
		debtSvc:     debtSvc,
		journalSvc:  journalSvc,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// RecordSale records one sale atomically. All validation happens before the
// first write: the costing plan is produced and checked under the operation
// gate, and committing it cannot fail afterwards, so a failure never leaves
// partial state behind.
//
// The journal credits the full sale amount whether or not it was collected:
// revenue is recognized at sale time, debt tracks the uncollected part.
func (s *saleService) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*domain.SaleRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: sale quantity must be positive", apperrors.ErrValidation)
	}
	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price must not be negative", apperrors.ErrValidation)
	}
	if req.AmountPaid.IsNegative() {
		return nil, fmt.Errorf("%w: amount paid must not be negative", apperrors.ErrValidation)
	}

	var sale domain.SaleRecord
	err := s.gate.run(func() error {
		product, err := s.productRepo.FindProductByCode(ctx, req.ProductCode)
		if err != nil {
			return err
		}

		plan, err := s.costingSvc.Cost(ctx, product.Code, req.Quantity)
		if err != nil {
			return err
		}
		if plan.Shortfall.IsPositive() {
			return fmt.Errorf("%w: %s short by %s", apperrors.ErrInsufficientStock, product.Code, plan.Shortfall)
		}

		totalSale := accounting.RoundMoney(req.Quantity.Mul(req.UnitPrice))
		amountPaid := accounting.RoundMoney(req.AmountPaid)
		now := time.Now().UTC()

		sale = domain.SaleRecord{
			SaleID:      uuid.NewString(),
			ProductCode: product.Code,
			SaleDate:    req.SaleDate,
			Quantity:    req.Quantity,
			UnitPrice:   req.UnitPrice,
			TotalCost:   plan.TotalCost,
			TotalSale:   totalSale,
			Profit:      totalSale.Sub(plan.TotalCost),
			AmountPaid:  amountPaid,
			Status:      accounting.DerivePaymentStatus(totalSale, amountPaid),
			Customer:    req.Customer,
			DueDate:     req.DueDate,
			CostLines:   plan.UsedBatches,
			AuditFields: domain.NewAuditFields(now),
		}

		// Commit phase. The plan was built against current batch state under
		// the gate, so consumption cannot exceed any batch's remaining
		// quantity; a failure here means the engine was bypassed.
		for _, line := range plan.UsedBatches {
			if err := s.batchRepo.ApplyConsumption(ctx, line.BatchID, line.QuantityUsed); err != nil {
				return fmt.Errorf("failed to commit costing plan: %w", err)
			}
		}

		description := fmt.Sprintf("Sale: %s x %s @ %s", req.Quantity, product.Code, req.UnitPrice)
		if _, err := s.journalSvc.append(ctx, req.SaleDate, domain.CategorySales, description, decimal.Zero, totalSale, sale.SaleID); err != nil {
			return err
		}

		if amountPaid.LessThan(totalSale) {
			debt, err := s.debtSvc.createSaleDebt(ctx, &sale, now)
			if err != nil {
				return err
			}
			sale.DebtID = &debt.DebtID
		}

		return s.saleRepo.SaveSale(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Sale recorded",
		slog.String("sale_id", sale.SaleID),
		slog.String("product_code", sale.ProductCode),
		slog.String("total_sale", sale.TotalSale.String()),
		slog.String("payment_status", string(sale.Status)))
	return &sale, nil
}

func (s *saleService) GetSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error) {
	return s.saleRepo.FindSaleByID(ctx, saleID)
}

func (s *saleService) ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	sales, nextToken, err := s.saleRepo.ListSales(ctx, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	return &dto.ListSalesResponse{
		Sales:     dto.ToSaleResponses(sales),
		NextToken: nextToken,
	}, nil
}

// PreviewCost exposes the costing plan without committing it.
func (s *saleService) PreviewCost(ctx context.Context, productCode string, quantity decimal.Decimal) (*domain.CostingPlan, error) {
	return s.costingSvc.Cost(ctx, productCode, quantity)
}
