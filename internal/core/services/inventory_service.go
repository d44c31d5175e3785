package services

import (
	"context"
	"errors"
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

// inventoryService owns the product catalog and the batch store. Batch
// depletion is not exposed here; only the sale processor depletes batches,
// by committing a costing plan.
type inventoryService struct {
	gate        *opGate
	productRepo portsrepo.ProductRepositoryFacade
	batchRepo   portsrepo.BatchRepositoryFacade
	journalSvc  *journalService
}

func newInventoryService(gate *opGate, productRepo portsrepo.ProductRepositoryFacade, batchRepo portsrepo.BatchRepositoryFacade, journalSvc *journalService) *inventoryService {
	return &inventoryService{
		gate:        gate,
		productRepo: productRepo,
		batchRepo:   batchRepo,
		journalSvc:  journalSvc,
	}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// CreateProduct adds a product to the catalog. Codes are globally unique.
func (s *inventoryService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	product := domain.Product{
		ProductID:   uuid.NewString(),
		Code:        req.Code,
		Name:        req.Name,
		Category:    req.Category,
		Unit:        req.Unit,
		AuditFields: domain.NewAuditFields(now),
	}

	err := s.gate.run(func() error {
		return s.productRepo.SaveProduct(ctx, product)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicateProductCode) {
			logger.Error("Failed to save product", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID), slog.String("code", product.Code))
	return &product, nil
}

// UpdateProduct changes descriptive fields. A code change re-checks the
// global uniqueness invariant.
func (s *inventoryService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var updated *domain.Product
	err := s.gate.run(func() error {
		product, err := s.productRepo.FindProductByID(ctx, productID)
		if err != nil {
			return err
		}

		if req.Code != nil {
			product.Code = *req.Code
		}
		if req.Name != nil {
			product.Name = *req.Name
		}
		if req.Category != nil {
			product.Category = *req.Category
		}
		if req.Unit != nil {
			product.Unit = *req.Unit
		}
		product.LastUpdatedAt = time.Now().UTC()

		if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Product updated", slog.String("product_id", productID))
	return updated, nil
}

func (s *inventoryService) GetProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	return s.productRepo.FindProductByCode(ctx, code)
}

func (s *inventoryService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.ListProducts(ctx)
}

// RecordStockIn creates an inventory batch and posts the receipt to the
// journal. Purchases are posted as a debit (money out); opening-balance
// receipts carry no cash movement, so they post as a paired debit/credit of
// the stock value under the opening-balance category.
func (s *inventoryService) RecordStockIn(ctx context.Context, req dto.StockInRequest) (*domain.InventoryBatch, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: stock-in quantity must be positive", apperrors.ErrValidation)
	}
	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price must not be negative", apperrors.ErrValidation)
	}

	entryType := domain.EntryPurchase
	if req.EntryType != "" {
		entryType = domain.BatchEntryType(req.EntryType)
	}

	var batch domain.InventoryBatch
	err := s.gate.run(func() error {
		product, err := s.productRepo.FindProductByCode(ctx, req.ProductCode)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		batch = domain.InventoryBatch{
			BatchID:     uuid.NewString(),
			ProductCode: product.Code,
			ArrivalDate: req.ArrivalDate,
			Quantity:    req.Quantity,
			UnitPrice:   req.UnitPrice,
			Remaining:   req.Quantity,
			EntryType:   entryType,
			Supplier:    req.Supplier,
			ExpiryDate:  req.ExpiryDate,
			AuditFields: domain.NewAuditFields(now),
		}
		if err := s.batchRepo.SaveBatch(ctx, &batch); err != nil {
			return fmt.Errorf("failed to save batch: %w", err)
		}

		cost := accounting.RoundMoney(req.Quantity.Mul(req.UnitPrice))
		description := fmt.Sprintf("Stock in: %s x %s @ %s", req.Quantity, product.Code, req.UnitPrice)
		var appendErr error
		if entryType == domain.EntryOpeningBalance {
			_, appendErr = s.journalSvc.append(ctx, req.ArrivalDate, domain.CategoryOpeningBalance, description, cost, cost, batch.BatchID)
		} else {
			_, appendErr = s.journalSvc.append(ctx, req.ArrivalDate, domain.CategoryPurchases, description, cost, decimal.Zero, batch.BatchID)
		}
		return appendErr
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Stock receipt recorded",
		slog.String("batch_id", batch.BatchID),
		slog.String("product_code", batch.ProductCode),
		slog.String("quantity", batch.Quantity.String()))
	return &batch, nil
}

func (s *inventoryService) ListBatches(ctx context.Context, productCode string) ([]domain.InventoryBatch, error) {
	if _, err := s.productRepo.FindProductByCode(ctx, productCode); err != nil {
		return nil, err
	}
	return s.batchRepo.ListBatchesByProduct(ctx, productCode)
}

func (s *inventoryService) ListEligibleBatches(ctx context.Context, productCode string) ([]domain.InventoryBatch, error) {
	if _, err := s.productRepo.FindProductByCode(ctx, productCode); err != nil {
		return nil, err
	}
	return s.batchRepo.ListEligibleBatches(ctx, productCode)
}
