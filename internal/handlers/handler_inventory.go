package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/middleware"
)

// inventoryHandler handles HTTP requests related to stock batches.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newInventoryHandler(is portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{inventoryService: is}
}

// registerInventoryRoutes registers routes related to inventory batches.
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newInventoryHandler(inventoryService)

	inventory := rg.Group("/inventory")
	{
		inventory.POST("/stock-in", h.recordStockIn)
		inventory.GET("/batches/:productCode", h.listBatches)
		inventory.GET("/batches/:productCode/eligible", h.listEligibleBatches)
	}
}

// recordStockIn godoc
// @Summary Record a stock receipt
// @Description Creates an inventory batch and posts the receipt to the journal
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   receipt body dto.StockInRequest true "Stock receipt details"
// @Success 201 {object} dto.BatchResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to record stock receipt"
// @Router /inventory/stock-in [post]
func (h *inventoryHandler) recordStockIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.StockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for StockIn", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	batch, err := h.inventoryService.RecordStockIn(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record stock receipt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record stock receipt"})
		}
		return
	}

	logger.Info("Stock receipt recorded", slog.String("batch_id", batch.BatchID), slog.String("product_code", batch.ProductCode))
	c.JSON(http.StatusCreated, dto.ToBatchResponse(batch))
}

// listBatches godoc
// @Summary List a product's batches
// @Description Retrieves all batches of a product in FIFO order, depleted ones included
// @Tags inventory
// @Produce  json
// @Param   productCode path string true "Product code"
// @Success 200 {array} dto.BatchResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to list batches"
// @Router /inventory/batches/{productCode} [get]
func (h *inventoryHandler) listBatches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productCode := c.Param("productCode")

	batches, err := h.inventoryService.ListBatches(c.Request.Context(), productCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			logger.Error("Failed to list batches from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list batches"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBatchResponses(batches))
}

// listEligibleBatches godoc
// @Summary List a product's eligible batches
// @Description Retrieves the batches still holding stock, in FIFO consumption order
// @Tags inventory
// @Produce  json
// @Param   productCode path string true "Product code"
// @Success 200 {array} dto.BatchResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to list batches"
// @Router /inventory/batches/{productCode}/eligible [get]
func (h *inventoryHandler) listEligibleBatches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productCode := c.Param("productCode")

	batches, err := h.inventoryService.ListEligibleBatches(c.Request.Context(), productCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			logger.Error("Failed to list eligible batches from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list batches"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBatchResponses(batches))
}
