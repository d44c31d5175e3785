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

// allocationHandler handles HTTP requests for multi-debt payment allocation.
type allocationHandler struct {
	allocationService portssvc.AllocationSvcFacade
}

func newAllocationHandler(as portssvc.AllocationSvcFacade) *allocationHandler {
	return &allocationHandler{allocationService: as}
}

// registerAllocationRoutes registers routes related to payment allocation.
func registerAllocationRoutes(rg *gin.RouterGroup, allocationService portssvc.AllocationSvcFacade) {
	h := newAllocationHandler(allocationService)

	allocations := rg.Group("/allocations")
	{
		allocations.POST("", h.allocate)
		allocations.POST("/manual", h.allocateManual)
	}
}

func (h *allocationHandler) respondAllocationError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrCrossCustomerAllocation):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrOverallocation):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Failed to allocate payment in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to allocate payment"})
	}
}

// allocate godoc
// @Summary Allocate a payment across debts proportionally
// @Description Splits one payment across the given debts in proportion to their remaining balances; all debts must belong to the same counterparty
// @Tags allocations
// @Accept  json
// @Produce  json
// @Param   allocation body dto.AllocatePaymentRequest true "Allocation details"
// @Success 201 {object} dto.AllocationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 409 {object} map[string]string "Cross-counterparty set or total exceeds combined balance"
// @Failure 500 {object} map[string]string "Failed to allocate payment"
// @Router /allocations [post]
func (h *allocationHandler) allocate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AllocatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Allocate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.allocationService.Allocate(c.Request.Context(), req)
	if err != nil {
		h.respondAllocationError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// allocateManual godoc
// @Summary Allocate a payment across debts with explicit amounts
// @Description Splits one payment using caller-supplied per-debt amounts, which must sum to the total and stay within each debt's remaining balance
// @Tags allocations
// @Accept  json
// @Produce  json
// @Param   allocation body dto.AllocateManualRequest true "Allocation details"
// @Success 201 {object} dto.AllocationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 409 {object} map[string]string "Cross-counterparty set or amount exceeds a balance"
// @Failure 500 {object} map[string]string "Failed to allocate payment"
// @Router /allocations/manual [post]
func (h *allocationHandler) allocateManual(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AllocateManualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AllocateManual", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.allocationService.AllocateManual(c.Request.Context(), req)
	if err != nil {
		h.respondAllocationError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
