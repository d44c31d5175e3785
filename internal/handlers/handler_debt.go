package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/middleware"
)

// debtHandler handles HTTP requests related to debts and payments.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

func newDebtHandler(ds portssvc.DebtSvcFacade) *debtHandler {
	return &debtHandler{debtService: ds}
}

// registerDebtRoutes registers routes related to debts and payments.
func registerDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade) {
	h := newDebtHandler(debtService)

	debts := rg.Group("/debts")
	{
		debts.POST("", h.createGeneralDebt)
		debts.GET("", h.listDebts)
		debts.GET("/:id", h.getDebtByID)
		debts.POST("/:id/cancel", h.cancelGeneralDebt)
		debts.POST("/:id/payments", h.applyPayment)
		debts.GET("/:id/payments", h.listPayments)
	}
	rg.POST("/payments/:id/reverse", h.reversePayment)
}

// createGeneralDebt godoc
// @Summary Record a standalone payable or receivable
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   debt body dto.CreateGeneralDebtRequest true "Debt details"
// @Success 201 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create debt"
// @Router /debts [post]
func (h *debtHandler) createGeneralDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGeneralDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGeneralDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	debt, err := h.debtService.CreateGeneralDebt(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create debt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create debt"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToDebtResponse(debt, time.Now().UTC()))
}

// listDebts godoc
// @Summary List debts
// @Description Retrieves debts matching the filters, oldest first; the overdue flag is derived at read time
// @Tags debts
// @Produce  json
// @Param   kind query string false "Filter by kind" Enums(SALE, PAYABLE, RECEIVABLE)
// @Param   counterparty query string false "Filter by counterparty"
// @Param   onlyUnsettled query bool false "Only debts with a remaining balance"
// @Param   onlyOverdue query bool false "Only debts past their due date"
// @Success 200 {array} dto.DebtResponse
// @Failure 500 {object} map[string]string "Failed to list debts"
// @Router /debts [get]
func (h *debtHandler) listDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := dto.ListDebtsParams{
		Kind:          c.Query("kind"),
		Counterparty:  c.Query("counterparty"),
		OnlyUnsettled: c.Query("onlyUnsettled") == "true",
		OnlyOverdue:   c.Query("onlyOverdue") == "true",
	}

	debts, err := h.debtService.ListDebts(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list debts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list debts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponses(debts, time.Now().UTC()))
}

// getDebtByID godoc
// @Summary Get a debt by ID
// @Tags debts
// @Produce  json
// @Param   id path string true "Debt ID"
// @Success 200 {object} dto.DebtResponse
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to retrieve debt"
// @Router /debts/{id} [get]
func (h *debtHandler) getDebtByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	debt, err := h.debtService.GetDebtByID(c.Request.Context(), debtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
		} else {
			logger.Error("Failed to get debt from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve debt"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponse(debt, time.Now().UTC()))
}

// cancelGeneralDebt godoc
// @Summary Cancel a general debt
// @Description Marks an unsettled payable or receivable cancelled; sale debts cannot be cancelled
// @Tags debts
// @Produce  json
// @Param   id path string true "Debt ID"
// @Success 200 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string "Debt cannot be cancelled"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to cancel debt"
// @Router /debts/{id}/cancel [post]
func (h *debtHandler) cancelGeneralDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	debt, err := h.debtService.CancelGeneralDebt(c.Request.Context(), debtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to cancel debt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel debt"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponse(debt, time.Now().UTC()))
}

// applyPayment godoc
// @Summary Apply a payment to a debt
// @Description Settles part of a debt; the amount must not exceed the remaining balance
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   id path string true "Debt ID"
// @Param   payment body dto.ApplyPaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 409 {object} map[string]string "Payment exceeds remaining balance"
// @Failure 500 {object} map[string]string "Failed to apply payment"
// @Router /debts/{id}/payments [post]
func (h *debtHandler) applyPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	var req dto.ApplyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApplyPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.debtService.ApplyPayment(c.Request.Context(), debtID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
		} else if errors.Is(err, apperrors.ErrOverpayment) {
			logger.Warn("Payment rejected as overpayment", slog.String("debt_id", debtID))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to apply payment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List a debt's payments
// @Description Retrieves all payments applied to a debt in application order, reversed ones included
// @Tags debts
// @Produce  json
// @Param   id path string true "Debt ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Router /debts/{id}/payments [get]
func (h *debtHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	payments, err := h.debtService.ListPayments(c.Request.Context(), debtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
		} else {
			logger.Error("Failed to list payments from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

// reversePayment godoc
// @Summary Reverse a payment
// @Description Undoes a payment's effect on its debt and appends a correcting journal entry; the payment record is kept, marked reversed
// @Tags debts
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 200 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string "Payment already reversed"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to reverse payment"
// @Router /payments/{id}/reverse [post]
func (h *debtHandler) reversePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("id")

	debt, err := h.debtService.ReversePayment(c.Request.Context(), paymentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to reverse payment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reverse payment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponse(debt, time.Now().UTC()))
}
