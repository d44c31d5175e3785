package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// CreateGeneralDebtRequest defines the JSON body for recording a standalone
// payable or receivable.
type CreateGeneralDebtRequest struct {
	Kind         string          `json:"kind" binding:"required,oneof=PAYABLE RECEIVABLE"`
	Counterparty string          `json:"counterparty" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	DueDate      *time.Time      `json:"dueDate,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

// ApplyPaymentRequest defines the JSON body for settling part of a debt.
type ApplyPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate time.Time       `json:"paymentDate" binding:"required"`
	Method      string          `json:"method" binding:"required"`
	Reference   string          `json:"reference,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// ListDebtsParams holds parameters for listing debts.
type ListDebtsParams struct {
	Kind          string
	Counterparty  string
	OnlyUnsettled bool
	OnlyOverdue   bool
}

// DebtResponse defines the data returned for a debt. RemainingBalance and
// Overdue are derived at response time, never stored.
type DebtResponse struct {
	DebtID           string          `json:"debtID"`
	Kind             string          `json:"kind"`
	SaleID           *string         `json:"saleID,omitempty"`
	Counterparty     string          `json:"counterparty"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	AmountPaid       decimal.Decimal `json:"amountPaid"`
	PaymentReceived  decimal.Decimal `json:"paymentReceived"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
	Status           string          `json:"status"`
	Overdue          bool            `json:"overdue"`
	DueDate          *time.Time      `json:"dueDate,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID   string          `json:"paymentID"`
	DebtID      string          `json:"debtID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Method      string          `json:"method"`
	Reference   string          `json:"reference,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Reversed    bool            `json:"reversed"`
}

// ToDebtResponse converts a domain.Debt to DebtResponse DTO, deriving the
// remaining balance and the overdue flag against the given clock reading.
func ToDebtResponse(d *domain.Debt, now time.Time) DebtResponse {
	return DebtResponse{
		DebtID:           d.DebtID,
		Kind:             string(d.Kind),
		SaleID:           d.SaleID,
		Counterparty:     d.Counterparty,
		TotalAmount:      d.TotalAmount,
		AmountPaid:       d.AmountPaid,
		PaymentReceived:  d.PaymentReceived,
		RemainingBalance: d.RemainingBalance(),
		Status:           string(d.Status),
		Overdue:          d.IsOverdue(now),
		DueDate:          d.DueDate,
		Notes:            d.Notes,
		CreatedAt:        d.CreatedAt,
	}
}

// ToDebtResponses converts a slice of domain.Debt to []DebtResponse.
func ToDebtResponses(debts []domain.Debt, now time.Time) []DebtResponse {
	responses := make([]DebtResponse, len(debts))
	for i := range debts {
		responses[i] = ToDebtResponse(&debts[i], now)
	}
	return responses
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		DebtID:      p.DebtID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		Method:      p.Method,
		Reference:   p.Reference,
		Notes:       p.Notes,
		Reversed:    p.Reversed,
	}
}

// ToPaymentResponses converts a slice of domain.Payment to []PaymentResponse.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses
}
