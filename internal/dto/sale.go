package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// RecordSaleRequest defines the JSON body for recording a sale.
type RecordSaleRequest struct {
	ProductCode string          `json:"productCode" binding:"required"`
	SaleDate    time.Time       `json:"saleDate" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
	AmountPaid  decimal.Decimal `json:"amountPaid"`
	Customer    string          `json:"customer,omitempty"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
}

// CostingLineResponse defines one consumed-batch line of a costing plan.
type CostingLineResponse struct {
	BatchID      string          `json:"batchID"`
	QuantityUsed decimal.Decimal `json:"quantityUsed"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	LineCost     decimal.Decimal `json:"lineCost"`
}

// CostingPlanResponse defines the data returned for a cost preview.
type CostingPlanResponse struct {
	ProductCode string                `json:"productCode"`
	Requested   decimal.Decimal       `json:"requested"`
	TotalCost   decimal.Decimal       `json:"totalCost"`
	UsedBatches []CostingLineResponse `json:"usedBatches"`
	Shortfall   decimal.Decimal       `json:"shortfall"`
}

// SaleResponse defines the data returned for a sale record.
type SaleResponse struct {
	SaleID        string                `json:"saleID"`
	ProductCode   string                `json:"productCode"`
	SaleDate      time.Time             `json:"saleDate"`
	Quantity      decimal.Decimal       `json:"quantity"`
	UnitPrice     decimal.Decimal       `json:"unitPrice"`
	TotalCost     decimal.Decimal       `json:"totalCost"`
	TotalSale     decimal.Decimal       `json:"totalSale"`
	Profit        decimal.Decimal       `json:"profit"`
	AmountPaid    decimal.Decimal       `json:"amountPaid"`
	PaymentStatus string                `json:"paymentStatus"`
	Customer      string                `json:"customer,omitempty"`
	DueDate       *time.Time            `json:"dueDate,omitempty"`
	DebtID        *string               `json:"debtID,omitempty"`
	CostLines     []CostingLineResponse `json:"costLines"`
	CreatedAt     time.Time             `json:"createdAt"`
}

// ListSalesParams holds parameters for listing sales.
type ListSalesParams struct {
	Limit     int
	NextToken *string
}

// ListSalesResponse defines the paginated sales listing.
type ListSalesResponse struct {
	Sales     []SaleResponse `json:"sales"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToCostingLineResponses converts domain costing lines to DTOs.
func ToCostingLineResponses(lines []domain.CostingLine) []CostingLineResponse {
	responses := make([]CostingLineResponse, len(lines))
	for i, line := range lines {
		responses[i] = CostingLineResponse{
			BatchID:      line.BatchID,
			QuantityUsed: line.QuantityUsed,
			UnitPrice:    line.UnitPrice,
			LineCost:     line.LineCost,
		}
	}
	return responses
}

// ToCostingPlanResponse converts a domain.CostingPlan to its DTO.
func ToCostingPlanResponse(plan *domain.CostingPlan) CostingPlanResponse {
	return CostingPlanResponse{
		ProductCode: plan.ProductCode,
		Requested:   plan.Requested,
		TotalCost:   plan.TotalCost,
		UsedBatches: ToCostingLineResponses(plan.UsedBatches),
		Shortfall:   plan.Shortfall,
	}
}

// ToSaleResponse converts a domain.SaleRecord to SaleResponse DTO.
func ToSaleResponse(s *domain.SaleRecord) SaleResponse {
	return SaleResponse{
		SaleID:        s.SaleID,
		ProductCode:   s.ProductCode,
		SaleDate:      s.SaleDate,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		TotalCost:     s.TotalCost,
		TotalSale:     s.TotalSale,
		Profit:        s.Profit,
		AmountPaid:    s.AmountPaid,
		PaymentStatus: string(s.Status),
		Customer:      s.Customer,
		DueDate:       s.DueDate,
		DebtID:        s.DebtID,
		CostLines:     ToCostingLineResponses(s.CostLines),
		CreatedAt:     s.CreatedAt,
	}
}

// ToSaleResponses converts a slice of domain.SaleRecord to []SaleResponse.
func ToSaleResponses(sales []domain.SaleRecord) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i := range sales {
		responses[i] = ToSaleResponse(&sales[i])
	}
	return responses
}
