package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// StockInRequest defines the JSON body for recording a stock receipt.
type StockInRequest struct {
	ProductCode string          `json:"productCode" binding:"required"`
	ArrivalDate time.Time       `json:"arrivalDate" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
	// EntryType defaults to PURCHASE when omitted.
	EntryType  string     `json:"entryType,omitempty" binding:"omitempty,oneof=PURCHASE OPENING_BALANCE"`
	Supplier   string     `json:"supplier,omitempty"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
}

// BatchResponse defines the data returned for an inventory batch.
type BatchResponse struct {
	BatchID     string          `json:"batchID"`
	ProductCode string          `json:"productCode"`
	Sequence    int64           `json:"sequence"`
	ArrivalDate time.Time       `json:"arrivalDate"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Remaining   decimal.Decimal `json:"remaining"`
	EntryType   string          `json:"entryType"`
	Supplier    string          `json:"supplier,omitempty"`
	ExpiryDate  *time.Time      `json:"expiryDate,omitempty"`
}

// ToBatchResponse converts a domain.InventoryBatch to BatchResponse DTO.
func ToBatchResponse(b *domain.InventoryBatch) BatchResponse {
	return BatchResponse{
		BatchID:     b.BatchID,
		ProductCode: b.ProductCode,
		Sequence:    b.Sequence,
		ArrivalDate: b.ArrivalDate,
		Quantity:    b.Quantity,
		UnitPrice:   b.UnitPrice,
		Remaining:   b.Remaining,
		EntryType:   string(b.EntryType),
		Supplier:    b.Supplier,
		ExpiryDate:  b.ExpiryDate,
	}
}

// ToBatchResponses converts a slice of domain.InventoryBatch to []BatchResponse.
func ToBatchResponses(batches []domain.InventoryBatch) []BatchResponse {
	responses := make([]BatchResponse, len(batches))
	for i := range batches {
		responses[i] = ToBatchResponse(&batches[i])
	}
	return responses
}
