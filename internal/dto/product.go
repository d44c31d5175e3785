package dto

import (
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// CreateProductRequest defines the expected JSON body for creating a product.
type CreateProductRequest struct {
	Code     string `json:"code" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Unit     string `json:"unit" binding:"required"`
}

// UpdateProductRequest defines the JSON body for updating a product.
// Nil fields are left unchanged; changing the code re-checks uniqueness.
type UpdateProductRequest struct {
	Code     *string `json:"code,omitempty"`
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Unit     *string `json:"unit,omitempty"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID string `json:"productID"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Unit      string `json:"unit"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID: p.ProductID,
		Code:      p.Code,
		Name:      p.Name,
		Category:  p.Category,
		Unit:      p.Unit,
	}
}

// ToProductResponses converts a slice of domain.Product to []ProductResponse.
func ToProductResponses(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
