package domain

// Product is a catalog item that inventory batches and sales refer to.
// Descriptive fields may change after creation; the code stays globally unique.
type Product struct {
	ProductID string `json:"productID"` // Primary Key (UUID)
	Code      string `json:"code"`      // Unique, human-assigned (Not Null)
	Name      string `json:"name"`
	Category  string `json:"category"`
	Unit      string `json:"unit"` // e.g. "pcs", "kg"
	AuditFields
}
