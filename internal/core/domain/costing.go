package domain

import "github.com/shopspring/decimal"

// CostingLine records the share of a sale supplied by one inventory batch.
type CostingLine struct {
	BatchID      string          `json:"batchID"`
	QuantityUsed decimal.Decimal `json:"quantityUsed"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	LineCost     decimal.Decimal `json:"lineCost"` // QuantityUsed * UnitPrice
}

// CostingPlan is the pure output of FIFO costing: which batches a sale would
// consume and at what cost. Producing a plan mutates nothing; the sale
// processor commits it separately.
type CostingPlan struct {
	ProductCode string          `json:"productCode"`
	Requested   decimal.Decimal `json:"requested"`
	TotalCost   decimal.Decimal `json:"totalCost"`
	UsedBatches []CostingLine   `json:"usedBatches"`
	// Shortfall is the demand left uncovered when eligible batches run out
	// (Requested - sum of QuantityUsed). Zero on a full fill.
	Shortfall decimal.Decimal `json:"shortfall"`
}

// QuantityFilled returns the summed quantity the plan actually covers.
func (p CostingPlan) QuantityFilled() decimal.Decimal {
	total := decimal.Zero
	for _, line := range p.UsedBatches {
		total = total.Add(line.QuantityUsed)
	}
	return total
}
