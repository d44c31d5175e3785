package dto

import "github.com/shopspring/decimal"

// SummaryResponse aggregates engine state for the dashboard. Everything here
// is computed from a consistent read of the store, nothing is stored.
type SummaryResponse struct {
	// InventoryValue is the cost of all remaining stock at its purchase prices.
	InventoryValue decimal.Decimal `json:"inventoryValue"`
	// ReceivablesOutstanding sums the remaining balances of unsettled sale
	// debts and general receivables.
	ReceivablesOutstanding decimal.Decimal `json:"receivablesOutstanding"`
	// PayablesOutstanding sums the remaining balances of unsettled payables.
	PayablesOutstanding decimal.Decimal `json:"payablesOutstanding"`
	// TotalProfit is the profit recognized across all recorded sales.
	TotalProfit decimal.Decimal `json:"totalProfit"`
	// OverdueDebtCount is the number of debts overdue at the time of the read.
	OverdueDebtCount int `json:"overdueDebtCount"`
	// JournalBalance is the running balance of the latest journal entry.
	JournalBalance decimal.Decimal `json:"journalBalance"`
}
