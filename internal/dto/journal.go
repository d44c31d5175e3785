package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// AppendJournalRequest defines the JSON body for a manual journal entry.
type AppendJournalRequest struct {
	EntryDate   time.Time       `json:"entryDate" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Reference   string          `json:"reference,omitempty"`
}

// ListJournalParams holds parameters for querying the journal.
type ListJournalParams struct {
	Limit     int
	NextToken *string
	Since     *time.Time
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID     string          `json:"entryID"`
	Sequence    int64           `json:"sequence"`
	EntryDate   time.Time       `json:"entryDate"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
	Reference   string          `json:"reference,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListJournalResponse defines the paginated journal listing, newest first.
type ListJournalResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// JournalTotalsResponse summarizes the journal for dashboards.
type JournalTotalsResponse struct {
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	Balance      decimal.Decimal `json:"balance"`
	EntryCount   int             `json:"entryCount"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		EntryID:     e.EntryID,
		Sequence:    e.Sequence,
		EntryDate:   e.EntryDate,
		Category:    string(e.Category),
		Description: e.Description,
		Debit:       e.Debit,
		Credit:      e.Credit,
		Balance:     e.Balance,
		Reference:   e.Reference,
		CreatedAt:   e.CreatedAt,
	}
}

// ToJournalEntryResponses converts a slice of domain.JournalEntry to DTOs.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToJournalEntryResponse(&entries[i])
	}
	return responses
}
