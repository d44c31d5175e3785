package services

import (
	"context"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/dto"
)

// JournalSvcFacade defines the append-only journal surface.
type JournalSvcFacade interface {
	// AppendManual appends a manual journal entry. At most one of debit and
	// credit may be zero and neither may be negative.
	AppendManual(ctx context.Context, req dto.AppendJournalRequest) (*domain.JournalEntry, error)

	// Query retrieves entries newest-first for display. The running balance
	// on each entry was fixed at append time from append order; display
	// order never re-derives it.
	Query(ctx context.Context, params dto.ListJournalParams) (*dto.ListJournalResponse, error)

	// Totals summarizes the whole journal.
	Totals(ctx context.Context) (*dto.JournalTotalsResponse, error)
}
