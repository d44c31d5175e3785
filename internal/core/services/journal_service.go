package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/middleware"
	"github.com/shopledger/shop_ledger_app/internal/utils/accounting"
)

// journalService owns the append-only journal. Every other service posts
// through it, so the running balance is computed in exactly one place.
type journalService struct {
	gate        *opGate
	journalRepo portsrepo.JournalRepositoryFacade
}

func newJournalService(gate *opGate, journalRepo portsrepo.JournalRepositoryFacade) *journalService {
	return &journalService{gate: gate, journalRepo: journalRepo}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// append builds and persists one entry. The running balance derives from the
// previously appended entry, never from the entry dates: backdated entries
// extend history, they do not rewrite it. Callers must hold the operation
// gate; all amounts are rounded here, once, at append time.
func (s *journalService) append(ctx context.Context, date time.Time, category domain.JournalCategory, description string, debit, credit decimal.Decimal, reference string) (*domain.JournalEntry, error) {
	if debit.IsNegative() || credit.IsNegative() {
		return nil, fmt.Errorf("%w: journal amounts must not be negative", apperrors.ErrValidation)
	}
	debit = accounting.RoundMoney(debit)
	credit = accounting.RoundMoney(credit)

	last, err := s.journalRepo.LastEntry(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read last journal entry: %w", err)
	}
	balance := decimal.Zero
	if last != nil {
		balance = last.Balance
	}
	balance = accounting.RoundMoney(balance.Add(credit).Sub(debit))

	now := time.Now().UTC()
	entry := domain.JournalEntry{
		EntryID:     uuid.NewString(),
		EntryDate:   date,
		Category:    category,
		Description: description,
		Debit:       debit,
		Credit:      credit,
		Balance:     balance,
		Reference:   reference,
		AuditFields: domain.NewAuditFields(now),
	}
	if err := s.journalRepo.AppendEntry(ctx, &entry); err != nil {
		return nil, fmt.Errorf("failed to append journal entry: %w", err)
	}
	return &entry, nil
}

// AppendManual records a manual journal entry.
func (s *journalService) AppendManual(ctx context.Context, req dto.AppendJournalRequest) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Debit.IsZero() && req.Credit.IsZero() {
		return nil, fmt.Errorf("%w: journal entry needs a debit or a credit", apperrors.ErrValidation)
	}

	var entry *domain.JournalEntry
	err := s.gate.run(func() error {
		var appendErr error
		entry, appendErr = s.append(ctx, req.EntryDate, domain.CategoryManual, req.Description, req.Debit, req.Credit, req.Reference)
		return appendErr
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Manual journal entry appended",
		slog.String("entry_id", entry.EntryID),
		slog.Int64("sequence", entry.Sequence))
	return entry, nil
}

// Query returns entries newest-first for display. The balances shown were
// fixed at append time; display order never re-derives them.
func (s *journalService) Query(ctx context.Context, params dto.ListJournalParams) (*dto.ListJournalResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}

	entries, nextToken, err := s.journalRepo.ListEntries(ctx, limit, params.NextToken, params.Since)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	return &dto.ListJournalResponse{
		Entries:   dto.ToJournalEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

// Totals summarizes the whole journal.
func (s *journalService) Totals(ctx context.Context) (*dto.JournalTotalsResponse, error) {
	entries, err := s.journalRepo.AllEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	totals := dto.JournalTotalsResponse{
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
		Balance:      decimal.Zero,
		EntryCount:   len(entries),
	}
	for _, e := range entries {
		totals.TotalDebits = totals.TotalDebits.Add(e.Debit)
		totals.TotalCredits = totals.TotalCredits.Add(e.Credit)
	}
	if len(entries) > 0 {
		totals.Balance = entries[len(entries)-1].Balance
	}
	return &totals, nil
}
