package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	"github.com/shopledger/shop_ledger_app/internal/utils/pagination"
)

// JournalRepository is the append-only journal view over a Store.
type JournalRepository struct {
	store *Store
}

func newJournalRepository(store *Store) *JournalRepository {
	return &JournalRepository{store: store}
}

var _ portsrepo.JournalRepositoryFacade = (*JournalRepository)(nil)

func (r *JournalRepository) LastEntry(ctx context.Context) (*domain.JournalEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if len(r.store.journal) == 0 {
		return nil, nil
	}
	last := r.store.journal[len(r.store.journal)-1]
	return &last, nil
}

// ListEntries pages newest-first over append order. The token encodes the
// sequence of the last entry returned; the next page continues below it.
func (r *JournalRepository) ListEntries(ctx context.Context, limit int, nextToken *string, since *time.Time) ([]domain.JournalEntry, *string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	maxSeq := int64(len(r.store.journal)) + 1
	if nextToken != nil {
		seq, err := pagination.DecodeSequenceToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
		}
		maxSeq = seq
	}

	entries := make([]domain.JournalEntry, 0, limit)
	var lastSeq int64
	for i := len(r.store.journal) - 1; i >= 0 && len(entries) < limit; i-- {
		e := r.store.journal[i]
		if e.Sequence >= maxSeq {
			continue
		}
		if since != nil && e.EntryDate.Before(*since) {
			continue
		}
		entries = append(entries, e)
		lastSeq = e.Sequence
	}

	var token *string
	if len(entries) == limit && lastSeq > 1 {
		t := pagination.EncodeSequenceToken(lastSeq)
		token = &t
	}
	return entries, token, nil
}

func (r *JournalRepository) AllEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]domain.JournalEntry(nil), r.store.journal...), nil
}

func (r *JournalRepository) AppendEntry(ctx context.Context, entry *domain.JournalEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.journalSeq++
	entry.Sequence = r.store.journalSeq
	r.store.journal = append(r.store.journal, *entry)
	return nil
}
