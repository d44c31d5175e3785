package repositories

import (
	"context"
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// JournalReader defines read operations for the journal.
type JournalReader interface {
	// LastEntry retrieves the most recently appended entry, or nil when the
	// journal is empty.
	LastEntry(ctx context.Context) (*domain.JournalEntry, error)

	// ListEntries retrieves entries newest-first for display, using
	// token-based pagination over the append sequence. A non-nil since
	// restricts to entries dated on or after it.
	ListEntries(ctx context.Context, limit int, nextToken *string, since *time.Time) ([]domain.JournalEntry, *string, error)

	// AllEntries retrieves the full journal in append order, oldest first.
	AllEntries(ctx context.Context) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for the journal.
type JournalWriter interface {
	// AppendEntry persists a new entry at the end of the journal, assigning
	// its append sequence. Entries are immutable once appended.
	AppendEntry(ctx context.Context, entry *domain.JournalEntry) error
}

// JournalRepositoryFacade combines all journal repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
