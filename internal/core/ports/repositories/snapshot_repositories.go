package repositories

import (
	"context"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// SnapshotStore is implemented by engine stores that can externalize their
// full state. The hosting layer uses it to persist after mutations and to
// restore at boot; the engine performs no I/O of its own.
type SnapshotStore interface {
	// ExportSnapshot returns a copy of the complete engine state.
	ExportSnapshot(ctx context.Context) (domain.Snapshot, error)

	// ImportSnapshot replaces the engine state with the given snapshot.
	ImportSnapshot(ctx context.Context, snapshot domain.Snapshot) error
}

// SnapshotRepository persists snapshots durably.
type SnapshotRepository interface {
	// SaveSnapshot durably stores a snapshot.
	SaveSnapshot(ctx context.Context, snapshot domain.Snapshot) error

	// LoadLatestSnapshot retrieves the most recently saved snapshot, or nil
	// when none has been saved yet.
	LoadLatestSnapshot(ctx context.Context) (*domain.Snapshot, error)
}
