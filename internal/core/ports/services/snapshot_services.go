package services

import (
	"context"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// SnapshotSvcFacade moves engine state to and from durable storage. It is
// driven by the hosting layer after successful mutations and at boot; engine
// correctness never depends on it.
type SnapshotSvcFacade interface {
	// Export returns the complete engine state.
	Export(ctx context.Context) (domain.Snapshot, error)

	// Import replaces the engine state with the given snapshot.
	Import(ctx context.Context, snapshot domain.Snapshot) error

	// Persist exports the state and saves it to the configured snapshot
	// repository. No-op when none is configured.
	Persist(ctx context.Context) error

	// Restore loads the latest saved snapshot into the engine, if any.
	Restore(ctx context.Context) error
}
