package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/middleware"
)

// snapshotService bridges the in-memory engine state and durable storage.
// snapshotRepo may be nil when no durable backend is configured; Persist and
// Restore become no-ops then.
type snapshotService struct {
	gate         *opGate
	store        portsrepo.SnapshotStore
	snapshotRepo portsrepo.SnapshotRepository
}

func newSnapshotService(gate *opGate, store portsrepo.SnapshotStore, snapshotRepo portsrepo.SnapshotRepository) *snapshotService {
	return &snapshotService{gate: gate, store: store, snapshotRepo: snapshotRepo}
}

var _ portssvc.SnapshotSvcFacade = (*snapshotService)(nil)

func (s *snapshotService) Export(ctx context.Context) (domain.Snapshot, error) {
	return s.store.ExportSnapshot(ctx)
}

// Import replaces the engine state wholesale. Gated so no mutation can
// interleave with the swap.
func (s *snapshotService) Import(ctx context.Context, snapshot domain.Snapshot) error {
	return s.gate.run(func() error {
		return s.store.ImportSnapshot(ctx, snapshot)
	})
}

func (s *snapshotService) Persist(ctx context.Context) error {
	if s.snapshotRepo == nil {
		return nil
	}
	snapshot, err := s.store.ExportSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to export snapshot: %w", err)
	}
	if err := s.snapshotRepo.SaveSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (s *snapshotService) Restore(ctx context.Context) error {
	if s.snapshotRepo == nil {
		return nil
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	snapshot, err := s.snapshotRepo.LoadLatestSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	if snapshot == nil {
		logger.Info("No saved snapshot found, starting empty")
		return nil
	}
	if err := s.Import(ctx, *snapshot); err != nil {
		return fmt.Errorf("failed to import snapshot: %w", err)
	}
	logger.Info("State restored from snapshot",
		slog.Int("products", len(snapshot.Products)),
		slog.Int("journal_entries", len(snapshot.Journal)))
	return nil
}
