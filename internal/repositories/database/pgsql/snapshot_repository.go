package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
)

// SnapshotRepository persists full engine snapshots as jsonb rows. Each save
// inserts a new row; LoadLatestSnapshot picks the newest, so a corrupt or
// interrupted write never destroys earlier state.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository creates a snapshot repository over the given pool.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

var _ portsrepo.SnapshotRepository = (*SnapshotRepository)(nil)

// SaveSnapshot stores a snapshot and prunes rows older than the last few,
// keeping the table bounded.
func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, snapshot domain.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO snapshots (state, created_at)
		VALUES ($1, NOW());
	`, payload)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	_, err = tx.Exec(ctx, `
		DELETE FROM snapshots
		WHERE snapshot_id NOT IN (
			SELECT snapshot_id FROM snapshots ORDER BY created_at DESC, snapshot_id DESC LIMIT 10
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to prune snapshots: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadLatestSnapshot returns the newest snapshot, or nil when none exists.
func (r *SnapshotRepository) LoadLatestSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx, `
		SELECT state FROM snapshots
		ORDER BY created_at DESC, snapshot_id DESC
		LIMIT 1;
	`).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snapshot, nil
}
