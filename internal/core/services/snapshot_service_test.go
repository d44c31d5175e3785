package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/core/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/repositories/memory"
)

// fakeSnapshotRepo records the last saved snapshot in memory.
type fakeSnapshotRepo struct {
	latest *domain.Snapshot
}

func (f *fakeSnapshotRepo) SaveSnapshot(_ context.Context, snapshot domain.Snapshot) error {
	f.latest = &snapshot
	return nil
}

func (f *fakeSnapshotRepo) LoadLatestSnapshot(_ context.Context) (*domain.Snapshot, error) {
	return f.latest, nil
}

func TestSnapshotRoundTripPreservesState(t *testing.T) {
	container, _ := newTestEngine(t)
	ctx := context.Background()

	createProduct(t, container, "RICE")
	stockIn(t, container, "RICE", date(2025, time.January, 1), "10", "5")
	sale := recordSale(t, container, "RICE", "4", "12", "20")
	require.NotNil(t, sale.DebtID)
	payDebt(t, container, *sale.DebtID, "10")

	snapshot, err := container.Snapshot.Export(ctx)
	require.NoError(t, err)

	// Load the snapshot into a completely fresh engine.
	freshStore := memory.NewStore()
	fresh := services.NewServiceContainer(memory.NewRepositoryProvider(freshStore), nil)
	require.NoError(t, fresh.Snapshot.Import(ctx, snapshot))

	restored, err := fresh.Snapshot.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot, restored)

	// The restored engine keeps working where the original left off: batch
	// state, debt balances and journal sequencing all survive.
	debt, err := fresh.Debt.GetDebtByID(ctx, *sale.DebtID)
	require.NoError(t, err)
	assertDecimal(t, "18", debt.RemainingBalance())

	batches, err := fresh.Inventory.ListBatches(ctx, "RICE")
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assertDecimal(t, "6", batches[0].Remaining)

	entry, err := fresh.Journal.AppendManual(ctx, dto.AppendJournalRequest{
		EntryDate:   date(2025, time.May, 1),
		Description: "post-restore adjustment",
		Credit:      dec(t, "5"),
	})
	require.NoError(t, err)
	assert.Equal(t, snapshot.JournalSequence+1, entry.Sequence)
}

func TestSnapshotPersistAndRestoreWithRepository(t *testing.T) {
	ctx := context.Background()

	saved := &fakeSnapshotRepo{}

	store := memory.NewStore()
	container := services.NewServiceContainer(memory.NewRepositoryProvider(store), saved)

	createProduct(t, container, "OIL")
	stockIn(t, container, "OIL", date(2025, time.February, 1), "8", "3")
	require.NoError(t, container.Snapshot.Persist(ctx))
	require.NotNil(t, saved.latest)

	// Boot a second engine from the saved snapshot.
	rebootStore := memory.NewStore()
	reboot := services.NewServiceContainer(memory.NewRepositoryProvider(rebootStore), saved)
	require.NoError(t, reboot.Snapshot.Restore(ctx))

	products, err := reboot.Inventory.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "OIL", products[0].Code)
}

func TestSnapshotPersistWithoutRepositoryIsNoOp(t *testing.T) {
	container, _ := newTestEngine(t)
	require.NoError(t, container.Snapshot.Persist(context.Background()))
	require.NoError(t, container.Snapshot.Restore(context.Background()))
}
