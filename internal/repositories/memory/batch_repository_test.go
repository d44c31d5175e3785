package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/repositories/memory"
)

func newBatch(id string, arrival time.Time, remaining string) *domain.InventoryBatch {
	qty, _ := decimal.NewFromString(remaining)
	return &domain.InventoryBatch{
		BatchID:     id,
		ProductCode: "RICE",
		ArrivalDate: arrival,
		Quantity:    qty,
		UnitPrice:   decimal.NewFromInt(5),
		Remaining:   qty,
		EntryType:   domain.EntryPurchase,
	}
}

func TestListBatchesOrdersByArrivalThenSequence(t *testing.T) {
	repos := memory.NewRepositoryProvider(memory.NewStore())
	ctx := context.Background()

	jan2 := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	jan1 := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	// Saved out of date order; the second jan1 batch shares its arrival
	// date with the first and must sort after it by creation order.
	require.NoError(t, repos.Batch.SaveBatch(ctx, newBatch("b-late", jan2, "4")))
	require.NoError(t, repos.Batch.SaveBatch(ctx, newBatch("b-first", jan1, "10")))
	require.NoError(t, repos.Batch.SaveBatch(ctx, newBatch("b-second", jan1, "6")))

	batches, err := repos.Batch.ListBatchesByProduct(ctx, "RICE")
	require.NoError(t, err)
	require.Len(t, batches, 3)
	assert.Equal(t, "b-first", batches[0].BatchID)
	assert.Equal(t, "b-second", batches[1].BatchID)
	assert.Equal(t, "b-late", batches[2].BatchID)
	assert.Less(t, batches[0].Sequence, batches[1].Sequence)
}

func TestListEligibleBatchesSkipsExhausted(t *testing.T) {
	repos := memory.NewRepositoryProvider(memory.NewStore())
	ctx := context.Background()

	jan1 := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Batch.SaveBatch(ctx, newBatch("b1", jan1, "3")))
	require.NoError(t, repos.Batch.SaveBatch(ctx, newBatch("b2", jan1, "5")))
	require.NoError(t, repos.Batch.ApplyConsumption(ctx, "b1", decimal.NewFromInt(3)))

	eligible, err := repos.Batch.ListEligibleBatches(ctx, "RICE")
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, "b2", eligible[0].BatchID)
}

func TestApplyConsumptionRejectsInvalidQuantities(t *testing.T) {
	repos := memory.NewRepositoryProvider(memory.NewStore())
	ctx := context.Background()

	jan1 := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Batch.SaveBatch(ctx, newBatch("b1", jan1, "5")))

	err := repos.Batch.ApplyConsumption(ctx, "b1", decimal.NewFromInt(6))
	assert.ErrorIs(t, err, apperrors.ErrInvalidConsumption)

	err = repos.Batch.ApplyConsumption(ctx, "b1", decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrInvalidConsumption)

	err = repos.Batch.ApplyConsumption(ctx, "missing", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Failed consumptions leave the batch untouched.
	b, err := repos.Batch.FindBatchByID(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5).Equal(b.Remaining))
}

func TestSaveProductEnforcesUniqueCode(t *testing.T) {
	repos := memory.NewRepositoryProvider(memory.NewStore())
	ctx := context.Background()

	require.NoError(t, repos.Product.SaveProduct(ctx, domain.Product{
		ProductID: "p1", Code: "RICE", Name: "Rice", Unit: "kg",
	}))

	err := repos.Product.SaveProduct(ctx, domain.Product{
		ProductID: "p2", Code: "RICE", Name: "Other rice", Unit: "kg",
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateProductCode)

	// Renaming to a taken code fails the same way.
	require.NoError(t, repos.Product.SaveProduct(ctx, domain.Product{
		ProductID: "p3", Code: "OIL", Name: "Oil", Unit: "l",
	}))
	err = repos.Product.UpdateProduct(ctx, domain.Product{
		ProductID: "p3", Code: "RICE", Name: "Oil", Unit: "l",
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateProductCode)
}
