package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/dto"
)

func TestJournalRunningBalanceFollowsAppendOrder(t *testing.T) {
	container, _ := newTestEngine(t)
	ctx := context.Background()

	steps := []struct {
		debit, credit string
		balance       string
	}{
		{"0", "100", "100"},
		{"40", "0", "60"},
		{"0", "10", "70"},
	}
	for _, step := range steps {
		entry, err := container.Journal.AppendManual(ctx, dto.AppendJournalRequest{
			EntryDate:   date(2025, time.March, 1),
			Description: "adjustment",
			Debit:       dec(t, step.debit),
			Credit:      dec(t, step.credit),
		})
		require.NoError(t, err)
		assertDecimal(t, step.balance, entry.Balance)
	}
}

func TestJournalBackdatedEntryDoesNotRewriteHistory(t *testing.T) {
	container, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := container.Journal.AppendManual(ctx, dto.AppendJournalRequest{
		EntryDate:   date(2025, time.March, 10),
		Description: "first",
		Credit:      dec(t, "100"),
	})
	require.NoError(t, err)

	// Dated before the first entry, appended after it: the balance chain
	// still follows append order.
	backdated, err := container.Journal.AppendManual(ctx, dto.AppendJournalRequest{
		EntryDate:   date(2025, time.January, 1),
		Description: "backdated",
		Debit:       dec(t, "30"),
	})
	require.NoError(t, err)
	assertDecimal(t, "70", backdated.Balance)
	assert.Greater(t, backdated.Sequence, int64(1))
}

func TestAppendManualRejectsEmptyAndNegativeAmounts(t *testing.T) {
	container, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := container.Journal.AppendManual(ctx, dto.AppendJournalRequest{
		EntryDate:   date(2025, time.March, 1),
		Description: "empty",
	})
	require.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = container.Journal.AppendManual(ctx, dto.AppendJournalRequest{
		EntryDate:   date(2025, time.March, 1),
		Description: "negative",
		Debit:       dec(t, "-5"),
	})
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestJournalQueryNewestFirstWithPagination(t *testing.T) {
	container, _ := newTestEngine(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := container.Journal.AppendManual(ctx, dto.AppendJournalRequest{
			EntryDate:   date(2025, time.March, 1+i),
			Description: "entry",
			Credit:      dec(t, "10"),
		})
		require.NoError(t, err)
	}

	page, err := container.Journal.Query(ctx, dto.ListJournalParams{Limit: 3})
	require.NoError(t, err)
	require.Len(t, page.Entries, 3)
	assert.Equal(t, int64(5), page.Entries[0].Sequence)
	assert.Equal(t, int64(3), page.Entries[2].Sequence)
	require.NotNil(t, page.NextToken)

	rest, err := container.Journal.Query(ctx, dto.ListJournalParams{Limit: 3, NextToken: page.NextToken})
	require.NoError(t, err)
	require.Len(t, rest.Entries, 2)
	assert.Equal(t, int64(2), rest.Entries[0].Sequence)
	assert.Equal(t, int64(1), rest.Entries[1].Sequence)
	assert.Nil(t, rest.NextToken)
}

func TestJournalQuerySinceFilter(t *testing.T) {
	container, _ := newTestEngine(t)
	ctx := context.Background()

	for day := 1; day <= 4; day++ {
		_, err := container.Journal.AppendManual(ctx, dto.AppendJournalRequest{
			EntryDate:   date(2025, time.March, day),
			Description: "entry",
			Credit:      dec(t, "10"),
		})
		require.NoError(t, err)
	}

	since := date(2025, time.March, 3)
	page, err := container.Journal.Query(ctx, dto.ListJournalParams{Since: &since})
	require.NoError(t, err)
	require.Len(t, page.Entries, 2)
	for _, e := range page.Entries {
		assert.False(t, e.EntryDate.Before(since))
	}
}

func TestJournalTotals(t *testing.T) {
	container, _ := newTestEngine(t)
	ctx := context.Background()

	empty, err := container.Journal.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.EntryCount)
	assertDecimal(t, "0", empty.Balance)

	_, err = container.Journal.AppendManual(ctx, dto.AppendJournalRequest{
		EntryDate:   date(2025, time.March, 1),
		Description: "in",
		Credit:      dec(t, "250"),
	})
	require.NoError(t, err)
	_, err = container.Journal.AppendManual(ctx, dto.AppendJournalRequest{
		EntryDate:   date(2025, time.March, 2),
		Description: "out",
		Debit:       dec(t, "100"),
	})
	require.NoError(t, err)

	totals, err := container.Journal.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, totals.EntryCount)
	assertDecimal(t, "100", totals.TotalDebits)
	assertDecimal(t, "250", totals.TotalCredits)
	assertDecimal(t, "150", totals.Balance)
}
