package override_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitfield/runway/internal/cache"
	"github.com/mwhitfield/runway/internal/override"
)

func newMemStore() *override.MemStore {
	return override.NewMemStoreWithOptions(cache.Options{
		TTL:        time.Hour,
		MaxEntries: 16,
	})
}

func TestMemStoreUpsertAndRange(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	userID := uuid.New()
	rentID := uuid.New()

	jan := override.MonthYear{Year: 2024, Month: time.January}
	mar := override.MonthYear{Year: 2024, Month: time.March}
	jun := override.MonthYear{Year: 2024, Month: time.June}

	for _, month := range []override.MonthYear{jan, mar, jun} {
		err := store.Upsert(ctx, override.Override{
			UserID: userID,
			ItemID: rentID,
			Month:  month,
			Amount: decimal.NewFromInt(int64(100 * int(month.Month))),
		})
		require.NoError(t, err)
	}

	got, err := store.ForRange(ctx, userID,
		override.MonthYear{Year: 2024, Month: time.February},
		override.MonthYear{Year: 2024, Month: time.June})

	require.NoError(t, err)
	require.Len(t, got, 2, "January falls outside the range")
	assert.Equal(t, mar, got[0].Month)
	assert.Equal(t, jun, got[1].Month)
}

func TestMemStoreLastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	userID := uuid.New()
	itemID := uuid.New()
	month := override.MonthYear{Year: 2024, Month: time.May}

	require.NoError(t, store.Upsert(ctx, override.Override{
		UserID: userID, ItemID: itemID, Month: month,
		Amount: decimal.NewFromInt(100),
	}))
	require.NoError(t, store.Upsert(ctx, override.Override{
		UserID: userID, ItemID: itemID, Month: month,
		Amount: decimal.NewFromInt(250),
	}))

	got, err := store.ForMonth(ctx, userID, month)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Amount.Equal(decimal.NewFromInt(250)))
	assert.False(t, got[0].UpdatedAt.IsZero())
}

func TestMemStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	userID := uuid.New()
	keepID := uuid.New()
	dropID := uuid.New()
	month := override.MonthYear{Year: 2024, Month: time.May}

	for _, id := range []uuid.UUID{keepID, dropID} {
		require.NoError(t, store.Upsert(ctx, override.Override{
			UserID: userID, ItemID: id, Month: month,
			Amount: decimal.NewFromInt(10),
		}))
	}

	require.NoError(t, store.Delete(ctx, userID, dropID, month))

	got, err := store.ForMonth(ctx, userID, month)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, keepID, got[0].ItemID)

	// Deleting for an unknown user is a no-op.
	assert.NoError(t, store.Delete(ctx, uuid.New(), dropID, month))
}

func TestMemStoreIsolatesUsers(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	alice := uuid.New()
	bob := uuid.New()
	month := override.MonthYear{Year: 2024, Month: time.May}

	require.NoError(t, store.Upsert(ctx, override.Override{
		UserID: alice, ItemID: uuid.New(), Month: month,
		Amount: decimal.NewFromInt(10),
	}))

	got, err := store.ForMonth(ctx, bob, month)

	require.NoError(t, err)
	assert.Empty(t, got)
}
