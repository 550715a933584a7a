package repository

import (
	"context"
	"testing"

	"minesbot/models"
	"minesbot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceHistoryRepository_Record(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	userRepo := NewUserRepository(testDB.DB)
	repo := NewBalanceHistoryRepository(testDB.DB)
	ctx := context.Background()

	_, err := userRepo.Create(ctx, 500001, "henry", 100)
	require.NoError(t, err)

	t.Run("successful record", func(t *testing.T) {
		entry := &models.BalanceHistory{
			DiscordID:       500001,
			BalanceBefore:   100,
			BalanceAfter:    80,
			ChangeAmount:    -20,
			TransactionType: models.TransactionTypeStake,
			TransactionMetadata: map[string]any{
				"session_id": "abc-123",
				"stake":      20,
				"mine_count": 5,
			},
		}

		err := repo.Record(ctx, entry)
		require.NoError(t, err)
		assert.NotZero(t, entry.ID)
		assert.False(t, entry.CreatedAt.IsZero())
	})

	t.Run("nil metadata", func(t *testing.T) {
		entry := testutil.CreateTestBalanceHistory(500001, models.TransactionTypePayout)
		entry.TransactionMetadata = nil

		err := repo.Record(ctx, entry)
		require.NoError(t, err)
		assert.NotZero(t, entry.ID)
	})

	t.Run("unknown user violates foreign key", func(t *testing.T) {
		entry := testutil.CreateTestBalanceHistory(999999, models.TransactionTypeStake)
		err := repo.Record(ctx, entry)
		assert.Error(t, err)
	})
}

func TestBalanceHistoryRepository_GetByUser(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	userRepo := NewUserRepository(testDB.DB)
	repo := NewBalanceHistoryRepository(testDB.DB)
	ctx := context.Background()

	_, err := userRepo.Create(ctx, 600001, "iris", 100)
	require.NoError(t, err)
	_, err = userRepo.Create(ctx, 600002, "jack", 100)
	require.NoError(t, err)

	types := []models.TransactionType{
		models.TransactionTypeInitial,
		models.TransactionTypeStake,
		models.TransactionTypePayout,
	}
	for _, txType := range types {
		entry := testutil.CreateTestBalanceHistory(600001, txType)
		require.NoError(t, repo.Record(ctx, entry))
	}
	require.NoError(t, repo.Record(ctx, testutil.CreateTestBalanceHistory(600002, models.TransactionTypeInitial)))

	t.Run("returns only the user's entries", func(t *testing.T) {
		entries, err := repo.GetByUser(ctx, 600001, 10)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		for _, entry := range entries {
			assert.Equal(t, int64(600001), entry.DiscordID)
		}
	})

	t.Run("respects limit", func(t *testing.T) {
		entries, err := repo.GetByUser(ctx, 600001, 2)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("metadata round trip", func(t *testing.T) {
		entries, err := repo.GetByUser(ctx, 600002, 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, true, entries[0].TransactionMetadata["test"])
	})

	t.Run("no entries", func(t *testing.T) {
		entries, err := repo.GetByUser(ctx, 999999, 10)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
