package service

import (
	"context"
	"testing"

	"minesbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_Leaderboard(t *testing.T) {
	ctx := context.Background()

	setup := func(users []*models.User) StatsService {
		factory := new(MockUnitOfWorkFactory)
		uow := new(MockUnitOfWork)
		userRepo := new(MockUserRepository)
		uow.SetRepositories(userRepo, new(MockBalanceHistoryRepository), new(MockItemRepository), new(MockEventPublisher))

		factory.On("Create").Return(uow)
		uow.On("Begin", ctx).Return(nil)
		uow.On("Commit").Return(nil)
		uow.On("Rollback").Return(nil)
		userRepo.On("GetAll", ctx).Return(users, nil)

		return NewStatsService(factory)
	}

	t.Run("sorted by balance with ranks", func(t *testing.T) {
		service := setup([]*models.User{
			{DiscordID: 1, Username: "alice", Balance: 100},
			{DiscordID: 2, Username: "bob", Balance: 500},
			{DiscordID: 3, Username: "carol", Balance: 250},
		})

		entries, err := service.Leaderboard(ctx, 10)

		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "bob", entries[0].Username)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, "carol", entries[1].Username)
		assert.Equal(t, 2, entries[1].Rank)
		assert.Equal(t, "alice", entries[2].Username)
		assert.Equal(t, 3, entries[2].Rank)
	})

	t.Run("ties keep creation order", func(t *testing.T) {
		// GetAll returns users in creation order; the stable sort preserves it
		service := setup([]*models.User{
			{DiscordID: 1, Username: "first", Balance: 100},
			{DiscordID: 2, Username: "second", Balance: 100},
			{DiscordID: 3, Username: "third", Balance: 100},
		})

		entries, err := service.Leaderboard(ctx, 10)

		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "first", entries[0].Username)
		assert.Equal(t, "second", entries[1].Username)
		assert.Equal(t, "third", entries[2].Username)
	})

	t.Run("truncated to topN", func(t *testing.T) {
		service := setup([]*models.User{
			{DiscordID: 1, Balance: 10},
			{DiscordID: 2, Balance: 20},
			{DiscordID: 3, Balance: 30},
		})

		entries, err := service.Leaderboard(ctx, 2)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, int64(30), entries[0].Balance)
		assert.Equal(t, int64(20), entries[1].Balance)
	})

	t.Run("empty user set", func(t *testing.T) {
		service := setup(nil)

		entries, err := service.Leaderboard(ctx, 10)

		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("non-positive topN", func(t *testing.T) {
		service := setup(nil)

		_, err := service.Leaderboard(ctx, 0)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}
