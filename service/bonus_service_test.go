package service

import (
	"context"
	"testing"
	"time"

	"minesbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bonusServiceFixture struct {
	service     *bonusService
	factory     *MockUnitOfWorkFactory
	uow         *MockUnitOfWork
	userRepo    *MockUserRepository
	historyRepo *MockBalanceHistoryRepository
	uowBus      *MockEventPublisher
}

func newBonusServiceFixture(now time.Time) *bonusServiceFixture {
	f := &bonusServiceFixture{
		factory:     new(MockUnitOfWorkFactory),
		uow:         new(MockUnitOfWork),
		userRepo:    new(MockUserRepository),
		historyRepo: new(MockBalanceHistoryRepository),
		uowBus:      new(MockEventPublisher),
	}
	f.uow.SetRepositories(f.userRepo, f.historyRepo, new(MockItemRepository), f.uowBus)

	svc := NewBonusService(f.factory, NewLockTable()).(*bonusService)
	svc.now = func() time.Time { return now }
	f.service = svc
	return f
}

func (f *bonusServiceFixture) expectTransaction(ctx context.Context) {
	f.factory.On("Create").Return(f.uow)
	f.uow.On("Begin", ctx).Return(nil)
	f.uow.On("Commit").Return(nil)
	f.uow.On("Rollback").Return(nil)
}

func TestBonusService_ClaimDaily(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("first claim succeeds", func(t *testing.T) {
		f := newBonusServiceFixture(now)
		f.expectTransaction(ctx)

		f.userRepo.On("GetByDiscordID", ctx, int64(100)).Return(&models.User{DiscordID: 100, Balance: 100}, nil)
		f.userRepo.On("AddBalance", ctx, int64(100), int64(50)).Return(nil)
		f.userRepo.On("RecordBonusClaim", ctx, int64(100), models.BonusKindDaily, now).Return(nil)
		f.historyRepo.On("Record", ctx, mock.MatchedBy(func(h *models.BalanceHistory) bool {
			return h.TransactionType == models.TransactionTypeBonusDaily && h.ChangeAmount == 50
		})).Return(nil)
		f.uowBus.On("Publish", mock.Anything)

		result, err := f.service.ClaimDaily(ctx, 100)

		require.NoError(t, err)
		assert.Equal(t, models.BonusKindDaily, result.Kind)
		assert.Equal(t, int64(50), result.Amount)
		assert.Equal(t, int64(150), result.NewBalance)
		f.userRepo.AssertExpectations(t)
	})

	t.Run("claim inside the cooldown fails", func(t *testing.T) {
		f := newBonusServiceFixture(now)
		f.expectTransaction(ctx)

		lastClaim := now.Add(-23 * time.Hour)
		f.userRepo.On("GetByDiscordID", ctx, int64(100)).Return(&models.User{
			DiscordID: 100, Balance: 100, LastDailyClaim: &lastClaim,
		}, nil)

		_, err := f.service.ClaimDaily(ctx, 100)

		require.Error(t, err)
		ce, ok := AsCooldownError(err)
		require.True(t, ok)
		assert.Equal(t, models.BonusKindDaily, ce.Kind)
		assert.Equal(t, time.Hour, ce.Remaining)
		f.userRepo.AssertNotCalled(t, "AddBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("claim exactly at the boundary succeeds", func(t *testing.T) {
		f := newBonusServiceFixture(now)
		f.expectTransaction(ctx)

		lastClaim := now.Add(-24 * time.Hour)
		f.userRepo.On("GetByDiscordID", ctx, int64(100)).Return(&models.User{
			DiscordID: 100, Balance: 100, LastDailyClaim: &lastClaim,
		}, nil)
		f.userRepo.On("AddBalance", ctx, int64(100), int64(50)).Return(nil)
		f.userRepo.On("RecordBonusClaim", ctx, int64(100), models.BonusKindDaily, now).Return(nil)
		f.historyRepo.On("Record", ctx, mock.Anything).Return(nil)
		f.uowBus.On("Publish", mock.Anything)

		_, err := f.service.ClaimDaily(ctx, 100)

		require.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newBonusServiceFixture(now)
		f.expectTransaction(ctx)

		f.userRepo.On("GetByDiscordID", ctx, int64(100)).Return(nil, nil)

		_, err := f.service.ClaimDaily(ctx, 100)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestBonusService_ClaimWeekly(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("weekly amount and cooldown", func(t *testing.T) {
		f := newBonusServiceFixture(now)
		f.expectTransaction(ctx)

		f.userRepo.On("GetByDiscordID", ctx, int64(100)).Return(&models.User{DiscordID: 100, Balance: 100}, nil)
		f.userRepo.On("AddBalance", ctx, int64(100), int64(200)).Return(nil)
		f.userRepo.On("RecordBonusClaim", ctx, int64(100), models.BonusKindWeekly, now).Return(nil)
		f.historyRepo.On("Record", ctx, mock.MatchedBy(func(h *models.BalanceHistory) bool {
			return h.TransactionType == models.TransactionTypeBonusWeekly && h.ChangeAmount == 200
		})).Return(nil)
		f.uowBus.On("Publish", mock.Anything)

		result, err := f.service.ClaimWeekly(ctx, 100)

		require.NoError(t, err)
		assert.Equal(t, models.BonusKindWeekly, result.Kind)
		assert.Equal(t, int64(200), result.Amount)
	})

	t.Run("daily claim does not block the weekly", func(t *testing.T) {
		f := newBonusServiceFixture(now)
		f.expectTransaction(ctx)

		lastDaily := now.Add(-time.Hour)
		f.userRepo.On("GetByDiscordID", ctx, int64(100)).Return(&models.User{
			DiscordID: 100, Balance: 100, LastDailyClaim: &lastDaily,
		}, nil)
		f.userRepo.On("AddBalance", ctx, int64(100), int64(200)).Return(nil)
		f.userRepo.On("RecordBonusClaim", ctx, int64(100), models.BonusKindWeekly, now).Return(nil)
		f.historyRepo.On("Record", ctx, mock.Anything).Return(nil)
		f.uowBus.On("Publish", mock.Anything)

		_, err := f.service.ClaimWeekly(ctx, 100)
		require.NoError(t, err)
	})

	t.Run("claim inside the weekly cooldown fails", func(t *testing.T) {
		f := newBonusServiceFixture(now)
		f.expectTransaction(ctx)

		lastClaim := now.Add(-3 * 24 * time.Hour)
		f.userRepo.On("GetByDiscordID", ctx, int64(100)).Return(&models.User{
			DiscordID: 100, Balance: 100, LastWeeklyClaim: &lastClaim,
		}, nil)

		_, err := f.service.ClaimWeekly(ctx, 100)

		ce, ok := AsCooldownError(err)
		require.True(t, ok)
		assert.Equal(t, models.BonusKindWeekly, ce.Kind)
		assert.Equal(t, 4*24*time.Hour, ce.Remaining)
	})
}
