package service

import (
	"context"
	"testing"

	"minesbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shopServiceFixture struct {
	service     ShopService
	factory     *MockUnitOfWorkFactory
	uow         *MockUnitOfWork
	userRepo    *MockUserRepository
	historyRepo *MockBalanceHistoryRepository
	itemRepo    *MockItemRepository
	uowBus      *MockEventPublisher
}

func newShopServiceFixture() *shopServiceFixture {
	f := &shopServiceFixture{
		factory:     new(MockUnitOfWorkFactory),
		uow:         new(MockUnitOfWork),
		userRepo:    new(MockUserRepository),
		historyRepo: new(MockBalanceHistoryRepository),
		itemRepo:    new(MockItemRepository),
		uowBus:      new(MockEventPublisher),
	}
	f.uow.SetRepositories(f.userRepo, f.historyRepo, f.itemRepo, f.uowBus)
	f.service = NewShopService(f.factory, NewLockTable())
	return f
}

func (f *shopServiceFixture) expectTransaction(ctx context.Context) {
	f.factory.On("Create").Return(f.uow)
	f.uow.On("Begin", ctx).Return(nil)
	f.uow.On("Commit").Return(nil)
	f.uow.On("Rollback").Return(nil)
}

func TestShopService_ListItems(t *testing.T) {
	f := newShopServiceFixture()

	items := f.service.ListItems()

	require.NotEmpty(t, items)
	for _, item := range items {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Emoji)
		assert.Positive(t, item.Price)
	}
}

func TestShopService_OwnedItems(t *testing.T) {
	ctx := context.Background()

	f := newShopServiceFixture()
	f.expectTransaction(ctx)
	f.itemRepo.On("GetOwned", ctx, int64(100)).Return([]string{"star", "crown"}, nil)

	items, err := f.service.OwnedItems(ctx, 100)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "star", items[0].ID)
	assert.Equal(t, "crown", items[1].ID)
}

func TestShopService_Buy(t *testing.T) {
	ctx := context.Background()

	t.Run("successful purchase", func(t *testing.T) {
		f := newShopServiceFixture()
		f.expectTransaction(ctx)

		f.userRepo.On("GetByDiscordID", ctx, int64(100)).Return(&models.User{DiscordID: 100, Balance: 150}, nil)
		f.itemRepo.On("Has", ctx, int64(100), "star").Return(false, nil)
		f.userRepo.On("DeductBalance", ctx, int64(100), int64(100)).Return(nil)
		f.itemRepo.On("Grant", ctx, int64(100), "star").Return(nil)
		f.historyRepo.On("Record", ctx, mock.MatchedBy(func(h *models.BalanceHistory) bool {
			return h.TransactionType == models.TransactionTypeItemPurchase && h.ChangeAmount == -100
		})).Return(nil)
		f.uowBus.On("Publish", mock.Anything)

		item, err := f.service.Buy(ctx, 100, "star")

		require.NoError(t, err)
		assert.Equal(t, "star", item.ID)
		f.itemRepo.AssertExpectations(t)
		f.userRepo.AssertExpectations(t)
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newShopServiceFixture()

		_, err := f.service.Buy(ctx, 100, "nonexistent")
		assert.ErrorIs(t, err, ErrItemNotFound)
		f.factory.AssertNotCalled(t, "Create")
	})

	t.Run("already owned", func(t *testing.T) {
		f := newShopServiceFixture()
		f.expectTransaction(ctx)

		f.userRepo.On("GetByDiscordID", ctx, int64(100)).Return(&models.User{DiscordID: 100, Balance: 1000}, nil)
		f.itemRepo.On("Has", ctx, int64(100), "star").Return(true, nil)

		_, err := f.service.Buy(ctx, 100, "star")

		assert.ErrorIs(t, err, ErrItemAlreadyOwned)
		f.userRepo.AssertNotCalled(t, "DeductBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		f := newShopServiceFixture()
		f.expectTransaction(ctx)

		f.userRepo.On("GetByDiscordID", ctx, int64(100)).Return(&models.User{DiscordID: 100, Balance: 50}, nil)
		f.itemRepo.On("Has", ctx, int64(100), "star").Return(false, nil)

		_, err := f.service.Buy(ctx, 100, "star")

		assert.ErrorIs(t, err, ErrInsufficientFunds)
	})
}

func TestShopService_Give(t *testing.T) {
	ctx := context.Background()

	t.Run("successful gift", func(t *testing.T) {
		f := newShopServiceFixture()
		f.expectTransaction(ctx)

		f.userRepo.On("GetByDiscordID", ctx, int64(200)).Return(&models.User{DiscordID: 200, Username: "bob"}, nil)
		f.itemRepo.On("Has", ctx, int64(100), "star").Return(true, nil)
		f.itemRepo.On("Has", ctx, int64(200), "star").Return(false, nil)
		f.itemRepo.On("Revoke", ctx, int64(100), "star").Return(nil)
		f.itemRepo.On("Grant", ctx, int64(200), "star").Return(nil)

		err := f.service.Give(ctx, 100, 200, "star")

		require.NoError(t, err)
		f.itemRepo.AssertExpectations(t)
	})

	t.Run("sender does not own the item", func(t *testing.T) {
		f := newShopServiceFixture()
		f.expectTransaction(ctx)

		f.userRepo.On("GetByDiscordID", ctx, int64(200)).Return(&models.User{DiscordID: 200}, nil)
		f.itemRepo.On("Has", ctx, int64(100), "star").Return(false, nil)

		err := f.service.Give(ctx, 100, 200, "star")

		assert.ErrorIs(t, err, ErrItemNotOwned)
	})

	t.Run("recipient already owns the item", func(t *testing.T) {
		f := newShopServiceFixture()
		f.expectTransaction(ctx)

		f.userRepo.On("GetByDiscordID", ctx, int64(200)).Return(&models.User{DiscordID: 200}, nil)
		f.itemRepo.On("Has", ctx, int64(100), "star").Return(true, nil)
		f.itemRepo.On("Has", ctx, int64(200), "star").Return(true, nil)

		err := f.service.Give(ctx, 100, 200, "star")

		assert.ErrorIs(t, err, ErrItemAlreadyOwned)
	})

	t.Run("self gift", func(t *testing.T) {
		f := newShopServiceFixture()

		err := f.service.Give(ctx, 100, 100, "star")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}
