package service

import (
	"context"
	"time"

	"minesbot/events"
	"minesbot/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByDiscordID(ctx context.Context, discordID int64) (*models.User, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, discordID int64, username string, initialBalance int64) (*models.User, error) {
	args := m.Called(ctx, discordID, username, initialBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) AddBalance(ctx context.Context, discordID int64, amount int64) error {
	args := m.Called(ctx, discordID, amount)
	return args.Error(0)
}

func (m *MockUserRepository) DeductBalance(ctx context.Context, discordID int64, amount int64) error {
	args := m.Called(ctx, discordID, amount)
	return args.Error(0)
}

func (m *MockUserRepository) SetBalance(ctx context.Context, discordID int64, balance int64) error {
	args := m.Called(ctx, discordID, balance)
	return args.Error(0)
}

func (m *MockUserRepository) RecordBonusClaim(ctx context.Context, discordID int64, kind models.BonusKind, claimedAt time.Time) error {
	args := m.Called(ctx, discordID, kind, claimedAt)
	return args.Error(0)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) ResetAll(ctx context.Context, balance int64) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

// MockBalanceHistoryRepository is a mock implementation of BalanceHistoryRepository
type MockBalanceHistoryRepository struct {
	mock.Mock
}

func (m *MockBalanceHistoryRepository) Record(ctx context.Context, history *models.BalanceHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

func (m *MockBalanceHistoryRepository) GetByUser(ctx context.Context, discordID int64, limit int) ([]*models.BalanceHistory, error) {
	args := m.Called(ctx, discordID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BalanceHistory), args.Error(1)
}

// MockItemRepository is a mock implementation of ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) GetOwned(ctx context.Context, discordID int64) ([]string, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockItemRepository) Has(ctx context.Context, discordID int64, itemID string) (bool, error) {
	args := m.Called(ctx, discordID, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockItemRepository) Grant(ctx context.Context, discordID int64, itemID string) error {
	args := m.Called(ctx, discordID, itemID)
	return args.Error(0)
}

func (m *MockItemRepository) Revoke(ctx context.Context, discordID int64, itemID string) error {
	args := m.Called(ctx, discordID, itemID)
	return args.Error(0)
}

func (m *MockItemRepository) RemoveAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of EventPublisher for testing
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Called(event)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock

	userRepo    UserRepository
	historyRepo BalanceHistoryRepository
	itemRepo    ItemRepository
	eventBus    EventPublisher
}

// SetRepositories wires the repository mocks returned by the getters
func (m *MockUnitOfWork) SetRepositories(userRepo UserRepository, historyRepo BalanceHistoryRepository, itemRepo ItemRepository, eventBus EventPublisher) {
	m.userRepo = userRepo
	m.historyRepo = historyRepo
	m.itemRepo = itemRepo
	m.eventBus = eventBus
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) UserRepository() UserRepository {
	return m.userRepo
}

func (m *MockUnitOfWork) BalanceHistoryRepository() BalanceHistoryRepository {
	return m.historyRepo
}

func (m *MockUnitOfWork) ItemRepository() ItemRepository {
	return m.itemRepo
}

func (m *MockUnitOfWork) EventBus() EventPublisher {
	return m.eventBus
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}

// MockSessionStore is a mock implementation of SessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Get(ctx context.Context, userID int64) (*models.Session, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) Put(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) Remove(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockSessionStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
