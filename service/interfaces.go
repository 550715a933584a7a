package service

import (
	"context"
	"time"

	"minesbot/events"
	"minesbot/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// GetByDiscordID retrieves a user by their Discord ID, nil if absent
	GetByDiscordID(ctx context.Context, discordID int64) (*models.User, error)

	// Create creates a new user with the initial balance
	Create(ctx context.Context, discordID int64, username string, initialBalance int64) (*models.User, error)

	// AddBalance adds to a user's balance atomically
	AddBalance(ctx context.Context, discordID int64, amount int64) error

	// DeductBalance deducts from a user's balance atomically, failing if insufficient funds
	DeductBalance(ctx context.Context, discordID int64, amount int64) error

	// SetBalance overwrites a user's balance (admin surface)
	SetBalance(ctx context.Context, discordID int64, balance int64) error

	// RecordBonusClaim stores the claim timestamp for the given bonus kind
	RecordBonusClaim(ctx context.Context, discordID int64, kind models.BonusKind, claimedAt time.Time) error

	// GetAll returns all users ordered by creation time
	GetAll(ctx context.Context) ([]*models.User, error)

	// ResetAll sets every user's balance to the given value and clears claim timestamps
	ResetAll(ctx context.Context, balance int64) error
}

// BalanceHistoryRepository defines the interface for balance history tracking
type BalanceHistoryRepository interface {
	// Record creates a new balance history entry
	Record(ctx context.Context, history *models.BalanceHistory) error

	// GetByUser returns recent balance history for a specific user
	GetByUser(ctx context.Context, discordID int64, limit int) ([]*models.BalanceHistory, error)
}

// ItemRepository defines the interface for cosmetic item ownership
type ItemRepository interface {
	// GetOwned returns the catalog IDs of items the user owns
	GetOwned(ctx context.Context, discordID int64) ([]string, error)

	// Has reports whether the user owns the given item
	Has(ctx context.Context, discordID int64, itemID string) (bool, error)

	// Grant gives the item to the user
	Grant(ctx context.Context, discordID int64, itemID string) error

	// Revoke removes the item from the user
	Revoke(ctx context.Context, discordID int64, itemID string) error

	// RemoveAll clears all ownership rows (admin reset)
	RemoveAll(ctx context.Context) error
}

// SessionStore holds at most one game session per user. Implementations must
// be safe for concurrent use; callers serialize per-user access themselves.
type SessionStore interface {
	// Get returns the user's session, nil if absent
	Get(ctx context.Context, userID int64) (*models.Session, error)

	// Put stores the user's session, replacing any existing one
	Put(ctx context.Context, session *models.Session) error

	// Remove deletes the user's session if present
	Remove(ctx context.Context, userID int64) error

	// Clear deletes every stored session (admin reset)
	Clear(ctx context.Context) error
}

// MinefieldGenerator produces randomized bomb layouts
type MinefieldGenerator interface {
	// Generate returns mineCount distinct cell indices drawn uniformly from [0, size)
	Generate(size, mineCount int) ([]int, error)
}

// UserService defines the interface for user and ledger operations
type UserService interface {
	// GetOrCreateUser retrieves an existing user or creates a new one with the starting balance
	GetOrCreateUser(ctx context.Context, discordID int64, username string) (*models.User, error)

	// Transfer gifts amount from one user to another, all-or-nothing
	Transfer(ctx context.Context, fromDiscordID, toDiscordID int64, amount int64) (*models.TransferResult, error)

	// SetBalance overwrites a user's balance (admin surface)
	SetBalance(ctx context.Context, discordID int64, balance int64) error

	// ResetAll restores every account to the starting balance and clears inventories
	ResetAll(ctx context.Context) error
}

// GameService defines the mines game state machine
type GameService interface {
	// StartSession debits the stake and creates a fresh session for the user
	StartSession(ctx context.Context, userID int64, stake int64, mineCount int) (*models.Session, error)

	// RevealCell opens a cell; hitting a bomb ends the session as lost
	RevealCell(ctx context.Context, userID int64, index int) (*models.RevealResult, error)

	// Cashout credits the payout for the revealed gems and ends the session
	Cashout(ctx context.Context, userID int64) (*models.CashoutResult, error)

	// ActiveSession returns the user's current session, nil if none
	ActiveSession(ctx context.Context, userID int64) (*models.Session, error)
}

// BonusService defines the time-gated recurring rewards
type BonusService interface {
	// ClaimDaily grants the daily bonus if its cooldown has elapsed
	ClaimDaily(ctx context.Context, discordID int64) (*models.BonusResult, error)

	// ClaimWeekly grants the weekly bonus if its cooldown has elapsed
	ClaimWeekly(ctx context.Context, discordID int64) (*models.BonusResult, error)
}

// StatsService defines the interface for statistics operations
type StatsService interface {
	// Leaderboard returns the top users by balance, ties broken by creation order
	Leaderboard(ctx context.Context, topN int) ([]*models.LeaderboardEntry, error)
}

// ShopService defines the cosmetic shop operations
type ShopService interface {
	// ListItems returns the purchasable catalog
	ListItems() []models.Item

	// OwnedItems returns the items the user owns
	OwnedItems(ctx context.Context, discordID int64) ([]models.Item, error)

	// Buy debits the item price and grants the item
	Buy(ctx context.Context, discordID int64, itemID string) (*models.Item, error)

	// Give moves an owned item to another user
	Give(ctx context.Context, fromDiscordID, toDiscordID int64, itemID string) error
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Repository getters
	UserRepository() UserRepository
	BalanceHistoryRepository() BalanceHistoryRepository
	ItemRepository() ItemRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
