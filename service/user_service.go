package service

import (
	"context"
	"fmt"

	"minesbot/config"
	"minesbot/models"
)

// userService implements the UserService interface
type userService struct {
	uowFactory UnitOfWorkFactory
	sessions   SessionStore
	locks      *LockTable
}

// NewUserService creates a new user service
func NewUserService(uowFactory UnitOfWorkFactory, sessions SessionStore, locks *LockTable) UserService {
	return &userService{
		uowFactory: uowFactory,
		sessions:   sessions,
		locks:      locks,
	}
}

// GetOrCreateUser retrieves an existing user or creates a new one with the starting balance
func (s *userService) GetOrCreateUser(ctx context.Context, discordID int64, username string) (*models.User, error) {
	unlock := s.locks.Lock(discordID)
	defer unlock()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	user, err := uow.UserRepository().GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if user != nil {
		if err := uow.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return user, nil
	}

	initialBalance := config.Get().StartingBalance
	user, err = uow.UserRepository().Create(ctx, discordID, username, initialBalance)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	history := &models.BalanceHistory{
		DiscordID:       discordID,
		BalanceBefore:   0,
		BalanceAfter:    initialBalance,
		ChangeAmount:    initialBalance,
		TransactionType: models.TransactionTypeInitial,
		TransactionMetadata: map[string]any{
			"username": username,
		},
	}
	if err := RecordBalanceChange(ctx, uow, history); err != nil {
		return nil, fmt.Errorf("failed to record initial balance: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return user, nil
}

// Transfer gifts amount from one user to another, all-or-nothing
func (s *userService) Transfer(ctx context.Context, fromDiscordID, toDiscordID int64, amount int64) (*models.TransferResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: transfer amount must be positive", ErrInvalidAmount)
	}
	if fromDiscordID == toDiscordID {
		return nil, fmt.Errorf("%w: cannot transfer to yourself", ErrInvalidAmount)
	}

	unlock := s.locks.LockPair(fromDiscordID, toDiscordID)
	defer unlock()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	fromUser, err := uow.UserRepository().GetByDiscordID(ctx, fromDiscordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sender: %w", err)
	}
	if fromUser == nil {
		return nil, ErrUserNotFound
	}
	if fromUser.Balance < amount {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, fromUser.Balance, amount)
	}

	toUser, err := uow.UserRepository().GetByDiscordID(ctx, toDiscordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipient: %w", err)
	}
	if toUser == nil {
		return nil, ErrUserNotFound
	}

	newFromBalance := fromUser.Balance - amount
	newToBalance := toUser.Balance + amount

	if err := uow.UserRepository().DeductBalance(ctx, fromDiscordID, amount); err != nil {
		return nil, fmt.Errorf("failed to deduct transfer amount: %w", err)
	}
	if err := uow.UserRepository().AddBalance(ctx, toDiscordID, amount); err != nil {
		return nil, fmt.Errorf("failed to add transfer amount: %w", err)
	}

	fromHistory := &models.BalanceHistory{
		DiscordID:       fromDiscordID,
		BalanceBefore:   fromUser.Balance,
		BalanceAfter:    newFromBalance,
		ChangeAmount:    -amount,
		TransactionType: models.TransactionTypeTransferOut,
		TransactionMetadata: map[string]any{
			"recipient_discord_id": toDiscordID,
			"recipient_username":   toUser.Username,
			"transfer_amount":      amount,
		},
	}
	if err := RecordBalanceChange(ctx, uow, fromHistory); err != nil {
		return nil, fmt.Errorf("failed to record sender balance change: %w", err)
	}

	toHistory := &models.BalanceHistory{
		DiscordID:       toDiscordID,
		BalanceBefore:   toUser.Balance,
		BalanceAfter:    newToBalance,
		ChangeAmount:    amount,
		TransactionType: models.TransactionTypeTransferIn,
		TransactionMetadata: map[string]any{
			"sender_discord_id": fromDiscordID,
			"sender_username":   fromUser.Username,
			"transfer_amount":   amount,
		},
	}
	if err := RecordBalanceChange(ctx, uow, toHistory); err != nil {
		return nil, fmt.Errorf("failed to record recipient balance change: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.TransferResult{
		Amount:        amount,
		RecipientName: toUser.Username,
		NewBalance:    newFromBalance,
	}, nil
}

// SetBalance overwrites a user's balance (admin surface)
func (s *userService) SetBalance(ctx context.Context, discordID int64, balance int64) error {
	if balance < 0 {
		return fmt.Errorf("%w: balance cannot be negative", ErrInvalidAmount)
	}

	unlock := s.locks.Lock(discordID)
	defer unlock()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().GetByDiscordID(ctx, discordID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := uow.UserRepository().SetBalance(ctx, discordID, balance); err != nil {
		return fmt.Errorf("failed to set balance: %w", err)
	}

	history := &models.BalanceHistory{
		DiscordID:       discordID,
		BalanceBefore:   user.Balance,
		BalanceAfter:    balance,
		ChangeAmount:    balance - user.Balance,
		TransactionType: models.TransactionTypeAdminSet,
		TransactionMetadata: map[string]any{
			"username": user.Username,
		},
	}
	if err := RecordBalanceChange(ctx, uow, history); err != nil {
		return fmt.Errorf("failed to record balance change: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ResetAll restores every account to the starting balance, clears cosmetic
// inventories and drops all live sessions. It is a bulk admin operation and
// does not write per-user history rows.
func (s *userService) ResetAll(ctx context.Context) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.UserRepository().ResetAll(ctx, config.Get().StartingBalance); err != nil {
		return fmt.Errorf("failed to reset balances: %w", err)
	}
	if err := uow.ItemRepository().RemoveAll(ctx); err != nil {
		return fmt.Errorf("failed to clear inventories: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear sessions: %w", err)
	}

	return nil
}
