package repository

import (
	"context"
	"fmt"
	"time"

	"minesbot/database"
	"minesbot/models"

	"github.com/jackc/pgx/v5"
)

// UserRepository implements the service.UserRepository interface
type UserRepository struct {
	q queryable
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{q: db.Pool}
}

// newUserRepositoryWithTx creates a new user repository with a transaction
func newUserRepositoryWithTx(tx queryable) *UserRepository {
	return &UserRepository{q: tx}
}

const userColumns = `discord_id, username, balance, last_daily_claim, last_weekly_claim, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.DiscordID,
		&user.Username,
		&user.Balance,
		&user.LastDailyClaim,
		&user.LastWeeklyClaim,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByDiscordID retrieves a user by their Discord ID, nil if absent
func (r *UserRepository) GetByDiscordID(ctx context.Context, discordID int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE discord_id = $1`

	user, err := scanUser(r.q.QueryRow(ctx, query, discordID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by discord ID %d: %w", discordID, err)
	}
	return user, nil
}

// Create creates a new user with the initial balance
func (r *UserRepository) Create(ctx context.Context, discordID int64, username string, initialBalance int64) (*models.User, error) {
	query := `
		INSERT INTO users (discord_id, username, balance)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns

	user, err := scanUser(r.q.QueryRow(ctx, query, discordID, username, initialBalance))
	if err != nil {
		return nil, fmt.Errorf("failed to create user with discord ID %d: %w", discordID, err)
	}
	return user, nil
}

// AddBalance adds to a user's balance atomically
func (r *UserRepository) AddBalance(ctx context.Context, discordID int64, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("amount must not be negative")
	}

	query := `
		UPDATE users
		SET balance = balance + $1, updated_at = NOW()
		WHERE discord_id = $2
	`

	result, err := r.q.Exec(ctx, query, amount, discordID)
	if err != nil {
		return fmt.Errorf("failed to add balance for user %d: %w", discordID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user with discord ID %d not found", discordID)
	}
	return nil
}

// DeductBalance deducts from a user's balance atomically, failing if insufficient funds
func (r *UserRepository) DeductBalance(ctx context.Context, discordID int64, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	// Guarded update: only succeeds when the balance covers the deduction
	query := `
		UPDATE users
		SET balance = balance - $1, updated_at = NOW()
		WHERE discord_id = $2 AND balance >= $1
	`

	result, err := r.q.Exec(ctx, query, amount, discordID)
	if err != nil {
		return fmt.Errorf("failed to deduct balance for user %d: %w", discordID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("insufficient balance or unknown user %d", discordID)
	}
	return nil
}

// SetBalance overwrites a user's balance
func (r *UserRepository) SetBalance(ctx context.Context, discordID int64, balance int64) error {
	query := `
		UPDATE users
		SET balance = $1, updated_at = NOW()
		WHERE discord_id = $2
	`

	result, err := r.q.Exec(ctx, query, balance, discordID)
	if err != nil {
		return fmt.Errorf("failed to set balance for user %d: %w", discordID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user with discord ID %d not found", discordID)
	}
	return nil
}

// RecordBonusClaim stores the claim timestamp for the given bonus kind
func (r *UserRepository) RecordBonusClaim(ctx context.Context, discordID int64, kind models.BonusKind, claimedAt time.Time) error {
	column := "last_daily_claim"
	if kind == models.BonusKindWeekly {
		column = "last_weekly_claim"
	}

	query := fmt.Sprintf(`
		UPDATE users
		SET %s = $1, updated_at = NOW()
		WHERE discord_id = $2
	`, column)

	result, err := r.q.Exec(ctx, query, claimedAt, discordID)
	if err != nil {
		return fmt.Errorf("failed to record %s claim for user %d: %w", kind, discordID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user with discord ID %d not found", discordID)
	}
	return nil
}

// GetAll returns all users ordered by creation time
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at ASC, discord_id ASC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// ResetAll sets every user's balance to the given value and clears claim timestamps
func (r *UserRepository) ResetAll(ctx context.Context, balance int64) error {
	query := `
		UPDATE users
		SET balance = $1, last_daily_claim = NULL, last_weekly_claim = NULL, updated_at = NOW()
	`

	if _, err := r.q.Exec(ctx, query, balance); err != nil {
		return fmt.Errorf("failed to reset balances: %w", err)
	}
	return nil
}
