package testutil

import (
	"time"

	"minesbot/models"
)

// CreateTestUser creates a test user with default values
func CreateTestUser(discordID int64, username string) *models.User {
	now := time.Now()
	return &models.User{
		DiscordID: discordID,
		Username:  username,
		Balance:   100,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateTestUserWithBalance creates a test user with a specific balance
func CreateTestUserWithBalance(discordID int64, username string, balance int64) *models.User {
	user := CreateTestUser(discordID, username)
	user.Balance = balance
	return user
}

// CreateTestBalanceHistory creates a test balance history entry
func CreateTestBalanceHistory(discordID int64, transactionType models.TransactionType) *models.BalanceHistory {
	return &models.BalanceHistory{
		DiscordID:       discordID,
		BalanceBefore:   100,
		BalanceAfter:    80,
		ChangeAmount:    -20,
		TransactionType: transactionType,
		TransactionMetadata: map[string]any{
			"test": true,
		},
		CreatedAt: time.Now(),
	}
}

// CreateTestSession creates a playing session with fixed bombs
func CreateTestSession(userID int64, stake int64, bombs []int) *models.Session {
	return &models.Session{
		ID:        "test-session",
		UserID:    userID,
		Stake:     stake,
		MineCount: len(bombs),
		Bombs:     bombs,
		Opened:    []int{},
		Status:    models.SessionStatusPlaying,
		StartedAt: time.Now(),
	}
}
