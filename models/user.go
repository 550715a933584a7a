package models

import (
	"time"
)

// User represents a Discord user with a coin balance
type User struct {
	DiscordID       int64      `db:"discord_id"`
	Username        string     `db:"username"`
	Balance         int64      `db:"balance"`
	LastDailyClaim  *time.Time `db:"last_daily_claim"`
	LastWeeklyClaim *time.Time `db:"last_weekly_claim"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}
