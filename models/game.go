package models

// RevealResult represents the outcome of revealing a cell
type RevealResult struct {
	Session *Session
	HitBomb bool
}

// CashoutResult represents the outcome of cashing out a session
type CashoutResult struct {
	Session    *Session
	Gems       int
	Multiplier float64
	Reward     int64
	NewBalance int64
}

// TransferResult represents the outcome of a gift (returned to the user)
type TransferResult struct {
	Amount        int64
	RecipientName string
	NewBalance    int64
}

// BonusKind identifies a recurring reward
type BonusKind string

const (
	BonusKindDaily  BonusKind = "daily"
	BonusKindWeekly BonusKind = "weekly"
)

// BonusResult represents the outcome of a successful bonus claim
type BonusResult struct {
	Kind       BonusKind
	Amount     int64
	NewBalance int64
}

// LeaderboardEntry represents a user's entry in the leaderboard
type LeaderboardEntry struct {
	Rank      int
	DiscordID int64
	Username  string
	Balance   int64
}
