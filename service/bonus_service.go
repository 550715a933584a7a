package service

import (
	"context"
	"fmt"
	"time"

	"minesbot/config"
	"minesbot/events"
	"minesbot/models"
)

const (
	dailyCooldown  = 24 * time.Hour
	weeklyCooldown = 7 * 24 * time.Hour
)

// bonusService implements the time-gated recurring rewards
type bonusService struct {
	uowFactory UnitOfWorkFactory
	locks      *LockTable
	now        func() time.Time
}

// NewBonusService creates a new bonus service
func NewBonusService(uowFactory UnitOfWorkFactory, locks *LockTable) BonusService {
	return &bonusService{
		uowFactory: uowFactory,
		locks:      locks,
		now:        time.Now,
	}
}

func (s *bonusService) ClaimDaily(ctx context.Context, discordID int64) (*models.BonusResult, error) {
	return s.claim(ctx, discordID, models.BonusKindDaily)
}

func (s *bonusService) ClaimWeekly(ctx context.Context, discordID int64) (*models.BonusResult, error) {
	return s.claim(ctx, discordID, models.BonusKindWeekly)
}

func (s *bonusService) claim(ctx context.Context, discordID int64, kind models.BonusKind) (*models.BonusResult, error) {
	cfg := config.Get()

	var amount int64
	var cooldown time.Duration
	var txType models.TransactionType
	switch kind {
	case models.BonusKindDaily:
		amount, cooldown, txType = cfg.DailyBonus, dailyCooldown, models.TransactionTypeBonusDaily
	case models.BonusKindWeekly:
		amount, cooldown, txType = cfg.WeeklyBonus, weeklyCooldown, models.TransactionTypeBonusWeekly
	default:
		return nil, fmt.Errorf("unknown bonus kind: %s", kind)
	}

	unlock := s.locks.Lock(discordID)
	defer unlock()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	user, err := uow.UserRepository().GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	now := s.now().UTC()
	lastClaim := user.LastDailyClaim
	if kind == models.BonusKindWeekly {
		lastClaim = user.LastWeeklyClaim
	}
	if lastClaim != nil {
		// A claim exactly at the cooldown boundary succeeds
		elapsed := now.Sub(*lastClaim)
		if elapsed < cooldown {
			return nil, &CooldownError{Kind: kind, Remaining: cooldown - elapsed}
		}
	}

	if err := uow.UserRepository().AddBalance(ctx, discordID, amount); err != nil {
		return nil, fmt.Errorf("failed to credit bonus: %w", err)
	}
	if err := uow.UserRepository().RecordBonusClaim(ctx, discordID, kind, now); err != nil {
		return nil, fmt.Errorf("failed to record claim: %w", err)
	}

	newBalance := user.Balance + amount
	history := &models.BalanceHistory{
		DiscordID:       discordID,
		BalanceBefore:   user.Balance,
		BalanceAfter:    newBalance,
		ChangeAmount:    amount,
		TransactionType: txType,
		TransactionMetadata: map[string]any{
			"kind": string(kind),
		},
	}
	if err := RecordBalanceChange(ctx, uow, history); err != nil {
		return nil, fmt.Errorf("failed to record balance change: %w", err)
	}

	uow.EventBus().Publish(events.BonusClaimedEvent{
		UserID: discordID,
		Kind:   kind,
		Amount: amount,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.BonusResult{
		Kind:       kind,
		Amount:     amount,
		NewBalance: newBalance,
	}, nil
}
