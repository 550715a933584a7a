package service

import (
	"context"
	"fmt"
	"sort"

	"minesbot/models"
)

// statsService implements the StatsService interface
type statsService struct {
	uowFactory UnitOfWorkFactory
}

// NewStatsService creates a new stats service
func NewStatsService(uowFactory UnitOfWorkFactory) StatsService {
	return &statsService{
		uowFactory: uowFactory,
	}
}

// Leaderboard returns the top users by balance. The repository returns users
// in creation order, and the sort is stable, so ties keep that order.
func (s *statsService) Leaderboard(ctx context.Context, topN int) ([]*models.LeaderboardEntry, error) {
	if topN <= 0 {
		return nil, fmt.Errorf("%w: topN must be positive", ErrInvalidAmount)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	users, err := uow.UserRepository().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	entries := make([]*models.LeaderboardEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, &models.LeaderboardEntry{
			DiscordID: user.DiscordID,
			Username:  user.Username,
			Balance:   user.Balance,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Balance > entries[j].Balance
	})

	if len(entries) > topN {
		entries = entries[:topN]
	}
	for i, entry := range entries {
		entry.Rank = i + 1
	}

	return entries, nil
}
