package service

import (
	"context"
	"fmt"
	"time"

	"minesbot/config"
	"minesbot/events"
	"minesbot/models"

	"github.com/google/uuid"
)

// gameService is the mines state machine. The ledger is only ever touched
// through the unit of work; sessions live in the session store. All three
// operations run under the owning user's lock, so a user's start, reveals and
// cashout are mutually exclusive even under concurrent button mashing.
type gameService struct {
	uowFactory UnitOfWorkFactory
	sessions   SessionStore
	minefields MinefieldGenerator
	locks      *LockTable
	bus        EventPublisher
}

// NewGameService creates a new game service
func NewGameService(uowFactory UnitOfWorkFactory, sessions SessionStore, minefields MinefieldGenerator, locks *LockTable, bus EventPublisher) GameService {
	return &gameService{
		uowFactory: uowFactory,
		sessions:   sessions,
		minefields: minefields,
		locks:      locks,
		bus:        bus,
	}
}

func (s *gameService) StartSession(ctx context.Context, userID int64, stake int64, mineCount int) (*models.Session, error) {
	cfg := config.Get()
	if stake < cfg.MinStake {
		return nil, fmt.Errorf("%w: minimum stake is %d", ErrInvalidStake, cfg.MinStake)
	}
	if mineCount < 1 || mineCount >= models.GridSize {
		return nil, fmt.Errorf("%w: mines must be between 1 and %d", ErrInvalidMineCount, models.GridSize-1)
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	existing, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if existing != nil {
		if existing.IsPlaying() {
			return nil, ErrSessionActive
		}
		// A finished session is discarded the moment a new game starts
		if err := s.sessions.Remove(ctx, userID); err != nil {
			return nil, fmt.Errorf("failed to discard finished session: %w", err)
		}
	}

	bombs, err := s.minefields.Generate(models.GridSize, mineCount)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Stake:     stake,
		MineCount: mineCount,
		Bombs:     bombs,
		Opened:    []int{},
		Status:    models.SessionStatusPlaying,
		StartedAt: time.Now().UTC(),
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	user, err := uow.UserRepository().GetByDiscordID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Balance < stake {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, user.Balance, stake)
	}

	if err := uow.UserRepository().DeductBalance(ctx, userID, stake); err != nil {
		return nil, fmt.Errorf("failed to debit stake: %w", err)
	}

	history := &models.BalanceHistory{
		DiscordID:       userID,
		BalanceBefore:   user.Balance,
		BalanceAfter:    user.Balance - stake,
		ChangeAmount:    -stake,
		TransactionType: models.TransactionTypeStake,
		TransactionMetadata: map[string]any{
			"session_id": session.ID,
			"stake":      stake,
			"mine_count": mineCount,
		},
	}
	if err := RecordBalanceChange(ctx, uow, history); err != nil {
		return nil, fmt.Errorf("failed to record balance change: %w", err)
	}

	uow.EventBus().Publish(events.SessionStartedEvent{
		UserID:    userID,
		SessionID: session.ID,
		Stake:     stake,
		MineCount: mineCount,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if err := s.sessions.Put(ctx, session); err != nil {
		// The stake is already committed; hand it back rather than strand it
		if refundErr := s.refundStake(ctx, userID, stake, session.ID); refundErr != nil {
			return nil, fmt.Errorf("failed to store session: %w (refund failed: %v)", err, refundErr)
		}
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return session, nil
}

// refundStake returns a committed stake when the session could not be stored
func (s *gameService) refundStake(ctx context.Context, userID int64, stake int64, sessionID string) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().GetByDiscordID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := uow.UserRepository().AddBalance(ctx, userID, stake); err != nil {
		return fmt.Errorf("failed to credit refund: %w", err)
	}

	history := &models.BalanceHistory{
		DiscordID:       userID,
		BalanceBefore:   user.Balance,
		BalanceAfter:    user.Balance + stake,
		ChangeAmount:    stake,
		TransactionType: models.TransactionTypePayout,
		TransactionMetadata: map[string]any{
			"session_id": sessionID,
			"refund":     true,
		},
	}
	if err := RecordBalanceChange(ctx, uow, history); err != nil {
		return fmt.Errorf("failed to record balance change: %w", err)
	}

	return uow.Commit()
}

func (s *gameService) RevealCell(ctx context.Context, userID int64, index int) (*models.RevealResult, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil || !session.IsPlaying() {
		return nil, ErrNoActiveSession
	}
	if index < 0 || index >= models.GridSize {
		return nil, ErrIndexOutOfRange
	}
	if session.IsOpened(index) {
		return nil, ErrAlreadyOpened
	}

	session.Opened = append(session.Opened, index)
	hit := session.IsBomb(index)
	if hit {
		// The stake was debited at start, so a loss needs no ledger work
		session.Status = models.SessionStatusLost
	}

	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	if hit {
		s.bus.Publish(events.SessionEndedEvent{
			UserID:    userID,
			SessionID: session.ID,
			Status:    models.SessionStatusLost,
			Stake:     session.Stake,
			Gems:      session.Gems(),
		})
	}

	return &models.RevealResult{Session: session, HitBomb: hit}, nil
}

func (s *gameService) Cashout(ctx context.Context, userID int64) (*models.CashoutResult, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil || !session.IsPlaying() {
		return nil, ErrNoActiveSession
	}

	gems := session.Gems()
	reward := Reward(session.Stake, gems)
	multiplier := 0.0
	if gems > 0 {
		multiplier = Multiplier(gems)
	}

	// Mark the session terminal before paying out so a failure between the
	// two steps can never pay twice
	session.Status = models.SessionStatusCashedOut
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	newBalance, err := s.creditPayout(ctx, session, gems, multiplier, reward)
	if err != nil {
		// Reopen the session so the player can retry the cashout
		session.Status = models.SessionStatusPlaying
		if putErr := s.sessions.Put(ctx, session); putErr != nil {
			return nil, fmt.Errorf("failed to credit payout: %w (session stuck: %v)", err, putErr)
		}
		return nil, err
	}

	return &models.CashoutResult{
		Session:    session,
		Gems:       gems,
		Multiplier: multiplier,
		Reward:     reward,
		NewBalance: newBalance,
	}, nil
}

func (s *gameService) creditPayout(ctx context.Context, session *models.Session, gems int, multiplier float64, reward int64) (int64, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().GetByDiscordID(ctx, session.UserID)
	if err != nil {
		return 0, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return 0, ErrUserNotFound
	}

	newBalance := user.Balance
	if reward > 0 {
		newBalance = user.Balance + reward

		if err := uow.UserRepository().AddBalance(ctx, session.UserID, reward); err != nil {
			return 0, fmt.Errorf("failed to credit payout: %w", err)
		}

		history := &models.BalanceHistory{
			DiscordID:       session.UserID,
			BalanceBefore:   user.Balance,
			BalanceAfter:    newBalance,
			ChangeAmount:    reward,
			TransactionType: models.TransactionTypePayout,
			TransactionMetadata: map[string]any{
				"session_id": session.ID,
				"gems":       gems,
				"multiplier": multiplier,
			},
		}
		if err := RecordBalanceChange(ctx, uow, history); err != nil {
			return 0, fmt.Errorf("failed to record balance change: %w", err)
		}
	}

	uow.EventBus().Publish(events.SessionEndedEvent{
		UserID:    session.UserID,
		SessionID: session.ID,
		Status:    models.SessionStatusCashedOut,
		Stake:     session.Stake,
		Gems:      gems,
		Reward:    reward,
	})

	if err := uow.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return newBalance, nil
}

func (s *gameService) ActiveSession(ctx context.Context, userID int64) (*models.Session, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return session, nil
}
