package service

import (
	"context"
	"fmt"

	"minesbot/models"
)

// shopService implements the ShopService interface. The catalog is static;
// only ownership and the purchase debit touch storage.
type shopService struct {
	uowFactory UnitOfWorkFactory
	locks      *LockTable
}

// NewShopService creates a new shop service
func NewShopService(uowFactory UnitOfWorkFactory, locks *LockTable) ShopService {
	return &shopService{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

func (s *shopService) ListItems() []models.Item {
	return models.Catalog()
}

func (s *shopService) OwnedItems(ctx context.Context, discordID int64) ([]models.Item, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	ids, err := uow.ItemRepository().GetOwned(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owned items: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	items := make([]models.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := models.ItemByID(id); ok {
			items = append(items, item)
		}
	}
	return items, nil
}

// Buy debits the item price and grants the item in one transaction
func (s *shopService) Buy(ctx context.Context, discordID int64, itemID string) (*models.Item, error) {
	item, ok := models.ItemByID(itemID)
	if !ok {
		return nil, ErrItemNotFound
	}

	unlock := s.locks.Lock(discordID)
	defer unlock()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	owned, err := uow.ItemRepository().Has(ctx, discordID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to check ownership: %w", err)
	}
	if owned {
		return nil, ErrItemAlreadyOwned
	}

	if user.Balance < item.Price {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, user.Balance, item.Price)
	}

	if err := uow.UserRepository().DeductBalance(ctx, discordID, item.Price); err != nil {
		return nil, fmt.Errorf("failed to debit purchase: %w", err)
	}
	if err := uow.ItemRepository().Grant(ctx, discordID, itemID); err != nil {
		return nil, fmt.Errorf("failed to grant item: %w", err)
	}

	history := &models.BalanceHistory{
		DiscordID:       discordID,
		BalanceBefore:   user.Balance,
		BalanceAfter:    user.Balance - item.Price,
		ChangeAmount:    -item.Price,
		TransactionType: models.TransactionTypeItemPurchase,
		TransactionMetadata: map[string]any{
			"item_id": itemID,
			"price":   item.Price,
		},
	}
	if err := RecordBalanceChange(ctx, uow, history); err != nil {
		return nil, fmt.Errorf("failed to record balance change: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &item, nil
}

// Give moves an owned item to another user
func (s *shopService) Give(ctx context.Context, fromDiscordID, toDiscordID int64, itemID string) error {
	if _, ok := models.ItemByID(itemID); !ok {
		return ErrItemNotFound
	}
	if fromDiscordID == toDiscordID {
		return fmt.Errorf("%w: cannot give an item to yourself", ErrInvalidAmount)
	}

	unlock := s.locks.LockPair(fromDiscordID, toDiscordID)
	defer unlock()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	toUser, err := uow.UserRepository().GetByDiscordID(ctx, toDiscordID)
	if err != nil {
		return fmt.Errorf("failed to get recipient: %w", err)
	}
	if toUser == nil {
		return ErrUserNotFound
	}

	owned, err := uow.ItemRepository().Has(ctx, fromDiscordID, itemID)
	if err != nil {
		return fmt.Errorf("failed to check ownership: %w", err)
	}
	if !owned {
		return ErrItemNotOwned
	}

	alreadyHas, err := uow.ItemRepository().Has(ctx, toDiscordID, itemID)
	if err != nil {
		return fmt.Errorf("failed to check recipient ownership: %w", err)
	}
	if alreadyHas {
		return ErrItemAlreadyOwned
	}

	if err := uow.ItemRepository().Revoke(ctx, fromDiscordID, itemID); err != nil {
		return fmt.Errorf("failed to revoke item: %w", err)
	}
	if err := uow.ItemRepository().Grant(ctx, toDiscordID, itemID); err != nil {
		return fmt.Errorf("failed to grant item: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
