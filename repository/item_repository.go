package repository

import (
	"context"
	"fmt"

	"minesbot/database"
)

// ItemRepository implements the service.ItemRepository interface
type ItemRepository struct {
	q queryable
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *database.DB) *ItemRepository {
	return &ItemRepository{q: db.Pool}
}

// newItemRepositoryWithTx creates a new item repository with a transaction
func newItemRepositoryWithTx(tx queryable) *ItemRepository {
	return &ItemRepository{q: tx}
}

// GetOwned returns the catalog IDs of items the user owns
func (r *ItemRepository) GetOwned(ctx context.Context, discordID int64) ([]string, error) {
	query := `
		SELECT item_id FROM user_items
		WHERE discord_id = $1
		ORDER BY acquired_at ASC
	`

	rows, err := r.q.Query(ctx, query, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items for user %d: %w", discordID, err)
	}
	defer rows.Close()

	var itemIDs []string
	for rows.Next() {
		var itemID string
		if err := rows.Scan(&itemID); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		itemIDs = append(itemIDs, itemID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return itemIDs, nil
}

// Has reports whether the user owns the given item
func (r *ItemRepository) Has(ctx context.Context, discordID int64, itemID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM user_items WHERE discord_id = $1 AND item_id = $2)`

	var owned bool
	if err := r.q.QueryRow(ctx, query, discordID, itemID).Scan(&owned); err != nil {
		return false, fmt.Errorf("failed to check item ownership for user %d: %w", discordID, err)
	}
	return owned, nil
}

// Grant gives the item to the user
func (r *ItemRepository) Grant(ctx context.Context, discordID int64, itemID string) error {
	query := `
		INSERT INTO user_items (discord_id, item_id)
		VALUES ($1, $2)
		ON CONFLICT (discord_id, item_id) DO NOTHING
	`

	if _, err := r.q.Exec(ctx, query, discordID, itemID); err != nil {
		return fmt.Errorf("failed to grant item %s to user %d: %w", itemID, discordID, err)
	}
	return nil
}

// Revoke removes the item from the user
func (r *ItemRepository) Revoke(ctx context.Context, discordID int64, itemID string) error {
	query := `DELETE FROM user_items WHERE discord_id = $1 AND item_id = $2`

	tag, err := r.q.Exec(ctx, query, discordID, itemID)
	if err != nil {
		return fmt.Errorf("failed to revoke item %s from user %d: %w", itemID, discordID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d does not own item %s", discordID, itemID)
	}
	return nil
}

// RemoveAll deletes every item ownership row
func (r *ItemRepository) RemoveAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM user_items`); err != nil {
		return fmt.Errorf("failed to remove all items: %w", err)
	}
	return nil
}
