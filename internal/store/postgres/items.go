package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/megdcosta/frijio/internal/database"
	"github.com/megdcosta/frijio/internal/models"
)

type ItemStore struct {
	db *database.DB
}

func NewItemStore(db *database.DB) *ItemStore {
	return &ItemStore{db: db}
}

func (s *ItemStore) Create(ctx context.Context, item *models.Item) error {
	item.ID = uuid.NewString()

	err := s.db.QueryRow(ctx,
		`INSERT INTO fridge_items (id, fridge_id, name, item_type, quantity, expiration_date, added_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		item.ID, item.FridgeID, item.Name, item.Type, item.Quantity,
		item.ExpirationDate, item.AddedBy).Scan(&item.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

func (s *ItemStore) ListByFridge(ctx context.Context, fridgeID string) ([]models.Item, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, fridge_id, name, item_type, quantity, expiration_date, added_by, created_at
		 FROM fridge_items WHERE fridge_id = $1 ORDER BY seq ASC`,
		fridgeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.FridgeID, &item.Name, &item.Type,
			&item.Quantity, &item.ExpirationDate, &item.AddedBy, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}
	return items, nil
}

func (s *ItemStore) Update(ctx context.Context, item *models.Item) (bool, error) {
	result, err := s.db.Exec(ctx,
		`UPDATE fridge_items
		 SET name = $1, item_type = $2, quantity = $3, expiration_date = $4
		 WHERE id = $5 AND fridge_id = $6`,
		item.Name, item.Type, item.Quantity, item.ExpirationDate,
		item.ID, item.FridgeID)

	if err != nil {
		return false, fmt.Errorf("failed to update item: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

func (s *ItemStore) Delete(ctx context.Context, fridgeID, itemID string) error {
	// Deleting an absent item is a silent success, like the backing
	// document store's delete-of-absent behavior.
	_, err := s.db.Exec(ctx,
		"DELETE FROM fridge_items WHERE id = $1 AND fridge_id = $2",
		itemID, fridgeID)

	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
