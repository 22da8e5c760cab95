package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/megdcosta/frijio/internal/database"
	"github.com/megdcosta/frijio/internal/models"
)

type GroceryStore struct {
	db *database.DB
}

func NewGroceryStore(db *database.DB) *GroceryStore {
	return &GroceryStore{db: db}
}

func (s *GroceryStore) Create(ctx context.Context, item *models.GroceryItem) error {
	item.ID = uuid.NewString()

	err := s.db.QueryRow(ctx,
		`INSERT INTO grocery_items (id, fridge_id, name, quantity, added_by, is_checked)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		item.ID, item.FridgeID, item.Name, item.Quantity,
		item.AddedBy, item.IsChecked).Scan(&item.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create grocery item: %w", err)
	}
	return nil
}

func (s *GroceryStore) ListByFridge(ctx context.Context, fridgeID string) ([]models.GroceryItem, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, fridge_id, name, quantity, added_by, is_checked, created_at
		 FROM grocery_items WHERE fridge_id = $1 ORDER BY seq ASC`,
		fridgeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list grocery items: %w", err)
	}
	defer rows.Close()

	var items []models.GroceryItem
	for rows.Next() {
		var item models.GroceryItem
		if err := rows.Scan(&item.ID, &item.FridgeID, &item.Name, &item.Quantity,
			&item.AddedBy, &item.IsChecked, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan grocery item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grocery items: %w", err)
	}
	return items, nil
}

func (s *GroceryStore) Toggle(ctx context.Context, fridgeID, itemID string) (bool, error) {
	result, err := s.db.Exec(ctx,
		"UPDATE grocery_items SET is_checked = NOT is_checked WHERE id = $1 AND fridge_id = $2",
		itemID, fridgeID)

	if err != nil {
		return false, fmt.Errorf("failed to toggle grocery item: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

func (s *GroceryStore) Delete(ctx context.Context, fridgeID, itemID string) error {
	_, err := s.db.Exec(ctx,
		"DELETE FROM grocery_items WHERE id = $1 AND fridge_id = $2",
		itemID, fridgeID)

	if err != nil {
		return fmt.Errorf("failed to delete grocery item: %w", err)
	}
	return nil
}
