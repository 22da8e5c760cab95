package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/megdcosta/frijio/internal/database"
	"github.com/megdcosta/frijio/internal/models"
)

type ExpenseStore struct {
	db *database.DB
}

func NewExpenseStore(db *database.DB) *ExpenseStore {
	return &ExpenseStore{db: db}
}

func (s *ExpenseStore) Create(ctx context.Context, expense *models.Expense) error {
	expense.ID = uuid.NewString()

	err := s.db.QueryRow(ctx,
		`INSERT INTO expenses (id, item_name, cost, payer_id, user_ids, fridge_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		expense.ID, expense.ItemName, expense.Cost, expense.PayerID,
		expense.UserIDs, expense.FridgeID).Scan(&expense.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

func (s *ExpenseStore) ListByFridge(ctx context.Context, fridgeID string) ([]models.Expense, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, item_name, cost, payer_id, user_ids, fridge_id, created_at
		 FROM expenses WHERE fridge_id = $1 ORDER BY seq ASC`,
		fridgeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(&expense.ID, &expense.ItemName, &expense.Cost,
			&expense.PayerID, &expense.UserIDs, &expense.FridgeID, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}
	return expenses, nil
}
