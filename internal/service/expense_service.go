package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/megdcosta/frijio/internal/apperr"
	"github.com/megdcosta/frijio/internal/models"
	"github.com/megdcosta/frijio/internal/store"
)

// ExpenseService records shared costs. Expenses are immutable once created
// and live in a flat collection filtered by fridge; creation deliberately
// does not verify the fridge exists.
type ExpenseService struct {
	expenses store.ExpenseStore
	logger   *slog.Logger
}

func NewExpenseService(expenses store.ExpenseStore, logger *slog.Logger) *ExpenseService {
	return &ExpenseService{expenses: expenses, logger: logger}
}

// AddExpense validates every field before any write, collecting one message
// per missing or invalid field.
func (s *ExpenseService) AddExpense(ctx context.Context, fridgeID string, req models.CreateExpenseRequest) (*models.Expense, error) {
	var problems []string
	if strings.TrimSpace(req.ItemName) == "" {
		problems = append(problems, "Please enter an item name.")
	}
	if req.Cost <= 0 {
		problems = append(problems, "Cost must be greater than zero.")
	}
	if strings.TrimSpace(req.PayerID) == "" {
		problems = append(problems, "Please enter the payer ID.")
	}
	userIDs := SplitUserIDs(req.UserIDs)
	if len(userIDs) == 0 {
		problems = append(problems, "Please enter at least one user ID to split the cost.")
	}
	if len(problems) > 0 {
		return nil, apperr.Validation(problems...)
	}

	expense := &models.Expense{
		ItemName: req.ItemName,
		Cost:     req.Cost,
		PayerID:  req.PayerID,
		UserIDs:  userIDs,
		FridgeID: fridgeID,
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.logger.Info("expense added", "fridge_id", fridgeID, "expense_id", expense.ID, "cost", expense.Cost)
	return expense, nil
}

// ListExpenses returns the fridge's expenses ordered by creation time.
func (s *ExpenseService) ListExpenses(ctx context.Context, fridgeID string) ([]models.Expense, error) {
	return s.expenses.ListByFridge(ctx, fridgeID)
}

// SplitUserIDs turns a comma-separated list of user IDs into a trimmed
// slice, dropping empty entries.
func SplitUserIDs(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
