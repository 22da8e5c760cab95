package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megdcosta/frijio/internal/apperr"
	"github.com/megdcosta/frijio/internal/models"
	"github.com/megdcosta/frijio/internal/store/memory"
)

func newExpenseService() *ExpenseService {
	st := memory.New()
	return NewExpenseService(st.Expenses, testLogger())
}

func TestAddExpense(t *testing.T) {
	svc := newExpenseService()
	ctx := context.Background()

	expenses, err := svc.ListExpenses(ctx, "apt-4b")
	require.NoError(t, err)
	require.Empty(t, expenses)

	expense, err := svc.AddExpense(ctx, "apt-4b", models.CreateExpenseRequest{
		ItemName: "Pizza",
		Cost:     20,
		PayerID:  "u1",
		UserIDs:  "u1,u2",
	})
	require.NoError(t, err)
	require.NotEmpty(t, expense.ID)

	expenses, err = svc.ListExpenses(ctx, "apt-4b")
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Pizza", expenses[0].ItemName)
	assert.Equal(t, 20.0, expenses[0].Cost)
	assert.Equal(t, "u1", expenses[0].PayerID)
	assert.Equal(t, []string{"u1", "u2"}, expenses[0].UserIDs)
	assert.Equal(t, "apt-4b", expenses[0].FridgeID)
}

func TestAddExpenseRejectsZeroCost(t *testing.T) {
	svc := newExpenseService()
	ctx := context.Background()

	_, err := svc.AddExpense(ctx, "apt-4b", models.CreateExpenseRequest{
		ItemName: "Pizza",
		Cost:     0,
		PayerID:  "u1",
		UserIDs:  "u1,u2",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	// Validation failure must not have written anything.
	expenses, err := svc.ListExpenses(ctx, "apt-4b")
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestAddExpenseCollectsFieldMessages(t *testing.T) {
	svc := newExpenseService()

	_, err := svc.AddExpense(context.Background(), "apt-4b", models.CreateExpenseRequest{})
	require.Error(t, err)

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, []string{
		"Please enter an item name.",
		"Cost must be greater than zero.",
		"Please enter the payer ID.",
		"Please enter at least one user ID to split the cost.",
	}, ae.Fields)
}

func TestListExpensesFiltersByFridge(t *testing.T) {
	svc := newExpenseService()
	ctx := context.Background()

	_, err := svc.AddExpense(ctx, "apt-4b", models.CreateExpenseRequest{
		ItemName: "Pizza", Cost: 20, PayerID: "u1", UserIDs: "u1,u2",
	})
	require.NoError(t, err)
	_, err = svc.AddExpense(ctx, "dorm-12", models.CreateExpenseRequest{
		ItemName: "Detergent", Cost: 8.5, PayerID: "u3", UserIDs: "u3",
	})
	require.NoError(t, err)

	expenses, err := svc.ListExpenses(ctx, "apt-4b")
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Pizza", expenses[0].ItemName)
}

func TestSplitUserIDs(t *testing.T) {
	assert.Equal(t, []string{"u1", "u2"}, SplitUserIDs("u1,u2"))
	assert.Equal(t, []string{"u1", "u2"}, SplitUserIDs(" u1 , u2 "))
	assert.Equal(t, []string{"u1"}, SplitUserIDs("u1,,"))
	assert.Nil(t, SplitUserIDs(""))
	assert.Nil(t, SplitUserIDs(" , ,"))
}
