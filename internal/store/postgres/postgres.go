// Package postgres implements the store interfaces on PostgreSQL via pgx.
package postgres

import (
	"github.com/megdcosta/frijio/internal/database"
	"github.com/megdcosta/frijio/internal/store"
)

// New wires every collection store to the given database.
func New(db *database.DB) *store.Store {
	return &store.Store{
		Accounts: NewAccountStore(db),
		Users:    NewUserStore(db),
		Fridges:  NewFridgeStore(db),
		Items:    NewItemStore(db),
		Grocery:  NewGroceryStore(db),
		Expenses: NewExpenseStore(db),
	}
}
