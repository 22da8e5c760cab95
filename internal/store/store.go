// Package store declares the persistence interfaces for each collection.
// Implementations generate document IDs and CreatedAt timestamps on create.
package store

import (
	"context"

	"github.com/megdcosta/frijio/internal/models"
)

type AccountStore interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id string) (*models.Account, error)
	// GetByEmailOrUsername returns nil, nil when no account matches.
	GetByEmailOrUsername(ctx context.Context, emailOrUsername string) (*models.Account, error)
	Exists(ctx context.Context, username, email string) (bool, error)
}

type UserStore interface {
	// Get returns nil, nil when the record is absent; absence is not an error.
	Get(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	// AddFridge appends fridgeID to the user's list with set-union
	// semantics: adding an ID that is already present is a no-op.
	AddFridge(ctx context.Context, userID, fridgeID string) error
}

type FridgeStore interface {
	Create(ctx context.Context, fridge *models.Fridge) error
	// Get returns nil, nil when no fridge has this ID.
	Get(ctx context.Context, id string) (*models.Fridge, error)
	// AddMember appends userID to the member set; duplicates are not added.
	AddMember(ctx context.Context, fridgeID, userID string) error
}

type ItemStore interface {
	Create(ctx context.Context, item *models.Item) error
	// ListByFridge returns items in insertion order.
	ListByFridge(ctx context.Context, fridgeID string) ([]models.Item, error)
	// Update overwrites the mutable fields and reports whether the item existed.
	Update(ctx context.Context, item *models.Item) (bool, error)
	// Delete is idempotent: deleting an absent item is a silent success.
	Delete(ctx context.Context, fridgeID, itemID string) error
}

type GroceryStore interface {
	Create(ctx context.Context, item *models.GroceryItem) error
	ListByFridge(ctx context.Context, fridgeID string) ([]models.GroceryItem, error)
	// Toggle flips is_checked and reports whether the item existed.
	Toggle(ctx context.Context, fridgeID, itemID string) (bool, error)
	Delete(ctx context.Context, fridgeID, itemID string) error
}

type ExpenseStore interface {
	Create(ctx context.Context, expense *models.Expense) error
	// ListByFridge returns the fridge's expenses ordered by creation.
	ListByFridge(ctx context.Context, fridgeID string) ([]models.Expense, error)
}

// Store bundles every collection of one backend.
type Store struct {
	Accounts AccountStore
	Users    UserStore
	Fridges  FridgeStore
	Items    ItemStore
	Grocery  GroceryStore
	Expenses ExpenseStore
}
