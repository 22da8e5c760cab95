// Package memory implements the store interfaces on in-process maps. It
// backs unit tests and the STORE_BACKEND=memory configuration, and mirrors
// the document-store semantics of the hosted backend: opaque generated IDs,
// last-write-wins per record, delete-of-absent as silent success.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/megdcosta/frijio/internal/models"
	"github.com/megdcosta/frijio/internal/store"
)

type backend struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
	users    map[string]models.User
	fridges  map[string]models.Fridge
	items    map[string][]models.Item        // keyed by fridge ID, insertion order
	grocery  map[string][]models.GroceryItem // keyed by fridge ID, insertion order
	expenses []models.Expense
}

// New returns a store.Store with every collection sharing one backend.
func New() *store.Store {
	b := &backend{
		accounts: make(map[string]models.Account),
		users:    make(map[string]models.User),
		fridges:  make(map[string]models.Fridge),
		items:    make(map[string][]models.Item),
		grocery:  make(map[string][]models.GroceryItem),
	}
	return &store.Store{
		Accounts: &accountStore{b},
		Users:    &userStore{b},
		Fridges:  &fridgeStore{b},
		Items:    &itemStore{b},
		Grocery:  &groceryStore{b},
		Expenses: &expenseStore{b},
	}
}

type accountStore struct{ b *backend }

func (s *accountStore) Create(_ context.Context, account *models.Account) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	account.ID = uuid.NewString()
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	s.b.accounts[account.ID] = *account
	return nil
}

func (s *accountStore) GetByID(_ context.Context, id string) (*models.Account, error) {
	s.b.mu.RLock()
	defer s.b.mu.RUnlock()

	account, ok := s.b.accounts[id]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

func (s *accountStore) GetByEmailOrUsername(_ context.Context, emailOrUsername string) (*models.Account, error) {
	s.b.mu.RLock()
	defer s.b.mu.RUnlock()

	for _, account := range s.b.accounts {
		if account.Email == emailOrUsername || account.Username == emailOrUsername {
			a := account
			return &a, nil
		}
	}
	return nil, nil
}

func (s *accountStore) Exists(_ context.Context, username, email string) (bool, error) {
	s.b.mu.RLock()
	defer s.b.mu.RUnlock()

	for _, account := range s.b.accounts {
		if account.Username == username || account.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type userStore struct{ b *backend }

func (s *userStore) Get(_ context.Context, id string) (*models.User, error) {
	s.b.mu.RLock()
	defer s.b.mu.RUnlock()

	user, ok := s.b.users[id]
	if !ok {
		return nil, nil
	}
	copied := user
	copied.FridgeIDs = append([]string(nil), user.FridgeIDs...)
	return &copied, nil
}

func (s *userStore) Create(_ context.Context, user *models.User) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	stored := *user
	stored.FridgeIDs = append([]string(nil), user.FridgeIDs...)
	s.b.users[user.ID] = stored
	return nil
}

func (s *userStore) AddFridge(_ context.Context, userID, fridgeID string) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	user, ok := s.b.users[userID]
	if !ok {
		return nil
	}
	for _, id := range user.FridgeIDs {
		if id == fridgeID {
			return nil
		}
	}
	user.FridgeIDs = append(user.FridgeIDs, fridgeID)
	s.b.users[userID] = user
	return nil
}

type fridgeStore struct{ b *backend }

func (s *fridgeStore) Create(_ context.Context, fridge *models.Fridge) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	fridge.ID = uuid.NewString()
	fridge.CreatedAt = time.Now()
	stored := *fridge
	stored.Members = append([]string(nil), fridge.Members...)
	s.b.fridges[fridge.ID] = stored
	return nil
}

func (s *fridgeStore) Get(_ context.Context, id string) (*models.Fridge, error) {
	s.b.mu.RLock()
	defer s.b.mu.RUnlock()

	fridge, ok := s.b.fridges[id]
	if !ok {
		return nil, nil
	}
	copied := fridge
	copied.Members = append([]string(nil), fridge.Members...)
	return &copied, nil
}

func (s *fridgeStore) AddMember(_ context.Context, fridgeID, userID string) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	fridge, ok := s.b.fridges[fridgeID]
	if !ok {
		return nil
	}
	for _, id := range fridge.Members {
		if id == userID {
			return nil
		}
	}
	fridge.Members = append(fridge.Members, userID)
	s.b.fridges[fridgeID] = fridge
	return nil
}

type itemStore struct{ b *backend }

func (s *itemStore) Create(_ context.Context, item *models.Item) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	item.ID = uuid.NewString()
	item.CreatedAt = time.Now()
	s.b.items[item.FridgeID] = append(s.b.items[item.FridgeID], *item)
	return nil
}

func (s *itemStore) ListByFridge(_ context.Context, fridgeID string) ([]models.Item, error) {
	s.b.mu.RLock()
	defer s.b.mu.RUnlock()

	return append([]models.Item(nil), s.b.items[fridgeID]...), nil
}

func (s *itemStore) Update(_ context.Context, item *models.Item) (bool, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	items := s.b.items[item.FridgeID]
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Name = item.Name
			items[i].Type = item.Type
			items[i].Quantity = item.Quantity
			items[i].ExpirationDate = item.ExpirationDate
			return true, nil
		}
	}
	return false, nil
}

func (s *itemStore) Delete(_ context.Context, fridgeID, itemID string) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	items := s.b.items[fridgeID]
	for i := range items {
		if items[i].ID == itemID {
			s.b.items[fridgeID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return nil
}

type groceryStore struct{ b *backend }

func (s *groceryStore) Create(_ context.Context, item *models.GroceryItem) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	item.ID = uuid.NewString()
	item.CreatedAt = time.Now()
	s.b.grocery[item.FridgeID] = append(s.b.grocery[item.FridgeID], *item)
	return nil
}

func (s *groceryStore) ListByFridge(_ context.Context, fridgeID string) ([]models.GroceryItem, error) {
	s.b.mu.RLock()
	defer s.b.mu.RUnlock()

	return append([]models.GroceryItem(nil), s.b.grocery[fridgeID]...), nil
}

func (s *groceryStore) Toggle(_ context.Context, fridgeID, itemID string) (bool, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	items := s.b.grocery[fridgeID]
	for i := range items {
		if items[i].ID == itemID {
			items[i].IsChecked = !items[i].IsChecked
			return true, nil
		}
	}
	return false, nil
}

func (s *groceryStore) Delete(_ context.Context, fridgeID, itemID string) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	items := s.b.grocery[fridgeID]
	for i := range items {
		if items[i].ID == itemID {
			s.b.grocery[fridgeID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return nil
}

type expenseStore struct{ b *backend }

func (s *expenseStore) Create(_ context.Context, expense *models.Expense) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	expense.ID = uuid.NewString()
	expense.CreatedAt = time.Now()
	stored := *expense
	stored.UserIDs = append([]string(nil), expense.UserIDs...)
	s.b.expenses = append(s.b.expenses, stored)
	return nil
}

func (s *expenseStore) ListByFridge(_ context.Context, fridgeID string) ([]models.Expense, error) {
	s.b.mu.RLock()
	defer s.b.mu.RUnlock()

	var expenses []models.Expense
	for _, expense := range s.b.expenses {
		if expense.FridgeID == fridgeID {
			expenses = append(expenses, expense)
		}
	}
	return expenses, nil
}
