package models

import "time"

// Expense records a shared cost split between users. Expenses live in a
// single flat collection and are filtered by fridge at query time; once
// created they are immutable.
type Expense struct {
	ID        string    `json:"id" db:"id"`
	ItemName  string    `json:"item_name" db:"item_name"`
	Cost      float64   `json:"cost" db:"cost"`
	PayerID   string    `json:"payer_id" db:"payer_id"`
	UserIDs   []string  `json:"user_ids" db:"user_ids"`
	FridgeID  string    `json:"fridge_id" db:"fridge_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateExpenseRequest carries the raw expense form. UserIDs is a
// comma-separated list of user IDs exactly as typed into the split field.
type CreateExpenseRequest struct {
	ItemName string  `json:"item_name"`
	Cost     float64 `json:"cost"`
	PayerID  string  `json:"payer_id"`
	UserIDs  string  `json:"user_ids"`
}
