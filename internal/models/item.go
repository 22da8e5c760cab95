package models

import "time"

// Item categories shown in the inventory type dropdown.
const (
	ItemTypeEggsDairy  = "Eggs/Dairy"
	ItemTypeFruits     = "Fruit(s)"
	ItemTypeVegetables = "Vegetables"
	ItemTypeMeat       = "Meat"
	ItemTypeLeftovers  = "Leftovers"
	ItemTypeFrozen     = "Frozen"
	ItemTypeSauces     = "Sauces/Condiments"
	ItemTypeOther      = "Other"
)

// Item is a fridge inventory entry. Quantity is a free-form string and
// ExpirationDate is an ISO date (YYYY-MM-DD), empty when unknown.
type Item struct {
	ID             string    `json:"id" db:"id"`
	FridgeID       string    `json:"fridge_id" db:"fridge_id"`
	Name           string    `json:"name" db:"name"`
	Type           string    `json:"type" db:"item_type"`
	Quantity       string    `json:"quantity" db:"quantity"`
	ExpirationDate string    `json:"expiration_date,omitempty" db:"expiration_date"`
	AddedBy        string    `json:"added_by" db:"added_by"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// GroceryItem is an entry on a fridge's shopping list.
type GroceryItem struct {
	ID        string    `json:"id" db:"id"`
	FridgeID  string    `json:"fridge_id" db:"fridge_id"`
	Name      string    `json:"name" db:"name"`
	Quantity  string    `json:"quantity" db:"quantity"`
	AddedBy   string    `json:"added_by" db:"added_by"`
	IsChecked bool      `json:"is_checked" db:"is_checked"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateItemRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=255"`
	Type           string `json:"type" validate:"max=50"`
	Quantity       string `json:"quantity" validate:"max=50"`
	ExpirationDate string `json:"expiration_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateItemRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=255"`
	Type           string `json:"type" validate:"max=50"`
	Quantity       string `json:"quantity" validate:"max=50"`
	ExpirationDate string `json:"expiration_date" validate:"omitempty,datetime=2006-01-02"`
}

type CreateGroceryItemRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Quantity string `json:"quantity" validate:"max=50"`
}
