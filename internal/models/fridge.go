package models

import "time"

// Fridge is a shared household unit. The owner is always present in Members.
type Fridge struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	OwnerID   string    `json:"owner_id" db:"owner_id"`
	Members   []string  `json:"members" db:"members"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateFridgeRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type JoinFridgeRequest struct {
	FridgeID string `json:"fridge_id" validate:"required"`
}
