package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/megdcosta/frijio/internal/database"
	"github.com/megdcosta/frijio/internal/models"
)

type FridgeStore struct {
	db *database.DB
}

func NewFridgeStore(db *database.DB) *FridgeStore {
	return &FridgeStore{db: db}
}

func (s *FridgeStore) Create(ctx context.Context, fridge *models.Fridge) error {
	fridge.ID = uuid.NewString()

	err := s.db.QueryRow(ctx,
		`INSERT INTO fridges (id, name, owner_id, members)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		fridge.ID, fridge.Name, fridge.OwnerID, fridge.Members).Scan(&fridge.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create fridge: %w", err)
	}
	return nil
}

func (s *FridgeStore) Get(ctx context.Context, id string) (*models.Fridge, error) {
	var fridge models.Fridge
	err := s.db.QueryRow(ctx,
		"SELECT id, name, owner_id, members, created_at FROM fridges WHERE id = $1",
		id).Scan(&fridge.ID, &fridge.Name, &fridge.OwnerID, &fridge.Members, &fridge.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fridge: %w", err)
	}
	return &fridge, nil
}

func (s *FridgeStore) AddMember(ctx context.Context, fridgeID, userID string) error {
	_, err := s.db.Exec(ctx,
		`UPDATE fridges SET members = array_append(members, $2)
		 WHERE id = $1 AND NOT ($2 = ANY(members))`,
		fridgeID, userID)

	if err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}
