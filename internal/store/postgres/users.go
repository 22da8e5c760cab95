package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/megdcosta/frijio/internal/database"
	"github.com/megdcosta/frijio/internal/models"
)

type UserStore struct {
	db *database.DB
}

func NewUserStore(db *database.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(ctx,
		"SELECT id, fridge_ids FROM users WHERE id = $1",
		id).Scan(&user.ID, &user.FridgeIDs)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	_, err := s.db.Exec(ctx,
		"INSERT INTO users (id, fridge_ids) VALUES ($1, $2)",
		user.ID, user.FridgeIDs)

	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *UserStore) AddFridge(ctx context.Context, userID, fridgeID string) error {
	// Guarded append keeps array union semantics: re-adding an existing
	// fridge ID leaves the row untouched.
	_, err := s.db.Exec(ctx,
		`UPDATE users SET fridge_ids = array_append(fridge_ids, $2)
		 WHERE id = $1 AND NOT ($2 = ANY(fridge_ids))`,
		userID, fridgeID)

	if err != nil {
		return fmt.Errorf("failed to add fridge to user: %w", err)
	}
	return nil
}
