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

type AccountStore struct {
	db *database.DB
}

func NewAccountStore(db *database.DB) *AccountStore {
	return &AccountStore{db: db}
}

func (s *AccountStore) Create(ctx context.Context, account *models.Account) error {
	account.ID = uuid.NewString()

	err := s.db.QueryRow(ctx,
		`INSERT INTO accounts (id, username, email, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		account.ID, account.Username, account.Email, account.PasswordHash).Scan(
		&account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (s *AccountStore) GetByID(ctx context.Context, id string) (*models.Account, error) {
	var account models.Account
	err := s.db.QueryRow(ctx,
		`SELECT id, username, email, password_hash, created_at, updated_at
		 FROM accounts WHERE id = $1`,
		id).Scan(
		&account.ID, &account.Username, &account.Email,
		&account.PasswordHash, &account.CreatedAt, &account.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (s *AccountStore) GetByEmailOrUsername(ctx context.Context, emailOrUsername string) (*models.Account, error) {
	var account models.Account
	err := s.db.QueryRow(ctx,
		`SELECT id, username, email, password_hash, created_at, updated_at
		 FROM accounts WHERE email = $1 OR username = $1`,
		emailOrUsername).Scan(
		&account.ID, &account.Username, &account.Email,
		&account.PasswordHash, &account.CreatedAt, &account.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (s *AccountStore) Exists(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM accounts WHERE username = $1 OR email = $2)",
		username, email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return exists, nil
}
