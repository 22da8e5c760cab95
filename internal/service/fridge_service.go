package service

import (
	"context"
	"log/slog"

	"github.com/megdcosta/frijio/internal/apperr"
	"github.com/megdcosta/frijio/internal/models"
	"github.com/megdcosta/frijio/internal/store"
)

// MaxFridgesPerUser caps how many fridges one user can belong to, counting
// both owned and joined fridges.
const MaxFridgesPerUser = 5

// FridgeService manages the many-to-many relationship between users and
// fridges.
type FridgeService struct {
	users   store.UserStore
	fridges store.FridgeStore
	logger  *slog.Logger
}

func NewFridgeService(users store.UserStore, fridges store.FridgeStore, logger *slog.Logger) *FridgeService {
	return &FridgeService{users: users, fridges: fridges, logger: logger}
}

// GetUser returns the membership record, or nil when none exists yet.
// Absence is not an error: records are created lazily on first assignment.
func (s *FridgeService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.users.Get(ctx, userID)
}

// GetFridge returns the fridge or a NotFound error.
func (s *FridgeService) GetFridge(ctx context.Context, fridgeID string) (*models.Fridge, error) {
	fridge, err := s.fridges.Get(ctx, fridgeID)
	if err != nil {
		return nil, err
	}
	if fridge == nil {
		return nil, apperr.NotFound("Invalid Fridge ID. Please check again.")
	}
	return fridge, nil
}

// CreateFridge creates a fridge owned by ownerID, with the owner as its
// first member, and assigns it to the owner's membership record. A missing
// user record counts as zero memberships.
func (s *FridgeService) CreateFridge(ctx context.Context, name, ownerID string) (*models.Fridge, error) {
	user, err := s.users.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if user != nil && len(user.FridgeIDs) >= MaxFridgesPerUser {
		return nil, apperr.CapExceeded("You can only have up to 5 fridges.")
	}

	fridge := &models.Fridge{
		Name:    name,
		OwnerID: ownerID,
		Members: []string{ownerID},
	}
	if err := s.fridges.Create(ctx, fridge); err != nil {
		return nil, err
	}

	if err := s.AssignFridgeToUser(ctx, ownerID, fridge.ID); err != nil {
		return nil, err
	}

	s.logger.Info("fridge created", "fridge_id", fridge.ID, "owner_id", ownerID)
	return fridge, nil
}

// AssignFridgeToUser records fridgeID on the user's membership list,
// creating the record if it does not exist. Re-assigning an ID the user
// already has is a no-op; assigning beyond the cap fails.
func (s *FridgeService) AssignFridgeToUser(ctx context.Context, userID, fridgeID string) error {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return err
	}

	if user == nil {
		return s.users.Create(ctx, &models.User{ID: userID, FridgeIDs: []string{fridgeID}})
	}

	for _, id := range user.FridgeIDs {
		if id == fridgeID {
			return nil
		}
	}
	if len(user.FridgeIDs) >= MaxFridgesPerUser {
		return apperr.CapExceeded("You can only join up to 5 fridges.")
	}

	return s.users.AddFridge(ctx, userID, fridgeID)
}

// JoinFridgeByID adds the user to the fridge's member set and then to the
// user's own membership list. These are two separate writes with no
// transaction around them; a crash in between leaves the fridge listing the
// member while the user record does not, until the join is retried.
func (s *FridgeService) JoinFridgeByID(ctx context.Context, userID, fridgeID string) error {
	fridge, err := s.fridges.Get(ctx, fridgeID)
	if err != nil {
		return err
	}
	if fridge == nil {
		return apperr.NotFound("Invalid Fridge ID. Please check again.")
	}

	for _, member := range fridge.Members {
		if member == userID {
			return apperr.AlreadyMember("You are already a member of this fridge.")
		}
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user != nil && len(user.FridgeIDs) >= MaxFridgesPerUser {
		return apperr.CapExceeded("You can only join up to 5 fridges.")
	}

	if err := s.fridges.AddMember(ctx, fridgeID, userID); err != nil {
		return err
	}
	if err := s.AssignFridgeToUser(ctx, userID, fridgeID); err != nil {
		return err
	}

	s.logger.Info("user joined fridge", "fridge_id", fridgeID, "user_id", userID)
	return nil
}

// ListFridges resolves the user's membership list into fridge records,
// preserving join order. Dangling IDs are skipped.
func (s *FridgeService) ListFridges(ctx context.Context, userID string) ([]models.Fridge, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	fridges := make([]models.Fridge, 0, len(user.FridgeIDs))
	for _, id := range user.FridgeIDs {
		fridge, err := s.fridges.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if fridge == nil {
			s.logger.Warn("membership points at missing fridge", "user_id", userID, "fridge_id", id)
			continue
		}
		fridges = append(fridges, *fridge)
	}
	return fridges, nil
}

// IsMember reports whether userID is in the fridge's member set.
func (s *FridgeService) IsMember(ctx context.Context, fridgeID, userID string) (bool, error) {
	fridge, err := s.fridges.Get(ctx, fridgeID)
	if err != nil {
		return false, err
	}
	if fridge == nil {
		return false, nil
	}
	for _, member := range fridge.Members {
		if member == userID {
			return true, nil
		}
	}
	return false, nil
}
