package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/megdcosta/frijio/internal/apperr"
	"github.com/megdcosta/frijio/internal/models"
	"github.com/megdcosta/frijio/internal/store"
)

// ItemService manages the per-fridge inventory and grocery collections.
type ItemService struct {
	fridges store.FridgeStore
	items   store.ItemStore
	grocery store.GroceryStore
	logger  *slog.Logger
}

func NewItemService(fridges store.FridgeStore, items store.ItemStore, grocery store.GroceryStore, logger *slog.Logger) *ItemService {
	return &ItemService{fridges: fridges, items: items, grocery: grocery, logger: logger}
}

func (s *ItemService) requireFridge(ctx context.Context, fridgeID string) error {
	fridge, err := s.fridges.Get(ctx, fridgeID)
	if err != nil {
		return err
	}
	if fridge == nil {
		return apperr.NotFound("Invalid Fridge ID. Please check again.")
	}
	return nil
}

func (s *ItemService) AddItem(ctx context.Context, fridgeID, addedBy string, req models.CreateItemRequest) (*models.Item, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperr.Validation("Please enter an item name.")
	}
	if err := s.requireFridge(ctx, fridgeID); err != nil {
		return nil, err
	}

	item := &models.Item{
		FridgeID:       fridgeID,
		Name:           req.Name,
		Type:           req.Type,
		Quantity:       req.Quantity,
		ExpirationDate: req.ExpirationDate,
		AddedBy:        addedBy,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("item added", "fridge_id", fridgeID, "item_id", item.ID)
	return item, nil
}

// ListItems returns the fridge's inventory in insertion order.
func (s *ItemService) ListItems(ctx context.Context, fridgeID string) ([]models.Item, error) {
	if err := s.requireFridge(ctx, fridgeID); err != nil {
		return nil, err
	}
	return s.items.ListByFridge(ctx, fridgeID)
}

// UpdateItem overwrites the item's mutable fields with the supplied values.
func (s *ItemService) UpdateItem(ctx context.Context, fridgeID, itemID string, req models.UpdateItemRequest) (*models.Item, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperr.Validation("Please enter an item name.")
	}

	item := &models.Item{
		ID:             itemID,
		FridgeID:       fridgeID,
		Name:           req.Name,
		Type:           req.Type,
		Quantity:       req.Quantity,
		ExpirationDate: req.ExpirationDate,
	}
	found, err := s.items.Update(ctx, item)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.NotFound("Item not found.")
	}
	return item, nil
}

// DeleteItem removes the item. Deleting an ID that no longer exists is a
// silent success, matching the backing store's delete semantics.
func (s *ItemService) DeleteItem(ctx context.Context, fridgeID, itemID string) error {
	return s.items.Delete(ctx, fridgeID, itemID)
}

func (s *ItemService) AddGroceryItem(ctx context.Context, fridgeID, addedBy string, req models.CreateGroceryItemRequest) (*models.GroceryItem, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperr.Validation("Please enter an item name.")
	}
	if err := s.requireFridge(ctx, fridgeID); err != nil {
		return nil, err
	}

	item := &models.GroceryItem{
		FridgeID: fridgeID,
		Name:     req.Name,
		Quantity: req.Quantity,
		AddedBy:  addedBy,
	}
	if err := s.grocery.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) ListGroceryItems(ctx context.Context, fridgeID string) ([]models.GroceryItem, error) {
	if err := s.requireFridge(ctx, fridgeID); err != nil {
		return nil, err
	}
	return s.grocery.ListByFridge(ctx, fridgeID)
}

// ToggleGroceryItem flips the item's checked state without touching any
// other field.
func (s *ItemService) ToggleGroceryItem(ctx context.Context, fridgeID, itemID string) error {
	found, err := s.grocery.Toggle(ctx, fridgeID, itemID)
	if err != nil {
		return err
	}
	if !found {
		return apperr.NotFound("Item not found.")
	}
	return nil
}

func (s *ItemService) DeleteGroceryItem(ctx context.Context, fridgeID, itemID string) error {
	return s.grocery.Delete(ctx, fridgeID, itemID)
}

// FilterByName returns the items whose name contains term,
// case-insensitively. An empty term matches everything, in order.
func FilterByName(items []models.Item, term string) []models.Item {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)

	filtered := make([]models.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// SortByExpiration orders items by expiration date ascending. Items whose
// date is missing or unparseable sort after every dated item, keeping their
// relative order.
func SortByExpiration(items []models.Item) []models.Item {
	sorted := append([]models.Item(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, iOK := parseExpiration(sorted[i].ExpirationDate)
		tj, jOK := parseExpiration(sorted[j].ExpirationDate)
		if iOK != jOK {
			return iOK
		}
		if !iOK {
			return false
		}
		return ti.Before(tj)
	})
	return sorted
}

func parseExpiration(date string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
