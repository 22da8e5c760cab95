package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megdcosta/frijio/internal/apperr"
	"github.com/megdcosta/frijio/internal/models"
	"github.com/megdcosta/frijio/internal/store/memory"
)

func newItemFixture(t *testing.T) (*ItemService, string) {
	t.Helper()
	st := memory.New()
	fridges := NewFridgeService(st.Users, st.Fridges, testLogger())
	fridge, err := fridges.CreateFridge(context.Background(), "Apt 4B", "alice")
	require.NoError(t, err)
	return NewItemService(st.Fridges, st.Items, st.Grocery, testLogger()), fridge.ID
}

func TestAddAndListItems(t *testing.T) {
	svc, fridgeID := newItemFixture(t)
	ctx := context.Background()

	milk, err := svc.AddItem(ctx, fridgeID, "alice", models.CreateItemRequest{
		Name:           "Milk",
		Type:           models.ItemTypeEggsDairy,
		Quantity:       "2 cartons",
		ExpirationDate: "2026-09-10",
	})
	require.NoError(t, err)
	require.NotEmpty(t, milk.ID)

	_, err = svc.AddItem(ctx, fridgeID, "bob", models.CreateItemRequest{Name: "Rice", Type: models.ItemTypeOther})
	require.NoError(t, err)

	items, err := svc.ListItems(ctx, fridgeID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Insertion order, with every field round-tripped.
	assert.Equal(t, "Milk", items[0].Name)
	assert.Equal(t, models.ItemTypeEggsDairy, items[0].Type)
	assert.Equal(t, "2 cartons", items[0].Quantity)
	assert.Equal(t, "2026-09-10", items[0].ExpirationDate)
	assert.Equal(t, "alice", items[0].AddedBy)
	assert.Equal(t, "Rice", items[1].Name)
}

func TestAddItemRequiresName(t *testing.T) {
	svc, fridgeID := newItemFixture(t)

	_, err := svc.AddItem(context.Background(), fridgeID, "alice", models.CreateItemRequest{Name: "   "})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestAddItemUnknownFridge(t *testing.T) {
	svc, _ := newItemFixture(t)

	_, err := svc.AddItem(context.Background(), "no-such-fridge", "alice", models.CreateItemRequest{Name: "Milk"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpdateItemOverwrites(t *testing.T) {
	svc, fridgeID := newItemFixture(t)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, fridgeID, "alice", models.CreateItemRequest{
		Name:           "Milk",
		Type:           models.ItemTypeEggsDairy,
		Quantity:       "2",
		ExpirationDate: "2026-09-10",
	})
	require.NoError(t, err)

	// Omitted fields are overwritten with their zero value, not kept.
	updated, err := svc.UpdateItem(ctx, fridgeID, item.ID, models.UpdateItemRequest{Name: "Oat milk"})
	require.NoError(t, err)
	assert.Equal(t, "Oat milk", updated.Name)
	assert.Empty(t, updated.Quantity)
	assert.Empty(t, updated.ExpirationDate)

	items, err := svc.ListItems(ctx, fridgeID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Oat milk", items[0].Name)
	assert.Empty(t, items[0].ExpirationDate)
}

func TestUpdateItemNotFound(t *testing.T) {
	svc, fridgeID := newItemFixture(t)

	_, err := svc.UpdateItem(context.Background(), fridgeID, "no-such-item", models.UpdateItemRequest{Name: "Milk"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeleteItemIdempotent(t *testing.T) {
	svc, fridgeID := newItemFixture(t)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, fridgeID, "alice", models.CreateItemRequest{Name: "Milk"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(ctx, fridgeID, item.ID))
	// Deleting again is a silent success.
	require.NoError(t, svc.DeleteItem(ctx, fridgeID, item.ID))

	items, err := svc.ListItems(ctx, fridgeID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGroceryToggle(t *testing.T) {
	svc, fridgeID := newItemFixture(t)
	ctx := context.Background()

	item, err := svc.AddGroceryItem(ctx, fridgeID, "alice", models.CreateGroceryItemRequest{Name: "Bread"})
	require.NoError(t, err)
	assert.False(t, item.IsChecked)

	require.NoError(t, svc.ToggleGroceryItem(ctx, fridgeID, item.ID))
	list, err := svc.ListGroceryItems(ctx, fridgeID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsChecked)

	require.NoError(t, svc.ToggleGroceryItem(ctx, fridgeID, item.ID))
	list, err = svc.ListGroceryItems(ctx, fridgeID)
	require.NoError(t, err)
	assert.False(t, list[0].IsChecked)

	err = svc.ToggleGroceryItem(ctx, fridgeID, "no-such-item")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestFilterByName(t *testing.T) {
	items := []models.Item{
		{Name: "Milk 2%"},
		{Name: "Chocolate milk"},
		{Name: "Bananas"},
	}

	filtered := FilterByName(items, "milk")
	require.Len(t, filtered, 2)
	assert.Equal(t, "Milk 2%", filtered[0].Name)
	assert.Equal(t, "Chocolate milk", filtered[1].Name)

	assert.Empty(t, FilterByName(items, "tofu"))

	// An empty term returns the list unchanged.
	assert.Equal(t, items, FilterByName(items, ""))
}

func TestSortByExpiration(t *testing.T) {
	items := []models.Item{
		{Name: "Yogurt", ExpirationDate: "2026-03-01"},
		{Name: "Milk", ExpirationDate: "2026-01-01"},
		{Name: "Salt"},
		{Name: "Mystery", ExpirationDate: "soonish"},
		{Name: "Eggs", ExpirationDate: "2026-02-01"},
	}

	sorted := SortByExpiration(items)
	require.Len(t, sorted, 5)
	assert.Equal(t, "Milk", sorted[0].Name)
	assert.Equal(t, "Eggs", sorted[1].Name)
	assert.Equal(t, "Yogurt", sorted[2].Name)
	// Undated items come last, keeping their relative order.
	assert.Equal(t, "Salt", sorted[3].Name)
	assert.Equal(t, "Mystery", sorted[4].Name)

	// The input slice is not modified.
	assert.Equal(t, "Yogurt", items[0].Name)
}
