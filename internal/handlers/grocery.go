package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/megdcosta/frijio/internal/models"
	"github.com/megdcosta/frijio/internal/service"
	"github.com/megdcosta/frijio/internal/websocket"
)

type GroceryHandler struct {
	fridges   *service.FridgeService
	items     *service.ItemService
	hub       *websocket.Hub
	validator *validator.Validate
}

func NewGroceryHandler(fridges *service.FridgeService, items *service.ItemService, hub *websocket.Hub) *GroceryHandler {
	return &GroceryHandler{
		fridges:   fridges,
		items:     items,
		hub:       hub,
		validator: validator.New(),
	}
}

func (h *GroceryHandler) GetItems(c *gin.Context) {
	_, fridgeID, ok := requireMember(c, h.fridges)
	if !ok {
		return
	}

	items, err := h.items.ListGroceryItems(c.Request.Context(), fridgeID)
	if err != nil {
		respondError(c, err)
		return
	}
	if items == nil {
		items = []models.GroceryItem{}
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *GroceryHandler) CreateItem(c *gin.Context) {
	sess, fridgeID, ok := requireMember(c, h.fridges)
	if !ok {
		return
	}

	var req models.CreateGroceryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.items.AddGroceryItem(c.Request.Context(), fridgeID, sess.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.BroadcastToFridge(fridgeID, websocket.MessageTypeGroceryUpdate, item)
	c.JSON(http.StatusCreated, item)
}

// ToggleItem flips the checked state of one grocery item.
func (h *GroceryHandler) ToggleItem(c *gin.Context) {
	_, fridgeID, ok := requireMember(c, h.fridges)
	if !ok {
		return
	}

	itemID := c.Param("itemId")
	if err := h.items.ToggleGroceryItem(c.Request.Context(), fridgeID, itemID); err != nil {
		respondError(c, err)
		return
	}

	h.hub.BroadcastToFridge(fridgeID, websocket.MessageTypeGroceryUpdate, gin.H{"toggled": itemID})
	c.JSON(http.StatusOK, gin.H{"message": "Item toggled successfully"})
}

func (h *GroceryHandler) DeleteItem(c *gin.Context) {
	_, fridgeID, ok := requireMember(c, h.fridges)
	if !ok {
		return
	}

	itemID := c.Param("itemId")
	if err := h.items.DeleteGroceryItem(c.Request.Context(), fridgeID, itemID); err != nil {
		respondError(c, err)
		return
	}

	h.hub.BroadcastToFridge(fridgeID, websocket.MessageTypeGroceryUpdate, gin.H{"deleted": itemID})
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
