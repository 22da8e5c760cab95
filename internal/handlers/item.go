package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/megdcosta/frijio/internal/models"
	"github.com/megdcosta/frijio/internal/service"
	"github.com/megdcosta/frijio/internal/websocket"
)

type ItemHandler struct {
	fridges   *service.FridgeService
	items     *service.ItemService
	hub       *websocket.Hub
	validator *validator.Validate
}

func NewItemHandler(fridges *service.FridgeService, items *service.ItemService, hub *websocket.Hub) *ItemHandler {
	return &ItemHandler{
		fridges:   fridges,
		items:     items,
		hub:       hub,
		validator: validator.New(),
	}
}

// GetItems lists the fridge inventory. Optional query parameters: "search"
// filters by name, "sort=expiration" orders by expiration date.
func (h *ItemHandler) GetItems(c *gin.Context) {
	_, fridgeID, ok := requireMember(c, h.fridges)
	if !ok {
		return
	}

	items, err := h.items.ListItems(c.Request.Context(), fridgeID)
	if err != nil {
		respondError(c, err)
		return
	}

	items = service.FilterByName(items, c.Query("search"))
	if c.Query("sort") == "expiration" {
		items = service.SortByExpiration(items)
	}
	if items == nil {
		items = []models.Item{}
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	sess, fridgeID, ok := requireMember(c, h.fridges)
	if !ok {
		return
	}

	var req models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.items.AddItem(c.Request.Context(), fridgeID, sess.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.BroadcastToFridge(fridgeID, websocket.MessageTypeItemUpdate, item)
	c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) UpdateItem(c *gin.Context) {
	_, fridgeID, ok := requireMember(c, h.fridges)
	if !ok {
		return
	}

	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.items.UpdateItem(c.Request.Context(), fridgeID, c.Param("itemId"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.BroadcastToFridge(fridgeID, websocket.MessageTypeItemUpdate, item)
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	_, fridgeID, ok := requireMember(c, h.fridges)
	if !ok {
		return
	}

	itemID := c.Param("itemId")
	if err := h.items.DeleteItem(c.Request.Context(), fridgeID, itemID); err != nil {
		respondError(c, err)
		return
	}

	h.hub.BroadcastToFridge(fridgeID, websocket.MessageTypeItemUpdate, gin.H{"deleted": itemID})
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
