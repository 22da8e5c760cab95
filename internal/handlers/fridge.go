package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/megdcosta/frijio/internal/auth"
	"github.com/megdcosta/frijio/internal/models"
	"github.com/megdcosta/frijio/internal/service"
	"github.com/megdcosta/frijio/internal/websocket"
)

type FridgeHandler struct {
	fridges   *service.FridgeService
	hub       *websocket.Hub
	validator *validator.Validate
}

func NewFridgeHandler(fridges *service.FridgeService, hub *websocket.Hub) *FridgeHandler {
	return &FridgeHandler{
		fridges:   fridges,
		hub:       hub,
		validator: validator.New(),
	}
}

func (h *FridgeHandler) CreateFridge(c *gin.Context) {
	sess, exists := auth.GetSession(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req models.CreateFridgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fridge, err := h.fridges.CreateFridge(c.Request.Context(), req.Name, sess.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, fridge)
}

func (h *FridgeHandler) JoinFridge(c *gin.Context) {
	sess, exists := auth.GetSession(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req models.JoinFridgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.fridges.JoinFridgeByID(c.Request.Context(), sess.UserID, req.FridgeID); err != nil {
		respondError(c, err)
		return
	}

	h.hub.BroadcastToFridge(req.FridgeID, websocket.MessageTypeMemberJoined, gin.H{"user_id": sess.UserID})
	c.JSON(http.StatusOK, gin.H{"message": "Joined fridge successfully"})
}

func (h *FridgeHandler) GetFridges(c *gin.Context) {
	sess, exists := auth.GetSession(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	fridges, err := h.fridges.ListFridges(c.Request.Context(), sess.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	if fridges == nil {
		fridges = []models.Fridge{}
	}

	c.JSON(http.StatusOK, gin.H{"fridges": fridges})
}

func (h *FridgeHandler) GetFridge(c *gin.Context) {
	sess, exists := auth.GetSession(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	fridge, err := h.fridges.GetFridge(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	member := false
	for _, m := range fridge.Members {
		if m == sess.UserID {
			member = true
			break
		}
	}
	if !member {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not a member of this fridge"})
		return
	}

	c.JSON(http.StatusOK, fridge)
}
